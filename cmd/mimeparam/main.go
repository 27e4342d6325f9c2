package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-mimeparam/cmd/mimeparam/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
