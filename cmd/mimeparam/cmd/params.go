package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mimeparam/param"
)

var paramsCmd = &cobra.Command{
	Use:   "params [parameters]",
	Short: "Decodes a parameters string and prints one name: value line per parameter",
	RunE:  RunParams,
}

func init() {
	rootCmd.AddCommand(paramsCmd)
}

func RunParams(cmd *cobra.Command, args []string) error {
	in, err := input(cmd, args)
	if err != nil {
		return err
	}

	ps, err := param.ParseParameters(in, parseOptions()...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range sortedNames(ps) {
		fmt.Fprintf(out, "%s: %s\n", name, ps[name])
	}

	return nil
}
