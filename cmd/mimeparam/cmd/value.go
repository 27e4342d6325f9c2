package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mimeparam/param"
)

var valueCmd = &cobra.Command{
	Use:   "value [field]",
	Short: "Decodes a Content-type or Content-disposition field",
	Long: `Decodes the body of a parameterized header field such as

  text/plain; charset=utf-8

A leading "Name:" is skipped, so a whole header line may be given.`,
	RunE: RunValue,
}

func init() {
	rootCmd.AddCommand(valueCmd)
}

// stripFieldName drops a leading header field name, if present.
func stripFieldName(in string) string {
	name, body, found := strings.Cut(in, ":")
	if !found || strings.ContainsAny(name, " \t;=\"") {
		return in
	}
	return body
}

func RunValue(cmd *cobra.Command, args []string) error {
	in, err := input(cmd, args)
	if err != nil {
		return err
	}

	pv, err := param.Parse(stripFieldName(in), parseOptions()...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "value: %s\n", pv.Value())
	if pv.Type() != "" {
		fmt.Fprintf(out, "type: %s\n", pv.Type())
		fmt.Fprintf(out, "subtype: %s\n", pv.Subtype())
	}

	ps := pv.Parameters()
	for _, name := range sortedNames(ps) {
		fmt.Fprintf(out, "  %s: %s\n", name, ps[name])
	}

	return nil
}
