package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/zostay/go-mimeparam/param"
)

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip [parameters]",
	Short: "Shows the diff of a parameters string round-trip through decode and format",
	RunE:  RunRoundtrip,
}

func init() {
	rootCmd.AddCommand(roundtripCmd)
}

func writeDiff(out io.Writer, from, to string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(from, to, false))
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			fmt.Fprintf(out, "-%q\n", d.Text)
		case diffmatchpatch.DiffInsert:
			fmt.Fprintf(out, "+%q\n", d.Text)
		case diffmatchpatch.DiffEqual:
			fmt.Fprintf(out, " %q\n", d.Text)
		}
	}
}

func RunRoundtrip(cmd *cobra.Command, args []string) error {
	in, err := input(cmd, args)
	if err != nil {
		return err
	}
	in = strings.TrimSpace(in)

	ps, err := param.ParseParameters(in, parseOptions()...)
	if err != nil {
		return err
	}

	formatted := param.Format(ps)

	again, err := param.ParseParameters(formatted, parseOptions()...)
	if err != nil {
		return fmt.Errorf("formatted parameters do not parse: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "in  = %s\n", in)
	fmt.Fprintf(out, "out = %s\n", formatted)
	writeDiff(out, in, formatted)

	if diff := cmp.Diff(ps, again); diff != "" {
		return fmt.Errorf("decoded parameters changed (-in +out):\n%s", diff)
	}

	return nil
}
