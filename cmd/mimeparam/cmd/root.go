package cmd

import (
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	// the command line tool should understand every charset it can
	_ "github.com/zostay/go-mimeparam/header/encoding"
	"github.com/zostay/go-mimeparam/param"
)

var (
	transcode bool
	strict    bool
)

var rootCmd = &cobra.Command{
	Use:           "mimeparam",
	Short:         "Tools for decoding MIME header parameters",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&transcode, "transcode", false, "convert RFC 2231 values from their declared charset")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "fail on continuations with missing sections")
}

// Execute runs the command line.
func Execute() error {
	return rootCmd.Execute()
}

func parseOptions() []param.ParseOption {
	var opts []param.ParseOption
	if transcode {
		opts = append(opts, param.WithCharsetTranscoding())
	}
	if strict {
		opts = append(opts, param.WithStrictContinuations())
	}
	return opts
}

// input returns the arguments joined with spaces or, when there are none,
// everything on standard input.
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	in, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}

	return string(in), nil
}

func sortedNames(ps map[string]string) []string {
	names := make([]string, 0, len(ps))
	for name := range ps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
