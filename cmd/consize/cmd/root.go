package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// level selects the dictionary-inlining preprocessor level (§4.H); 0 runs
// the unoptimized dictionary.
var level int

var rootCmd = &cobra.Command{
	Use:   "consize <code>",
	Short: "Consize: a concatenative, stack-based interpreter",
	Long: `consize runs a Consize expression against a fresh primitive dictionary.

Consize is a concatenative, stack-based language in the Joy/Factor
tradition: source is a stream of whitespace-separated words that
manipulate a global data stack by juxtaposition. The dictionary holds only
the primitives, so prelude words such as "load" and "run" are not defined;
a word missing from the dictionary is left on the data stack as a literal.
The resulting data stack is printed, e.g.:

  consize '1 2 +'

prints "[ 3 ]".`,
	Args:          cobra.ExactArgs(1),
	RunE:          runConsize,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().IntVarP(&level, "level", "l", 0, "dictionary-inlining preprocessor level (0-4)")
}

// Execute runs the root command and reports a diagnostic to stderr on
// failure; the caller maps a non-nil error to a non-zero exit code (§6).
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "consize: %v\n", err)
		return err
	}
	return nil
}
