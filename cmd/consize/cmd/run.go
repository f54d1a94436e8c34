package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/consize-lang/consize/pkg/interp"
	"github.com/consize-lang/consize/pkg/preprocess"
	"github.com/consize-lang/consize/pkg/value"
)

// runConsize implements the §6 entry point: it drives the engine through
// the call-stack sequence the prelude's own `start` word names (§4.C
// "Prelude glue") minus its leading slurp, since <code> is already the
// source text — uncomment, tokenize, get-dict, func, emptystack, swap,
// apply — rather than re-implementing that pipeline in Go, so the CLI
// exercises the same primitives a Consize program would.
func runConsize(_ *cobra.Command, args []string) error {
	if level < 0 || level > 4 {
		return fmt.Errorf("level must be 0-4, got %d", level)
	}

	s := interp.New()
	s.Stdout = os.Stdout
	s.Stdin = os.Stdin
	s.Dict = preprocess.Optimize(s.Dict, preprocess.Level(level))

	s.PushData(value.Word(args[0]))

	// Call-stack storage order is the reverse of execution order (§4.A,
	// §9(b)): the last element here is popped, and therefore runs, first.
	s.Call = []value.Value{
		value.Word("apply"),
		value.Word("swap"),
		value.Word("emptystack"),
		value.Word("func"),
		value.Word("get-dict"),
		value.Word("tokenize"),
		value.Word("uncomment"),
	}

	if err := interp.Run(s); err != nil {
		return err
	}

	for _, v := range s.Data {
		fmt.Println(value.RenderTop(v))
	}
	return nil
}
