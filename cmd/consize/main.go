// Command consize is the Consize front end: it feeds a source expression
// through the engine's own uncomment/tokenize/get-dict/func/apply pipeline
// (§4.C "Prelude glue") and reports the resulting data stack.
package main

import (
	"os"

	"github.com/consize-lang/consize/cmd/consize/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
