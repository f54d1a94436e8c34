// Package reader implements Consize's grammar-free source handling:
// comment stripping and whitespace tokenization (§4.D). It holds no
// knowledge of brackets, strings, or numbers — those are plain Words,
// parsed (if at all) by prelude source running on top of the core.
package reader

import (
	"strings"

	"github.com/consize-lang/consize/pkg/value"
)

// Uncomment drops, from each line of w, everything from the first '%'
// onward, then joins the surviving fragments with single spaces.
func Uncomment(w string) string {
	lines := strings.Split(w, "\n")
	frags := make([]string, len(lines))
	for i, line := range lines {
		if idx := strings.IndexByte(line, '%'); idx >= 0 {
			line = line[:idx]
		}
		frags[i] = line
	}
	return strings.Join(frags, " ")
}

// Tokenize splits w on ASCII whitespace and returns a SubStack of one Word
// per token, in reverse order so the first source token ends up on top —
// the convention the rest of the engine relies on (§9(b)).
func Tokenize(w string) *value.SubStack {
	fields := strings.Fields(w)
	items := make([]value.Value, len(fields))
	for i, tok := range fields {
		items[len(items)-1-i] = value.Word(tok)
	}
	return &value.SubStack{Items: items}
}
