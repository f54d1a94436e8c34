package value

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestPrintRoundTripSnapshots golden-snapshots the §4.A rendering rules for
// each value kind, so a drift in the byte-exact reflection format (which
// `tokenize` must be able to read back) is caught as a diff rather than
// silently accepted.
func TestPrintRoundTripSnapshots(t *testing.T) {
	cases := map[string]Value{
		"word": Word("hello"),
		"nil":  Nil,
		"substack_flat": NewSubStack(
			Word("1"), Word("2"), Word("3"),
		),
		"substack_nested": NewSubStack(
			Word("a"),
			NewSubStack(Word("x"), Word("y")),
			Word("b"),
		),
		"map": NewMap().Assoc(Word("k1"), Word("v1")).Assoc(Word("k2"), Word("v2")),
	}

	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			snaps.MatchSnapshot(t, name, v.String())
		})
	}
}

// TestRenderTopSnapshot golden-snapshots the top-level reversed rendering
// that print/the CLI use, distinct from the nested String() form above.
func TestRenderTopSnapshot(t *testing.T) {
	top := NewSubStack(Word("1"), Word("2"), Word("3"))
	snaps.MatchSnapshot(t, "render_top", RenderTop(top))
}
