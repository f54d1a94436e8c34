package reader

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consize-lang/consize/pkg/value"
)

func TestUncommentStripsFromPercentToEndOfLine(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no comment", "1 2 +", "1 2 +"},
		{"trailing comment", "1 2 + % add them", "1 2 + "},
		{"whole line comment", "% just a comment", ""},
		{
			"multi line",
			"1 2 + % first\n3 4 *",
			"1 2 +  3 4 *",
		},
		{"percent at start of line", "%comment\ncode", " code"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, Uncomment(c.in))
		})
	}
}

func TestTokenizeEmptyInputYieldsEmptyStack(t *testing.T) {
	ss := Tokenize("   ")
	require.True(t, ss.Empty())
}

func TestTokenizeFirstSourceTokenEndsUpOnTop(t *testing.T) {
	ss := Tokenize("1 2 +")
	require.Equal(t, value.Word("+"), ss.Items[0])
	require.Equal(t, value.Word("2"), ss.Items[1])
	require.Equal(t, value.Word("1"), ss.Items[2])
	require.True(t, ss.Top().Equal(value.Word("1")))
}

func TestTokenizeCollapsesRunsOfWhitespace(t *testing.T) {
	ss := Tokenize("1   2\t\t3\n4")
	require.Len(t, ss.Items, 4)
	require.True(t, ss.Top().Equal(value.Word("1")))
}

func TestTokenizeTreatsBracketsAsPlainWords(t *testing.T) {
	ss := Tokenize("[ dup ]")
	require.Len(t, ss.Items, 3)
	require.True(t, ss.Top().Equal(value.Word("[")))
}
