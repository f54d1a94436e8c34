package interp

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/consize-lang/consize/pkg/value"
)

// builtinWord implements `| s | -> | w |`: s must hold only single-character
// Words; they are concatenated in reverse order of the substack.
func builtinWord(s *value.State) error {
	ss, err := popSubStack(s, "word")
	if err != nil {
		return err
	}
	var b strings.Builder
	for i := len(ss.Items) - 1; i >= 0; i-- {
		w, ok := ss.Items[i].(value.Word)
		if !ok || utf8.RuneCountInString(string(w)) != 1 {
			return typeErrf("word", "substack must contain only single-character words")
		}
		b.WriteString(string(w))
	}
	s.PushData(value.Word(b.String()))
	return nil
}

// builtinUnword implements `| w | -> | s |`: one-character Words in reverse
// order of the source characters, so that `word` inverts it.
func builtinUnword(s *value.State) error {
	w, err := popWord(s, "unword")
	if err != nil {
		return err
	}
	runes := []rune(string(w))
	items := make([]value.Value, len(runes))
	for i, r := range runes {
		items[len(items)-1-i] = value.Word(string(r))
	}
	s.PushData(&value.SubStack{Items: items})
	return nil
}

var charEscapes = map[string]string{
	"\\space":     " ",
	"\\newline":   "\n",
	"\\formfeed":  "\f",
	"\\return":    "\r",
	"\\backspace": "\b",
	"\\tab":       "\t",
}

// builtinChar recognises the escape words and \uXXXX hex code points,
// pushing the corresponding single-character Word.
func builtinChar(s *value.State) error {
	w, err := popWord(s, "char")
	if err != nil {
		return err
	}
	text := string(w)
	if lit, ok := charEscapes[text]; ok {
		s.PushData(value.Word(lit))
		return nil
	}
	if strings.HasPrefix(text, "\\u") {
		code, perr := strconv.ParseInt(text[2:], 16, 32)
		if perr != nil {
			return parseErrf("char", "%q is not a valid \\u escape", text)
		}
		s.PushData(value.Word(string(rune(code))))
		return nil
	}
	return parseErrf("char", "%q is not a recognised character escape", text)
}

func builtinType(s *value.State) error {
	v, err := popData(s, "type")
	if err != nil {
		return err
	}
	s.PushData(value.Word(v.Kind()))
	return nil
}

func builtinEqual(s *value.State) error {
	b, err := popData(s, "equal?")
	if err != nil {
		return err
	}
	a, err := popData(s, "equal?")
	if err != nil {
		return err
	}
	s.PushData(value.Bool(a.Equal(b)))
	return nil
}

// builtinIdentical implements reference identity: Words and Nil are
// immutable value types compared structurally, SubStack/Map/Fun compared by
// pointer.
func builtinIdentical(s *value.State) error {
	b, err := popData(s, "identical?")
	if err != nil {
		return err
	}
	a, err := popData(s, "identical?")
	if err != nil {
		return err
	}
	s.PushData(value.Bool(identical(a, b)))
	return nil
}

func identical(a, b value.Value) bool {
	switch av := a.(type) {
	case value.Word:
		bv, ok := b.(value.Word)
		return ok && av == bv
	case value.NilValue:
		_, ok := b.(value.NilValue)
		return ok
	case *value.SubStack:
		bv, ok := b.(*value.SubStack)
		return ok && av == bv
	case *value.Map:
		bv, ok := b.(*value.Map)
		return ok && av == bv
	case *value.Fun:
		bv, ok := b.(*value.Fun)
		return ok && av == bv
	default:
		return false
	}
}

// builtinUndocument has no contract anywhere in the specification or the
// original source beyond its presence in the dictionary table; it always
// fails rather than silently no-op, so a program that calls it surfaces the
// gap instead of masking it.
func builtinUndocument(s *value.State) error {
	return unimplementedErr("undocument")
}

// builtinIsInteger is a total predicate: it reports t only for Words that
// parse as a non-negative signed 64-bit integer (§9(c)), and f for anything
// else, including a non-Word top (§4.C "else f" — a type predicate never
// errors on the wrong kind).
func builtinIsInteger(s *value.State) error {
	v, err := popData(s, "integer?")
	if err != nil {
		return err
	}
	w, ok := v.(value.Word)
	if !ok {
		s.PushData(value.False)
		return nil
	}
	n, perr := strconv.ParseInt(string(w), 10, 64)
	s.PushData(value.Bool(perr == nil && n >= 0))
	return nil
}
