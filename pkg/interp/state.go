// Package interp implements the Consize step relation stepcc, the
// iterative run driver, and the built-in operator set, all operating on
// *value.State (whose stacks and dictionary live in package value to avoid
// an import cycle with Fun's primitive bodies).
package interp

import (
	"strconv"

	"github.com/consize-lang/consize/pkg/value"
)

// New builds a fresh interpreter state: empty data and call stacks and a
// dictionary holding every built-in.
func New() *value.State {
	s := value.NewState()
	s.Dict = BuiltinDict()
	return s
}

// popData pops one value, signalling ArityError if the data stack is empty.
func popData(s *value.State, op string) (value.Value, error) {
	v, ok := s.PopData()
	if !ok {
		return nil, arityErr(op)
	}
	return v, nil
}

// popWord pops a value.Word, signalling TypeError otherwise.
func popWord(s *value.State, op string) (value.Word, error) {
	v, err := popData(s, op)
	if err != nil {
		return "", err
	}
	w, ok := v.(value.Word)
	if !ok {
		return "", typeErrf(op, "expected a Word, got %s", v.Kind())
	}
	return w, nil
}

// popSubStack pops a *value.SubStack, signalling TypeError otherwise.
func popSubStack(s *value.State, op string) (*value.SubStack, error) {
	v, err := popData(s, op)
	if err != nil {
		return nil, err
	}
	ss, ok := v.(*value.SubStack)
	if !ok {
		return nil, typeErrf(op, "expected a SubStack, got %s", v.Kind())
	}
	return ss, nil
}

// popMap pops a *value.Map, signalling TypeError otherwise.
func popMap(s *value.State, op string) (*value.Map, error) {
	v, err := popData(s, op)
	if err != nil {
		return nil, err
	}
	m, ok := v.(*value.Map)
	if !ok {
		return nil, typeErrf(op, "expected a Map, got %s", v.Kind())
	}
	return m, nil
}

// popFun pops a *value.Fun, signalling TypeError otherwise.
func popFun(s *value.State, op string) (*value.Fun, error) {
	v, err := popData(s, op)
	if err != nil {
		return nil, err
	}
	f, ok := v.(*value.Fun)
	if !ok {
		return nil, typeErrf(op, "expected a Fun, got %s", v.Kind())
	}
	return f, nil
}

// popInt pops a Word and parses it as a signed 64-bit integer.
func popInt(s *value.State, op string) (int64, error) {
	w, err := popWord(s, op)
	if err != nil {
		return 0, err
	}
	n, perr := strconv.ParseInt(string(w), 10, 64)
	if perr != nil {
		return 0, parseErrf(op, "%q is not a valid integer", string(w))
	}
	return n, nil
}
