package interp

import "github.com/consize-lang/consize/pkg/value"

// ReadWord and ReadMapping are the fallback words stepcc pushes on a
// dictionary miss or a bare Map in call-stack position, so the prelude can
// implement unknown-word handling and map literals in Consize source
// itself (§4.F).
const (
	ReadWord    = value.Word("read-word")
	ReadMapping = value.Word("read-mapping")
)

// Step performs one reduction of stepcc (§4.F): pop the call stack head and
// reduce it against the data stack and dictionary. It is a no-op returning
// nil when the call stack is already empty.
func Step(s *value.State) error {
	head, ok := s.PopCall()
	if !ok {
		return nil
	}
	switch v := head.(type) {
	case *value.SubStack:
		s.PushData(v)
		return nil

	case value.Word:
		return stepWord(s, v)

	case *value.Map:
		s.PushData(v)
		s.PushCall(ReadMapping)
		return nil

	case value.NilValue:
		s.PushData(v)
		return nil

	case *value.Fun:
		return invokeFun(s, v)

	default:
		return typeErrf("stepcc", "call stack holds a value of unknown kind")
	}
}

func stepWord(s *value.State, w value.Word) error {
	hit, found := s.Dict.Get(w)
	if !found {
		s.PushData(w)
		s.PushCall(ReadWord)
		return nil
	}
	fn, ok := hit.(*value.Fun)
	if !ok {
		return typeErrf("stepcc", "dictionary entry for %q is not a Fun", string(w))
	}
	return invokeFun(s, fn)
}

// builtinReadWord is the core fallback for a dictionary miss: stepcc has
// already pushed the missed Word onto the data stack before scheduling
// read-word (§4.F), so the core's own read-word is a no-op that leaves it
// there as a literal. A prelude may `set-dict` a richer read-word (numeric
// literal parsing, unknown-word errors, ...) over this one.
func builtinReadWord(s *value.State) error {
	return nil
}

// builtinReadMapping is the analogous no-op fallback for a bare Map in
// call-stack position (§4.F): the Map is already pushed onto the data
// stack as a literal before read-mapping runs.
func builtinReadMapping(s *value.State) error {
	return nil
}

func invokeFun(s *value.State, f *value.Fun) error {
	if f.IsPrimitive() {
		return f.Prim(s)
	}
	s.SpliceCall(f.Body)
	return nil
}

// Run repeatedly steps state until the call stack is empty, iteratively
// (not via Go recursion) so that a captured continuation's call stack can
// be arbitrarily deep without growing the native stack (§5, §9).
func Run(s *value.State) error {
	for len(s.Call) > 0 {
		if err := Step(s); err != nil {
			return err
		}
	}
	return nil
}
