package interp

import "github.com/consize-lang/consize/pkg/value"

// builtinGetDict reifies the current dictionary as a Map (§4.E): keys are
// Words, values are Funs. Primitives were inserted first when the
// dictionary was built (see BuiltinDict), so first-insertion-wins already
// guarantees they win over any earlier same-named user definition.
func builtinGetDict(s *value.State) error {
	s.PushData(s.Dict.Clone())
	return nil
}

// builtinSetDict replaces the current dictionary with one derived from the
// popped Map: a Fun value round-trips with the same identity; a SubStack
// value becomes a self-defined Fun carrying it as a body; any other value
// kind becomes a self-defined Fun whose one-item body pushes that literal
// (the trivial case of "splice a body onto the call stack").
func builtinSetDict(s *value.State) error {
	m, err := popMap(s, "set-dict")
	if err != nil {
		return err
	}
	newDict := value.NewMap()
	for _, p := range m.Pairs {
		k, ok := p.Key.(value.Word)
		if !ok {
			return dictErrf("set-dict", "dictionary key %s is not a Word", p.Key.Kind())
		}
		var fn *value.Fun
		switch v := p.Value.(type) {
		case *value.Fun:
			fn = v
		case *value.SubStack:
			fn = value.NewSelfDefinedFun(v)
		default:
			fn = value.NewSelfDefinedFun(value.NewSubStack(p.Value))
		}
		newDict = newDict.Assoc(k, fn)
	}
	s.Dict = newDict
	return nil
}
