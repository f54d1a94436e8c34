package interp

import "github.com/consize-lang/consize/pkg/value"

func builtinMapping(s *value.State) error {
	ss, err := popSubStack(s, "mapping")
	if err != nil {
		return err
	}
	m, ok := value.Mapping(ss)
	if !ok {
		return typeErrf("mapping", "substack has odd length %d", len(ss.Items))
	}
	s.PushData(m)
	return nil
}

func builtinUnmap(s *value.State) error {
	m, err := popMap(s, "unmap")
	if err != nil {
		return err
	}
	s.PushData(m.Unmap())
	return nil
}

func builtinKeys(s *value.State) error {
	m, err := popMap(s, "keys")
	if err != nil {
		return err
	}
	s.PushData(m.Keys())
	return nil
}

// builtinAssoc implements `| v k m | -> | m' |`: value deepest, key above
// it, map on top.
func builtinAssoc(s *value.State) error {
	m, err := popMap(s, "assoc")
	if err != nil {
		return err
	}
	k, err := popData(s, "assoc")
	if err != nil {
		return err
	}
	v, err := popData(s, "assoc")
	if err != nil {
		return err
	}
	s.PushData(m.Assoc(k, v))
	return nil
}

func builtinDissoc(s *value.State) error {
	m, err := popMap(s, "dissoc")
	if err != nil {
		return err
	}
	k, err := popData(s, "dissoc")
	if err != nil {
		return err
	}
	s.PushData(m.Dissoc(k))
	return nil
}

// builtinGet implements `| k m d | -> | result |`. If the matched value is a
// self-defined Fun, its body (a SubStack) is pushed instead of the Fun
// itself, per §4.C.
func builtinGet(s *value.State) error {
	d, err := popData(s, "get")
	if err != nil {
		return err
	}
	m, err := popMap(s, "get")
	if err != nil {
		return err
	}
	k, err := popData(s, "get")
	if err != nil {
		return err
	}
	got, ok := m.Get(k)
	if !ok {
		s.PushData(d)
		return nil
	}
	if f, ok := got.(*value.Fun); ok && !f.IsPrimitive() {
		s.PushData(f.Body)
		return nil
	}
	s.PushData(got)
	return nil
}

func builtinMerge(s *value.State) error {
	b, err := popMap(s, "merge")
	if err != nil {
		return err
	}
	a, err := popMap(s, "merge")
	if err != nil {
		return err
	}
	s.PushData(value.Merge(a, b))
	return nil
}
