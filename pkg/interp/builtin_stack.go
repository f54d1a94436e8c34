package interp

import "github.com/consize-lang/consize/pkg/value"

func builtinDup(s *value.State) error {
	x, err := popData(s, "dup")
	if err != nil {
		return err
	}
	s.PushData(x)
	s.PushData(x)
	return nil
}

func builtinDrop(s *value.State) error {
	_, err := popData(s, "drop")
	return err
}

func builtinSwap(s *value.State) error {
	b, err := popData(s, "swap")
	if err != nil {
		return err
	}
	a, err := popData(s, "swap")
	if err != nil {
		return err
	}
	s.PushData(b)
	s.PushData(a)
	return nil
}

// builtinRot implements `| a b c | -> | b c a |`: the bottom-most of the
// three operands is brought to the top.
func builtinRot(s *value.State) error {
	c, err := popData(s, "rot")
	if err != nil {
		return err
	}
	b, err := popData(s, "rot")
	if err != nil {
		return err
	}
	a, err := popData(s, "rot")
	if err != nil {
		return err
	}
	s.PushData(b)
	s.PushData(c)
	s.PushData(a)
	return nil
}
