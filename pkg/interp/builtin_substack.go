package interp

import "github.com/consize-lang/consize/pkg/value"

func builtinEmptyStack(s *value.State) error {
	s.PushData(value.NewSubStack())
	return nil
}

func builtinPush(s *value.State) error {
	x, err := popData(s, "push")
	if err != nil {
		return err
	}
	ss, err := popSubStack(s, "push")
	if err != nil {
		return err
	}
	s.PushData(ss.Push(x))
	return nil
}

func builtinTop(s *value.State) error {
	ss, err := popSubStack(s, "top")
	if err != nil {
		return err
	}
	s.PushData(ss.Top())
	return nil
}

func builtinPop(s *value.State) error {
	ss, err := popSubStack(s, "pop")
	if err != nil {
		return err
	}
	s.PushData(ss.Pop())
	return nil
}

func builtinConcat(s *value.State) error {
	b, err := popSubStack(s, "concat")
	if err != nil {
		return err
	}
	a, err := popSubStack(s, "concat")
	if err != nil {
		return err
	}
	s.PushData(value.Concat(a, b))
	return nil
}

func builtinReverse(s *value.State) error {
	ss, err := popSubStack(s, "reverse")
	if err != nil {
		return err
	}
	s.PushData(ss.Reverse())
	return nil
}
