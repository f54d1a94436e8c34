package interp

import (
	"strconv"

	"github.com/consize-lang/consize/pkg/value"
)

// popOperands pops `| a b |` (b topmost) and parses both as signed 64-bit
// integers, as every arithmetic/comparison primitive requires.
func popOperands(s *value.State, op string) (a, b int64, err error) {
	b, err = popInt(s, op)
	if err != nil {
		return 0, 0, err
	}
	a, err = popInt(s, op)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func pushInt(s *value.State, n int64) {
	s.PushData(value.Word(strconv.FormatInt(n, 10)))
}

func builtinAdd(s *value.State) error {
	a, b, err := popOperands(s, "+")
	if err != nil {
		return err
	}
	pushInt(s, a+b)
	return nil
}

func builtinSub(s *value.State) error {
	a, b, err := popOperands(s, "-")
	if err != nil {
		return err
	}
	pushInt(s, a-b)
	return nil
}

func builtinMul(s *value.State) error {
	a, b, err := popOperands(s, "*")
	if err != nil {
		return err
	}
	pushInt(s, a*b)
	return nil
}

func builtinDiv(s *value.State) error {
	a, b, err := popOperands(s, "div")
	if err != nil {
		return err
	}
	if b == 0 {
		return typeErrf("div", "division by zero")
	}
	pushInt(s, a/b)
	return nil
}

func builtinMod(s *value.State) error {
	a, b, err := popOperands(s, "mod")
	if err != nil {
		return err
	}
	if b == 0 {
		return typeErrf("mod", "division by zero")
	}
	pushInt(s, a%b)
	return nil
}

func builtinLt(s *value.State) error {
	a, b, err := popOperands(s, "<")
	if err != nil {
		return err
	}
	s.PushData(value.Bool(a < b))
	return nil
}

func builtinGt(s *value.State) error {
	a, b, err := popOperands(s, ">")
	if err != nil {
		return err
	}
	s.PushData(value.Bool(a > b))
	return nil
}

func builtinLe(s *value.State) error {
	a, b, err := popOperands(s, "<=")
	if err != nil {
		return err
	}
	s.PushData(value.Bool(a <= b))
	return nil
}

func builtinGe(s *value.State) error {
	a, b, err := popOperands(s, ">=")
	if err != nil {
		return err
	}
	s.PushData(value.Bool(a >= b))
	return nil
}

func builtinNumEq(s *value.State) error {
	a, b, err := popOperands(s, "==")
	if err != nil {
		return err
	}
	s.PushData(value.Bool(a == b))
	return nil
}
