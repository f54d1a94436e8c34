package interp

import "github.com/consize-lang/consize/pkg/value"

func cloneValues(vs []value.Value) []value.Value {
	out := make([]value.Value, len(vs))
	copy(out, vs)
	return out
}

// builtinCall pops a value and prepends it to the call stack: a SubStack is
// spliced element-wise (its top becomes the next instruction), anything
// else is pushed as a single call-stack item.
func builtinCall(s *value.State) error {
	v, err := popData(s, "call")
	if err != nil {
		return err
	}
	if ss, ok := v.(*value.SubStack); ok {
		s.SpliceCall(ss)
		return nil
	}
	s.PushCall(v)
	return nil
}

// builtinCallCC captures the current continuation. It pops the quotation to
// run, replaces the data stack with a single two-element SubStack
// [saved-data saved-call], and sets the call stack to the quotation's body —
// so the quotation executes with the reified continuation on top of its
// data stack.
func builtinCallCC(s *value.State) error {
	q, err := popSubStack(s, "call/cc")
	if err != nil {
		return err
	}
	savedData := &value.SubStack{Items: cloneValues(s.Data)}
	savedCall := &value.SubStack{Items: cloneValues(s.Call)}
	pair := value.NewSubStack(savedData, savedCall)
	s.Data = []value.Value{pair}
	s.Call = cloneValues(q.Items)
	return nil
}

// builtinContinue pops the [saved-data saved-call] pair produced by
// call/cc and reinstates both as the current data/call stacks, discarding
// the current ones.
func builtinContinue(s *value.State) error {
	pair, err := popSubStack(s, "continue")
	if err != nil {
		return err
	}
	if len(pair.Items) != 2 {
		return typeErrf("continue", "expected a 2-element continuation, got %d elements", len(pair.Items))
	}
	savedData, ok := pair.Items[0].(*value.SubStack)
	if !ok {
		return typeErrf("continue", "saved data is not a SubStack")
	}
	savedCall, ok := pair.Items[1].(*value.SubStack)
	if !ok {
		return typeErrf("continue", "saved call is not a SubStack")
	}
	s.Data = cloneValues(savedData.Items)
	s.Call = cloneValues(savedCall.Items)
	return nil
}

// builtinStepcc exposes a single reduction as a primitive, for meta-circular
// interpretation: it pops `| data call dict |`, performs one Step of an
// inner interpreter over them, and pushes the resulting `| data' call'
// dict' |`. The dictionary is pushed back too (not just data/call) because
// a single Step can itself be a set-dict reduction; dropping it would lose
// the updated dictionary after one meta-circular reduction.
func builtinStepcc(s *value.State) error {
	dict, err := popMap(s, "stepcc")
	if err != nil {
		return err
	}
	callSS, err := popSubStack(s, "stepcc")
	if err != nil {
		return err
	}
	dataSS, err := popSubStack(s, "stepcc")
	if err != nil {
		return err
	}
	inner := &value.State{
		Data: cloneValues(dataSS.Items), Call: cloneValues(callSS.Items), Dict: dict,
		Stdout: s.Stdout, Stdin: s.Stdin, Clock: s.Clock, OS: s.OS,
	}
	if err := Step(inner); err != nil {
		return err
	}
	s.PushData(&value.SubStack{Items: inner.Data})
	s.PushData(&value.SubStack{Items: inner.Call})
	s.PushData(inner.Dict)
	return nil
}

// builtinApply invokes Fun f against the inner data stack s: runs f to
// completion with data=s, call=[f], dict=caller's dict, then pushes the
// resulting inner data stack as a nested SubStack.
func builtinApply(s *value.State) error {
	f, err := popFun(s, "apply")
	if err != nil {
		return err
	}
	ss, err := popSubStack(s, "apply")
	if err != nil {
		return err
	}
	inner := &value.State{
		Data: cloneValues(ss.Items), Call: []value.Value{f}, Dict: s.Dict,
		Stdout: s.Stdout, Stdin: s.Stdin, Clock: s.Clock, OS: s.OS,
	}
	if err := Run(inner); err != nil {
		return err
	}
	s.PushData(&value.SubStack{Items: inner.Data})
	return nil
}

// builtinFunc constructs a Fun that, when later invoked against a caller
// state, runs quotation q under dictionary m against the caller's own data
// stack and replaces it with the result (§4.G).
func builtinFunc(s *value.State) error {
	m, err := popMap(s, "func")
	if err != nil {
		return err
	}
	q, err := popSubStack(s, "func")
	if err != nil {
		return err
	}
	body := cloneValues(q.Items)
	fn := value.NewPrimFun("func", func(caller *value.State) error {
		inner := &value.State{
			Data: cloneValues(caller.Data), Call: cloneValues(body), Dict: m,
			Stdout: caller.Stdout, Stdin: caller.Stdin, Clock: caller.Clock, OS: caller.OS,
		}
		if err := Run(inner); err != nil {
			return err
		}
		caller.Data = inner.Data
		return nil
	})
	s.PushData(fn)
	return nil
}

// builtinCompose builds a Fun equivalent to the sequential composition of
// two Funs `| f g |`: invoking it splices g then f onto the caller's call
// stack, so f runs first and g runs after, with the rest of the program
// continuing unchanged afterward — the same tail-call-preserving idiom a
// self-defined body's splice uses.
func builtinCompose(s *value.State) error {
	g, err := popFun(s, "compose")
	if err != nil {
		return err
	}
	f, err := popFun(s, "compose")
	if err != nil {
		return err
	}
	composed := value.NewPrimFun("composed", func(caller *value.State) error {
		caller.PushCall(g)
		caller.PushCall(f)
		return nil
	})
	s.PushData(composed)
	return nil
}

// builtinBackslash implements `\`: discard the next call-stack item
// unexecuted, so `\ foo` is a no-op that skips `foo`.
func builtinBackslash(s *value.State) error {
	if _, ok := s.PopCall(); !ok {
		return arityErr("\\")
	}
	return nil
}
