// Package preprocess implements the four-level dictionary-inlining optimizer
// (§4.H): an opt-in pass over a dictionary that trades dictionary lookups at
// run time for more work up front, by progressively inlining self-defined
// bodies, binding primitive references directly, wrapping every remaining
// token in a closure, and finally folding a definition down to one Go
// function value.
//
// Each level only ever rewrites SELF-DEFINED entries; primitives already
// pass straight through at every level, since they have no body to inline.
package preprocess

import (
	"slices"

	"github.com/consize-lang/consize/pkg/value"
)

// Level identifies how aggressively a dictionary is optimized.
type Level int

const (
	LevelNone Level = 0
	Level1    Level = 1
	Level2    Level = 2
	Level3    Level = 3
	Level4    Level = 4
)

// Optimize returns a new dictionary with every self-defined entry rewritten
// according to lvl. Level 0 returns dict unchanged (Clone'd).
func Optimize(dict *value.Map, lvl Level) *value.Map {
	if lvl == LevelNone {
		return dict.Clone()
	}
	out := value.NewMap()
	for _, p := range dict.Pairs {
		name, ok := p.Key.(value.Word)
		if !ok {
			out = out.Assoc(p.Key, p.Value)
			continue
		}
		fn, ok := p.Value.(*value.Fun)
		if !ok || fn.IsPrimitive() {
			out = out.Assoc(p.Key, p.Value)
			continue
		}
		out = out.Assoc(p.Key, optimizeOne(name, fn, dict, lvl))
	}
	return out
}

func optimizeOne(name value.Word, fn *value.Fun, dict *value.Map, lvl Level) *value.Fun {
	body := inline(name, execOrder(fn.Body), dict)
	if lvl == Level1 {
		return value.NewSelfDefinedFun(toBody(body))
	}
	body = bindPrimitives(body, dict)
	if lvl == Level2 {
		return value.NewSelfDefinedFun(toBody(body))
	}
	body = wrapAll(body)
	if lvl == Level3 {
		return value.NewSelfDefinedFun(toBody(body))
	}
	return compose(name, body)
}

// execOrder undoes the splice-oriented storage reversal, returning a
// SubStack's items in the order they actually execute.
func execOrder(ss *value.SubStack) []value.Value {
	n := len(ss.Items)
	out := make([]value.Value, n)
	for i, v := range ss.Items {
		out[n-1-i] = v
	}
	return out
}

// toBody re-reverses an exec-order slice back into splice storage order.
func toBody(items []value.Value) *value.SubStack {
	n := len(items)
	out := make([]value.Value, n)
	for i, v := range items {
		out[n-1-i] = v
	}
	return &value.SubStack{Items: out}
}

// inline recursively replaces every occurrence of a self-defined word other
// than word itself (to avoid unbounded recursion through self- or
// mutually-recursive definitions) with its own body, expanded in turn. outer
// holds the words already being expanded further up, which are not
// expanded again. A token preceded by `\` is left untouched and the escape
// marker dropped.
func inline(word value.Word, words []value.Value, dict *value.Map, outer ...value.Word) []value.Value {
	out := make([]value.Value, 0, len(words))
	for i := 0; i < len(words); i++ {
		se := words[i]
		guarded := i > 0 && words[i-1] == value.Word("\\")
		switch v := se.(type) {
		case value.Word:
			if v == value.Word("\\") {
				continue
			}
			if guarded || v == word || slices.Contains(outer, v) {
				out = append(out, se)
				continue
			}
			fn, found := dict.Get(v)
			if !found {
				out = append(out, se)
				continue
			}
			f, ok := fn.(*value.Fun)
			if !ok || f.IsPrimitive() {
				out = append(out, se)
				continue
			}
			out = append(out, inline(v, execOrder(f.Body), dict, append(slices.Clone(outer), word)...)...)
		case *value.SubStack:
			if guarded {
				out = append(out, se)
				continue
			}
			out = append(out, toBody(inline(word, execOrder(v), dict, outer...)))
		case *value.Map:
			if guarded {
				out = append(out, se)
				continue
			}
			out = append(out, inlineMap(word, v, dict, outer...))
		default:
			out = append(out, se)
		}
	}
	return out
}

func inlineMap(word value.Word, m *value.Map, dict *value.Map, outer ...value.Word) *value.Map {
	out := value.NewMap()
	for _, p := range m.Pairs {
		v := p.Value
		if ss, ok := v.(*value.SubStack); ok {
			v = toBody(inline(word, execOrder(ss), dict, outer...))
		}
		out = out.Assoc(p.Key, v)
	}
	return out
}

// bindPrimitives replaces Words that resolve to a primitive in dict with the
// primitive *value.Fun itself, so the step relation invokes it directly
// without a dictionary lookup. Words that are unbound, or that still name a
// self-defined entry (the surviving recursive-reference case inline leaves
// behind), are left as Words.
func bindPrimitives(words []value.Value, dict *value.Map) []value.Value {
	out := make([]value.Value, len(words))
	for i, se := range words {
		switch v := se.(type) {
		case value.Word:
			if fn, found := dict.Get(v); found {
				if f, ok := fn.(*value.Fun); ok && f.IsPrimitive() {
					out[i] = f
					continue
				}
			}
			out[i] = se
		case *value.SubStack:
			out[i] = toBody(bindPrimitives(execOrder(v), dict))
		case *value.Map:
			out[i] = bindPrimitivesMap(v, dict)
		default:
			out[i] = se
		}
	}
	return out
}

func bindPrimitivesMap(m *value.Map, dict *value.Map) *value.Map {
	out := value.NewMap()
	for _, p := range m.Pairs {
		v := p.Value
		if ss, ok := v.(*value.SubStack); ok {
			v = toBody(bindPrimitives(execOrder(ss), dict))
		}
		out = out.Assoc(p.Key, v)
	}
	return out
}

// wrapAll wraps every remaining element in words in a primitive Fun: a Word
// becomes a closure doing a live dictionary lookup against the invoking
// state (preserving late binding for recursive calls), a nested SubStack has
// its own items wrapped the same way and becomes a closure that pushes the
// wrapped SubStack, and anything else becomes a closure that pushes that
// literal value verbatim. Elements that are already Funs are kept as they are.
func wrapAll(words []value.Value) []value.Value {
	out := make([]value.Value, len(words))
	for i, se := range words {
		switch v := se.(type) {
		case *value.Fun:
			out[i] = v
		case value.Word:
			out[i] = wrapWord(v)
		case *value.SubStack:
			out[i] = pullLiteral(toBody(wrapAll(execOrder(v))))
		default:
			out[i] = pullLiteral(se)
		}
	}
	return out
}

// wrapWord mirrors the core step relation's dictionary-miss fallback: look
// the word up against the CALLER's own dictionary (not the one captured at
// optimization time), so redefinitions and recursive self-references
// observed after optimization still resolve correctly.
func wrapWord(w value.Word) *value.Fun {
	return value.NewPrimFun(string(w), func(s *value.State) error {
		fn, found := s.Dict.Get(w)
		if !found {
			s.PushData(w)
			s.PushCall(value.Word("read-word"))
			return nil
		}
		f, ok := fn.(*value.Fun)
		if !ok {
			s.PushData(fn)
			return nil
		}
		if f.IsPrimitive() {
			return f.Prim(s)
		}
		s.SpliceCall(f.Body)
		return nil
	})
}

func pullLiteral(v value.Value) *value.Fun {
	return value.NewPrimFun("", func(s *value.State) error {
		s.PushData(v)
		return nil
	})
}

// compose folds an already fully-wrapped exec-order word list into a single
// primitive Fun. It splices the whole wrapped body onto the caller's call
// stack rather than invoking each step's closure eagerly in a Go loop: a
// wrapped word can itself splice further call-stack entries (a self-defined
// hit in wrapWord), and only the ordinary call-stack-driven step loop keeps
// those in the right order relative to the rest of the composed body.
func compose(name value.Word, words []value.Value) *value.Fun {
	for _, w := range words {
		if _, ok := w.(*value.Fun); !ok {
			panic("preprocess: level 4 compose encountered a non-Fun element after wrapAll")
		}
	}
	body := toBody(words)
	return value.NewPrimFun(string(name), func(s *value.State) error {
		s.SpliceCall(body)
		return nil
	})
}
