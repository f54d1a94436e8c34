package value

import "testing"

func TestWordEqual(t *testing.T) {
	if !Word("foo").Equal(Word("foo")) {
		t.Fatal("expected equal words to compare equal")
	}
	if Word("foo").Equal(Word("bar")) {
		t.Fatal("expected distinct words to compare unequal")
	}
}

func TestSubStackPushTopPop(t *testing.T) {
	s := NewSubStack()
	s = s.Push(Word("a"))
	s = s.Push(Word("b"))
	if got := s.Top(); !got.Equal(Word("b")) {
		t.Fatalf("top = %v, want b", got)
	}
	s = s.Pop()
	if got := s.Top(); !got.Equal(Word("a")) {
		t.Fatalf("top after pop = %v, want a", got)
	}
	s = s.Pop()
	if got := s.Top(); got != Nil {
		t.Fatalf("top of empty = %v, want Nil", got)
	}
	// popping empty stays empty
	s = s.Pop()
	if !s.Empty() {
		t.Fatal("pop of empty substack should remain empty")
	}
}

func TestSubStackReverseInvolution(t *testing.T) {
	s := NewSubStack(Word("a"), Word("b"), Word("c"))
	if !s.Reverse().Reverse().Equal(s) {
		t.Fatal("reverse(reverse(s)) != s")
	}
}

func TestConcat(t *testing.T) {
	a := NewSubStack(Word("1"), Word("2"))
	b := NewSubStack(Word("3"), Word("4"))
	got := Concat(a, b)
	want := NewSubStack(Word("1"), Word("2"), Word("3"), Word("4"))
	if !got.Equal(want) {
		t.Fatalf("concat = %v, want %v", got, want)
	}
}

func TestMappingUnmapRoundTrip(t *testing.T) {
	s := NewSubStack(Word("v1"), Word("k1"), Word("v2"), Word("k2"))
	m, ok := Mapping(s)
	if !ok {
		t.Fatal("mapping failed on even-length substack")
	}
	back := m.Unmap()
	if !back.Equal(s) {
		t.Fatalf("unmap(mapping(s)) = %v, want %v", back, s)
	}
}

func TestMappingOddLength(t *testing.T) {
	s := NewSubStack(Word("v1"))
	if _, ok := Mapping(s); ok {
		t.Fatal("expected mapping to reject odd-length substack")
	}
}

func TestAssocFirstInsertionWins(t *testing.T) {
	m := NewMap()
	m = m.Assoc(Word("k"), Word("v1"))
	m = m.Assoc(Word("k"), Word("v2"))
	got, ok := m.Get(Word("k"))
	if !ok || !got.Equal(Word("v1")) {
		t.Fatalf("get = %v, %v; want v1, true", got, ok)
	}
}

func TestDissoc(t *testing.T) {
	m := NewMap().Assoc(Word("k"), Word("v"))
	m = m.Dissoc(Word("k"))
	if _, ok := m.Get(Word("k")); ok {
		t.Fatal("expected key removed by dissoc")
	}
}

func TestMerge(t *testing.T) {
	a := NewMap().Assoc(Word("k1"), Word("a1"))
	b := NewMap().Assoc(Word("k1"), Word("b1")).Assoc(Word("k2"), Word("b2"))
	merged := Merge(a, b)
	v1, _ := merged.Get(Word("k1"))
	v2, _ := merged.Get(Word("k2"))
	if !v1.Equal(Word("a1")) {
		t.Fatalf("merge should keep a's value for shared key, got %v", v1)
	}
	if !v2.Equal(Word("b2")) {
		t.Fatalf("merge should add b's unique keys, got %v", v2)
	}
}

func TestKeysInsertionOrder(t *testing.T) {
	m := NewMap().Assoc(Word("k1"), Word("v1")).Assoc(Word("k2"), Word("v2"))
	got := m.Keys()
	want := NewSubStack(Word("k1"), Word("k2"))
	if !got.Equal(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
}

func TestFunEqualityIdentityForPrimitives(t *testing.T) {
	p1 := NewPrimFun("dup", func(s *State) error { return nil })
	p2 := NewPrimFun("dup", func(s *State) error { return nil })
	if p1.Equal(p2) {
		t.Fatal("distinct primitives with the same name must not compare equal")
	}
	if !p1.Equal(p1) {
		t.Fatal("a primitive must be equal to itself")
	}
}

func TestFunEqualityStructuralForSelfDefined(t *testing.T) {
	f1 := NewSelfDefinedFun(NewSubStack(Word("dup"), Word("+")))
	f2 := NewSelfDefinedFun(NewSubStack(Word("dup"), Word("+")))
	if !f1.Equal(f2) {
		t.Fatal("self-defined funs with equal bodies should compare equal")
	}
}

func TestRenderTopReversesOnlyOutermost(t *testing.T) {
	inner := NewSubStack(Word("x"), Word("y"))
	outer := NewSubStack(Word("a"), inner, Word("b"))
	got := RenderTop(outer)
	want := "[ b " + inner.String() + " a ]"
	if got != want {
		t.Fatalf("RenderTop = %q, want %q", got, want)
	}
}
