package value

// SubStack is an ordered, finite sequence of values, used as both list and
// quotation. Items[len(Items)-1] is the top: `push` appends there, `top`
// reads from there, and splicing a self-defined body onto the call stack
// means the body's top element is the next instruction executed.
type SubStack struct {
	Items []Value
}

// NewSubStack builds a SubStack from items given bottom-to-top.
func NewSubStack(items ...Value) *SubStack {
	return &SubStack{Items: items}
}

func (s *SubStack) Kind() Kind { return KindSubStack }

func (s *SubStack) Equal(other Value) bool {
	o, ok := other.(*SubStack)
	if !ok || len(s.Items) != len(o.Items) {
		return false
	}
	for i, v := range s.Items {
		if !v.Equal(o.Items[i]) {
			return false
		}
	}
	return true
}

// Empty reports whether the sub-stack holds no items.
func (s *SubStack) Empty() bool { return len(s.Items) == 0 }

// Push returns a new SubStack with x appended at the top.
func (s *SubStack) Push(x Value) *SubStack {
	items := make([]Value, len(s.Items)+1)
	copy(items, s.Items)
	items[len(items)-1] = x
	return &SubStack{Items: items}
}

// Top returns the top element, or Nil if s is empty.
func (s *SubStack) Top() Value {
	if s.Empty() {
		return Nil
	}
	return s.Items[len(s.Items)-1]
}

// Pop returns s without its top element; popping an empty SubStack yields
// an empty SubStack.
func (s *SubStack) Pop() *SubStack {
	if s.Empty() {
		return s
	}
	items := make([]Value, len(s.Items)-1)
	copy(items, s.Items[:len(s.Items)-1])
	return &SubStack{Items: items}
}

// Concat places b's items after a's in textual (bottom-to-top) order.
func Concat(a, b *SubStack) *SubStack {
	items := make([]Value, 0, len(a.Items)+len(b.Items))
	items = append(items, a.Items...)
	items = append(items, b.Items...)
	return &SubStack{Items: items}
}

// Reverse returns a SubStack with items in reverse order.
func (s *SubStack) Reverse() *SubStack {
	items := make([]Value, len(s.Items))
	for i, v := range s.Items {
		items[len(items)-1-i] = v
	}
	return &SubStack{Items: items}
}

// Clone returns a shallow copy; items themselves are immutable or
// copy-on-write so a shallow copy is sufficient for continuation safety.
func (s *SubStack) Clone() *SubStack {
	items := make([]Value, len(s.Items))
	copy(items, s.Items)
	return &SubStack{Items: items}
}
