package value

import "strings"

// String renders s nested inside a larger structure: elements in their
// stored (textual) order, space-separated, bracketed.
func (s *SubStack) String() string {
	return "[ " + joinValues(s.Items) + " ]"
}

// RenderTop renders v as it should appear when printed directly from the
// data stack (§4.A). A top-level SubStack is emitted with its elements in
// reverse of their stored order, so that tokenizing the printed text (which
// itself reverses on push) reconstructs the original stack. Values nested
// inside it render normally via String.
func RenderTop(v Value) string {
	s, ok := v.(*SubStack)
	if !ok {
		return v.String()
	}
	reversed := make([]string, len(s.Items))
	for i, item := range s.Items {
		reversed[len(reversed)-1-i] = item.String()
	}
	return "[ " + strings.Join(reversed, " ") + " ]"
}

func joinValues(items []Value) string {
	parts := make([]string, len(items))
	for i, v := range items {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

// String renders m as `{ k1, v1 k2, v2 … }` in insertion order.
func (m *Map) String() string {
	parts := make([]string, len(m.Pairs))
	for i, p := range m.Pairs {
		parts[i] = p.Key.String() + ", " + p.Value.String()
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

// String renders f as an opaque tag; its identity is not required to
// round-trip through the reader.
func (f *Fun) String() string {
	if f.Name != "" {
		return "#<fun:" + f.Name + ">"
	}
	if f.IsPrimitive() {
		return "#<fun:anonymous>"
	}
	return "#<fun:" + f.Body.String() + ">"
}
