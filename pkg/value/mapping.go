package value

// Pair is one (key, value) entry of a Map.
type Pair struct {
	Key   Value
	Value Value
}

// Map is an ordered sequence of (key, value) pairs with first-insertion-wins
// semantics: Assoc and Merge never overwrite an existing key. Keys may be of
// any value kind and are compared structurally.
type Map struct {
	Pairs []Pair
}

// NewMap builds an empty Map.
func NewMap() *Map { return &Map{} }

func (m *Map) Kind() Kind { return KindMap }

func (m *Map) Equal(other Value) bool {
	o, ok := other.(*Map)
	if !ok || len(m.Pairs) != len(o.Pairs) {
		return false
	}
	for i, p := range m.Pairs {
		if !p.Key.Equal(o.Pairs[i].Key) || !p.Value.Equal(o.Pairs[i].Value) {
			return false
		}
	}
	return true
}

// indexOf returns the index of the pair keyed by k, or -1.
func (m *Map) indexOf(k Value) int {
	for i, p := range m.Pairs {
		if p.Key.Equal(k) {
			return i
		}
	}
	return -1
}

// Get returns the value for k and true, or (nil, false) if k is absent.
func (m *Map) Get(k Value) (Value, bool) {
	if i := m.indexOf(k); i >= 0 {
		return m.Pairs[i].Value, true
	}
	return nil, false
}

// Assoc returns a Map with (k, v) inserted, unless k is already present, in
// which case the existing entry is kept unchanged (first-insertion-wins).
func (m *Map) Assoc(k, v Value) *Map {
	if m.indexOf(k) >= 0 {
		return m.Clone()
	}
	pairs := make([]Pair, len(m.Pairs), len(m.Pairs)+1)
	copy(pairs, m.Pairs)
	pairs = append(pairs, Pair{Key: k, Value: v})
	return &Map{Pairs: pairs}
}

// Dissoc returns a Map with any pair keyed by k removed.
func (m *Map) Dissoc(k Value) *Map {
	i := m.indexOf(k)
	if i < 0 {
		return m.Clone()
	}
	pairs := make([]Pair, 0, len(m.Pairs)-1)
	pairs = append(pairs, m.Pairs[:i]...)
	pairs = append(pairs, m.Pairs[i+1:]...)
	return &Map{Pairs: pairs}
}

// Merge returns a map holding all pairs of a, then all pairs of b whose keys
// are not already present in a.
func Merge(a, b *Map) *Map {
	out := a.Clone()
	for _, p := range b.Pairs {
		out = out.Assoc(p.Key, p.Value)
	}
	return out
}

// Keys returns a SubStack of keys in insertion order.
func (m *Map) Keys() *SubStack {
	items := make([]Value, len(m.Pairs))
	for i, p := range m.Pairs {
		items[i] = p.Key
	}
	return &SubStack{Items: items}
}

// Unmap returns a SubStack holding, for each pair in insertion order, the
// value then the key — the inverse of Mapping.
func (m *Map) Unmap() *SubStack {
	items := make([]Value, 0, len(m.Pairs)*2)
	for _, p := range m.Pairs {
		items = append(items, p.Value, p.Key)
	}
	return &SubStack{Items: items}
}

// Mapping builds a Map from a SubStack of even length laid out bottom-to-top
// as v1 k1 v2 k2 ...; pairs are inserted in that bottom-to-top order.
func Mapping(s *SubStack) (*Map, bool) {
	if len(s.Items)%2 != 0 {
		return nil, false
	}
	m := NewMap()
	for i := 0; i+1 < len(s.Items); i += 2 {
		v := s.Items[i]
		k := s.Items[i+1]
		m = m.Assoc(k, v)
	}
	return m, true
}

// Clone returns a shallow copy of m.
func (m *Map) Clone() *Map {
	pairs := make([]Pair, len(m.Pairs))
	copy(pairs, m.Pairs)
	return &Map{Pairs: pairs}
}
