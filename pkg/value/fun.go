package value

// PrimFn is the body of a host primitive: a total function from state to
// state, or a typed error via the caller's error type.
type PrimFn func(s *State) error

// Fun is a callable value: either a host primitive (Prim non-nil) or a
// self-defined body carrying a SubStack of tokens to be spliced onto the
// call stack when invoked (Body non-nil). Exactly one of the two is set.
type Fun struct {
	Name string
	Prim PrimFn
	Body *SubStack
}

// NewPrimFun wraps a host primitive as a Fun value.
func NewPrimFun(name string, fn PrimFn) *Fun {
	return &Fun{Name: name, Prim: fn}
}

// NewSelfDefinedFun wraps a SubStack body as a self-defined Fun value.
func NewSelfDefinedFun(body *SubStack) *Fun {
	return &Fun{Body: body}
}

func (f *Fun) Kind() Kind { return KindFun }

// IsPrimitive reports whether f wraps a host primitive rather than a body.
func (f *Fun) IsPrimitive() bool { return f.Prim != nil }

// Equal compares two Funs by identity when either side is a primitive (the
// same primitive is always the same *Fun, since the dictionary never
// reallocates a primitive entry), and structurally on Body otherwise.
func (f *Fun) Equal(other Value) bool {
	o, ok := other.(*Fun)
	if !ok {
		return false
	}
	if f.IsPrimitive() || o.IsPrimitive() {
		return f == o
	}
	if f.Body == nil || o.Body == nil {
		return f == o
	}
	return f.Body.Equal(o.Body)
}
