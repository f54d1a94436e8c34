package value

import "io"

// State holds the two stacks and the dictionary stepcc reduces over. It
// lives in this package (rather than alongside the step relation) so that a
// Fun's primitive body can close over *State without an import cycle between
// the value model and the interpreter that drives it.
type State struct {
	Data []Value
	Call []Value
	Dict *Map

	// Stdout and Stdin back the I/O primitives (print, flush, read-line);
	// tests substitute buffers here the same way the interpreter's own
	// Output field is swapped in the teacher's test helpers.
	Stdout io.Writer
	Stdin  io.Reader

	// Clock and OS back current-time-millis/operating-system so tests can
	// pin them; nil means "use the real host clock/OS name".
	Clock func() int64
	OS    string
}

// NewState builds an empty state with no dictionary; callers typically
// install a dictionary immediately after (see interp.New).
func NewState() *State {
	return &State{}
}

// PushData pushes v onto the top of the data stack.
func (s *State) PushData(v Value) { s.Data = append(s.Data, v) }

// PopData removes and returns the top of the data stack.
func (s *State) PopData() (Value, bool) {
	if len(s.Data) == 0 {
		return nil, false
	}
	v := s.Data[len(s.Data)-1]
	s.Data = s.Data[:len(s.Data)-1]
	return v, true
}

// PeekData returns the top of the data stack without removing it.
func (s *State) PeekData() (Value, bool) {
	if len(s.Data) == 0 {
		return nil, false
	}
	return s.Data[len(s.Data)-1], true
}

// PushCall pushes v onto the top of the call stack.
func (s *State) PushCall(v Value) { s.Call = append(s.Call, v) }

// PopCall removes and returns the top of the call stack.
func (s *State) PopCall() (Value, bool) {
	if len(s.Call) == 0 {
		return nil, false
	}
	v := s.Call[len(s.Call)-1]
	s.Call = s.Call[:len(s.Call)-1]
	return v, true
}

// SpliceCall appends a self-defined body onto the call stack so that the
// body's top item becomes the next instruction executed.
func (s *State) SpliceCall(body *SubStack) {
	s.Call = append(s.Call, body.Items...)
}

// SnapshotData returns an independent copy of the data stack, safe to store
// in a captured continuation.
func (s *State) SnapshotData() []Value {
	out := make([]Value, len(s.Data))
	copy(out, s.Data)
	return out
}

// SnapshotCall returns an independent copy of the call stack.
func (s *State) SnapshotCall() []Value {
	out := make([]Value, len(s.Call))
	copy(out, s.Call)
	return out
}
