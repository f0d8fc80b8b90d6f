package rips

// view is the common core of every packet view pair: a non-owning
// window onto the caller's buffer plus the protocol's minimum header
// length. The buffer is never copied; the view must not outlive it.
type view struct {
	data   []byte
	minLen int
}

// newView validates the length invariant that every field accessor
// relies on. what names the protocol for the error message.
func newView(b []byte, minLen int, what string) (view, error) {
	if len(b) < minLen {
		return view{}, tooShortf("%s packet too short: %d bytes, need %d", what, len(b), minLen)
	}
	return view{data: b, minLen: minLen}, nil
}

// Data returns the slice backing this view, header and payload both.
func (v view) Data() []byte {
	return v.data
}

// Len returns the number of bytes in the backing slice.
func (v view) Len() int {
	return len(v.data)
}

// Header returns the fixed-layout header portion of the backing slice:
// everything up to the protocol's minimum header length.
func (v view) Header() []byte {
	return v.data[:v.minLen]
}

// Payload returns everything after the header. The payload may be
// empty; it is opaque to this package.
func (v view) Payload() []byte {
	return v.data[v.minLen:]
}
