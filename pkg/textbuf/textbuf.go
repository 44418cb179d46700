// Package textbuf provides the owned text buffer type used by the Ọ̀nụ
// runtime primitives. A Buf is an immutable view over a private byte
// sequence: construction copies the source and accessors copy out, so a
// buffer handed to a caller never aliases the bytes it was built from.
package textbuf

// Buf holds an immutable sequence of bytes representing text. The bytes
// are not required to be valid UTF-8. The zero value is the empty buffer.
type Buf struct {
	b []byte
}

// Of returns a buffer holding the bytes of s.
func Of(s string) Buf {
	return Buf{b: []byte(s)}
}

// FromBytes returns a buffer holding a copy of b. The caller keeps
// ownership of the input slice; later mutation of it does not affect
// the returned buffer.
func FromBytes(b []byte) Buf {
	c := make([]byte, len(b))
	copy(c, b)
	return Buf{b: c}
}

// Len returns the number of bytes in the buffer.
func (v Buf) Len() int {
	return len(v.b)
}

// At returns the byte value at the 0-based index i, or 0 when i is
// outside [0, Len). The out-of-range result is a defined sentinel,
// not an error.
func (v Buf) At(i int64) byte {
	if i < 0 || i >= int64(len(v.b)) {
		return 0
	}
	return v.b[i]
}

// Bytes returns a copy of the buffer's bytes.
func (v Buf) Bytes() []byte {
	c := make([]byte, len(v.b))
	copy(c, v.b)
	return c
}

// String returns the buffer's bytes as a string.
func (v Buf) String() string {
	return string(v.b)
}
