// Package runtime implements the Ọ̀nụ runtime support primitives: the
// string and output operations that compiled or interpreted Ọ̀nụ code
// links against. Every operation borrows its inputs and returns a freshly
// owned buffer; nothing here mutates an argument or keeps state between
// calls, so the package is safe for concurrent use as-is.
package runtime

import (
	"strconv"

	"onu-go/pkg/textbuf"
)

// AsText renders a signed 64-bit integer in decimal: no leading zeros,
// a leading minus for negatives, "0" for zero.
func AsText(n int64) textbuf.Buf {
	return textbuf.Of(strconv.FormatInt(n, 10))
}

// JoinedWith returns a new buffer holding the bytes of a followed by the
// bytes of b. Neither input is modified.
func JoinedWith(a, b textbuf.Buf) textbuf.Buf {
	joined := make([]byte, 0, a.Len()+b.Len())
	joined = append(joined, a.Bytes()...)
	joined = append(joined, b.Bytes()...)
	return textbuf.FromBytes(joined)
}

// Len returns the byte length of s. Bytes, not codepoints.
func Len(s textbuf.Buf) int64 {
	return int64(s.Len())
}

// CharAt returns the byte value at the 0-based index idx, or 0 when idx
// falls outside [0, Len(s)). The 0 is a sentinel, not an error.
func CharAt(s textbuf.Buf, idx int64) int64 {
	return int64(s.At(idx))
}

// InitOf returns all bytes of s except the last. A buffer of length 0 or
// 1 yields the empty buffer.
func InitOf(s textbuf.Buf) textbuf.Buf {
	if s.Len() <= 1 {
		return textbuf.Buf{}
	}
	b := s.Bytes()
	return textbuf.FromBytes(b[:len(b)-1])
}

// CharFromCode returns a one-byte buffer holding code truncated to 8 bits.
func CharFromCode(code int64) textbuf.Buf {
	return textbuf.FromBytes([]byte{byte(code)})
}

// Broadcasts writes s followed by a newline to the environment's output.
func Broadcasts(env Environment, s textbuf.Buf) {
	env.Emit(s.String())
}
