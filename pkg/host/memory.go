package host

import (
	"bytes"
	"fmt"
)

// guestMemory is the slice of api.Memory the string plumbing needs.
// Narrowing the dependency keeps the helpers testable without a live
// wazero instance.
type guestMemory interface {
	Read(offset, byteCount uint32) ([]byte, bool)
	Write(offset uint32, v []byte) bool
	Size() uint32
}

// readChunk bounds how much memory is scanned per step while looking for
// the terminator.
const readChunk = 256

// readCString copies the NUL-terminated byte sequence starting at off out
// of guest memory, excluding the terminator. A pointer outside memory or
// a string running past the end of memory without a terminator is an
// error.
func readCString(mem guestMemory, off uint32) ([]byte, error) {
	var out []byte
	pos := off
	for {
		if pos >= mem.Size() {
			return nil, fmt.Errorf("unterminated string at offset %d (memory size %d)", off, mem.Size())
		}
		n := uint32(readChunk)
		if rem := mem.Size() - pos; rem < n {
			n = rem
		}
		chunk, ok := mem.Read(pos, n)
		if !ok {
			return nil, fmt.Errorf("string pointer %d outside guest memory", off)
		}
		if i := bytes.IndexByte(chunk, 0); i >= 0 {
			return append(out, chunk[:i]...), nil
		}
		out = append(out, chunk...)
		pos += n
	}
}

// writeCString writes b plus a NUL terminator at off.
func writeCString(mem guestMemory, off uint32, b []byte) error {
	if !mem.Write(off, append(b, 0)) {
		return fmt.Errorf("cannot write %d bytes at guest offset %d", len(b)+1, off)
	}
	return nil
}
