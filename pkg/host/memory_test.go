package host

import (
	"bytes"
	"testing"
)

// fakeMemory is a flat byte array standing in for guest linear memory.
type fakeMemory struct {
	data []byte
}

func (m *fakeMemory) Size() uint32 { return uint32(len(m.data)) }

func (m *fakeMemory) Read(offset, byteCount uint32) ([]byte, bool) {
	if uint64(offset)+uint64(byteCount) > uint64(len(m.data)) {
		return nil, false
	}
	return m.data[offset : offset+byteCount], true
}

func (m *fakeMemory) Write(offset uint32, v []byte) bool {
	if uint64(offset)+uint64(len(v)) > uint64(len(m.data)) {
		return false
	}
	copy(m.data[offset:], v)
	return true
}

func TestReadCString(t *testing.T) {
	mem := &fakeMemory{data: make([]byte, 1024)}
	copy(mem.data[10:], "hello\x00")

	got, err := readCString(mem, 10)
	if err != nil {
		t.Fatalf("readCString failed: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("readCString = %q, want %q", got, "hello")
	}
}

func TestReadCStringEmpty(t *testing.T) {
	mem := &fakeMemory{data: make([]byte, 16)}
	got, err := readCString(mem, 3)
	if err != nil {
		t.Fatalf("readCString failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("readCString = %q, want empty", got)
	}
}

func TestReadCStringSpansChunks(t *testing.T) {
	mem := &fakeMemory{data: make([]byte, 4096)}
	long := bytes.Repeat([]byte("ab"), 400) // longer than one read chunk
	copy(mem.data[5:], append(long, 0))

	got, err := readCString(mem, 5)
	if err != nil {
		t.Fatalf("readCString failed: %v", err)
	}
	if !bytes.Equal(got, long) {
		t.Errorf("readCString returned %d bytes, want %d", len(got), len(long))
	}
}

func TestReadCStringUnterminated(t *testing.T) {
	mem := &fakeMemory{data: bytes.Repeat([]byte("x"), 64)}
	if _, err := readCString(mem, 0); err == nil {
		t.Error("Expected error for unterminated string")
	}
}

func TestReadCStringOutsideMemory(t *testing.T) {
	mem := &fakeMemory{data: make([]byte, 8)}
	if _, err := readCString(mem, 100); err == nil {
		t.Error("Expected error for pointer outside memory")
	}
}

func TestWriteCString(t *testing.T) {
	mem := &fakeMemory{data: make([]byte, 64)}
	if err := writeCString(mem, 4, []byte("abc")); err != nil {
		t.Fatalf("writeCString failed: %v", err)
	}
	if !bytes.Equal(mem.data[4:8], []byte("abc\x00")) {
		t.Errorf("memory after write = %q", mem.data[4:8])
	}

	back, err := readCString(mem, 4)
	if err != nil {
		t.Fatalf("readCString failed: %v", err)
	}
	if string(back) != "abc" {
		t.Errorf("round trip = %q", back)
	}
}

func TestWriteCStringOutOfBounds(t *testing.T) {
	mem := &fakeMemory{data: make([]byte, 4)}
	if err := writeCString(mem, 2, []byte("toolong")); err == nil {
		t.Error("Expected error for write past end of memory")
	}
}
