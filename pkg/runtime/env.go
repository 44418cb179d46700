package runtime

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Environment is the runtime's port to the outside world. Broadcasts and
// the read builtin go through it, which keeps the primitives themselves
// free of direct I/O and lets tests capture output.
type Environment interface {
	// Emit writes one line of text to the environment's output.
	Emit(text string)

	// Read returns one line of input, without the trailing newline.
	Read() string
}

// StdEnvironment emits to stdout and reads from stdin.
type StdEnvironment struct {
	scanner *bufio.Scanner
}

func NewStdEnvironment() *StdEnvironment {
	return &StdEnvironment{scanner: bufio.NewScanner(os.Stdin)}
}

func (e *StdEnvironment) Emit(text string) {
	os.Stdout.WriteString(text)
	os.Stdout.WriteString("\n")
}

func (e *StdEnvironment) Read() string {
	if e.scanner.Scan() {
		return strings.TrimSpace(e.scanner.Text())
	}
	return ""
}

// WriterEnvironment emits to an arbitrary writer and reads nothing.
// Useful when the caller wants the guest's output redirected.
type WriterEnvironment struct {
	W io.Writer
}

func (e *WriterEnvironment) Emit(text string) {
	io.WriteString(e.W, text)
	io.WriteString(e.W, "\n")
}

func (e *WriterEnvironment) Read() string { return "" }

// RecordingEnvironment collects emitted lines and serves queued input.
// It is the test double used across the runtime's own tests.
type RecordingEnvironment struct {
	Emitted    []string
	InputQueue []string
}

func (e *RecordingEnvironment) Emit(text string) {
	e.Emitted = append(e.Emitted, text)
}

func (e *RecordingEnvironment) Read() string {
	if len(e.InputQueue) == 0 {
		return ""
	}
	s := e.InputQueue[len(e.InputQueue)-1]
	e.InputQueue = e.InputQueue[:len(e.InputQueue)-1]
	return s
}
