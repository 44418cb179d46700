package builtins

import (
	"fmt"

	"onu-go/pkg/runtime"
	"onu-go/pkg/textbuf"
	"onu-go/pkg/value"
)

// The string builtins delegate to the runtime primitives so the named
// surface and the linkage surface share one set of semantics: byte
// positions, sentinel 0 out of range, fresh result buffers.

func joinedWith(args []value.Value, _ runtime.Environment) (value.Value, error) {
	v1, v2, err := twoArgs(args, "joined-with")
	if err != nil {
		return value.Nothing, err
	}
	// Any two values join through their textual rendering.
	j := runtime.JoinedWith(textbuf.Of(v1.String()), textbuf.Of(v2.String()))
	return value.Text(j.String()), nil
}

func textLen(args []value.Value, _ runtime.Environment) (value.Value, error) {
	v, err := oneArg(args, "len")
	if err != nil {
		return value.Nothing, err
	}
	s, ok := v.AsText()
	if !ok {
		return value.Nothing, fmt.Errorf("'len' requires a text argument")
	}
	return value.I64(runtime.Len(textbuf.Of(s))), nil
}

func charAt(args []value.Value, _ runtime.Environment) (value.Value, error) {
	s, idx, err := textAndIndex(args, "char-at")
	if err != nil {
		return value.Nothing, err
	}
	return value.I64(runtime.CharAt(textbuf.Of(s), idx)), nil
}

func asText(args []value.Value, _ runtime.Environment) (value.Value, error) {
	v, err := oneArg(args, "as-text")
	if err != nil {
		return value.Nothing, err
	}
	return value.Text(v.String()), nil
}

// setChar returns a copy of the text with the byte at idx replaced by
// code truncated to 8 bits. An out-of-range index returns the input
// unchanged, matching the sentinel policy of char-at.
func setChar(args []value.Value, _ runtime.Environment) (value.Value, error) {
	if len(args) < 3 {
		return value.Nothing, fmt.Errorf("'set-char' requires text, index, and value")
	}
	s, idx, err := textAndIndex(args[:2], "set-char")
	if err != nil {
		return value.Nothing, err
	}
	code, ok := args[2].AsF64()
	if !ok {
		return value.Nothing, fmt.Errorf("'set-char' value must be numeric")
	}
	if idx < 0 || idx >= int64(len(s)) {
		return value.Text(s), nil
	}
	b := []byte(s)
	b[idx] = byte(int64(code))
	return value.Text(string(b)), nil
}
