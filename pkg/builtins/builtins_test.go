package builtins

import (
	"math"
	"testing"

	"onu-go/pkg/runtime"
	"onu-go/pkg/value"
)

func call(t *testing.T, name string, args ...value.Value) value.Value {
	t.Helper()
	env := &runtime.RecordingEnvironment{}
	v, err := Default().Call(name, args, env)
	if err != nil {
		t.Fatalf("%s failed: %v", name, err)
	}
	return v
}

func mustFail(t *testing.T, name string, args ...value.Value) {
	t.Helper()
	env := &runtime.RecordingEnvironment{}
	if _, err := Default().Call(name, args, env); err == nil {
		t.Errorf("%s should have failed on %v", name, args)
	}
}

func TestUnknownBuiltin(t *testing.T) {
	mustFail(t, "no-such-op", value.I64(1))
}

func TestArithmetic(t *testing.T) {
	if v := call(t, "added-to", value.I64(10), value.I64(20)); !v.Equal(value.I64(30)) {
		t.Errorf("added-to = %s", v)
	}
	if v := call(t, "added-to", value.F64(10.5), value.F64(20.0)); !v.Equal(value.F64(30.5)) {
		t.Errorf("added-to floats = %s", v)
	}
	if v := call(t, "decreased-by", value.I64(10), value.I64(3)); !v.Equal(value.I64(7)) {
		t.Errorf("decreased-by = %s", v)
	}
	if v := call(t, "subtracted-from", value.I64(3), value.I64(10)); !v.Equal(value.I64(7)) {
		t.Errorf("subtracted-from = %s", v)
	}
	if v := call(t, "multiplied-by", value.I64(6), value.I64(7)); !v.Equal(value.I64(42)) {
		t.Errorf("multiplied-by = %s", v)
	}
	if v := call(t, "divided-by", value.I64(10), value.I64(3)); !v.Equal(value.I64(3)) {
		t.Errorf("integer divided-by = %s", v)
	}
}

func TestArithmeticTypeMismatch(t *testing.T) {
	mustFail(t, "added-to", value.I64(1), value.F64(2))
	mustFail(t, "added-to", value.Text("1"), value.I64(2))
	mustFail(t, "multiplied-by", value.I64(2))
}

func TestDivisionByZero(t *testing.T) {
	mustFail(t, "divided-by", value.I64(1), value.I64(0))
	mustFail(t, "divided-by", value.F64(1), value.F64(0))
}

func TestLogic(t *testing.T) {
	if v := call(t, "is-zero", value.I64(0)); !v.Equal(value.Boolean(true)) {
		t.Errorf("is-zero(0) = %s", v)
	}
	if v := call(t, "is-zero", value.I64(10)); !v.Equal(value.Boolean(false)) {
		t.Errorf("is-zero(10) = %s", v)
	}
	if v := call(t, "is-less", value.I64(1), value.F64(2)); !v.Equal(value.Boolean(true)) {
		t.Errorf("is-less should promote across numeric kinds: %s", v)
	}
	if v := call(t, "both-true", value.I64(1), value.Boolean(true)); !v.Equal(value.Boolean(true)) {
		t.Errorf("both-true = %s", v)
	}
	if v := call(t, "either-true", value.I64(0), value.Boolean(false)); !v.Equal(value.Boolean(false)) {
		t.Errorf("either-true = %s", v)
	}
	if v := call(t, "not-true", value.I64(0)); !v.Equal(value.Boolean(true)) {
		t.Errorf("not-true = %s", v)
	}
}

func TestComparison(t *testing.T) {
	if v := call(t, "is-equal-to", value.I64(10), value.I64(10)); !v.Equal(value.Boolean(true)) {
		t.Errorf("is-equal-to = %s", v)
	}
	if v := call(t, "is-equal-to", value.I64(10), value.I64(20)); !v.Equal(value.Boolean(false)) {
		t.Errorf("is-equal-to = %s", v)
	}
	if v := call(t, "is-greater-than", value.F64(2.5), value.I64(2)); !v.Equal(value.Boolean(true)) {
		t.Errorf("is-greater-than = %s", v)
	}
	if v := call(t, "is-less-than", value.I64(5), value.I64(2)); !v.Equal(value.Boolean(false)) {
		t.Errorf("is-less-than = %s", v)
	}
	mustFail(t, "is-greater-than", value.Text("a"), value.I64(1))
}

func TestStrings(t *testing.T) {
	if v := call(t, "joined-with", value.Text("hello "), value.Text("world")); !v.Equal(value.Text("hello world")) {
		t.Errorf("joined-with = %s", v)
	}
	// Non-text operands join through their rendering.
	if v := call(t, "joined-with", value.Text("n="), value.I64(5)); !v.Equal(value.Text("n=5")) {
		t.Errorf("joined-with mixed = %s", v)
	}
	if v := call(t, "len", value.Text("abc")); !v.Equal(value.I64(3)) {
		t.Errorf("len = %s", v)
	}
	mustFail(t, "len", value.I64(3))
	if v := call(t, "char-at", value.Text("abc"), value.I64(1)); !v.Equal(value.I64('b')) {
		t.Errorf("char-at = %s", v)
	}
	if v := call(t, "char-at", value.Text("abc"), value.I64(5)); !v.Equal(value.I64(0)) {
		t.Errorf("char-at out of range = %s, want sentinel 0", v)
	}
	if v := call(t, "as-text", value.I64(-42)); !v.Equal(value.Text("-42")) {
		t.Errorf("as-text = %s", v)
	}
}

func TestSetChar(t *testing.T) {
	if v := call(t, "set-char", value.Text("abc"), value.I64(1), value.I64('X')); !v.Equal(value.Text("aXc")) {
		t.Errorf("set-char = %s", v)
	}
	// Out-of-range index returns the input unchanged.
	if v := call(t, "set-char", value.Text("abc"), value.I64(9), value.I64('X')); !v.Equal(value.Text("abc")) {
		t.Errorf("set-char out of range = %s", v)
	}
	mustFail(t, "set-char", value.Text("abc"), value.I64(1))
}

func TestAdvancedMath(t *testing.T) {
	approx := func(name string, got value.Value, want float64) {
		f, ok := got.AsF64()
		if !ok || math.Abs(f-want) > 1e-9 {
			t.Errorf("%s = %s, want %g", name, got, want)
		}
	}
	approx("sine", call(t, "sine", value.F64(0)), 0)
	approx("sine", call(t, "sine", value.F64(math.Pi/2)), 1)
	approx("cosine", call(t, "cosine", value.F64(0)), 1)
	approx("square-root", call(t, "square-root", value.I64(16)), 4)
	approx("raised-to", call(t, "raised-to", value.F64(2), value.F64(3)), 8)
	approx("natural-log", call(t, "natural-log", value.F64(math.E)), 1)
	approx("exponent", call(t, "exponent", value.F64(0)), 1)
	mustFail(t, "sine", value.Text("x"))
}

func TestDotProduct(t *testing.T) {
	v1 := value.Tuple(value.F64(1), value.F64(2))
	v2 := value.Tuple(value.F64(3), value.F64(4))
	if v := call(t, "dot-product", v1, v2); !v.Equal(value.F64(11)) {
		t.Errorf("dot-product = %s", v)
	}
	mustFail(t, "dot-product", v1, value.Tuple(value.F64(1)))
	mustFail(t, "dot-product", value.I64(1), v2)
}

func TestCrossProduct(t *testing.T) {
	v1 := value.Tuple(value.F64(1), value.F64(0), value.F64(0))
	v2 := value.Tuple(value.F64(0), value.F64(1), value.F64(0))
	want := value.Tuple(value.F64(0), value.F64(0), value.F64(1))
	if v := call(t, "cross-product", v1, v2); !v.Equal(want) {
		t.Errorf("cross-product = %s, want %s", v, want)
	}
	mustFail(t, "cross-product", v1, value.Tuple(value.F64(1), value.F64(2)))
}
