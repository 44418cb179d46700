package value

import "testing"

func TestTruthiness(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{I64(0), false},
		{I64(3), true},
		{F64(0), false},
		{F64(0.5), true},
		{Boolean(false), false},
		{Boolean(true), true},
		{Text(""), true},
		{Tuple(), true},
		{Nothing, false},
	}
	for _, c := range cases {
		if got := c.v.IsTruthy(); got != c.want {
			t.Errorf("IsTruthy(%s %s) = %v, want %v", c.v.TypeName(), c.v, got, c.want)
		}
	}
}

func TestAsF64Promotion(t *testing.T) {
	if f, ok := I64(5).AsF64(); !ok || f != 5.0 {
		t.Errorf("I64(5).AsF64() = %v, %v", f, ok)
	}
	if _, ok := Text("5").AsF64(); ok {
		t.Error("Text should not convert to f64")
	}
	if _, ok := Nothing.AsF64(); ok {
		t.Error("Nothing should not convert to f64")
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{I64(-42), "-42"},
		{F64(1.5), "1.5"},
		{Boolean(true), "true"},
		{Text("hi"), "hi"},
		{Tuple(I64(1), Text("a")), "(1, a)"},
		{Nothing, "nothing"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestEqual(t *testing.T) {
	if !I64(10).Equal(I64(10)) {
		t.Error("equal integers reported unequal")
	}
	if I64(10).Equal(F64(10)) {
		t.Error("i64 and f64 must not compare equal across kinds")
	}
	if !Tuple(I64(1), I64(2)).Equal(Tuple(I64(1), I64(2))) {
		t.Error("equal tuples reported unequal")
	}
	if Tuple(I64(1)).Equal(Tuple(I64(1), I64(2))) {
		t.Error("tuples of different length compared equal")
	}
}
