// Package value defines the tagged runtime value passed to named
// builtins. A Value is one of: 64-bit integer, 64-bit float, boolean,
// text, tuple, or nothing.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind int

const (
	KindNothing Kind = iota
	KindI64
	KindF64
	KindBoolean
	KindText
	KindTuple
)

// Value is an immutable tagged union. Construct via the I64/F64/Boolean/
// Text/Tuple helpers; the zero value is Nothing.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
	t    []Value
}

var Nothing = Value{}

func I64(n int64) Value    { return Value{kind: KindI64, i: n} }
func F64(f float64) Value  { return Value{kind: KindF64, f: f} }
func Boolean(b bool) Value { return Value{kind: KindBoolean, b: b} }
func Text(s string) Value  { return Value{kind: KindText, s: s} }

func Tuple(vs ...Value) Value {
	c := make([]Value, len(vs))
	copy(c, vs)
	return Value{kind: KindTuple, t: c}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsInteger() bool { return v.kind == KindI64 }
func (v Value) IsFloat() bool   { return v.kind == KindF64 }

// AsI64 returns the value as a signed integer. Floats are not converted.
func (v Value) AsI64() (int64, bool) {
	if v.kind == KindI64 {
		return v.i, true
	}
	return 0, false
}

// AsF64 returns the numeric value widened to float64. Integers promote;
// everything non-numeric reports false.
func (v Value) AsF64() (float64, bool) {
	switch v.kind {
	case KindI64:
		return float64(v.i), true
	case KindF64:
		return v.f, true
	}
	return 0, false
}

// AsText returns the text payload.
func (v Value) AsText() (string, bool) {
	if v.kind == KindText {
		return v.s, true
	}
	return "", false
}

// AsTuple returns the tuple elements.
func (v Value) AsTuple() ([]Value, bool) {
	if v.kind == KindTuple {
		return v.t, true
	}
	return nil, false
}

// IsTruthy follows the original evaluation rules: false booleans, zero
// numbers and Nothing are falsy; text and tuples are always truthy.
func (v Value) IsTruthy() bool {
	switch v.kind {
	case KindBoolean:
		return v.b
	case KindI64:
		return v.i != 0
	case KindF64:
		return v.f != 0
	case KindNothing:
		return false
	}
	return true
}

func (v Value) TypeName() string {
	switch v.kind {
	case KindI64:
		return "i64"
	case KindF64:
		return "f64"
	case KindBoolean:
		return "boolean"
	case KindText:
		return "strings"
	case KindTuple:
		return "tuple"
	}
	return "nothing"
}

// Equal compares kind and payload. Tuples compare element-wise.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindI64:
		return v.i == o.i
	case KindF64:
		return v.f == o.f
	case KindBoolean:
		return v.b == o.b
	case KindText:
		return v.s == o.s
	case KindTuple:
		if len(v.t) != len(o.t) {
			return false
		}
		for i := range v.t {
			if !v.t[i].Equal(o.t[i]) {
				return false
			}
		}
		return true
	}
	return true
}

// String renders the value the way the original Display impl does:
// numbers and text bare, tuples parenthesized and comma-separated.
func (v Value) String() string {
	switch v.kind {
	case KindI64:
		return strconv.FormatInt(v.i, 10)
	case KindF64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindText:
		return v.s
	case KindTuple:
		parts := make([]string, len(v.t))
		for i, e := range v.t {
			parts[i] = e.String()
		}
		return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
	}
	return "nothing"
}
