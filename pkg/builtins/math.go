package builtins

import (
	"fmt"

	"onu-go/pkg/runtime"
	"onu-go/pkg/value"
)

// binOp dispatches an arithmetic builtin over consistent numeric kinds:
// two integers compute in int64, two floats in float64, and mixing the
// categories is a type error rather than a silent promotion.
func binOp(args []value.Value, name string, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) (value.Value, error) {
	v1, v2, err := twoArgs(args, name)
	if err != nil {
		return value.Nothing, err
	}
	switch {
	case v1.IsInteger() && v2.IsInteger():
		n1, _ := v1.AsI64()
		n2, _ := v2.AsI64()
		return value.I64(intOp(n1, n2)), nil
	case v1.IsFloat() && v2.IsFloat():
		f1, _ := v1.AsF64()
		f2, _ := v2.AsF64()
		return value.F64(floatOp(f1, f2)), nil
	default:
		return value.Nothing, fmt.Errorf("Type Mismatch: '%s' requires consistent numeric types (found %s and %s)",
			name, v1.TypeName(), v2.TypeName())
	}
}

func addedTo(args []value.Value, _ runtime.Environment) (value.Value, error) {
	return binOp(args, "added-to", func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b })
}

func decreasedBy(args []value.Value, _ runtime.Environment) (value.Value, error) {
	return binOp(args, "decreased-by", func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
}

// subtractedFrom reverses the operands: "3 subtracted-from 10" is 7.
func subtractedFrom(args []value.Value, _ runtime.Environment) (value.Value, error) {
	return binOp(args, "subtracted-from", func(a, b int64) int64 { return b - a }, func(a, b float64) float64 { return b - a })
}

func multipliedBy(args []value.Value, _ runtime.Environment) (value.Value, error) {
	return binOp(args, "multiplied-by", func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
}

func dividedBy(args []value.Value, _ runtime.Environment) (value.Value, error) {
	v1, v2, err := twoArgs(args, "divided-by")
	if err != nil {
		return value.Nothing, err
	}
	switch {
	case v1.IsInteger() && v2.IsInteger():
		n1, _ := v1.AsI64()
		n2, _ := v2.AsI64()
		if n2 == 0 {
			return value.Nothing, fmt.Errorf("Division by zero")
		}
		return value.I64(n1 / n2), nil
	case v1.IsFloat() && v2.IsFloat():
		f1, _ := v1.AsF64()
		f2, _ := v2.AsF64()
		if f2 == 0 {
			return value.Nothing, fmt.Errorf("Division by zero")
		}
		return value.F64(f1 / f2), nil
	default:
		return value.Nothing, fmt.Errorf("'divided-by' requires consistent numeric arguments")
	}
}
