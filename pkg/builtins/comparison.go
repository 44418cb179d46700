package builtins

import (
	"onu-go/pkg/runtime"
	"onu-go/pkg/value"
)

func isEqualTo(args []value.Value, _ runtime.Environment) (value.Value, error) {
	v1, v2, err := twoArgs(args, "is-equal-to")
	if err != nil {
		return value.Nothing, err
	}
	return value.Boolean(v1.Equal(v2)), nil
}

func isGreaterThan(args []value.Value, _ runtime.Environment) (value.Value, error) {
	f1, f2, err := twoF64(args, "is-greater-than")
	if err != nil {
		return value.Nothing, err
	}
	return value.Boolean(f1 > f2), nil
}

func isLessThan(args []value.Value, _ runtime.Environment) (value.Value, error) {
	f1, f2, err := twoF64(args, "is-less-than")
	if err != nil {
		return value.Nothing, err
	}
	return value.Boolean(f1 < f2), nil
}
