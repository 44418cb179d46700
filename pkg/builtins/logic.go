package builtins

import (
	"onu-go/pkg/runtime"
	"onu-go/pkg/value"
)

func isZero(args []value.Value, _ runtime.Environment) (value.Value, error) {
	v, err := oneArg(args, "is-zero")
	if err != nil {
		return value.Nothing, err
	}
	return value.Boolean(!v.IsTruthy()), nil
}

func isLess(args []value.Value, _ runtime.Environment) (value.Value, error) {
	f1, f2, err := twoF64(args, "is-less")
	if err != nil {
		return value.Nothing, err
	}
	return value.Boolean(f1 < f2), nil
}

func isEqual(args []value.Value, _ runtime.Environment) (value.Value, error) {
	v1, v2, err := twoArgs(args, "is-equal")
	if err != nil {
		return value.Nothing, err
	}
	return value.Boolean(v1.Equal(v2)), nil
}

func bothTrue(args []value.Value, _ runtime.Environment) (value.Value, error) {
	v1, v2, err := twoArgs(args, "both-true")
	if err != nil {
		return value.Nothing, err
	}
	return value.Boolean(v1.IsTruthy() && v2.IsTruthy()), nil
}

func eitherTrue(args []value.Value, _ runtime.Environment) (value.Value, error) {
	v1, v2, err := twoArgs(args, "either-true")
	if err != nil {
		return value.Nothing, err
	}
	return value.Boolean(v1.IsTruthy() || v2.IsTruthy()), nil
}

func notTrue(args []value.Value, _ runtime.Environment) (value.Value, error) {
	v, err := oneArg(args, "not-true")
	if err != nil {
		return value.Nothing, err
	}
	return value.Boolean(!v.IsTruthy()), nil
}
