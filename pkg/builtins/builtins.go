// Package builtins implements the named operations the Ọ̀nụ interpreter
// exposes to programs. Each builtin is registered under its hyphenated
// surface name ("added-to", "joined-with", ...) and follows the same
// strategy shape: a slice of values in, one value or an error out.
package builtins

import (
	"fmt"

	"onu-go/pkg/runtime"
	"onu-go/pkg/value"
)

// Func is a single builtin operation. The environment carries the output
// and input streams for builtins with side effects.
type Func func(args []value.Value, env runtime.Environment) (value.Value, error)

// Registry maps surface names to builtin implementations.
type Registry map[string]Func

// Default returns the full builtin set under the names programs use.
func Default() Registry {
	return Registry{
		"added-to":        addedTo,
		"decreased-by":    decreasedBy,
		"subtracted-from": subtractedFrom,
		"multiplied-by":   multipliedBy,
		"divided-by":      dividedBy,

		"is-zero":     isZero,
		"is-less":     isLess,
		"is-equal":    isEqual,
		"both-true":   bothTrue,
		"either-true": eitherTrue,
		"not-true":    notTrue,

		"is-equal-to":     isEqualTo,
		"is-greater-than": isGreaterThan,
		"is-less-than":    isLessThan,

		"joined-with": joinedWith,
		"len":         textLen,
		"char-at":     charAt,
		"as-text":     asText,
		"set-char":    setChar,

		"sine":        sine,
		"cosine":      cosine,
		"tangent":     tangent,
		"arcsin":      arcSin,
		"arccos":      arcCos,
		"arctan":      arcTan,
		"square-root": squareRoot,
		"raised-to":   raisedTo,
		"natural-log": naturalLog,
		"exponent":    exponent,

		"dot-product":   dotProduct,
		"cross-product": crossProduct,
	}
}

// Call invokes the named builtin, or fails when the name is unknown.
func (r Registry) Call(name string, args []value.Value, env runtime.Environment) (value.Value, error) {
	fn, ok := r[name]
	if !ok {
		return value.Nothing, fmt.Errorf("unknown builtin '%s'", name)
	}
	return fn(args, env)
}

// --- shared argument helpers ---

func oneArg(args []value.Value, name string) (value.Value, error) {
	if len(args) < 1 {
		return value.Nothing, fmt.Errorf("'%s' requires one argument", name)
	}
	return args[0], nil
}

func twoArgs(args []value.Value, name string) (value.Value, value.Value, error) {
	if len(args) < 2 {
		return value.Nothing, value.Nothing, fmt.Errorf("'%s' requires two arguments", name)
	}
	return args[0], args[1], nil
}

func twoF64(args []value.Value, name string) (float64, float64, error) {
	v1, v2, err := twoArgs(args, name)
	if err != nil {
		return 0, 0, err
	}
	f1, ok1 := v1.AsF64()
	f2, ok2 := v2.AsF64()
	if !ok1 || !ok2 {
		return 0, 0, fmt.Errorf("'%s' requires numbers", name)
	}
	return f1, f2, nil
}

func textAndIndex(args []value.Value, name string) (string, int64, error) {
	v1, v2, err := twoArgs(args, name)
	if err != nil {
		return "", 0, err
	}
	s, ok := v1.AsText()
	if !ok {
		return "", 0, fmt.Errorf("'%s' requires text and a number", name)
	}
	f, ok := v2.AsF64()
	if !ok {
		return "", 0, fmt.Errorf("'%s' requires a numeric index", name)
	}
	return s, int64(f), nil
}
