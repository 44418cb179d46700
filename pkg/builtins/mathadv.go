package builtins

import (
	"fmt"
	"math"

	"onu-go/pkg/runtime"
	"onu-go/pkg/value"
)

// Advanced math accepts any numeric kind and computes in float64, unlike
// the strict arithmetic builtins in math.go.

func unaryMath(args []value.Value, name string, op func(float64) float64) (value.Value, error) {
	v, err := oneArg(args, name)
	if err != nil {
		return value.Nothing, err
	}
	f, ok := v.AsF64()
	if !ok {
		return value.Nothing, fmt.Errorf("'%s' requires a numeric argument", name)
	}
	return value.F64(op(f)), nil
}

func binaryMath(args []value.Value, name string, op func(a, b float64) float64) (value.Value, error) {
	f1, f2, err := twoF64(args, name)
	if err != nil {
		return value.Nothing, err
	}
	return value.F64(op(f1, f2)), nil
}

func sine(args []value.Value, _ runtime.Environment) (value.Value, error) {
	return unaryMath(args, "sine", math.Sin)
}

func cosine(args []value.Value, _ runtime.Environment) (value.Value, error) {
	return unaryMath(args, "cosine", math.Cos)
}

func tangent(args []value.Value, _ runtime.Environment) (value.Value, error) {
	return unaryMath(args, "tangent", math.Tan)
}

func arcSin(args []value.Value, _ runtime.Environment) (value.Value, error) {
	return unaryMath(args, "arcsin", math.Asin)
}

func arcCos(args []value.Value, _ runtime.Environment) (value.Value, error) {
	return unaryMath(args, "arccos", math.Acos)
}

func arcTan(args []value.Value, _ runtime.Environment) (value.Value, error) {
	return unaryMath(args, "arctan", math.Atan)
}

func squareRoot(args []value.Value, _ runtime.Environment) (value.Value, error) {
	return unaryMath(args, "square-root", math.Sqrt)
}

func raisedTo(args []value.Value, _ runtime.Environment) (value.Value, error) {
	return binaryMath(args, "raised-to", math.Pow)
}

func naturalLog(args []value.Value, _ runtime.Environment) (value.Value, error) {
	return unaryMath(args, "natural-log", math.Log)
}

func exponent(args []value.Value, _ runtime.Environment) (value.Value, error) {
	return unaryMath(args, "exponent", math.Exp)
}

func dotProduct(args []value.Value, _ runtime.Environment) (value.Value, error) {
	v1, v2, err := twoArgs(args, "dot-product")
	if err != nil {
		return value.Nothing, err
	}
	t1, ok1 := v1.AsTuple()
	t2, ok2 := v2.AsTuple()
	if !ok1 || !ok2 {
		return value.Nothing, fmt.Errorf("'dot-product' requires two tuples (vectors)")
	}
	if len(t1) != len(t2) {
		return value.Nothing, fmt.Errorf("'dot-product' requires vectors of same length")
	}
	var sum float64
	for i := range t1 {
		fa, oka := t1[i].AsF64()
		fb, okb := t2[i].AsF64()
		if !oka || !okb {
			return value.Nothing, fmt.Errorf("'dot-product' requires numeric components")
		}
		sum += fa * fb
	}
	return value.F64(sum), nil
}

func crossProduct(args []value.Value, _ runtime.Environment) (value.Value, error) {
	v1, v2, err := twoArgs(args, "cross-product")
	if err != nil {
		return value.Nothing, err
	}
	t1, ok1 := v1.AsTuple()
	t2, ok2 := v2.AsTuple()
	if !ok1 || !ok2 {
		return value.Nothing, fmt.Errorf("'cross-product' requires two 3D tuples")
	}
	if len(t1) != 3 || len(t2) != 3 {
		return value.Nothing, fmt.Errorf("'cross-product' requires 3D vectors")
	}
	var f1, f2 [3]float64
	for i := 0; i < 3; i++ {
		f1[i], _ = t1[i].AsF64()
		f2[i], _ = t2[i].AsF64()
	}
	return value.Tuple(
		value.F64(f1[1]*f2[2]-f1[2]*f2[1]),
		value.F64(f1[2]*f2[0]-f1[0]*f2[2]),
		value.F64(f1[0]*f2[1]-f1[1]*f2[0]),
	), nil
}
