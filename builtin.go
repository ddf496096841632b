package golet

import (
	"fmt"
	"math"
	"sort"
)

// Fn implements a native function. It receives already evaluated
// arguments whose count matches the declared parameters.
type Fn func(args []Value) (Value, error)

type builtin struct {
	params []string
	fn     Fn
}

var builtins map[string]builtin

func makeFn(fn Fn, params ...string) builtin {
	return builtin{params: params, fn: fn}
}

func init() {
	builtins = make(map[string]builtin)
	builtins["abs"] = makeFn(doAbs, "x")
	builtins["min"] = makeFn(doMin, "a", "b")
	builtins["max"] = makeFn(doMax, "a", "b")
	builtins["pow"] = makeFn(doPow, "x", "y")
	builtins["sqrt"] = makeFn(doSqrt, "x")
	builtins["floor"] = makeFn(doFloor, "x")
	builtins["ceil"] = makeFn(doCeil, "x")
	builtins["float"] = makeFn(doFloat, "x")
	builtins["int"] = makeFn(doInt, "x")
}

func builtinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func less(a, b Value) bool {
	if a.Kind() == KindInt && b.Kind() == KindInt {
		return a.Int() < b.Int()
	}
	return a.Float() < b.Float()
}

// promote gives v the kind that an arithmetic operation between v and w
// would produce.
func promote(v, w Value) Value {
	if v.IsFloat() || w.IsFloat() {
		return FloatValue(v.Float())
	}
	return v
}

func doAbs(args []Value) (Value, error) {
	x := args[0]
	if x.IsFloat() {
		return FloatValue(math.Abs(x.Float())), nil
	}
	if x.Int() < 0 {
		return x.Neg(), nil
	}
	return x, nil
}

func doMin(args []Value) (Value, error) {
	if less(args[1], args[0]) {
		return promote(args[1], args[0]), nil
	}
	return promote(args[0], args[1]), nil
}

func doMax(args []Value) (Value, error) {
	if less(args[0], args[1]) {
		return promote(args[1], args[0]), nil
	}
	return promote(args[0], args[1]), nil
}

func doPow(args []Value) (Value, error) {
	x, y := args[0], args[1]
	if x.IsFloat() || y.IsFloat() || y.Int() < 0 {
		return FloatValue(math.Pow(x.Float(), y.Float())), nil
	}
	base, exp, ret := x.Int(), y.Int(), int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			ret *= base
		}
		base *= base
		exp >>= 1
	}
	return IntValue(ret), nil
}

func doSqrt(args []Value) (Value, error) {
	return FloatValue(math.Sqrt(args[0].Float())), nil
}

func doFloor(args []Value) (Value, error) {
	if !args[0].IsFloat() {
		return args[0], nil
	}
	return FloatValue(math.Floor(args[0].Float())), nil
}

func doCeil(args []Value) (Value, error) {
	if !args[0].IsFloat() {
		return args[0], nil
	}
	return FloatValue(math.Ceil(args[0].Float())), nil
}

func doFloat(args []Value) (Value, error) {
	return FloatValue(args[0].Float()), nil
}

func doInt(args []Value) (Value, error) {
	x := args[0]
	if !x.IsFloat() {
		return x, nil
	}
	f := x.Float()
	if math.IsNaN(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return Value{}, fmt.Errorf("int: %v cannot be represented as an integer", x)
	}
	return IntValue(int64(f)), nil
}
