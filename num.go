package golet

import (
	"math"
	"strconv"
)

type Kind int

const (
	KindInt Kind = iota
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	}
	return "unknown"
}

// Value is the result of evaluating an expression: either a 64-bit signed
// integer or a 64-bit float. The zero Value is the integer 0.
type Value struct {
	kind Kind
	i    int64
	f    float64
}

func IntValue(i int64) Value {
	return Value{kind: KindInt, i: i}
}

func FloatValue(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsFloat() bool {
	return v.kind == KindFloat
}

// Int returns the integer payload. A float is truncated toward zero.
func (v Value) Int() int64 {
	if v.kind == KindFloat {
		return int64(v.f)
	}
	return v.i
}

// Float returns the value promoted to float64.
func (v Value) Float() float64 {
	if v.kind == KindFloat {
		return v.f
	}
	return float64(v.i)
}

func (v Value) IsZero() bool {
	if v.kind == KindFloat {
		return v.f == 0
	}
	return v.i == 0
}

func (v Value) Neg() Value {
	if v.kind == KindFloat {
		return FloatValue(-v.f)
	}
	return IntValue(-v.i)
}

func (v Value) Add(w Value) Value {
	if v.kind == KindInt && w.kind == KindInt {
		return IntValue(v.i + w.i)
	}
	return FloatValue(v.Float() + w.Float())
}

func (v Value) Sub(w Value) Value {
	if v.kind == KindInt && w.kind == KindInt {
		return IntValue(v.i - w.i)
	}
	return FloatValue(v.Float() - w.Float())
}

func (v Value) Mul(w Value) Value {
	if v.kind == KindInt && w.kind == KindInt {
		return IntValue(v.i * w.i)
	}
	return FloatValue(v.Float() * w.Float())
}

// Div divides v by w. Integer division truncates toward zero. A zero
// divisor of either kind panics with ErrDivideByZero.
func (v Value) Div(w Value) Value {
	if w.IsZero() {
		panic(ErrDivideByZero)
	}
	if v.kind == KindInt && w.kind == KindInt {
		return IntValue(v.i / w.i)
	}
	return FloatValue(v.Float() / w.Float())
}

func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	if v.kind == KindFloat {
		return v.f == w.f || (math.IsNaN(v.f) && math.IsNaN(w.f))
	}
	return v.i == w.i
}

func (v Value) String() string {
	if v.kind == KindInt {
		return strconv.FormatInt(v.i, 10)
	}
	switch {
	case math.IsInf(v.f, 1):
		return "inf"
	case math.IsInf(v.f, -1):
		return "-inf"
	case math.IsNaN(v.f):
		return "NaN"
	}
	return strconv.FormatFloat(v.f, 'f', -1, 64)
}

// GoString renders the value so that the kind stays visible: floats always
// carry a fractional part.
func (v Value) GoString() string {
	s := v.String()
	if v.kind == KindFloat && !math.IsInf(v.f, 0) && !math.IsNaN(v.f) {
		for _, r := range s {
			if r == '.' {
				return s
			}
		}
		s += ".0"
	}
	return s
}
