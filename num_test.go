package golet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueArith(t *testing.T) {
	tests := []struct {
		name string
		got  Value
		want Value
	}{
		{"int+int", IntValue(2).Add(IntValue(3)), IntValue(5)},
		{"int+float", IntValue(2).Add(FloatValue(0.5)), FloatValue(2.5)},
		{"float+int", FloatValue(0.5).Add(IntValue(2)), FloatValue(2.5)},
		{"float+float", FloatValue(0.5).Add(FloatValue(0.25)), FloatValue(0.75)},

		{"int-int", IntValue(2).Sub(IntValue(5)), IntValue(-3)},
		{"int-float", IntValue(2).Sub(FloatValue(0.5)), FloatValue(1.5)},
		{"float-int", FloatValue(0.5).Sub(IntValue(2)), FloatValue(-1.5)},
		{"float-float", FloatValue(0.5).Sub(FloatValue(0.25)), FloatValue(0.25)},

		{"int*int", IntValue(4).Mul(IntValue(-3)), IntValue(-12)},
		{"int*float", IntValue(3).Mul(FloatValue(0.5)), FloatValue(1.5)},
		{"float*int", FloatValue(0.5).Mul(IntValue(3)), FloatValue(1.5)},
		{"float*float", FloatValue(1.5).Mul(FloatValue(2)), FloatValue(3)},

		{"int/int", IntValue(7).Div(IntValue(2)), IntValue(3)},
		{"negative int/int", IntValue(-7).Div(IntValue(2)), IntValue(-3)},
		{"int/negative int", IntValue(7).Div(IntValue(-2)), IntValue(-3)},
		{"int/float", IntValue(7).Div(FloatValue(2)), FloatValue(3.5)},
		{"float/int", FloatValue(7).Div(IntValue(2)), FloatValue(3.5)},
		{"float/float", FloatValue(1).Div(FloatValue(4)), FloatValue(0.25)},

		{"neg int", IntValue(5).Neg(), IntValue(-5)},
		{"neg float", FloatValue(2.5).Neg(), FloatValue(-2.5)},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.got, test.name)
	}
}

func TestValueArithPreservesKind(t *testing.T) {
	ops := map[string]func(Value, Value) Value{
		"+": Value.Add,
		"-": Value.Sub,
		"*": Value.Mul,
		"/": Value.Div,
	}
	i, f := IntValue(6), FloatValue(3)
	for name, op := range ops {
		assert.Equal(t, KindInt, op(i, i).Kind(), "int %s int", name)
		assert.Equal(t, KindFloat, op(i, f).Kind(), "int %s float", name)
		assert.Equal(t, KindFloat, op(f, i).Kind(), "float %s int", name)
		assert.Equal(t, KindFloat, op(f, f).Kind(), "float %s float", name)
	}
}

func TestValueDivideByZero(t *testing.T) {
	tests := []struct {
		name string
		x, y Value
	}{
		{"int/int", IntValue(1), IntValue(0)},
		{"float/float", FloatValue(1), FloatValue(0)},
		{"int/float", IntValue(1), FloatValue(0)},
		{"float/int", FloatValue(1), IntValue(0)},
		{"negative zero", FloatValue(1), FloatValue(math.Copysign(0, -1))},
	}
	for _, test := range tests {
		x, y := test.x, test.y
		assert.PanicsWithValue(t, ErrDivideByZero, func() {
			x.Div(y)
		}, test.name)
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{IntValue(0), "0"},
		{IntValue(-42), "-42"},
		{IntValue(math.MaxInt64), "9223372036854775807"},
		{FloatValue(3), "3"},
		{FloatValue(0.5), "0.5"},
		{FloatValue(-0.25), "-0.25"},
		{FloatValue(1e21), "1000000000000000000000"},
		{FloatValue(math.Inf(1)), "inf"},
		{FloatValue(math.Inf(-1)), "-inf"},
		{FloatValue(math.NaN()), "NaN"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.v.String())
	}
	assert.Equal(t, "3.0", FloatValue(3).GoString())
	assert.Equal(t, "3", IntValue(3).GoString())
	assert.Equal(t, "0.5", FloatValue(0.5).GoString())
}

func TestValueEqual(t *testing.T) {
	assert.True(t, IntValue(1).Equal(IntValue(1)))
	assert.False(t, IntValue(1).Equal(FloatValue(1)))
	assert.True(t, FloatValue(math.NaN()).Equal(FloatValue(math.NaN())))
	assert.Equal(t, IntValue(0), Value{})
}
