package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwbudde/loxwalk/internal/value"
)

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		name string
		v    value.Value
		want bool
	}{
		{"nil is falsey", value.Nil, false},
		{"false is falsey", value.Bool(false), false},
		{"true is truthy", value.Bool(true), true},
		{"zero is truthy", value.Number(0), true},
		{"empty string is truthy", value.Str(""), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, value.IsTruthy(tc.v))
		})
	}
}

func TestEquals(t *testing.T) {
	cases := []struct {
		name string
		a, b value.Value
		want bool
	}{
		{"nil equals nil", value.Nil, value.Nil, true},
		{"equal numbers", value.Number(1), value.Number(1), true},
		{"different numbers", value.Number(1), value.Number(2), false},
		{"equal strings", value.Str("a"), value.Str("a"), true},
		{"different types never equal", value.Number(0), value.Bool(false), false},
		{"nan is never equal to itself", value.Number(nan()), value.Number(nan()), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, value.Equals(tc.a, tc.b))
		})
	}
}

func TestInstanceIdentity(t *testing.T) {
	class := &value.Class{Name: "Widget", Methods: map[string]*value.Function{}}
	a := value.NewInstance(class)
	b := value.NewInstance(class)

	assert.False(t, value.Equals(a, b), "distinct instances of the same class must not be equal")
	assert.True(t, value.Equals(a, a), "an instance always equals itself")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNumberString(t *testing.T) {
	cases := []struct {
		n    value.Number
		want string
	}{
		{42, "42"},
		{42.5, "42.5"},
		{0, "0"},
		{-3, "-3"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.n.String())
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}
