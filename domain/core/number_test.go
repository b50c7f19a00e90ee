package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Number
		expected Number
	}{
		{"both defined", Num(2), Num(3), Num(5)},
		{"left undefined", None(), Num(3), Num(3)},
		{"right undefined", Num(2), None(), Num(2)},
		{"both undefined stays undefined", None(), None(), None()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.a.Add(test.b))
		})
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name     string
		num, den Number
		expected Number
	}{
		{"defined over defined", Num(50), Num(1500), Num(50.0 / 1500.0)},
		{"zero denominator is undefined", Num(10), Num(0), None()},
		{"null denominator is undefined", Num(10), None(), None()},
		{"null numerator is undefined", None(), Num(10), None()},
		{"zero numerator is zero", Num(0), Num(10), Num(0)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Ratio(test.num, test.den))
		})
	}
}

func TestSumNumbers(t *testing.T) {
	// A group that is entirely undefined sums to undefined, not zero.
	assert.Equal(t, None(), SumNumbers([]Number{None(), None()}))
	assert.Equal(t, None(), SumNumbers(nil))

	// One defined value is enough to make the sum defined.
	assert.Equal(t, Num(7), SumNumbers([]Number{None(), Num(7), None()}))
	assert.Equal(t, Num(6), SumNumbers([]Number{Num(1), Num(2), Num(3)}))
}

func TestNumberFloat(t *testing.T) {
	v, ok := Num(1.5).Float()
	assert.True(t, ok)
	assert.Equal(t, 1.5, v)

	_, ok = None().Float()
	assert.False(t, ok)
}

func TestNumberJSON(t *testing.T) {
	defined, err := json.Marshal(Num(2.5))
	assert.NoError(t, err)
	assert.Equal(t, "2.5", string(defined))

	undefined, err := json.Marshal(None())
	assert.NoError(t, err)
	assert.Equal(t, "null", string(undefined))

	var n Number
	assert.NoError(t, json.Unmarshal([]byte("null"), &n))
	assert.Equal(t, None(), n)
	assert.NoError(t, json.Unmarshal([]byte("3.25"), &n))
	assert.Equal(t, Num(3.25), n)
}
