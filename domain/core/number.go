package core

import (
	"encoding/json"
	"fmt"
	"math"
)

// Number is a nullable numeric value. A Number is either defined (Valid) or
// undefined; undefined is how unparsable cells, missing columns and
// zero-denominator ratios flow through the pipeline. It is never coerced to
// zero: a day with no measured spend must stay distinguishable from a day
// with spend of 0.
type Number struct {
	Value float64
	Valid bool
}

// Num creates a defined Number.
func Num(v float64) Number {
	return Number{Value: v, Valid: true}
}

// None returns the undefined Number.
func None() Number {
	return Number{}
}

// Float returns the value and whether it is defined.
func (n Number) Float() (float64, bool) {
	return n.Value, n.Valid
}

// Add sums two Numbers with null-aware semantics: undefined operands are
// skipped, and the result is undefined only when both operands are.
func (n Number) Add(other Number) Number {
	switch {
	case n.Valid && other.Valid:
		return Num(n.Value + other.Value)
	case n.Valid:
		return n
	case other.Valid:
		return other
	default:
		return None()
	}
}

// Ratio divides num by den. The result is undefined when either operand is
// undefined or the denominator is zero; it is never an error and never zero.
// Negative numerators (refunds, credits) pass through untouched.
func Ratio(num, den Number) Number {
	if !num.Valid || !den.Valid || den.Value == 0 {
		return None()
	}
	v := num.Value / den.Value
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return None()
	}
	return Num(v)
}

// SumNumbers folds a slice with Add. An empty or all-undefined slice sums to
// undefined, not zero.
func SumNumbers(ns []Number) Number {
	total := None()
	for _, n := range ns {
		total = total.Add(n)
	}
	return total
}

// String renders the value or "<undefined>".
func (n Number) String() string {
	if !n.Valid {
		return "<undefined>"
	}
	return fmt.Sprintf("%g", n.Value)
}

// MarshalJSON emits the value, or null when undefined.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// UnmarshalJSON accepts a number or null.
func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = None()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Num(v)
	return nil
}
