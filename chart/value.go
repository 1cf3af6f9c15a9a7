package chart

import "math"

// Value is a single data point. A Value with Valid == false is a gap in the
// series: it still occupies a slot on the x axis but draws no bar.
type Value struct {
	Float64 float64
	Valid   bool
}

// Some returns a valid Value. NaN is treated as missing.
func Some(v float64) Value {
	if math.IsNaN(v) {
		return Value{}
	}
	return Value{Float64: v, Valid: true}
}

// Null returns a missing Value.
func Null() Value { return Value{} }

// Values wraps plain numbers as valid Values.
func Values(vs ...float64) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = Some(v)
	}
	return out
}

// MaxValue returns the largest valid value, or 1 when there is nothing
// positive to scale against. The result is always > 0.
func MaxValue(values []Value) float64 {
	m := 0.0
	for _, v := range values {
		if v.Valid && v.Float64 > m {
			m = v.Float64
		}
	}
	if m == 0 {
		m = 1
	}
	return m
}
