package ad

import "math"

// fabs differentiates to the sign of its argument; curvature is zero
// everywhere the derivative exists. At exactly zero the positive branch is
// used.
var fabsChain = &chain{
	name: "fabs",
	fn:   math.Abs,
	d1: func(v float64) float64 {
		if v < 0 {
			return -1
		}
		return 1
	},
	d2: zero,
	d3: zero,
}

// Fabs returns the absolute value of an expression.
func Fabs(e Expression) Expression { return newUnary(e, fabsChain) }

// floor and ceil are step functions: flat wherever differentiable, so every
// derivative is zero.
var floorChain = &chain{
	name: "floor",
	fn:   math.Floor,
	d1:   zero,
	d2:   zero,
	d3:   zero,
}

// Floor returns the floor of an expression.
func Floor(e Expression) Expression { return newUnary(e, floorChain) }

var ceilChain = &chain{
	name: "ceil",
	fn:   math.Ceil,
	d1:   zero,
	d2:   zero,
	d3:   zero,
}

// Ceil returns the ceiling of an expression.
func Ceil(e Expression) Expression { return newUnary(e, ceilChain) }

func zero(float64) float64 { return 0 }
