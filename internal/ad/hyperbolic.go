package ad

import "math"

// sinh and cosh alternate as each other's derivatives, so the chains cycle
// between the two.
var sinhChain = &chain{
	name: "sinh",
	fn:   math.Sinh,
	d1:   math.Cosh,
	d2:   math.Sinh,
	d3:   math.Cosh,
}

// Sinh returns the hyperbolic sine of an expression.
func Sinh(e Expression) Expression { return newUnary(e, sinhChain) }

var coshChain = &chain{
	name: "cosh",
	fn:   math.Cosh,
	d1:   math.Sinh,
	d2:   math.Cosh,
	d3:   math.Sinh,
}

// Cosh returns the hyperbolic cosine of an expression.
func Cosh(e Expression) Expression { return newUnary(e, coshChain) }

// tanh through s = sech²v = 1 - tanh²v: f' = s, f” = -2ts,
// f”' = -2s² + 4t²s.
var tanhChain = &chain{
	name: "tanh",
	fn:   math.Tanh,
	d1: func(v float64) float64 {
		t := math.Tanh(v)
		return 1 - t*t
	},
	d2: func(v float64) float64 {
		t := math.Tanh(v)
		s := 1 - t*t
		return -2 * t * s
	},
	d3: func(v float64) float64 {
		t := math.Tanh(v)
		s := 1 - t*t
		return -2*s*s + 4*t*t*s
	},
}

// Tanh returns the hyperbolic tangent of an expression.
func Tanh(e Expression) Expression { return newUnary(e, tanhChain) }
