package ad

import "math"

var sinChain = &chain{
	name: "sin",
	fn:   math.Sin,
	d1:   math.Cos,
	d2:   func(v float64) float64 { return -math.Sin(v) },
	d3:   func(v float64) float64 { return -math.Cos(v) },
}

// Sin returns the sine of an expression.
func Sin(e Expression) Expression { return newUnary(e, sinChain) }

var cosChain = &chain{
	name: "cos",
	fn:   math.Cos,
	d1:   func(v float64) float64 { return -math.Sin(v) },
	d2:   func(v float64) float64 { return -math.Cos(v) },
	d3:   math.Sin,
}

// Cos returns the cosine of an expression.
func Cos(e Expression) Expression { return newUnary(e, cosChain) }

// For tan the derivative chain is expressed through s = sec²v = 1 + tan²v:
// f' = s, f” = 2ts, f”' = 2s(s + 2t²).
var tanChain = &chain{
	name: "tan",
	fn:   math.Tan,
	d1: func(v float64) float64 {
		t := math.Tan(v)
		return 1 + t*t
	},
	d2: func(v float64) float64 {
		t := math.Tan(v)
		s := 1 + t*t
		return 2 * t * s
	},
	d3: func(v float64) float64 {
		t := math.Tan(v)
		s := 1 + t*t
		return 2 * s * (s + 2*t*t)
	},
}

// Tan returns the tangent of an expression.
func Tan(e Expression) Expression { return newUnary(e, tanChain) }
