package ad

import "math"

// asin: f' = (1-v²)^-1/2, f” = v·(1-v²)^-3/2, f”' = (1+2v²)·(1-v²)^-5/2.
// Outside [-1, 1] the math package yields NaN, which propagates.
var asinChain = &chain{
	name: "asin",
	fn:   math.Asin,
	d1: func(v float64) float64 {
		return 1 / math.Sqrt(1-v*v)
	},
	d2: func(v float64) float64 {
		w := 1 - v*v
		return v / (w * math.Sqrt(w))
	},
	d3: func(v float64) float64 {
		w := 1 - v*v
		return (1 + 2*v*v) / (w * w * math.Sqrt(w))
	},
}

// ASin returns the arcsine of an expression.
func ASin(e Expression) Expression { return newUnary(e, asinChain) }

// acos derivatives are the negatives of the asin chain.
var acosChain = &chain{
	name: "acos",
	fn:   math.Acos,
	d1: func(v float64) float64 {
		return -1 / math.Sqrt(1-v*v)
	},
	d2: func(v float64) float64 {
		w := 1 - v*v
		return -v / (w * math.Sqrt(w))
	},
	d3: func(v float64) float64 {
		w := 1 - v*v
		return -(1 + 2*v*v) / (w * w * math.Sqrt(w))
	},
}

// ACos returns the arccosine of an expression.
func ACos(e Expression) Expression { return newUnary(e, acosChain) }

// atan: f' = 1/(1+v²), f” = -2v/(1+v²)², f”' = (6v²-2)/(1+v²)³.
var atanChain = &chain{
	name: "atan",
	fn:   math.Atan,
	d1: func(v float64) float64 {
		return 1 / (1 + v*v)
	},
	d2: func(v float64) float64 {
		w := 1 + v*v
		return -2 * v / (w * w)
	},
	d3: func(v float64) float64 {
		w := 1 + v*v
		return (6*v*v - 2) / (w * w * w)
	},
}

// ATan returns the arctangent of an expression.
func ATan(e Expression) Expression { return newUnary(e, atanChain) }
