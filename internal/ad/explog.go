package ad

import "math"

var expChain = &chain{
	name: "exp",
	fn:   math.Exp,
	d1:   math.Exp,
	d2:   math.Exp,
	d3:   math.Exp,
}

// Exp returns e raised to an expression.
func Exp(e Expression) Expression { return newUnary(e, expChain) }

// log: f' = 1/v, f” = -1/v², f”' = 2/v³.
var logChain = &chain{
	name: "log",
	fn:   math.Log,
	d1: func(v float64) float64 {
		return 1 / v
	},
	d2: func(v float64) float64 {
		return -1 / (v * v)
	},
	d3: func(v float64) float64 {
		return 2 / (v * v * v)
	},
}

// Log returns the natural logarithm of an expression.
func Log(e Expression) Expression { return newUnary(e, logChain) }

// log10 shares the log chain scaled by 1/ln(10).
var log10Chain = &chain{
	name: "log10",
	fn:   math.Log10,
	d1: func(v float64) float64 {
		return 1 / (v * math.Ln10)
	},
	d2: func(v float64) float64 {
		return -1 / (v * v * math.Ln10)
	},
	d3: func(v float64) float64 {
		return 2 / (v * v * v * math.Ln10)
	},
}

// Log10 returns the base-10 logarithm of an expression.
func Log10(e Expression) Expression { return newUnary(e, log10Chain) }

// sqrt: f' = 1/(2√v), f” = -1/(4v^1.5), f”' = 3/(8v^2.5).
var sqrtChain = &chain{
	name: "sqrt",
	fn:   math.Sqrt,
	d1: func(v float64) float64 {
		return 1 / (2 * math.Sqrt(v))
	},
	d2: func(v float64) float64 {
		return -1 / (4 * v * math.Sqrt(v))
	},
	d3: func(v float64) float64 {
		return 3 / (8 * v * v * math.Sqrt(v))
	},
}

// Sqrt returns the square root of an expression.
func Sqrt(e Expression) Expression { return newUnary(e, sqrtChain) }
