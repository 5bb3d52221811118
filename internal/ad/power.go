package ad

import (
	"fmt"
	"math"
)

// powExpr represents base^exponent with both branches differentiated.
//
// Derivatives come from the logarithmic form h = exp(u) with u = g·ln f:
// the partials of ln f and of u are expanded first, then h's partials follow
// the exponential chain. The value itself is computed by math.Pow, so a
// negative base with an integer exponent still yields a finite value; its
// derivatives involve ln(base) and go NaN there, matching the quotient-style
// propagation rule for out-of-domain input.
type powExpr struct {
	base, exponent Expression
}

// Pow returns base raised to exponent, differentiating through both
// branches. When the exponent is a constant, PowScalar avoids the log term
// and should be preferred.
func Pow(base, exponent Expression) Expression {
	return &powExpr{base: base, exponent: exponent}
}

func (e *powExpr) Value() float64 {
	return math.Pow(e.base.Value(), e.exponent.Value())
}

// log1..log3 are the partial derivatives of ln(base).
func (e *powExpr) log1(a uint32) float64 {
	return e.base.Derivative(a) / e.base.Value()
}

func (e *powExpr) log2(a, b uint32) float64 {
	f := e.base.Value()
	return e.base.Derivative2(a, b)/f -
		e.base.Derivative(a)*e.base.Derivative(b)/(f*f)
}

func (e *powExpr) log3(x, y, z uint32) float64 {
	f := e.base.Value()
	fx, fy, fz := e.base.Derivative(x), e.base.Derivative(y), e.base.Derivative(z)
	return e.base.Derivative3(x, y, z)/f -
		(e.base.Derivative2(x, y)*fz+
			e.base.Derivative2(x, z)*fy+
			e.base.Derivative2(y, z)*fx)/(f*f) +
		2*fx*fy*fz/(f*f*f)
}

// u1..u3 are the partial derivatives of u = exponent·ln(base), by the
// product rule over the two branches.
func (e *powExpr) u1(a uint32) float64 {
	return e.exponent.Derivative(a)*math.Log(e.base.Value()) +
		e.exponent.Value()*e.log1(a)
}

func (e *powExpr) u2(a, b uint32) float64 {
	return e.exponent.Derivative2(a, b)*math.Log(e.base.Value()) +
		e.exponent.Derivative(a)*e.log1(b) +
		e.exponent.Derivative(b)*e.log1(a) +
		e.exponent.Value()*e.log2(a, b)
}

func (e *powExpr) u3(x, y, z uint32) float64 {
	return e.exponent.Derivative3(x, y, z)*math.Log(e.base.Value()) +
		e.exponent.Derivative2(x, y)*e.log1(z) +
		e.exponent.Derivative2(x, z)*e.log1(y) +
		e.exponent.Derivative2(y, z)*e.log1(x) +
		e.exponent.Derivative(x)*e.log2(y, z) +
		e.exponent.Derivative(y)*e.log2(x, z) +
		e.exponent.Derivative(z)*e.log2(x, y) +
		e.exponent.Value()*e.log3(x, y, z)
}

func (e *powExpr) Derivative(a uint32) float64 {
	return e.Value() * e.u1(a)
}

func (e *powExpr) Derivative2(a, b uint32) float64 {
	return e.Value() * (e.u1(a)*e.u1(b) + e.u2(a, b))
}

func (e *powExpr) Derivative3(x, y, z uint32) float64 {
	ux, uy, uz := e.u1(x), e.u1(y), e.u1(z)
	return e.Value() * (ux*uy*uz +
		e.u2(x, y)*uz + e.u2(x, z)*uy + e.u2(y, z)*ux +
		e.u3(x, y, z))
}

func (e *powExpr) PushIDs(set *IDSet, includeDependent bool) {
	e.base.PushIDs(set, includeDependent)
	e.exponent.PushIDs(set, includeDependent)
}

func (e *powExpr) IsNonFunction() bool { return false }
func (e *powExpr) IsNonlinear() bool   { return true }

func (e *powExpr) Dynamic() DynamicExpression {
	b, x := e.base.Dynamic(), e.exponent.Dynamic()
	return newDynComposite("pow", &powExpr{base: b, exponent: x}, b, x)
}

// PowScalar returns e raised to the constant exponent k. The derivative
// chain k·v^(k-1), k(k-1)·v^(k-2), k(k-1)(k-2)·v^(k-3) never touches
// ln(base), so negative bases with integer exponents differentiate cleanly.
func PowScalar(e Expression, k float64) Expression {
	return newUnary(e, &chain{
		name: fmt.Sprintf("pow[%g]", k),
		fn: func(v float64) float64 {
			return math.Pow(v, k)
		},
		d1: func(v float64) float64 {
			return k * math.Pow(v, k-1)
		},
		d2: func(v float64) float64 {
			return k * (k - 1) * math.Pow(v, k-2)
		},
		d3: func(v float64) float64 {
			return k * (k - 1) * (k - 2) * math.Pow(v, k-3)
		},
	})
}

// ScalarPow returns the constant base c raised to an expression. Each
// derivative multiplies by another factor of ln(c).
func ScalarPow(c float64, e Expression) Expression {
	lc := math.Log(c)
	return newUnary(e, &chain{
		name: fmt.Sprintf("%g^", c),
		fn: func(v float64) float64 {
			return math.Pow(c, v)
		},
		d1: func(v float64) float64 {
			return lc * math.Pow(c, v)
		},
		d2: func(v float64) float64 {
			return lc * lc * math.Pow(c, v)
		},
		d3: func(v float64) float64 {
			return lc * lc * lc * math.Pow(c, v)
		},
	})
}
