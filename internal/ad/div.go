package ad

// divExpr represents lhs / rhs. The quotient rule is expressed as the
// product rule over lhs * (1/rhs), with the reciprocal's derivative chain
// r' = -1/g², r” = 2/g³, r”' = -6/g⁴ composed by Faà di Bruno.
//
// Division by a zero-valued rhs follows IEEE-754: the result is ±Inf or NaN
// and propagates through every subsequent derivative without aborting.
type divExpr struct {
	lhs, rhs Expression
}

// Div returns the quotient of two expressions.
func Div(lhs, rhs Expression) Expression {
	return &divExpr{lhs: lhs, rhs: rhs}
}

func (e *divExpr) Value() float64 {
	return e.lhs.Value() / e.rhs.Value()
}

// recip1..recip3 are the partial derivatives of 1/rhs.
func (e *divExpr) recip1(a uint32) float64 {
	g := e.rhs.Value()
	return -e.rhs.Derivative(a) / (g * g)
}

func (e *divExpr) recip2(a, b uint32) float64 {
	g := e.rhs.Value()
	return 2*e.rhs.Derivative(a)*e.rhs.Derivative(b)/(g*g*g) -
		e.rhs.Derivative2(a, b)/(g*g)
}

func (e *divExpr) recip3(x, y, z uint32) float64 {
	g := e.rhs.Value()
	gx, gy, gz := e.rhs.Derivative(x), e.rhs.Derivative(y), e.rhs.Derivative(z)
	return -6*gx*gy*gz/(g*g*g*g) +
		2*(e.rhs.Derivative2(x, y)*gz+
			e.rhs.Derivative2(x, z)*gy+
			e.rhs.Derivative2(y, z)*gx)/(g*g*g) -
		e.rhs.Derivative3(x, y, z)/(g*g)
}

func (e *divExpr) Derivative(a uint32) float64 {
	return e.lhs.Derivative(a)/e.rhs.Value() + e.lhs.Value()*e.recip1(a)
}

func (e *divExpr) Derivative2(a, b uint32) float64 {
	f := e.lhs
	return f.Derivative2(a, b)/e.rhs.Value() +
		f.Derivative(a)*e.recip1(b) +
		f.Derivative(b)*e.recip1(a) +
		f.Value()*e.recip2(a, b)
}

func (e *divExpr) Derivative3(x, y, z uint32) float64 {
	f := e.lhs
	return f.Derivative3(x, y, z)/e.rhs.Value() +
		f.Derivative2(x, y)*e.recip1(z) +
		f.Derivative2(x, z)*e.recip1(y) +
		f.Derivative2(y, z)*e.recip1(x) +
		f.Derivative(x)*e.recip2(y, z) +
		f.Derivative(y)*e.recip2(x, z) +
		f.Derivative(z)*e.recip2(x, y) +
		f.Value()*e.recip3(x, y, z)
}

func (e *divExpr) PushIDs(set *IDSet, includeDependent bool) {
	e.lhs.PushIDs(set, includeDependent)
	e.rhs.PushIDs(set, includeDependent)
}

func (e *divExpr) IsNonFunction() bool { return false }
func (e *divExpr) IsNonlinear() bool   { return true }

func (e *divExpr) Dynamic() DynamicExpression {
	l, r := e.lhs.Dynamic(), e.rhs.Dynamic()
	return newDynComposite("/", &divExpr{lhs: l, rhs: r}, l, r)
}
