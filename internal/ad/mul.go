package ad

// mulExpr represents lhs * rhs, differentiated by the general Leibniz
// product rule at each order.
type mulExpr struct {
	lhs, rhs Expression
}

// Mul returns the product of two expressions.
func Mul(lhs, rhs Expression) Expression {
	return &mulExpr{lhs: lhs, rhs: rhs}
}

func (e *mulExpr) Value() float64 {
	return e.lhs.Value() * e.rhs.Value()
}

func (e *mulExpr) Derivative(a uint32) float64 {
	return e.lhs.Derivative(a)*e.rhs.Value() + e.lhs.Value()*e.rhs.Derivative(a)
}

// Derivative2 expands the four-term second-order product rule
// f”g + f'(a)g'(b) + f'(b)g'(a) + fg”. Repeated identifiers need no
// special case: the operand routines collapse correctly when a == b.
func (e *mulExpr) Derivative2(a, b uint32) float64 {
	f, g := e.lhs, e.rhs
	return f.Derivative2(a, b)*g.Value() +
		f.Derivative(a)*g.Derivative(b) +
		f.Derivative(b)*g.Derivative(a) +
		f.Value()*g.Derivative2(a, b)
}

// Derivative3 expands the full eight-term trilinear product rule over
// x, y, z.
func (e *mulExpr) Derivative3(x, y, z uint32) float64 {
	f, g := e.lhs, e.rhs
	return f.Derivative3(x, y, z)*g.Value() +
		f.Derivative2(x, y)*g.Derivative(z) +
		f.Derivative2(x, z)*g.Derivative(y) +
		f.Derivative2(y, z)*g.Derivative(x) +
		f.Derivative(x)*g.Derivative2(y, z) +
		f.Derivative(y)*g.Derivative2(x, z) +
		f.Derivative(z)*g.Derivative2(x, y) +
		f.Value()*g.Derivative3(x, y, z)
}

func (e *mulExpr) PushIDs(set *IDSet, includeDependent bool) {
	e.lhs.PushIDs(set, includeDependent)
	e.rhs.PushIDs(set, includeDependent)
}

func (e *mulExpr) IsNonFunction() bool { return false }
func (e *mulExpr) IsNonlinear() bool   { return true }

func (e *mulExpr) Dynamic() DynamicExpression {
	l, r := e.lhs.Dynamic(), e.rhs.Dynamic()
	return newDynComposite("*", &mulExpr{lhs: l, rhs: r}, l, r)
}
