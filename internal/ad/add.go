package ad

// addExpr represents lhs + rhs. Derivatives distribute additively at every
// order.
type addExpr struct {
	lhs, rhs Expression
}

// Add returns the sum of two expressions.
func Add(lhs, rhs Expression) Expression {
	return &addExpr{lhs: lhs, rhs: rhs}
}

// Neg returns the negation of e, expressed as 0 - e.
func Neg(e Expression) Expression {
	return Sub(Constant(0), e)
}

func (e *addExpr) Value() float64 {
	return e.lhs.Value() + e.rhs.Value()
}

func (e *addExpr) Derivative(a uint32) float64 {
	return e.lhs.Derivative(a) + e.rhs.Derivative(a)
}

func (e *addExpr) Derivative2(a, b uint32) float64 {
	return e.lhs.Derivative2(a, b) + e.rhs.Derivative2(a, b)
}

func (e *addExpr) Derivative3(x, y, z uint32) float64 {
	return e.lhs.Derivative3(x, y, z) + e.rhs.Derivative3(x, y, z)
}

func (e *addExpr) PushIDs(set *IDSet, includeDependent bool) {
	e.lhs.PushIDs(set, includeDependent)
	e.rhs.PushIDs(set, includeDependent)
}

func (e *addExpr) IsNonFunction() bool { return false }

func (e *addExpr) IsNonlinear() bool {
	return e.lhs.IsNonlinear() || e.rhs.IsNonlinear()
}

func (e *addExpr) Dynamic() DynamicExpression {
	l, r := e.lhs.Dynamic(), e.rhs.Dynamic()
	return newDynComposite("+", &addExpr{lhs: l, rhs: r}, l, r)
}
