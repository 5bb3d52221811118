package ad

// subExpr represents lhs - rhs.
type subExpr struct {
	lhs, rhs Expression
}

// Sub returns the difference of two expressions.
func Sub(lhs, rhs Expression) Expression {
	return &subExpr{lhs: lhs, rhs: rhs}
}

func (e *subExpr) Value() float64 {
	return e.lhs.Value() - e.rhs.Value()
}

func (e *subExpr) Derivative(a uint32) float64 {
	return e.lhs.Derivative(a) - e.rhs.Derivative(a)
}

func (e *subExpr) Derivative2(a, b uint32) float64 {
	return e.lhs.Derivative2(a, b) - e.rhs.Derivative2(a, b)
}

func (e *subExpr) Derivative3(x, y, z uint32) float64 {
	return e.lhs.Derivative3(x, y, z) - e.rhs.Derivative3(x, y, z)
}

func (e *subExpr) PushIDs(set *IDSet, includeDependent bool) {
	e.lhs.PushIDs(set, includeDependent)
	e.rhs.PushIDs(set, includeDependent)
}

func (e *subExpr) IsNonFunction() bool { return false }

func (e *subExpr) IsNonlinear() bool {
	return e.lhs.IsNonlinear() || e.rhs.IsNonlinear()
}

func (e *subExpr) Dynamic() DynamicExpression {
	l, r := e.lhs.Dynamic(), e.rhs.Dynamic()
	return newDynComposite("-", &subExpr{lhs: l, rhs: r}, l, r)
}
