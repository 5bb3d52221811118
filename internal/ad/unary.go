package ad

// chain holds an elementary function together with its first three
// derivatives. Every unary node applies the same chain-rule shape; only the
// chain differs between, say, Sin and Log.
type chain struct {
	name string
	fn   func(float64) float64 // f
	d1   func(float64) float64 // f'
	d2   func(float64) float64 // f''
	d3   func(float64) float64 // f'''
}

// unaryExpr represents f(expr) for an elementary function f.
//
// None of the elementary functions validate their domain: log of a negative
// argument, sqrt of a negative argument and so on produce whatever the math
// package returns (NaN or an infinity), which propagates upward unchanged.
type unaryExpr struct {
	expr Expression
	fn   *chain
}

func newUnary(expr Expression, fn *chain) Expression {
	return &unaryExpr{expr: expr, fn: fn}
}

func (u *unaryExpr) Value() float64 {
	return u.fn.fn(u.expr.Value())
}

// Derivative applies the chain rule: expr'(a) * f'(expr).
func (u *unaryExpr) Derivative(a uint32) float64 {
	return u.expr.Derivative(a) * u.fn.d1(u.expr.Value())
}

// Derivative2 applies the second-order chain rule
// f”(v)·e'(a)·e'(b) + f'(v)·e”(a,b).
func (u *unaryExpr) Derivative2(a, b uint32) float64 {
	v := u.expr.Value()
	return u.fn.d2(v)*u.expr.Derivative(a)*u.expr.Derivative(b) +
		u.fn.d1(v)*u.expr.Derivative2(a, b)
}

// Derivative3 applies the full third-order Faà di Bruno expansion:
// f”'·e'e'e' + f”·(pairwise e”·e' terms) + f'·e”'.
func (u *unaryExpr) Derivative3(x, y, z uint32) float64 {
	v := u.expr.Value()
	dx, dy, dz := u.expr.Derivative(x), u.expr.Derivative(y), u.expr.Derivative(z)
	return u.fn.d3(v)*dx*dy*dz +
		u.fn.d2(v)*(u.expr.Derivative2(x, y)*dz+
			u.expr.Derivative2(x, z)*dy+
			u.expr.Derivative2(y, z)*dx) +
		u.fn.d1(v)*u.expr.Derivative3(x, y, z)
}

// A unary function never changes which variables its argument depends on.
func (u *unaryExpr) PushIDs(set *IDSet, includeDependent bool) {
	u.expr.PushIDs(set, includeDependent)
}

func (u *unaryExpr) IsNonFunction() bool { return false }
func (u *unaryExpr) IsNonlinear() bool   { return true }

func (u *unaryExpr) Dynamic() DynamicExpression {
	operand := u.expr.Dynamic()
	return newDynComposite(u.fn.name, &unaryExpr{expr: operand, fn: u.fn}, operand)
}
