// Package ad implements forward-mode automatic differentiation over scalar
// expression trees.
//
// An expression is built by composing leaf nodes (Variable, Constant) with
// binary operators (Add, Sub, Mul, Div) and elementary functions (Sin, Exp,
// Log, ...). Every node satisfies the Expression interface and answers value
// and exact partial-derivative queries up to third order by recursive descent
// into its operands. Nothing is approximated: each node kind implements the
// chain, product and quotient rules of calculus directly.
//
// Trees are immutable once built. Composite nodes hold their operands as
// interface references, never copies, so evaluation walks the original nodes.
// The only mutable state is a Variable's current value, assigned by the
// caller between evaluations.
package ad

// Expression is the contract every node of an expression tree satisfies.
//
// Derivative queries take independent-variable identifiers as allocated by
// NewVariable. Querying an identifier the expression does not depend on
// (including one that was never allocated) yields 0; it is a valid and common
// question, not an error.
type Expression interface {
	// Value returns the node's scalar value, computed on demand from its
	// operands.
	Value() float64

	// Derivative returns the first partial derivative with respect to the
	// variable identified by a.
	Derivative(a uint32) float64

	// Derivative2 returns the second partial derivative with respect to a
	// and b. Mixed partials commute: Derivative2(a, b) == Derivative2(b, a).
	Derivative2(a, b uint32) float64

	// Derivative3 returns the third partial derivative with respect to
	// x, y and z, symmetric in all three identifiers.
	Derivative3(x, y, z uint32) float64

	// PushIDs inserts the identifier of every independent-variable leaf the
	// node transitively depends on into set. When includeDependent is false,
	// leaves marked dependent (computed quantities frozen into variable
	// storage) are skipped. PushIDs never removes entries and is safe to
	// invoke repeatedly on the same tree.
	PushIDs(set *IDSet, includeDependent bool)

	// IsNonFunction reports whether the node's value is a bare literal or
	// variable (degree <= 1). Consumers use it to short-circuit higher-order
	// derivative expansion.
	IsNonFunction() bool

	// IsNonlinear reports whether the node's derivative itself depends on
	// the independent variables, so second and third-order terms cannot be
	// skipped.
	IsNonlinear() bool

	// Dynamic materializes a heap-owned, type-erased mirror of the node's
	// subtree. The mirror is fully detached: leaf values are snapshotted,
	// and the result holds no references into the static tree. Ownership
	// transfers to the caller.
	Dynamic() DynamicExpression
}

// CollectIDs returns the set of independent-variable identifiers e depends
// on, in first-encounter order of a depth-first walk. includeDependent is
// passed through to Expression.PushIDs.
func CollectIDs(e Expression, includeDependent bool) *IDSet {
	set := new(IDSet)
	e.PushIDs(set, includeDependent)
	return set
}

// CountVariables returns the number of distinct independent variables e
// depends on, counting dependent leaves as well.
func CountVariables(e Expression) int {
	return CollectIDs(e, true).Len()
}
