package ad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDeepAdditionChain stacks a thousand operators to confirm the
// recursive evaluation strategy scales to pathologically deep trees.
func TestDeepAdditionChain(t *testing.T) {
	x := NewVariable(2.0)
	expr := Expression(x)
	for i := 0; i < 1000; i++ {
		expr = Add(expr, x)
	}

	assert.InDelta(t, 2.0*1001, expr.Value(), tol)
	assert.InDelta(t, 1001.0, expr.Derivative(x.ID()), tol)
	assert.InDelta(t, 0.0, expr.Derivative2(x.ID(), x.ID()), tol)
	assert.InDelta(t, 0.0, expr.Derivative3(x.ID(), x.ID(), x.ID()), tol)
}

// TestDeepMultiplicationChain builds x^40 one factor at a time; the falling
// factorials confirm the Leibniz expansion composes across depth.
func TestDeepMultiplicationChain(t *testing.T) {
	x := NewVariable(1.0)
	expr := Expression(x)
	for i := 0; i < 39; i++ {
		expr = Mul(expr, x)
	}

	id := x.ID()
	assert.InDelta(t, 1.0, expr.Value(), tol)
	assert.InDelta(t, 40.0, expr.Derivative(id), 1e-9)
	assert.InDelta(t, 40.0*39, expr.Derivative2(id, id), 1e-9)
	assert.InDelta(t, 40.0*39*38, expr.Derivative3(id, id, id), 1e-6)
}

// TestDeepFunctionNesting wraps sin several hundred times.
func TestDeepFunctionNesting(t *testing.T) {
	x := NewVariable(0.5)
	expr := Expression(x)
	for i := 0; i < 300; i++ {
		expr = Sin(expr)
	}

	v := expr.Value()
	assert.True(t, v > 0 && v < 1)

	// Repeated sine contracts derivatives toward zero but must stay finite.
	d := expr.Derivative(x.ID())
	assert.True(t, isFinite(d))
	assert.True(t, d >= 0 && d < 1)
}
