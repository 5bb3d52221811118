package ad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamicMirrorsStaticTree(t *testing.T) {
	x := NewVariable(2.0)
	y := NewVariable(3.0)
	x.SetName("x")
	y.SetName("y")

	expr := Add(Mul(Sin(x), y), Cos(y))
	dyn := expr.Dynamic()

	assert.Equal(t, expr.Value(), dyn.Value())
	for _, a := range []uint32{x.ID(), y.ID()} {
		assert.Equal(t, expr.Derivative(a), dyn.Derivative(a))
		for _, b := range []uint32{x.ID(), y.ID()} {
			assert.Equal(t, expr.Derivative2(a, b), dyn.Derivative2(a, b))
			assert.Equal(t, expr.Derivative3(a, a, b), dyn.Derivative3(a, a, b))
		}
	}

	set := CollectIDs(dyn, true)
	assert.Equal(t, []uint32{x.ID(), y.ID()}, set.IDs())
}

func TestDynamicIsDetached(t *testing.T) {
	x := NewVariable(2.0)
	expr := Mul(Sin(x), x)
	dyn := expr.Dynamic()
	before := dyn.Value()

	// The mirror snapshots leaf values at materialization; mutating the
	// static leaf afterward must not reach it.
	x.SetValue(5.0)
	assert.Equal(t, before, dyn.Value())
	assert.NotEqual(t, expr.Value(), dyn.Value())
}

func TestDynamicStructure(t *testing.T) {
	x := NewVariable(1.0)
	y := NewVariable(2.0)
	x.SetName("x")
	y.SetName("y")

	dyn := Add(Mul(Sin(x), y), Cos(y)).Dynamic()

	require.Equal(t, "+", dyn.Op())
	require.Len(t, dyn.Operands(), 2)

	mul := dyn.Operands()[0]
	assert.Equal(t, "*", mul.Op())
	assert.Equal(t, "sin", mul.Operands()[0].Op())
	assert.Equal(t, "var", mul.Operands()[1].Op())

	assert.Equal(t, "((sin(x) * y) + cos(y))", dyn.String())

	// Leaves report themselves.
	leaf := mul.Operands()[1]
	assert.Empty(t, leaf.Operands())
	assert.Equal(t, "y", leaf.String())
	assert.True(t, leaf.IsNonFunction())
}

func TestDynamicOfDynamicIsSelf(t *testing.T) {
	x := NewVariable(1.5)
	dyn := Exp(x).Dynamic()
	assert.Same(t, dyn, dyn.Dynamic())
	assert.Same(t, dyn.Operands()[0], dyn.Operands()[0].Dynamic())
}

func TestDynamicConstantAndPow(t *testing.T) {
	x := NewVariable(2.0)
	x.SetName("x")

	dyn := Pow(x, Constant(3)).Dynamic()
	assert.Equal(t, "pow", dyn.Op())
	assert.Equal(t, "pow(x, 3)", dyn.String())
	assert.Equal(t, 8.0, dyn.Value())
	assert.Equal(t, 12.0, dyn.Derivative(x.ID()))

	c := dyn.Operands()[1]
	assert.Equal(t, "const", c.Op())
	assert.False(t, c.IsNonlinear())
}

func TestDynamicDependentLeaf(t *testing.T) {
	d := NewDependent(4.0)
	v := NewVariable(1.0)
	dyn := Add(d, v).Dynamic()

	assert.Equal(t, []uint32{v.ID()}, CollectIDs(dyn, false).IDs())
	assert.ElementsMatch(t, []uint32{d.ID(), v.ID()}, CollectIDs(dyn, true).IDs())
}
