package ad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSinScenario is the worked example from the package documentation:
// expr = sin(v1)*v2 + cos(v2) at v1=2, v2=3.
func TestSinScenario(t *testing.T) {
	v1 := NewVariable(2.0)
	v2 := NewVariable(3.0)
	expr := Add(Mul(Sin(v1), v2), Cos(v2))

	assert.InDelta(t, math.Sin(2)*3+math.Cos(3), expr.Value(), tol)
	assert.InDelta(t, math.Cos(2)*3, expr.Derivative(v1.ID()), tol)
	assert.InDelta(t, math.Sin(2)-math.Sin(3), expr.Derivative(v2.ID()), tol)
	assert.InDelta(t, math.Cos(2), expr.Derivative2(v1.ID(), v2.ID()), tol)
}

func TestChainRuleComposite(t *testing.T) {
	x := NewVariable(1.3)
	id := x.ID()

	// h = sin(x²): h' = 2x·cos(x²), h'' = 2cos(x²) - 4x²·sin(x²).
	h := Sin(Mul(x, x))
	v := 1.3 * 1.3
	assert.InDelta(t, math.Sin(v), h.Value(), tol)
	assert.InDelta(t, 2*1.3*math.Cos(v), h.Derivative(id), tol)
	assert.InDelta(t, 2*math.Cos(v)-4*v*math.Sin(v), h.Derivative2(id, id), tol)

	// g = log(sqrt(x)) = ln(x)/2: g' = 1/(2x), g'' = -1/(2x²), g''' = 1/x³.
	x.SetValue(2.0)
	g := Log(Sqrt(x))
	assert.InDelta(t, math.Log(2)/2, g.Value(), tol)
	assert.InDelta(t, 0.25, g.Derivative(id), tol)
	assert.InDelta(t, -0.125, g.Derivative2(id, id), tol)
	assert.InDelta(t, 0.125, g.Derivative3(id, id, id), tol)
}

func TestHyperbolicThirdOrder(t *testing.T) {
	x := NewVariable(0.7)
	id := x.ID()

	// sinh and cosh are each other's derivatives at every order.
	s := Sinh(x)
	assert.InDelta(t, math.Cosh(0.7), s.Derivative(id), tol)
	assert.InDelta(t, math.Sinh(0.7), s.Derivative2(id, id), tol)
	assert.InDelta(t, math.Cosh(0.7), s.Derivative3(id, id, id), tol)

	c := Cosh(x)
	assert.InDelta(t, math.Sinh(0.7), c.Derivative(id), tol)
	assert.InDelta(t, math.Cosh(0.7), c.Derivative2(id, id), tol)
	assert.InDelta(t, math.Sinh(0.7), c.Derivative3(id, id, id), tol)
}

func TestPowBothBranches(t *testing.T) {
	x := NewVariable(2.0)
	y := NewVariable(3.0)
	h := Pow(x, y)

	require.InDelta(t, 8.0, h.Value(), tol)
	// d/dx = y·x^(y-1), d/dy = x^y·ln x.
	assert.InDelta(t, 12.0, h.Derivative(x.ID()), tol)
	assert.InDelta(t, 8*math.Ln2, h.Derivative(y.ID()), tol)
	// d²/dx² = y(y-1)x^(y-2), d²/dxdy = x^(y-1)·(1 + y·ln x).
	assert.InDelta(t, 12.0, h.Derivative2(x.ID(), x.ID()), tol)
	assert.InDelta(t, 4*(1+3*math.Ln2), h.Derivative2(x.ID(), y.ID()), tol)
	// d³/dx³ = y(y-1)(y-2)x^(y-3).
	assert.InDelta(t, 6.0, h.Derivative3(x.ID(), x.ID(), x.ID()), tol)
}

func TestPowScalarNegativeBase(t *testing.T) {
	x := NewVariable(-3.0)
	h := PowScalar(x, 2)

	// The constant-exponent form never touches ln(base), so negative bases
	// differentiate cleanly.
	assert.InDelta(t, 9.0, h.Value(), tol)
	assert.InDelta(t, -6.0, h.Derivative(x.ID()), tol)
	assert.InDelta(t, 2.0, h.Derivative2(x.ID(), x.ID()), tol)
	assert.InDelta(t, 0.0, h.Derivative3(x.ID(), x.ID(), x.ID()), tol)
}

func TestScalarPow(t *testing.T) {
	x := NewVariable(3.0)
	h := ScalarPow(2, x)

	assert.InDelta(t, 8.0, h.Value(), tol)
	assert.InDelta(t, 8*math.Ln2, h.Derivative(x.ID()), tol)
	assert.InDelta(t, 8*math.Ln2*math.Ln2, h.Derivative2(x.ID(), x.ID()), tol)
	assert.InDelta(t, 8*math.Ln2*math.Ln2*math.Ln2, h.Derivative3(x.ID(), x.ID(), x.ID()), tol)
}

func TestFabsFloorCeil(t *testing.T) {
	x := NewVariable(-3.2)
	id := x.ID()

	f := Fabs(x)
	assert.InDelta(t, 3.2, f.Value(), tol)
	assert.InDelta(t, -1.0, f.Derivative(id), tol)
	assert.InDelta(t, 0.0, f.Derivative2(id, id), tol)

	x.SetValue(1.5)
	assert.InDelta(t, 1.0, f.Derivative(id), tol)

	x.SetValue(2.7)
	fl := Floor(x)
	ce := Ceil(x)
	assert.Equal(t, 2.0, fl.Value())
	assert.Equal(t, 3.0, ce.Value())
	assert.Equal(t, 0.0, fl.Derivative(id))
	assert.Equal(t, 0.0, ce.Derivative2(id, id))
	assert.Equal(t, 0.0, fl.Derivative3(id, id, id))
}

func TestDomainEdgesPropagate(t *testing.T) {
	x := NewVariable(-1.0)

	// Out-of-domain input yields non-finite results, never a panic, and
	// they survive further composition.
	assert.True(t, math.IsNaN(Log(x).Value()))
	assert.True(t, math.IsNaN(Sqrt(x).Value()))
	assert.True(t, math.IsNaN(Add(Sqrt(x), Constant(1)).Value()))

	x.SetValue(2.0)
	assert.True(t, math.IsNaN(ASin(x).Value()))
	assert.True(t, math.IsNaN(ASin(x).Derivative(x.ID())))

	x.SetValue(0.0)
	assert.True(t, math.IsInf(Log(x).Value(), -1))
	assert.True(t, math.IsInf(Log(x).Derivative(x.ID()), 1))
}

func TestUnaryStructureFlags(t *testing.T) {
	x := NewVariable(0.5)
	for _, e := range []Expression{Sin(x), Exp(x), Sqrt(x), Floor(x), Tanh(x)} {
		assert.False(t, e.IsNonFunction())
		assert.True(t, e.IsNonlinear())
	}
}

func TestUnaryDependencyDelegation(t *testing.T) {
	x := NewVariable(0.4)
	y := NewVariable(0.6)
	e := Tanh(Mul(x, Exp(y)))

	set := CollectIDs(e, false)
	assert.ElementsMatch(t, []uint32{x.ID(), y.ID()}, set.IDs())
	assert.Equal(t, 2, CountVariables(e))
}
