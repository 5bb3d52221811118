package ad

import (
	"fmt"
	"strconv"
	"strings"
)

// DynamicExpression is the type-erased, heap-owned mirror of a static
// expression tree, produced by Expression.Dynamic. It answers the same value
// and derivative queries as the static tree and additionally exposes its
// structure for storage, rendering or deferred evaluation.
//
// A mirror owns its entire subtree and holds no references into the static
// tree it was materialized from: leaf values are snapshotted at
// materialization, so later mutation of a static Variable does not change
// the mirror.
type DynamicExpression interface {
	Expression

	// Op identifies the node kind: "const", "var", the operator symbol for
	// binary nodes, or the function name for unary nodes.
	Op() string

	// Operands returns the node's child mirrors, empty for leaves.
	Operands() []DynamicExpression

	// String renders the subtree in infix notation.
	String() string
}

// dynComposite wraps a static math node rebuilt over already-materialized
// operands, so the derivative formulas live in one place.
type dynComposite struct {
	Expression
	op       string
	operands []DynamicExpression
}

func newDynComposite(op string, eval Expression, operands ...DynamicExpression) DynamicExpression {
	return &dynComposite{Expression: eval, op: op, operands: operands}
}

func (d *dynComposite) Op() string                    { return d.op }
func (d *dynComposite) Operands() []DynamicExpression { return d.operands }
func (d *dynComposite) Dynamic() DynamicExpression    { return d }

func (d *dynComposite) String() string {
	switch {
	case len(d.operands) == 2 && len(d.op) == 1:
		return fmt.Sprintf("(%s %s %s)", d.operands[0], d.op, d.operands[1])
	case len(d.operands) == 2:
		return fmt.Sprintf("%s(%s, %s)", d.op, d.operands[0], d.operands[1])
	default:
		args := make([]string, len(d.operands))
		for i, o := range d.operands {
			args[i] = o.String()
		}
		return fmt.Sprintf("%s(%s)", d.op, strings.Join(args, ", "))
	}
}

// dynConstant mirrors a constant leaf.
type dynConstant struct {
	value float64
}

func (d *dynConstant) Value() float64                     { return d.value }
func (d *dynConstant) Derivative(uint32) float64          { return 0 }
func (d *dynConstant) Derivative2(_, _ uint32) float64    { return 0 }
func (d *dynConstant) Derivative3(_, _, _ uint32) float64 { return 0 }
func (d *dynConstant) PushIDs(*IDSet, bool)               {}
func (d *dynConstant) IsNonFunction() bool                { return true }
func (d *dynConstant) IsNonlinear() bool                  { return false }
func (d *dynConstant) Dynamic() DynamicExpression         { return d }
func (d *dynConstant) Op() string                         { return "const" }
func (d *dynConstant) Operands() []DynamicExpression      { return nil }

func (d *dynConstant) String() string {
	return strconv.FormatFloat(d.value, 'g', -1, 64)
}

// dynVariable mirrors an independent-variable leaf. The identifier is kept
// so derivative queries keep answering, but the value is a snapshot.
type dynVariable struct {
	id        uint32
	value     float64
	name      string
	dependent bool
}

func (d *dynVariable) Value() float64 { return d.value }

func (d *dynVariable) Derivative(a uint32) float64 {
	if a == d.id {
		return 1
	}
	return 0
}

func (d *dynVariable) Derivative2(_, _ uint32) float64    { return 0 }
func (d *dynVariable) Derivative3(_, _, _ uint32) float64 { return 0 }

func (d *dynVariable) PushIDs(set *IDSet, includeDependent bool) {
	if d.dependent && !includeDependent {
		return
	}
	set.Add(d.id)
}

func (d *dynVariable) IsNonFunction() bool           { return true }
func (d *dynVariable) IsNonlinear() bool             { return false }
func (d *dynVariable) Dynamic() DynamicExpression    { return d }
func (d *dynVariable) Op() string                    { return "var" }
func (d *dynVariable) Operands() []DynamicExpression { return nil }
func (d *dynVariable) String() string                { return d.name }
