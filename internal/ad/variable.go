package ad

import (
	"fmt"
	"sync/atomic"
)

// nextID allocates identifiers for independent-variable leaves. Identifier 0
// is never handed out, so derivative queries against id 0 are always a clean
// "not a dependency" answer.
var nextID atomic.Uint32

// Variable is an independent-variable leaf: a named storage cell with a
// unique identifier and an externally assigned current value. It is the only
// node kind that terminates the derivative recursion with a nonzero result.
//
// A Variable's value may be mutated between evaluations, but never while a
// tree referencing it is being evaluated from another goroutine.
type Variable struct {
	id        uint32
	value     float64
	name      string
	dependent bool
}

// NewVariable creates an independent variable with the given initial value
// and a fresh identifier.
func NewVariable(value float64) *Variable {
	return &Variable{id: nextID.Add(1), value: value}
}

// NewDependent creates a leaf for a computed quantity that has been frozen
// into variable storage. Dependent leaves still carry identifiers and
// derivatives, but PushIDs skips them unless includeDependent is set.
func NewDependent(value float64) *Variable {
	v := NewVariable(value)
	v.dependent = true
	return v
}

// ID returns the leaf's identifier, stable for its lifetime.
func (v *Variable) ID() uint32 { return v.id }

// SetValue assigns the leaf's current value.
func (v *Variable) SetValue(x float64) { v.value = x }

// SetName assigns a display name used by the dynamic mirror's String output.
func (v *Variable) SetName(name string) { v.name = name }

// Name returns the display name, defaulting to "x<id>".
func (v *Variable) Name() string {
	if v.name == "" {
		return fmt.Sprintf("x%d", v.id)
	}
	return v.name
}

// Dependent reports whether the leaf was created with NewDependent.
func (v *Variable) Dependent() bool { return v.dependent }

func (v *Variable) Value() float64 { return v.value }

func (v *Variable) Derivative(a uint32) float64 {
	if a == v.id {
		return 1
	}
	return 0
}

// A bare variable has no curvature.
func (v *Variable) Derivative2(a, b uint32) float64    { return 0 }
func (v *Variable) Derivative3(x, y, z uint32) float64 { return 0 }

func (v *Variable) PushIDs(set *IDSet, includeDependent bool) {
	if v.dependent && !includeDependent {
		return
	}
	set.Add(v.id)
}

func (v *Variable) IsNonFunction() bool { return true }
func (v *Variable) IsNonlinear() bool   { return false }

func (v *Variable) Dynamic() DynamicExpression {
	return &dynVariable{id: v.id, value: v.value, name: v.Name(), dependent: v.dependent}
}
