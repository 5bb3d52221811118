package ad

// scalar is a constant leaf: a literal value with no identifier and
// always-zero derivatives.
type scalar struct {
	value float64
}

// Constant returns a leaf node holding the literal value v.
func Constant(v float64) Expression {
	return &scalar{value: v}
}

func (s *scalar) Value() float64 { return s.value }

func (s *scalar) Derivative(a uint32) float64        { return 0 }
func (s *scalar) Derivative2(a, b uint32) float64    { return 0 }
func (s *scalar) Derivative3(x, y, z uint32) float64 { return 0 }

func (s *scalar) PushIDs(set *IDSet, includeDependent bool) {}

func (s *scalar) IsNonFunction() bool { return true }
func (s *scalar) IsNonlinear() bool   { return false }

func (s *scalar) Dynamic() DynamicExpression {
	return &dynConstant{value: s.value}
}
