package calc

// Operator is a binary arithmetic operation.
type Operator int

// Supported operators. The zero value is not a valid operator.
const (
	Add Operator = iota + 1
	Subtract
	Multiply
	Divide
)

// Evaluate applies the operator to left and right.
// Division by zero is not guarded here; State.Calculate handles it.
func (op Operator) Evaluate(left, right float64) float64 {
	switch op {
	case Add:
		return left + right
	case Subtract:
		return left - right
	case Multiply:
		return left * right
	case Divide:
		return left / right
	default:
		return 0
	}
}

// Valid returns true if op is one of the four operators.
func (op Operator) Valid() bool {
	return op >= Add && op <= Divide
}

// Symbol returns the button label for the operator.
func (op Operator) Symbol() rune {
	switch op {
	case Add:
		return '+'
	case Subtract:
		return '-'
	case Multiply:
		return 'x'
	case Divide:
		return '/'
	default:
		return '?'
	}
}

// String returns the operator name.
func (op Operator) String() string {
	switch op {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	default:
		return "unknown"
	}
}
