package autodiff

import "fmt"

// Operation tags the arity of a recorded elementary operation. It selects
// how Tape.Push fills the two node slots.
type Operation int

const (
	// Nullary is an operation with no differentiable operands, such as
	// introducing an independent input.
	Nullary Operation = iota

	// Unary is an operation with one differentiable operand, such as sin(x).
	Unary

	// Binary is an operation with two differentiable operands, such as x + y.
	Binary
)

// String returns the arity name.
func (op Operation) String() string {
	switch op {
	case Nullary:
		return "Nullary"
	case Unary:
		return "Unary"
	case Binary:
		return "Binary"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}
