// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Computations are recorded on a Tape (a Wengert list): every elementary
// operation on a Variable appends one fixed-shape node holding its local
// partial derivatives and parent indices. A backward pass then replays the
// log from the output node down to the inputs, accumulating adjoints.
//
// Example:
//
//	import "github.com/wengert-ml/wengert/autodiff"
//
//	func main() {
//	    tape := autodiff.NewTape()
//	    x := tape.Var(2.0)
//	    y := tape.Var(3.0)
//
//	    z := x.Mul(y).Add(x.Sin()) // z = x·y + sin(x)
//
//	    grad := z.Accumulate()
//	    fmt.Println(grad.Wrt(x)) // dz/dx = y + cos(x)
//	    fmt.Println(grad.Wrt(y)) // dz/dy = x
//	}
package autodiff

import (
	"github.com/wengert-ml/wengert/internal/autodiff"
)

// Tape is the Wengert list recording every elementary operation.
type Tape = autodiff.Tape

// NewTape creates an empty tape.
func NewTape() *Tape {
	return autodiff.NewTape()
}

// Node is one tape entry: two partial-derivative slots and two parent
// indices, with self-loops marking unused slots.
type Node = autodiff.Node

// Variable is a value/index pair bound to a tape, carrying the operator set.
type Variable = autodiff.Variable

// Gradient holds the adjoints produced by Variable.Accumulate.
type Gradient = autodiff.Gradient

// Operation tags the arity of a recorded operation for Tape.Push.
type Operation = autodiff.Operation

// Arity tags accepted by Tape.Push.
const (
	Nullary Operation = autodiff.Nullary
	Unary   Operation = autodiff.Unary
	Binary  Operation = autodiff.Binary
)
