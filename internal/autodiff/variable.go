package autodiff

import "fmt"

// Variable couples a value with the tape position that produced it. It is
// the handle client code uses to build expressions: every operator method
// computes the result value, records a node with the local partial
// derivative(s), and returns a new Variable for the result.
//
// Variables are small value types and cheap to copy. They are created only
// by Tape.Var and Tape.Vars; after the tape is cleared, previously issued
// Variables are stale and must not be used against it.
type Variable struct {
	tape *Tape

	// Index is the position of this variable's node on the tape.
	Index int

	// Value is the numeric result of the operation that produced this
	// variable. The tape never reads it; only the operator methods do.
	Value float64
}

// Tape returns the tape this variable records onto.
func (v Variable) Tape() *Tape {
	return v.tape
}

// String formats the variable as value @ index.
func (v Variable) String() string {
	return fmt.Sprintf("Variable(%g @ %d)", v.Value, v.Index)
}

// sameTape returns the operands' shared tape. Mixing variables from two
// tapes is a programming error in the expression layer and panics.
func sameTape(v, w Variable) *Tape {
	if v.tape != w.tape {
		panic("autodiff: variables recorded on different tapes")
	}
	return v.tape
}
