package autodiff

import "github.com/pkg/errors"

// Tape is the Wengert list: an ordered, append-only log of Nodes recorded
// during the forward pass and replayed backwards during Accumulate.
//
// A node's index is its permanent identity. Indices are issued in strictly
// increasing order, are never reused or renumbered, and only Clear can
// invalidate them (all at once). The tape is shared by reference among every
// Variable created from it; access to the node storage is checked at
// runtime (see borrowCell), so an overlapping read and write panics instead
// of corrupting the log.
//
// Usage:
//
//	tape := NewTape()
//	x := tape.Var(2.0)
//	y := x.Mul(x) // y = x²
//	grad := y.Accumulate()
//	fmt.Println(grad.Wrt(x)) // dy/dx = 2x = 4.0
type Tape struct {
	nodes   []Node
	borrows borrowCell
}

// NewTape creates an empty tape. The zero value is also ready to use.
func NewTape() *Tape {
	return &Tape{
		nodes: make([]Node, 0, 64), // Pre-allocate for common case
	}
}

// Len returns the current node count.
func (t *Tape) Len() int {
	t.borrows.borrow()
	defer t.borrows.release()
	return len(t.nodes)
}

// IsEmpty reports whether the tape holds no nodes.
func (t *Tape) IsEmpty() bool {
	return t.Len() == 0
}

// Clear removes all nodes, resetting the tape to empty. Every index issued
// before this call becomes invalid; a Variable still holding one is stale,
// and using it against this tape afterwards is a logic error the tape does
// not detect.
func (t *Tape) Clear() {
	t.borrows.borrowMut()
	defer t.borrows.releaseMut()
	t.nodes = t.nodes[:0]
}

// Zero resets both partial-derivative slots of every node to 0.0, leaving
// parents and node count untouched. Used to reset a recorded graph for a
// fresh backward pass without re-recording the forward computation.
func (t *Tape) Zero() {
	t.borrows.borrowMut()
	defer t.borrows.releaseMut()
	for i := range t.nodes {
		t.nodes[i].Partials = [2]float64{}
	}
}

// Var records one nullary node for an independent input and returns a
// Variable bound to the new index and the supplied value. This is the entry
// point for introducing a differentiable input.
func (t *Tape) Var(value float64) Variable {
	return Variable{
		tape:  t,
		Index: t.PushNullary(),
		Value: value,
	}
}

// Vars records one nullary node per value, in input order, so the i-th
// result's index is the tape length before the call plus i.
func (t *Tape) Vars(values []float64) []Variable {
	vars := make([]Variable, len(values))
	for i, value := range values {
		vars[i] = t.Var(value)
	}
	return vars
}

// PushNullary appends a node with no differentiable operands: both partials
// are 0.0 and both parents are the node's own index. Returns the new index.
func (t *Tape) PushNullary() int {
	t.borrows.borrowMut()
	defer t.borrows.releaseMut()
	idx := len(t.nodes)
	t.nodes = append(t.nodes, Node{
		Parents: [2]int{idx, idx},
	})
	return idx
}

// PushUnary appends a node with one operand. The first slot holds the
// operand's index and local partial; the second slot is the self-loop/zero
// default. Returns the new index.
//
// parent0 must be an index previously issued by this tape and not newer
// than the node being appended; this is not validated here.
func (t *Tape) PushUnary(parent0 int, partial0 float64) int {
	t.borrows.borrowMut()
	defer t.borrows.releaseMut()
	idx := len(t.nodes)
	t.nodes = append(t.nodes, Node{
		Partials: [2]float64{partial0, 0},
		Parents:  [2]int{parent0, idx},
	})
	return idx
}

// PushBinary appends a node with two operands, populating both slots
// directly. Returns the new index. Parent indices are not validated; see
// PushUnary.
func (t *Tape) PushBinary(parent0 int, partial0 float64, parent1 int, partial1 float64) int {
	t.borrows.borrowMut()
	defer t.borrows.releaseMut()
	idx := len(t.nodes)
	t.nodes = append(t.nodes, Node{
		Partials: [2]float64{partial0, partial1},
		Parents:  [2]int{parent0, parent1},
	})
	return idx
}

// Push appends a node selected by an explicit arity tag. It is equivalent
// to the arity-specific push methods: for Unary only slot 0 of each input
// array is honored, for Nullary both arrays are ignored, and the remaining
// slots synthesize the self-loop/zero defaults.
func (t *Tape) Push(op Operation, parents [2]int, partials [2]float64) int {
	t.borrows.borrowMut()
	defer t.borrows.releaseMut()
	idx := len(t.nodes)

	var node Node
	switch op {
	case Nullary:
		node = Node{
			Parents: [2]int{idx, idx},
		}
	case Unary:
		node = Node{
			Partials: [2]float64{partials[0], 0},
			Parents:  [2]int{parents[0], idx},
		}
	case Binary:
		node = Node{
			Partials: partials,
			Parents:  parents,
		}
	default:
		panic("autodiff: unknown operation arity " + op.String())
	}

	t.nodes = append(t.nodes, node)
	return idx
}

// NodeAt returns a copy of the node at index i, for backward-pass traversal
// and inspection. It panics if i is out of range, which usually means the
// caller held on to an index across a Clear.
func (t *Tape) NodeAt(i int) Node {
	t.borrows.borrow()
	defer t.borrows.release()
	return t.nodes[i]
}

// Validate checks the ordering invariant: every node's parents point at the
// node itself or at an earlier position. The push methods never produce a
// violating node on their own, so a failure means the recording layer
// supplied a forward-pointing or out-of-range parent index.
func (t *Tape) Validate() error {
	t.borrows.borrow()
	defer t.borrows.release()
	for i, node := range t.nodes {
		for slot, p := range node.Parents {
			if p < 0 || p > i {
				return errors.Errorf("tape: node %d parent slot %d points at %d", i, slot, p)
			}
		}
	}
	return nil
}
