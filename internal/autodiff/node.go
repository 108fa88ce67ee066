package autodiff

// Node is one entry in the Wengert list.
//
// Operations are assumed to be at most binary, so both arrays have exactly
// two slots. Unary and nullary operations zero-fill the unused partial and
// point the unused parent at the node's own index, so every slot is always a
// valid tape position regardless of the true arity.
type Node struct {
	// Partials holds the local partial derivatives of this node's result
	// with respect to its operands, in operand order. Unused slots are 0.
	Partials [2]float64

	// Parents holds the tape indices of the operand nodes, in the same
	// order as Partials. For a node at position i, both entries are <= i:
	// edges only ever point to earlier-recorded nodes, or to the node
	// itself as the no-dependency marker.
	Parents [2]int
}
