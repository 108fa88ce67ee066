package autodiff

import "github.com/pkg/errors"

// Gradient holds the adjoints produced by one backward pass: for every tape
// position at or below the seeded output, the partial derivative of the
// output with respect to that position's value.
type Gradient struct {
	adjoints []float64
}

// Accumulate computes the gradient of v with respect to everything recorded
// before it.
//
// Algorithm:
//  1. Seed the adjoint of v's own node with 1.0
//  2. Walk tape positions from v.Index down to 0
//  3. For each node, add partial·adjoint into both parents' adjoints
//
// Both parent slots are visited unconditionally: a self-loop slot carries a
// zero partial, so it contributes nothing. The ordering invariant (parents
// never point forward) guarantees every node's dependents are fully
// processed before the node itself is visited.
func (v Variable) Accumulate() Gradient {
	t := v.tape
	t.borrows.borrow()
	defer t.borrows.release()

	// Positions after v cannot influence it, so the gradient covers
	// indices 0..v.Index only.
	adjoints := make([]float64, v.Index+1)
	adjoints[v.Index] = 1.0

	for i := v.Index; i >= 0; i-- {
		adjoint := adjoints[i]
		if adjoint == 0 {
			continue
		}
		node := t.nodes[i]
		adjoints[node.Parents[0]] += node.Partials[0] * adjoint
		adjoints[node.Parents[1]] += node.Partials[1] * adjoint
	}

	return Gradient{adjoints: adjoints}
}

// Wrt returns the derivative of the accumulated output with respect to w.
// It panics if w's index is outside the gradient, which means w was
// recorded after the output or is stale; use Deriv for the checked form.
func (g Gradient) Wrt(w Variable) float64 {
	return g.adjoints[w.Index]
}

// WrtAll returns the derivatives with respect to each variable, in order.
func (g Gradient) WrtAll(ws []Variable) []float64 {
	derivs := make([]float64, len(ws))
	for i, w := range ws {
		derivs[i] = g.Wrt(w)
	}
	return derivs
}

// Deriv is the checked form of Wrt. It returns an error instead of
// panicking when w's index lies outside the gradient.
func (g Gradient) Deriv(w Variable) (float64, error) {
	if w.Index < 0 || w.Index >= len(g.adjoints) {
		return 0, errors.Errorf(
			"autodiff: variable index %d outside gradient of length %d",
			w.Index, len(g.adjoints),
		)
	}
	return g.adjoints[w.Index], nil
}
