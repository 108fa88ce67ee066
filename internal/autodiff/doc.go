// Package autodiff implements scalar reverse-mode automatic differentiation
// on a Wengert list (tape).
//
// Architecture:
//   - Tape: an append-only log of elementary operations, one Node each
//   - Node: up to two (partial derivative, parent index) pairs, fixed shape
//   - Variable: a value/index pair bound to a tape, carrying the operator set
//   - Accumulate: walks the tape backwards and propagates adjoints
//
// Every arithmetic primitive decomposes into nullary, unary, or binary steps;
// higher-arity expressions are compositions of binary nodes. This keeps the
// backward-pass inner loop branch-free: each node has exactly two parent
// slots, and unused slots point at the node itself with a zero partial, so
// the walk visits both slots unconditionally.
//
// Usage:
//
//	tape := autodiff.NewTape()
//	x := tape.Var(3.0)
//	y := tape.Var(4.0)
//	z := x.Mul(y).Add(x.Sin())
//
//	grad := z.Accumulate()
//	fmt.Println(grad.Wrt(x)) // dz/dx = y + cos(x)
//	fmt.Println(grad.Wrt(y)) // dz/dy = x
package autodiff
