package autodiff

import "sync/atomic"

// borrowCell enforces the tape's access discipline at runtime: many shared
// readers, or exactly one mutator, never both. The tape is a single-session
// recording structure, so an overlapping borrow is a programming error in
// the layer above; it panics rather than corrupting the log.
//
// state == 0 means unborrowed, state > 0 counts shared borrows, and
// state == -1 marks an exclusive borrow.
type borrowCell struct {
	state atomic.Int32
}

// borrow takes a shared borrow. Panics if an exclusive borrow is held.
func (c *borrowCell) borrow() {
	for {
		s := c.state.Load()
		if s < 0 {
			panic("autodiff: tape already mutably borrowed")
		}
		if c.state.CompareAndSwap(s, s+1) {
			return
		}
	}
}

// release drops a shared borrow taken with borrow.
func (c *borrowCell) release() {
	c.state.Add(-1)
}

// borrowMut takes the exclusive borrow. Panics if any borrow is held.
func (c *borrowCell) borrowMut() {
	if !c.state.CompareAndSwap(0, -1) {
		panic("autodiff: tape already borrowed")
	}
}

// releaseMut drops the exclusive borrow taken with borrowMut.
func (c *borrowCell) releaseMut() {
	c.state.Store(0)
}
