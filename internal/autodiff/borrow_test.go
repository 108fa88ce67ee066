package autodiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBorrowCell_SharedBorrowsStack(t *testing.T) {
	var c borrowCell

	c.borrow()
	c.borrow()
	c.release()
	c.release()

	// Fully released, so an exclusive borrow succeeds.
	c.borrowMut()
	c.releaseMut()
}

func TestBorrowCell_MutWhileSharedPanics(t *testing.T) {
	var c borrowCell

	c.borrow()
	defer c.release()

	assert.PanicsWithValue(t, "autodiff: tape already borrowed", func() {
		c.borrowMut()
	})
}

func TestBorrowCell_MutWhileMutPanics(t *testing.T) {
	var c borrowCell

	c.borrowMut()
	defer c.releaseMut()

	assert.PanicsWithValue(t, "autodiff: tape already borrowed", func() {
		c.borrowMut()
	})
}

func TestBorrowCell_SharedWhileMutPanics(t *testing.T) {
	var c borrowCell

	c.borrowMut()
	defer c.releaseMut()

	assert.PanicsWithValue(t, "autodiff: tape already mutably borrowed", func() {
		c.borrow()
	})
}

// TestTape_PushDuringTraversalPanics simulates the reentrancy hazard: a
// mutation attempted while a read borrow on the same tape is outstanding
// must fail fast instead of invalidating the reader's view.
func TestTape_PushDuringTraversalPanics(t *testing.T) {
	tape := NewTape()
	tape.PushNullary()

	tape.borrows.borrow()
	defer tape.borrows.release()

	assert.Panics(t, func() { tape.PushNullary() })
	assert.Panics(t, func() { tape.Clear() })
	assert.Panics(t, func() { tape.Zero() })
}
