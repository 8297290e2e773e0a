package vec

import (
	"fmt"

	"github.com/joshuapare/stablekit/internal/borrow"
	"github.com/joshuapare/stablekit/pkg/types"
	"github.com/joshuapare/stablekit/stable/cell"
)

// Child is the append-only view of an Owner. It can add values and read them
// back; it cannot remove, overwrite or reorder anything.
//
// Every Ref a Child returns is valid for the Owner's lifetime, including after
// the Child is released.
type Child[T any] struct {
	o     *Owner[T]
	lease borrow.Lease
}

// Push stores a copy of v at index Len() and returns a Ref to it.
//
// Returns types.ErrNotStorable if T is address-bound (use Emplace), or a state
// error if the child was released or the owner closed.
func (c *Child[T]) Push(v T) (cell.Ref[T], error) {
	if err := c.o.life.Check(c.lease); err != nil {
		return cell.Ref[T]{}, err
	}
	if c.o.bound {
		return cell.Ref[T]{}, fmt.Errorf("push %T: %w", v, types.ErrNotStorable)
	}
	return c.o.push(cell.New(v)), nil
}

// Emplace appends a value built in place by init and returns a Ref to it.
// init receives the value's final address. Any type may be stored this way.
func (c *Child[T]) Emplace(init func(p *T)) (cell.Ref[T], error) {
	if err := c.o.life.Check(c.lease); err != nil {
		return cell.Ref[T]{}, err
	}
	return c.o.push(cell.Emplace(init)), nil
}

// MustPush is like Push but panics on error.
func (c *Child[T]) MustPush(v T) cell.Ref[T] {
	r, err := c.Push(v)
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns the value at index i, or types.ErrOutOfRange.
func (c *Child[T]) Get(i int) (cell.Ref[T], error) {
	if err := c.o.life.Check(c.lease); err != nil {
		return cell.Ref[T]{}, err
	}
	return c.o.get(i)
}

// Len returns the owner's current length.
func (c *Child[T]) Len() int { return c.o.Len() }

// Release ends the borrow so the owner can derive another Child.
// Refs obtained through c remain valid. Releasing twice is a no-op.
func (c *Child[T]) Release() {
	if c.o.life.Release(c.lease) {
		c.o.log.Debug("child released", "generation", c.lease.Generation(), "len", len(c.o.cells))
	}
}
