package cell

import (
	"fmt"

	"github.com/joshuapare/stablekit/internal/borrow"
	"github.com/joshuapare/stablekit/pkg/types"
)

// Ref is a reference to a value stored by an owner. Its validity is tied to
// the owner, not to the child that produced it: a Ref stays usable after that
// child is released and after any number of later inserts.
//
// Once the owner is closed every dereference is a contract violation. Get and
// Value panic; TryGet reports the violation instead.
//
// Refs are small values; copy them freely. The zero Ref is unbound.
type Ref[T any] struct {
	c    *Cell[T]
	life *borrow.Tracker
}

// Bind ties c to the lifetime tracked by life. Owners call this; callers
// receive Refs from push, insert and get operations.
func Bind[T any](c *Cell[T], life *borrow.Tracker) Ref[T] {
	return Ref[T]{c: c, life: life}
}

// Valid reports whether the Ref is bound and its owner is still open.
func (r Ref[T]) Valid() bool {
	return r.c != nil && r.life.Alive()
}

// TryGet returns the stable address of the value, or an error if the Ref is
// unbound or its owner has been closed.
func (r Ref[T]) TryGet() (*T, error) {
	if r.c == nil {
		return nil, ErrUnbound
	}
	if !r.life.Alive() {
		return nil, fmt.Errorf("dereference: %w", types.ErrOwnerClosed)
	}
	return r.c.Ptr(), nil
}

// Get returns the stable address of the value. It panics if the owner has
// been closed or the Ref is unbound.
func (r Ref[T]) Get() *T {
	p, err := r.TryGet()
	if err != nil {
		panic(err)
	}
	return p
}

// Value returns a copy of the value. It panics under the same conditions as Get.
func (r Ref[T]) Value() T {
	return *r.Get()
}

// Same reports whether r and o refer to the same cell.
func (r Ref[T]) Same(o Ref[T]) bool {
	return r.c != nil && r.c == o.c
}

// IsZero reports whether the Ref is unbound.
func (r Ref[T]) IsZero() bool { return r.c == nil }

// String implements fmt.Stringer without panicking.
func (r Ref[T]) String() string {
	p, err := r.TryGet()
	if err != nil {
		return "Ref(<invalid>)"
	}
	return fmt.Sprintf("Ref(%v)", *p)
}
