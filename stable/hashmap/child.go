package hashmap

import (
	"fmt"

	"github.com/joshuapare/stablekit/internal/borrow"
	"github.com/joshuapare/stablekit/pkg/types"
	"github.com/joshuapare/stablekit/stable/cell"
)

// Child is the insert-only view of an Owner. It can add entries under new keys
// and read entries back; it cannot remove or replace anything.
//
// Every Ref a Child returns is valid for the Owner's lifetime, including after
// the Child is released.
type Child[K comparable, V any] struct {
	o     *Owner[K, V]
	lease borrow.Lease
}

// Insert stores a copy of v under key and returns a Ref to it.
//
// If key is already present nothing is stored: Insert returns the existing Ref
// together with types.ErrKeyExists. The existing value and its address are
// unchanged, so Refs handed out earlier stay correct.
func (c *Child[K, V]) Insert(key K, v V) (cell.Ref[V], error) {
	r, inserted, err := c.TryInsert(key, v)
	if err != nil {
		return cell.Ref[V]{}, err
	}
	if !inserted {
		return r, fmt.Errorf("insert %v: %w", key, types.ErrKeyExists)
	}
	return r, nil
}

// TryInsert is Insert with the collision reported as a bool: inserted is false
// and r is the existing entry when key was present. err only reports a
// released child, a closed owner, or an address-bound V.
func (c *Child[K, V]) TryInsert(key K, v V) (r cell.Ref[V], inserted bool, err error) {
	if err = c.o.life.Check(c.lease); err != nil {
		return cell.Ref[V]{}, false, err
	}
	k := c.o.key(key)
	if ex, ok := c.o.existing(k); ok {
		return ex, false, nil
	}
	if c.o.bound {
		return cell.Ref[V]{}, false, fmt.Errorf("insert %T: %w", v, types.ErrNotStorable)
	}
	return c.o.insert(k, cell.New(v)), true, nil
}

// InsertFunc stores a value built in place by init under key. init is not
// called when key is present; the existing Ref and types.ErrKeyExists are
// returned instead. Any type may be stored this way.
func (c *Child[K, V]) InsertFunc(key K, init func(p *V)) (cell.Ref[V], error) {
	if err := c.o.life.Check(c.lease); err != nil {
		return cell.Ref[V]{}, err
	}
	k := c.o.key(key)
	if r, ok := c.o.existing(k); ok {
		return r, fmt.Errorf("insert %v: %w", key, types.ErrKeyExists)
	}
	return c.o.insert(k, cell.Emplace(init)), nil
}

// MustInsert is like Insert but panics on any error, including a present key.
func (c *Child[K, V]) MustInsert(key K, v V) cell.Ref[V] {
	r, err := c.Insert(key, v)
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns the value stored under key, or types.ErrNotFound.
func (c *Child[K, V]) Get(key K) (cell.Ref[V], error) {
	if err := c.o.life.Check(c.lease); err != nil {
		return cell.Ref[V]{}, err
	}
	return c.o.get(c.o.key(key))
}

// Contains reports whether key is present.
func (c *Child[K, V]) Contains(key K) bool { return c.o.Contains(key) }

// Len returns the owner's current number of entries.
func (c *Child[K, V]) Len() int { return c.o.Len() }

// Release ends the borrow so the owner can derive another Child.
// Refs obtained through c remain valid. Releasing twice is a no-op.
func (c *Child[K, V]) Release() {
	if c.o.life.Release(c.lease) {
		c.o.log.Debug("child released", "generation", c.lease.Generation(), "len", len(c.o.cells))
	}
}
