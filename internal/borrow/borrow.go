// Package borrow provides the runtime form of the Owner/Child aliasing rule.
//
// A Tracker belongs to one owner. It holds a single-writer flag (is a child
// live?) and a generation counter incremented each time a child is derived.
// A Lease records the generation it was issued under; it stays usable only
// while it is the current generation, the flag is set and the owner is open.
//
// Borrow protocol:
//  1. Acquire() - fail if a lease is live, else bump generation and set the flag
//  2. [Check(lease) before each insert]
//  3. Release(lease) - clear the flag if lease is current; idempotent
//
// Close() ends the tracker for good. Every later Acquire/Check fails with
// types.ErrOwnerClosed and Alive reports false.
//
// The tracker is NOT thread-safe. Only one goroutine should use it at a time.
package borrow

import (
	"fmt"

	"github.com/joshuapare/stablekit/pkg/types"
)

// Lease identifies one child borrow.
type Lease struct {
	gen uint64
}

// Generation returns the generation the lease was issued under (1-based).
func (l Lease) Generation() uint64 { return l.gen }

// Tracker enforces at most one live child per owner.
type Tracker struct {
	gen    uint64 // generation of the most recent lease
	active bool   // whether the lease for gen is still live
	closed bool
}

// New returns an open tracker with no live lease.
func New() *Tracker {
	return &Tracker{}
}

// Acquire issues a new lease.
// Returns types.ErrChildActive if the previous lease was not released.
func (t *Tracker) Acquire() (Lease, error) {
	if t.closed {
		return Lease{}, types.ErrOwnerClosed
	}
	if t.active {
		return Lease{}, fmt.Errorf("derive child (generation %d still live): %w", t.gen, types.ErrChildActive)
	}
	t.gen++
	t.active = true
	return Lease{gen: t.gen}, nil
}

// Check reports whether lease may still mutate the owner.
func (t *Tracker) Check(l Lease) error {
	if t.closed {
		return types.ErrOwnerClosed
	}
	if !t.active || l.gen != t.gen || l.gen == 0 {
		return types.ErrChildReleased
	}
	return nil
}

// Release ends lease. Releasing a stale or already released lease is a no-op
// and reports false.
func (t *Tracker) Release(l Lease) bool {
	if t.closed || !t.active || l.gen != t.gen {
		return false
	}
	t.active = false
	return true
}

// Close ends the owner's lifetime. Returns false if already closed.
func (t *Tracker) Close() bool {
	if t.closed {
		return false
	}
	t.closed = true
	t.active = false
	return true
}

// Alive reports whether the owner has not been closed.
// A nil tracker is never alive.
func (t *Tracker) Alive() bool {
	return t != nil && !t.closed
}

// Active reports whether a lease is currently live.
func (t *Tracker) Active() bool { return t.active }

// Generations returns how many leases have been issued.
func (t *Tracker) Generations() uint64 { return t.gen }
