// Package cell provides the stable storage primitive shared by the stable
// containers.
//
// # Overview
//
// A growable container relocates its elements when it reallocates. Anything
// that pointed at an element before the grow now points at stale memory (in Go:
// at a copy the container no longer uses). This package removes the problem by
// construction: a container of *Cell never moves a value, only the pointer to it.
//
//	index (slice or map)         heap
//	+--------+--------+          +--------+
//	| *Cell  | *Cell  |  ----->  | value0 |   address fixed for life
//	+--------+--------+          +--------+
//	    grow: pointers copied,   +--------+
//	    cells untouched          | value1 |
//	                             +--------+
//
// # Types
//
//   - Cell[T]: one heap allocation holding one value. Read access only.
//   - Ref[T]: what callers keep. Cell pointer plus the owner's lifetime tracker.
//   - AddressBound / NoMove: capability marker for types that must not be copied.
//
// # Storable Types
//
// Storing by value (New) copies the caller's value into the cell once. That copy
// is safe for plain data, pointers, slices, maps and interfaces. It is not safe for
// a type that points into itself or holds a lock by value. Those types declare
// AddressBound (by embedding NoMove) and are built in place with Emplace, which
// never copies:
//
//	c := cell.Emplace(func(p *ring) { p.head = &p.buf[0] })
//
// # Lifetime
//
// A Ref never outlives its owner in a valid program. Go's collector would keep
// the memory alive regardless, so the rule is enforced at runtime instead: after
// the owner closes, Ref.Get panics and Ref.TryGet returns types.ErrOwnerClosed.
package cell
