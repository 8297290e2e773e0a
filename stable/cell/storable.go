package cell

import "sync"

// AddressBound is the capability a type declares when its validity depends on
// its own memory address: it holds a pointer into itself, or state that must
// never be copied after first use. Such values cannot be stored by copy; build
// them in place with Emplace instead.
//
// Implement it by embedding NoMove:
//
//	type ring struct {
//	    cell.NoMove
//	    head *node // points into buf
//	    buf  [8]node
//	}
type AddressBound interface {
	addressBound()
}

// NoMove is a zero-size marker. Embedding it makes a type AddressBound.
type NoMove struct{}

func (NoMove) addressBound() {}

// IsAddressBound reports whether T must not be stored by copy. It is true when
// *T implements AddressBound, or when *T implements sync.Locker (a lock held by
// value, directly or through embedding). Lock fields that are not embedded are
// not detected; declare those types with NoMove.
//
// Pointer, interface and plain data types are storable.
func IsAddressBound[T any]() bool {
	var p *T
	switch any(p).(type) {
	case AddressBound, sync.Locker:
		return true
	default:
		return false
	}
}
