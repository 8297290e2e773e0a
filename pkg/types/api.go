package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindUnknown  ErrKind = iota // not produced by this module
	ErrKindNotFound                // missing key
	ErrKindRange                   // index outside [0, len)
	ErrKindExists                  // key already present, insert rejected
	ErrKindState                   // invalid operation for current borrow/lifetime state
	ErrKindType                    // value type cannot be stored by copy
)

// String implements fmt.Stringer.
func (k ErrKind) String() string {
	switch k {
	case ErrKindNotFound:
		return "not-found"
	case ErrKindRange:
		return "range"
	case ErrKindExists:
		return "exists"
	case ErrKindState:
		return "state"
	case ErrKindType:
		return "type"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels returned (usually wrapped) by the stable containers.
var (
	// ErrNotFound indicates a lookup for a key that was never inserted.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "key not found"}
	// ErrOutOfRange indicates an index lookup at or beyond the current length.
	ErrOutOfRange = &Error{Kind: ErrKindRange, Msg: "index out of range"}
	// ErrKeyExists indicates an insert was rejected because the key is present.
	// The stored value and its address are left untouched.
	ErrKeyExists = &Error{Kind: ErrKindExists, Msg: "key already exists"}
	// ErrChildActive indicates a second child was requested while one is live.
	ErrChildActive = &Error{Kind: ErrKindState, Msg: "owner already has an active child"}
	// ErrChildReleased indicates use of a child after Release.
	ErrChildReleased = &Error{Kind: ErrKindState, Msg: "child has been released"}
	// ErrOwnerClosed indicates use of an owner, child or reference after Close.
	ErrOwnerClosed = &Error{Kind: ErrKindState, Msg: "owner is closed"}
	// ErrNotStorable indicates a by-value store of an address-bound type.
	ErrNotStorable = &Error{Kind: ErrKindType, Msg: "type is address-bound and cannot be stored by copy"}
)

// KindOf returns the kind of the first *Error found in err's chain,
// or ErrKindUnknown.
func KindOf(err error) ErrKind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return ErrKindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrKind) bool {
	return err != nil && KindOf(err) == kind
}
