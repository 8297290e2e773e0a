package stable

import (
	"github.com/joshuapare/stablekit/pkg/types"
	"github.com/joshuapare/stablekit/stable/cell"
	"github.com/joshuapare/stablekit/stable/hashmap"
	"github.com/joshuapare/stablekit/stable/vec"
)

// Ref is a reference valid for its owner's lifetime (re-exported for convenience).
type Ref[T any] = cell.Ref[T]

// Sequence form (re-exported for convenience).
type (
	VecOwner[T any] = vec.Owner[T]
	VecChild[T any] = vec.Child[T]
	VecOptions      = vec.Options
	VecStats        = vec.Stats
)

// Keyed form (re-exported for convenience).
type (
	MapOwner[K comparable, V any] = hashmap.Owner[K, V]
	MapChild[K comparable, V any] = hashmap.Child[K, V]
	MapOptions[K comparable]      = hashmap.Options[K]
	MapStats                      = hashmap.Stats
)

// NoMove marks a type as address-bound (re-exported for convenience).
type NoMove = cell.NoMove

// Errors (re-exported for convenience).
var (
	ErrNotFound      = types.ErrNotFound
	ErrOutOfRange    = types.ErrOutOfRange
	ErrKeyExists     = types.ErrKeyExists
	ErrChildActive   = types.ErrChildActive
	ErrChildReleased = types.ErrChildReleased
	ErrOwnerClosed   = types.ErrOwnerClosed
	ErrNotStorable   = types.ErrNotStorable
)

// NewVec creates an empty sequence owner with default options.
func NewVec[T any]() *VecOwner[T] {
	return vec.New[T](nil)
}

// NewMap creates an empty keyed owner with default options.
func NewMap[K comparable, V any]() *MapOwner[K, V] {
	return hashmap.New[K, V](nil)
}

// NewFoldedMap creates a keyed owner whose string keys compare
// case-insensitively (Unicode case folding).
func NewFoldedMap[V any]() *MapOwner[string, V] {
	return hashmap.New[string, V](&hashmap.Options[string]{Normalize: hashmap.FoldCase})
}

// StorableByCopy reports whether T may be passed to Push/Insert. Types for
// which it is false must go through Emplace/InsertFunc.
func StorableByCopy[T any]() bool {
	return !cell.IsAddressBound[T]()
}
