package vec

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/google/uuid"

	"github.com/joshuapare/stablekit/internal/borrow"
	"github.com/joshuapare/stablekit/internal/logging"
	"github.com/joshuapare/stablekit/pkg/types"
	"github.com/joshuapare/stablekit/stable/cell"
)

const (
	// implName is reported in Stats.Impl.
	implName = "vec.Owner"

	// pointerSize is the size of one index slot (*cell.Cell).
	pointerSize = int(unsafe.Sizeof(uintptr(0)))
)

// Owner holds the cell index of an append-only sequence for its whole life.
// It is the only type that can derive a Child and the only one that can drop
// storage (Close).
//
// The Owner is NOT thread-safe. Only one goroutine should use it at a time.
type Owner[T any] struct {
	id    uuid.UUID
	cells []*cell.Cell[T]
	life  *borrow.Tracker
	log   *slog.Logger
	bound bool // T is address-bound; by-value pushes are refused
}

// New creates an empty Owner. A nil opts uses DefaultOptions.
func New[T any](opts *Options) *Owner[T] {
	if opts == nil {
		opts = DefaultOptions()
	}
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = defaultCapacity
	}

	id := uuid.New()
	return &Owner[T]{
		id:    id,
		cells: make([]*cell.Cell[T], 0, capacity),
		life:  borrow.New(),
		log:   logging.ForOwner(opts.Logger, "vec", id),
		bound: cell.IsAddressBound[T](),
	}
}

// Child derives the insert-only view. Only one Child may be live at a time:
// Release the previous one first, or this returns types.ErrChildActive.
func (o *Owner[T]) Child() (*Child[T], error) {
	lease, err := o.life.Acquire()
	if err != nil {
		return nil, err
	}
	o.log.Debug("child derived", "generation", lease.Generation(), "len", len(o.cells))
	return &Child[T]{o: o, lease: lease}, nil
}

// Get returns the value at index i. Reading never needs a Child.
// Returns types.ErrOutOfRange if i is not in [0, Len()).
func (o *Owner[T]) Get(i int) (cell.Ref[T], error) {
	if !o.life.Alive() {
		return cell.Ref[T]{}, types.ErrOwnerClosed
	}
	return o.get(i)
}

// Len returns the number of stored values.
func (o *Owner[T]) Len() int { return len(o.cells) }

// ID returns the owner's identity, as used in log records.
func (o *Owner[T]) ID() uuid.UUID { return o.id }

// Closed reports whether Close has been called.
func (o *Owner[T]) Closed() bool { return !o.life.Alive() }

// Close drops all storage. Every Ref and Child derived from this owner is
// invalid afterwards. Calling Close again is a no-op.
func (o *Owner[T]) Close() error {
	if !o.life.Close() {
		return nil
	}
	o.log.Debug("owner closed", "len", len(o.cells), "generations", o.life.Generations())
	o.cells = nil
	return nil
}

// Stats returns counters and a rough memory estimate.
func (o *Owner[T]) Stats() Stats {
	var zero T
	n := len(o.cells)
	return Stats{
		Len:         n,
		Children:    o.life.Generations(),
		BytesApprox: cap(o.cells)*pointerSize + n*int(unsafe.Sizeof(zero)),
		Impl:        implName,
	}
}

func (o *Owner[T]) get(i int) (cell.Ref[T], error) {
	if i < 0 || i >= len(o.cells) {
		return cell.Ref[T]{}, fmt.Errorf("get index %d (len %d): %w", i, len(o.cells), types.ErrOutOfRange)
	}
	return cell.Bind(o.cells[i], o.life), nil
}

// push appends c and returns its Ref. Appending may reallocate o.cells;
// the cell itself is not touched.
func (o *Owner[T]) push(c *cell.Cell[T]) cell.Ref[T] {
	o.cells = append(o.cells, c)
	return cell.Bind(c, o.life)
}

// Stats reports owner metrics.
type Stats struct {
	Len         int    // Number of stored values
	Children    uint64 // Children derived over the owner's life
	BytesApprox int    // Approximate memory usage (best effort)
	Impl        string // Implementation name
}
