package hashmap

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
	implName = "hashmap.Owner"

	// estimatedBytesPerMapEntry is the rough overhead of one Go map entry
	// (bucket share plus the *cell.Cell slot), excluding key and value.
	estimatedBytesPerMapEntry = 40
)

// Owner holds the key table of an insert-only stable map for its whole life.
// It is the only type that can derive a Child and the only one that can drop
// storage (Close).
//
// The Owner is NOT thread-safe. Only one goroutine should use it at a time.
type Owner[K comparable, V any] struct {
	id        uuid.UUID
	cells     map[K]*cell.Cell[V]
	normalize func(K) K
	life      *borrow.Tracker
	log       *slog.Logger
	bound     bool   // V is address-bound; by-value inserts are refused
	rejected  uint64 // duplicate-key inserts turned away
}

// New creates an empty Owner. A nil opts uses DefaultOptions.
func New[K comparable, V any](opts *Options[K]) *Owner[K, V] {
	if opts == nil {
		opts = DefaultOptions[K]()
	}
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = defaultCapacity
	}

	id := uuid.New()
	return &Owner[K, V]{
		id:        id,
		cells:     make(map[K]*cell.Cell[V], capacity),
		normalize: opts.Normalize,
		life:      borrow.New(),
		log:       logging.ForOwner(opts.Logger, "hashmap", id),
		bound:     cell.IsAddressBound[V](),
	}
}

// Child derives the insert-only view. Only one Child may be live at a time:
// Release the previous one first, or this returns types.ErrChildActive.
func (o *Owner[K, V]) Child() (*Child[K, V], error) {
	lease, err := o.life.Acquire()
	if err != nil {
		return nil, err
	}
	o.log.Debug("child derived", "generation", lease.Generation(), "len", len(o.cells))
	return &Child[K, V]{o: o, lease: lease}, nil
}

// Get returns the value stored under key, or types.ErrNotFound.
// Reading never needs a Child.
func (o *Owner[K, V]) Get(key K) (cell.Ref[V], error) {
	if !o.life.Alive() {
		return cell.Ref[V]{}, types.ErrOwnerClosed
	}
	return o.get(o.key(key))
}

// Contains reports whether key is present.
func (o *Owner[K, V]) Contains(key K) bool {
	_, ok := o.cells[o.key(key)]
	return ok
}

// Keys returns a snapshot of the stored keys (normalized) in unspecified order.
func (o *Owner[K, V]) Keys() []K {
	keys := make([]K, 0, len(o.cells))
	for k := range o.cells {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of stored entries.
func (o *Owner[K, V]) Len() int { return len(o.cells) }

// ID returns the owner's identity, as used in log records.
func (o *Owner[K, V]) ID() uuid.UUID { return o.id }

// Closed reports whether Close has been called.
func (o *Owner[K, V]) Closed() bool { return !o.life.Alive() }

// Close drops all storage. Every Ref and Child derived from this owner is
// invalid afterwards. Calling Close again is a no-op.
func (o *Owner[K, V]) Close() error {
	if !o.life.Close() {
		return nil
	}
	o.log.Debug("owner closed", "len", len(o.cells), "generations", o.life.Generations(), "rejected", o.rejected)
	o.cells = nil
	return nil
}

// Stats returns counters and a rough memory estimate.
func (o *Owner[K, V]) Stats() Stats {
	var (
		zk K
		zv V
	)
	n := len(o.cells)
	return Stats{
		Len:         n,
		Children:    o.life.Generations(),
		Rejected:    o.rejected,
		BytesApprox: n * (estimatedBytesPerMapEntry + int(unsafe.Sizeof(zk)) + int(unsafe.Sizeof(zv))),
		Impl:        implName,
	}
}

func (o *Owner[K, V]) key(k K) K {
	if o.normalize == nil {
		return k
	}
	return o.normalize(k)
}

func (o *Owner[K, V]) get(k K) (cell.Ref[V], error) {
	c, ok := o.cells[k]
	if !ok {
		return cell.Ref[V]{}, fmt.Errorf("get %v: %w", k, types.ErrNotFound)
	}
	return cell.Bind(c, o.life), nil
}

// existing returns the Ref for k if present, counting the rejected insert.
func (o *Owner[K, V]) existing(k K) (cell.Ref[V], bool) {
	c, ok := o.cells[k]
	if !ok {
		return cell.Ref[V]{}, false
	}
	o.rejected++
	o.log.Debug("duplicate key rejected", "key", k)
	return cell.Bind(c, o.life), true
}

// insert stores c under k, which must be absent. A map grow moves the
// *cell.Cell slots only.
func (o *Owner[K, V]) insert(k K, c *cell.Cell[V]) cell.Ref[V] {
	o.cells[k] = c
	return cell.Bind(c, o.life)
}

// Stats reports owner metrics.
type Stats struct {
	Len         int    // Number of stored entries
	Children    uint64 // Children derived over the owner's life
	Rejected    uint64 // Inserts rejected because the key existed
	BytesApprox int    // Approximate memory usage (best effort)
	Impl        string // Implementation name
}
