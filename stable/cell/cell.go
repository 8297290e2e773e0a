package cell

// Cell is one stable storage location. Containers hold *Cell values, so when a
// container grows it copies the pointers and never the cell.
//
// A Cell has no setter and no free operation. It lives until nothing refers to
// it, which for owner-held cells means until the owner drops its storage.
type Cell[T any] struct {
	noCopy noCopy
	v      T
}

// New stores a copy of v in a fresh cell. One allocation per call, no pooling.
// The caller must not pass an address-bound value (see AddressBound); owners
// check this before calling.
func New[T any](v T) *Cell[T] {
	return &Cell[T]{v: v}
}

// Emplace allocates a zero cell and lets init build the value at its final
// address. Nothing is copied afterwards, so any type may be stored this way.
// A nil init leaves the zero value.
func Emplace[T any](init func(p *T)) *Cell[T] {
	c := new(Cell[T])
	if init != nil {
		init(&c.v)
	}
	return c
}

// Ptr returns the stable address of the stored value.
func (c *Cell[T]) Ptr() *T { return &c.v }

// Load returns a copy of the stored value.
func (c *Cell[T]) Load() T { return c.v }

// noCopy makes go vet's copylocks check flag by-value copies of a Cell.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
