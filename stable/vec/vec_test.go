package vec

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/joshuapare/stablekit/pkg/types"
	"github.com/joshuapare/stablekit/stable/cell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChild[T any](t *testing.T, opts *Options) (*Owner[T], *Child[T]) {
	t.Helper()
	o := New[T](opts)
	t.Cleanup(func() { _ = o.Close() })
	c, err := o.Child()
	require.NoError(t, err)
	return o, c
}

// TestChild_PushTwo is the basic two-push scenario.
func TestChild_PushTwo(t *testing.T) {
	_, c := newChild[int](t, nil)

	a, err := c.Push(10)
	require.NoError(t, err)
	b, err := c.Push(20)
	require.NoError(t, err)

	assert.Equal(t, 10, a.Value())
	assert.Equal(t, 20, b.Value())
	assert.Equal(t, 2, c.Len())
}

// TestChild_PushStrings mirrors the string push case.
func TestChild_PushStrings(t *testing.T) {
	_, c := newChild[string](t, nil)

	s1 := c.MustPush("hey")
	s2 := c.MustPush("hey 2")

	assert.Equal(t, "hey", s1.Value())
	assert.Equal(t, "hey 2", s2.Value())
}

// TestChild_RefsSurviveGrowth pushes far past the initial capacity and checks
// that every earlier Ref still points at the same address and value.
func TestChild_RefsSurviveGrowth(t *testing.T) {
	o, c := newChild[int](t, &Options{Capacity: 1})

	const n = 5000
	refs := make([]cell.Ref[int], 0, n)
	addrs := make([]*int, 0, n)
	for i := range n {
		r, err := c.Push(i * 3)
		require.NoError(t, err)
		refs = append(refs, r)
		addrs = append(addrs, r.Get())
	}

	require.Equal(t, n, o.Len())
	for i, r := range refs {
		assert.Same(t, addrs[i], r.Get(), "value %d relocated", i)
		assert.Equal(t, i*3, r.Value())

		got, err := c.Get(i)
		require.NoError(t, err)
		assert.True(t, got.Same(r), "Get(%d) must return the pushed cell", i)
		assert.Equal(t, r.Value(), got.Value())
	}
}

func TestChild_GetOutOfRange(t *testing.T) {
	o, c := newChild[int](t, nil)
	c.MustPush(1)

	for _, i := range []int{-1, 1, 100} {
		_, err := c.Get(i)
		require.Error(t, err, "Get(%d)", i)
		assert.True(t, errors.Is(err, types.ErrOutOfRange))
		assert.Equal(t, types.ErrKindRange, types.KindOf(err))

		_, err = o.Get(i)
		assert.ErrorIs(t, err, types.ErrOutOfRange)
	}

	_, err := New[int](nil).Get(0)
	assert.ErrorIs(t, err, types.ErrOutOfRange, "empty owner")
}

func TestOwner_SecondChildRejected(t *testing.T) {
	o, c := newChild[int](t, nil)

	_, err := o.Child()
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrChildActive)

	c.Release()
	c2, err := o.Child()
	require.NoError(t, err)
	require.NotNil(t, c2)
}

// TestOwner_RefsOutliveChild checks refs from a released child stay valid
// while later children keep pushing.
func TestOwner_RefsOutliveChild(t *testing.T) {
	o, c1 := newChild[string](t, nil)

	first := c1.MustPush("first")
	addr := first.Get()
	c1.Release()

	c2, err := o.Child()
	require.NoError(t, err)
	for range 100 {
		c2.MustPush("filler")
	}

	assert.True(t, first.Valid())
	assert.Same(t, addr, first.Get())
	assert.Equal(t, "first", first.Value())

	got, err := o.Get(0)
	require.NoError(t, err)
	assert.True(t, got.Same(first))
}

func TestChild_ReleasedRejectsOperations(t *testing.T) {
	o, c := newChild[int](t, nil)
	c.MustPush(1)
	c.Release()
	c.Release() // no-op

	_, err := c.Push(2)
	assert.ErrorIs(t, err, types.ErrChildReleased)
	_, err = c.Emplace(func(p *int) { *p = 2 })
	assert.ErrorIs(t, err, types.ErrChildReleased)
	_, err = c.Get(0)
	assert.ErrorIs(t, err, types.ErrChildReleased)
	assert.Panics(t, func() { c.MustPush(3) })

	assert.Equal(t, 1, o.Len(), "rejected pushes must not store anything")
}

func TestChild_StaleAfterNewGeneration(t *testing.T) {
	o, c1 := newChild[int](t, nil)
	c1.Release()

	c2, err := o.Child()
	require.NoError(t, err)

	c1.Release() // must not release c2
	_, err = c1.Push(1)
	assert.ErrorIs(t, err, types.ErrChildReleased)

	_, err = c2.Push(1)
	assert.NoError(t, err)

	_, err = o.Child()
	assert.ErrorIs(t, err, types.ErrChildActive)
}

func TestOwner_Close(t *testing.T) {
	o := New[int](nil)
	c, err := o.Child()
	require.NoError(t, err)
	r := c.MustPush(10)

	require.NoError(t, o.Close())
	require.NoError(t, o.Close(), "close is idempotent")
	assert.True(t, o.Closed())
	assert.Equal(t, 0, o.Len())

	assert.False(t, r.Valid())
	_, err = r.TryGet()
	assert.ErrorIs(t, err, types.ErrOwnerClosed)
	assert.Panics(t, func() { r.Get() })

	_, err = c.Push(20)
	assert.ErrorIs(t, err, types.ErrOwnerClosed)
	_, err = o.Child()
	assert.ErrorIs(t, err, types.ErrOwnerClosed)
	_, err = o.Get(0)
	assert.ErrorIs(t, err, types.ErrOwnerClosed)
}

type guarded struct {
	sync.Mutex
	hits int
}

func TestChild_AddressBoundNeedsEmplace(t *testing.T) {
	o, c := newChild[guarded](t, nil)

	_, err := c.Push(guarded{})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrNotStorable)
	assert.Equal(t, types.ErrKindType, types.KindOf(err))
	assert.Equal(t, 0, o.Len())

	r, err := c.Emplace(func(g *guarded) { g.hits = 1 })
	require.NoError(t, err)

	g := r.Get()
	g.Lock()
	g.hits++
	g.Unlock()
	assert.Equal(t, 2, r.Get().hits)
}

func TestChild_PushPointerOfAddressBound(t *testing.T) {
	_, c := newChild[*guarded](t, nil)

	g := &guarded{}
	r, err := c.Push(g)
	require.NoError(t, err, "pointers are storable even when the pointee is not")
	assert.Same(t, g, r.Value())
}

func TestOwner_Stats(t *testing.T) {
	o, c := newChild[int64](t, &Options{Capacity: 4})
	for i := range 10 {
		c.MustPush(int64(i))
	}
	c.Release()
	_, err := o.Child()
	require.NoError(t, err)

	s := o.Stats()
	assert.Equal(t, 10, s.Len)
	assert.Equal(t, uint64(2), s.Children)
	assert.Equal(t, "vec.Owner", s.Impl)
	assert.GreaterOrEqual(t, s.BytesApprox, 10*8)
}

func TestOwner_IndependentOwners(t *testing.T) {
	a, ca := newChild[int](t, nil)
	b, cb := newChild[int](t, nil)

	ra := ca.MustPush(1)
	cb.MustPush(2)
	require.NoError(t, b.Close())

	assert.NotEqual(t, a.ID(), b.ID())
	assert.True(t, ra.Valid(), "closing one owner must not affect another")
	assert.Equal(t, 1, ra.Value())
}

func TestOwner_LogsLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	o := New[int](&Options{Logger: logger})
	c, err := o.Child()
	require.NoError(t, err)
	c.MustPush(1)
	c.Release()
	require.NoError(t, o.Close())

	out := buf.String()
	assert.Contains(t, out, "child derived")
	assert.Contains(t, out, "child released")
	assert.Contains(t, out, "owner closed")
	assert.Contains(t, out, "owner="+o.ID().String())
	assert.Contains(t, out, "kind=vec")
}
