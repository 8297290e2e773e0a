// Package vec implements the append-only stable sequence.
//
// An Owner holds a slice of *cell.Cell for its whole life. A Child, derived from
// the Owner, can Push values and Get them by index. Each Push returns a
// cell.Ref whose address does not change when later pushes grow the slice, and
// which stays valid after the Child is released.
//
// # Usage Example
//
//	owner := vec.New[int](nil)
//	defer owner.Close()
//
//	child, err := owner.Child()
//	if err != nil {
//	    return err
//	}
//	a, _ := child.Push(10)
//	b, _ := child.Push(20)
//	fmt.Println(a.Value(), b.Value()) // 10 20
//	child.Release()
//
// # Guarantees
//
//   - Indices follow insertion order and are never reused or renumbered.
//   - No remove, set or shrink exists, so no stored value ever moves or dies
//     before the Owner.
//   - Only one Child is live at a time (types.ErrChildActive otherwise).
//   - After Owner.Close, Refs panic on Get and report types.ErrOwnerClosed on TryGet.
package vec
