// Package hashmap implements the insert-only stable map.
//
// An Owner holds a map[K]*cell.Cell for its whole life. A Child, derived from
// the Owner, can Insert entries under new keys and Get them back. Each insert
// returns a cell.Ref whose address does not change when later inserts make the
// map grow, and which stays valid after the Child is released.
//
// # Usage Example
//
//	owner := hashmap.New[string, int](nil)
//	defer owner.Close()
//
//	child, err := owner.Child()
//	if err != nil {
//	    return err
//	}
//	a, _ := child.Insert("10", 10)
//	b, _ := child.Insert("20", 20)
//	fmt.Println(a.Value(), b.Value()) // 10 20
//
// # Duplicate Keys
//
// Replacing an entry would break every Ref taken to the old value, so a present
// key is never overwritten. Insert returns the existing Ref with
// types.ErrKeyExists; TryInsert returns it with inserted=false:
//
//	r, inserted, err := child.TryInsert("10", 99)
//	// r.Value() == 10, inserted == false, err == nil
//
// # Key Normalization
//
// Options.Normalize maps keys before storage and lookup. FoldCase gives
// case-insensitive string keys:
//
//	owner := hashmap.New[string, int](&hashmap.Options[string]{Normalize: hashmap.FoldCase})
//
// Keys returned by Owner.Keys are the normalized form.
package hashmap
