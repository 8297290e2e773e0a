/*
Package stable is the entry point for stablekit: growable containers that let
you keep references to stored values while you keep inserting.

# Quick Start

	owner := stable.NewVec[int]()
	defer owner.Close()

	child, _ := owner.Child()
	a, _ := child.Push(10)
	b, _ := child.Push(20) // may grow the index; a is unaffected
	fmt.Println(a.Value(), b.Value())

# Roles

  - Owner: holds storage for its whole life. Derives children, closes storage.
  - Child: insert-only borrow of an Owner. One live child per owner.
  - Ref: what push/insert/get return. Valid until the Owner closes, not just
    while the Child lives.

# Containers

  - VecOwner / VecChild: index-addressed, Push and Get(i).
  - MapOwner / MapChild: key-addressed, Insert and Get(k). A present key is
    never overwritten; Insert returns the existing Ref with ErrKeyExists.

# Error Handling

Recoverable conditions are typed errors from pkg/types, re-exported here:

	_, err := child.Get(99)
	if errors.Is(err, stable.ErrOutOfRange) {
	    ...
	}

Misuse of the borrow rules (second live child, released child, closed owner)
is reported as an error from container methods and as a panic from Ref.Get.

# Thread Safety

Owners, children and refs are for use by one goroutine at a time.
*/
package stable
