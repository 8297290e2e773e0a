// Package types defines the error model shared by the stable containers.
//
// Every recoverable failure is an *Error carrying a stable ErrKind:
//   - ErrKindRange: sequence index at or past the current length
//   - ErrKindNotFound: keyed lookup for an absent key
//   - ErrKindExists: keyed insert rejected because the key is present
//   - ErrKindState: borrow or lifetime misuse (second child, released child, closed owner)
//   - ErrKindType: by-value store of an address-bound type
//
// Implementations wrap the sentinels with context, so match with errors.Is
// or classify with KindOf:
//
//	ref, err := child.Get(7)
//	if errors.Is(err, types.ErrOutOfRange) {
//	    ...
//	}
//
// Allocation failure is not represented here. It is fatal in the Go runtime
// and is never reported as an error value.
//
// This package has no dependencies beyond the standard library.
package types
