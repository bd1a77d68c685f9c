package collections

import "errors"

// Sentinel errors returned by List and LinkedList operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := collections.ListToSlice[int](v)
//	if errors.Is(err, collections.ErrTypeMismatch) {
//	    // v was not a *List[int]
//	}
var (
	// ErrTypeMismatch is returned when a conversion helper receives a value
	// of the wrong dynamic type: a non-list passed to ListToSlice /
	// LinkedListToSlice, or an unrecognised sequence passed to
	// ListFromSlice / LinkedListFromSlice.
	ErrTypeMismatch = errors.New("collections: type mismatch")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collections: macro not found")
)
