package search

import "errors"

// ErrIndexRange indicates the pointers left the bounds of the array. The
// reset contract makes this unreachable, so Tick panics with it.
var ErrIndexRange = errors.New("search: index out of range")
