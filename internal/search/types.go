package search

import "time"

// Transition is the effect of a single Tick.
type Transition int

const (
	TransitionNone  Transition = iota
	TransitionPause            // first eligible tick after a reset
	TransitionLower            // array[mid] < target, low moved to mid+1
	TransitionUpper            // array[mid] > target, high moved to mid-1
	TransitionFound
)

func (t Transition) String() string {
	switch t {
	case TransitionPause:
		return "pause"
	case TransitionLower:
		return "lower"
	case TransitionUpper:
		return "upper"
	case TransitionFound:
		return "found"
	default:
		return "none"
	}
}

// Status summarises where a search is.
type Status int

const (
	StatusIdle Status = iota
	StatusSettling
	StatusSearching
	StatusFound
	StatusExhausted
)

func (s Status) String() string {
	switch s {
	case StatusSettling:
		return "settling"
	case StatusSearching:
		return "searching"
	case StatusFound:
		return "found"
	case StatusExhausted:
		return "not found"
	default:
		return "idle"
	}
}

// Step records one comparison. Low and High are the bounds after the
// comparison was applied.
type Step struct {
	At         time.Time
	Low        int
	Mid        int
	High       int
	Value      int
	Transition Transition
}

// Marker is the block index a pointer currently sits on.
type Marker struct {
	Index   int
	Visible bool
}

// Markers places the low, mid and high pointers over the value blocks.
type Markers struct {
	Low, Mid, High Marker
}
