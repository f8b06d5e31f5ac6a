// Package search animates a binary search one comparison at a time.
//
// The Engine owns the array, the low/mid/high pointers and the target. The
// frame loop calls Tick with the current time on every frame; the engine
// only acts once per step interval, so a human can follow each comparison.
package search

import (
	"fmt"
	"math/bits"
	"time"
)

// DefaultInterval is the pause between two comparisons.
const DefaultInterval = time.Second

type Engine struct {
	array []int
	low   int
	mid   int
	high  int

	target    int
	hasTarget bool

	interval       time.Duration
	lastStep       time.Time
	firstStepTaken bool
	found          bool

	comparisons int
	history     []Step
}

// New returns an engine with an empty array and no target.
func New(interval time.Duration) *Engine {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Engine{high: -1, interval: interval}
}

// Reset starts a new search over array. The caller must pass a sorted
// array; the engine never sorts. A nil target clears the current one.
func (e *Engine) Reset(array []int, target *int, now time.Time) {
	e.array = append(e.array[:0:0], array...)
	e.low, e.mid, e.high = 0, 0, len(array)-1
	e.hasTarget = target != nil
	if target != nil {
		e.target = *target
	} else {
		e.target = 0
	}
	e.firstStepTaken = false
	e.found = false
	e.lastStep = now
	e.comparisons = 0
	e.history = e.history[:0]
}

// SetTarget changes the target without touching the pointers.
func (e *Engine) SetTarget(v int) {
	e.target = v
	e.hasTarget = true
	e.found = false
}

func (e *Engine) ClearTarget() {
	e.hasTarget = false
	e.found = false
}

// Tick advances the search by at most one step.
func (e *Engine) Tick(now time.Time) Transition {
	if e.low > e.high || e.found {
		return TransitionNone
	}
	if len(e.array) == 0 || !e.hasTarget {
		return TransitionNone
	}
	if now.Sub(e.lastStep) < e.interval {
		return TransitionNone
	}
	if !e.firstStepTaken {
		e.firstStepTaken = true
		e.lastStep = now
		return TransitionPause
	}

	e.checkBounds()
	e.mid = e.low + (e.high-e.low)/2
	value := e.array[e.mid]

	var tr Transition
	switch {
	case value == e.target:
		e.found = true
		tr = TransitionFound
	case value < e.target:
		e.low = e.mid + 1
		tr = TransitionLower
	default:
		e.high = e.mid - 1
		tr = TransitionUpper
	}

	e.lastStep = now
	e.comparisons++
	e.history = append(e.history, Step{
		At:         now,
		Low:        e.low,
		Mid:        e.mid,
		High:       e.high,
		Value:      value,
		Transition: tr,
	})
	return tr
}

func (e *Engine) checkBounds() {
	if e.low < 0 || e.low > e.high+1 || e.high+1 > len(e.array) {
		panic(fmt.Errorf("%w: low=%d high=%d len=%d", ErrIndexRange, e.low, e.high, len(e.array)))
	}
}

func (e *Engine) Status() Status {
	switch {
	case len(e.array) == 0 || !e.hasTarget:
		return StatusIdle
	case e.low > e.high:
		return StatusExhausted
	case e.found:
		return StatusFound
	case !e.firstStepTaken:
		return StatusSettling
	default:
		return StatusSearching
	}
}

// Markers reports where each pointer should be drawn. Mid is hidden until
// the first comparison and once the interval is empty.
func (e *Engine) Markers() Markers {
	in := func(i int) bool { return i >= 0 && i < len(e.array) }
	return Markers{
		Low:  Marker{Index: e.low, Visible: in(e.low)},
		Mid:  Marker{Index: e.mid, Visible: e.comparisons > 0 && e.low <= e.high && in(e.mid)},
		High: Marker{Index: e.high, Visible: in(e.high)},
	}
}

// Array returns a copy of the array being searched.
func (e *Engine) Array() []int { return append([]int(nil), e.array...) }

func (e *Engine) Len() int { return len(e.array) }
func (e *Engine) Low() int { return e.low }
func (e *Engine) Mid() int { return e.mid }
func (e *Engine) High() int { return e.high }

func (e *Engine) Target() (int, bool) { return e.target, e.hasTarget }

func (e *Engine) Comparisons() int { return e.comparisons }

func (e *Engine) Interval() time.Duration { return e.interval }

// SetInterval changes the step cadence. Non-positive values are ignored.
func (e *Engine) SetInterval(d time.Duration) {
	if d > 0 {
		e.interval = d
	}
}

// History returns the comparisons made since the last reset.
func (e *Engine) History() []Step { return append([]Step(nil), e.history...) }

// MaxComparisons is the worst case number of comparisons for n elements,
// ceil(log2(n+1)).
func MaxComparisons(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len(uint(n))
}

// Run drives a search to completion on a synthetic clock and returns every
// comparison made. The initial pause is not part of the result.
func Run(array []int, target int, interval time.Duration, start time.Time) []Step {
	e := New(interval)
	e.Reset(array, &target, start)
	now := start
	// pause plus at most one comparison per element
	for i := 0; i <= len(array)+1; i++ {
		now = now.Add(e.interval)
		if e.Tick(now) == TransitionNone {
			break
		}
	}
	return e.History()
}
