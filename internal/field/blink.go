package field

import "time"

// DefaultBlinkInterval is how long the text cursor stays in each phase.
const DefaultBlinkInterval = 500 * time.Millisecond

// Blink toggles cursor visibility on a fixed interval. It is driven by the
// frame loop passing the current time rather than by a timer.
type Blink struct {
	interval time.Duration
	last     time.Time
	visible  bool
}

func NewBlink(interval time.Duration, now time.Time) Blink {
	if interval <= 0 {
		interval = DefaultBlinkInterval
	}
	return Blink{interval: interval, last: now, visible: true}
}

// Update flips visibility once the interval has elapsed and reports
// whether it changed.
func (b *Blink) Update(now time.Time) bool {
	if now.Sub(b.last) < b.interval {
		return false
	}
	b.visible = !b.visible
	b.last = now
	return true
}

// Reset shows the cursor and restarts the interval.
func (b *Blink) Reset(now time.Time) {
	b.visible = true
	b.last = now
}

func (b Blink) Visible() bool { return b.visible }
func (b Blink) Interval() time.Duration { return b.interval }
