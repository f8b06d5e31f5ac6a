// Package field implements the editable text field used for the array and
// target inputs, and the read-only value blocks of the search row.
//
// A Field is a small state machine: it is either blurred or focused, and it
// only changes in response to the events passed to Handle. The current time
// is always passed in, so the same sequence of events and timestamps always
// produces the same state.
package field

import (
	"time"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// Rect is a field's bounds in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Affordance is the pointer shape a widget asks for.
type Affordance int

const (
	AffordanceArrow Affordance = iota
	AffordanceIBeam
)

func (a Affordance) String() string {
	if a == AffordanceIBeam {
		return "ibeam"
	}
	return "arrow"
}

// Event is one discrete input event.
type Event interface {
	isEvent()
}

// PointerDown is a mouse press at cell (X, Y).
type PointerDown struct{ X, Y int }

// PointerMove is the pointer moving to cell (X, Y) without a press.
type PointerMove struct{ X, Y int }

// KeyDown is a key press.
type KeyDown struct{ Symbol Symbol }

func (PointerDown) isEvent() {}
func (PointerMove) isEvent() {}
func (KeyDown) isEvent() {}

type Options struct {
	Value     string
	AllowList AllowList
	ReadOnly  bool
	// Unclamped lets the arrow keys move the cursor past either end of the
	// buffer.
	Unclamped     bool
	BlinkInterval time.Duration
	Placeholder   string
	Style         lipgloss.Style
}

type Field struct {
	bounds      Rect
	buffer      []rune
	focused     bool
	hovered     bool
	cursor      int
	allow       AllowList
	readOnly    bool
	clamp       bool
	placeholder string
	style       lipgloss.Style

	rendered string
	renders  int

	blink Blink
}

func New(bounds Rect, opts Options, now time.Time) *Field {
	f := &Field{
		bounds:      bounds,
		buffer:      []rune(opts.Value),
		allow:       opts.AllowList,
		readOnly:    opts.ReadOnly,
		clamp:       !opts.Unclamped,
		placeholder: opts.Placeholder,
		style:       opts.Style,
		blink:       NewBlink(opts.BlinkInterval, now),
	}
	if f.clamp {
		f.cursor = len(f.buffer)
	}
	f.render()
	return f
}

// Handle applies ev and reports whether the buffer changed.
func (f *Field) Handle(ev Event) bool {
	if f.readOnly {
		return false
	}
	switch ev := ev.(type) {
	case PointerDown:
		f.hovered = f.bounds.Contains(ev.X, ev.Y)
		f.focused = f.hovered
	case PointerMove:
		f.hovered = f.bounds.Contains(ev.X, ev.Y)
	case KeyDown:
		return f.key(ev.Symbol)
	}
	return false
}

func (f *Field) key(sym Symbol) bool {
	if !f.focused || !f.allow.Permits(sym) {
		return false
	}

	switch sym {
	case SymEnter:
		f.focused = false
		return false
	case SymBackspace:
		if len(f.buffer) == 0 {
			return false
		}
		f.buffer = f.buffer[:len(f.buffer)-1]
	case SymLeft:
		f.moveCursor(-1)
		return false
	case SymRight:
		f.moveCursor(1)
		return false
	default:
		r, ok := printable(sym)
		if !ok {
			return false
		}
		f.buffer = append(f.buffer, r)
	}

	if f.clamp {
		f.cursor = len(f.buffer)
	}
	f.render()
	return true
}

// printable maps a symbol to the rune it types: single-rune symbols type
// themselves and keypad names like "[7]" type their digit.
func printable(sym Symbol) (rune, bool) {
	runes := []rune(string(sym))
	switch {
	case len(runes) == 1:
		return runes[0], unicode.IsPrint(runes[0])
	case len(runes) > 1 && unicode.IsDigit(runes[1]):
		return runes[1], true
	}
	return 0, false
}

func (f *Field) moveCursor(delta int) {
	f.cursor += delta
	if !f.clamp {
		return
	}
	if f.cursor < 0 {
		f.cursor = 0
	}
	if f.cursor > len(f.buffer) {
		f.cursor = len(f.buffer)
	}
}

func (f *Field) render() {
	text := string(f.buffer)
	if text == "" {
		text = f.placeholder
	}
	f.rendered = f.style.Render(text)
	f.renders++
}

func (f *Field) Focus() {
	if !f.readOnly {
		f.focused = true
	}
}

func (f *Field) Blur() { f.focused = false }

func (f *Field) Value() string { return string(f.buffer) }

// SetValue replaces the buffer and moves the cursor to its end.
func (f *Field) SetValue(s string) {
	f.buffer = []rune(s)
	f.cursor = len(f.buffer)
	f.render()
}

// SetStyle changes the style used for the cached rendering.
func (f *Field) SetStyle(s lipgloss.Style) {
	f.style = s
	f.render()
}

func (f *Field) Focused() bool { return f.focused }
func (f *Field) Hovered() bool { return f.hovered }
func (f *Field) Cursor() int { return f.cursor }
func (f *Field) ReadOnly() bool { return f.readOnly }
func (f *Field) Bounds() Rect { return f.bounds }
func (f *Field) SetBounds(r Rect) { f.bounds = r }
func (f *Field) AllowList() AllowList { return f.allow }

// Rendered returns the cached styled text. It is regenerated only when the
// buffer or style changes.
func (f *Field) Rendered() string { return f.rendered }

// Renders counts how many times the cached text has been regenerated.
func (f *Field) Renders() int { return f.renders }

// UpdateBlink advances the cursor blink and reports whether it toggled.
func (f *Field) UpdateBlink(now time.Time) bool { return f.blink.Update(now) }

func (f *Field) ResetBlink(now time.Time) { f.blink.Reset(now) }

func (f *Field) CursorVisible() bool { return f.blink.Visible() }

// Affordance is the pointer shape this field wants for the current frame.
func (f *Field) Affordance() Affordance {
	if !f.readOnly && (f.focused || f.hovered) {
		return AffordanceIBeam
	}
	return AffordanceArrow
}

// ResolveAffordance picks the single pointer shape for a frame. Any field
// asking for the text beam wins over the default arrow.
func ResolveAffordance(fields ...*Field) Affordance {
	for _, f := range fields {
		if f != nil && f.Affordance() == AffordanceIBeam {
			return AffordanceIBeam
		}
	}
	return AffordanceArrow
}
