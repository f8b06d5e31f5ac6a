package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/bsviz/internal/search"
)

const (
	colorBackground = "#0a0a0a"
	colorOut        = "#222233"
	colorActive     = "#2a4a66"
	colorMid        = "#ffd700"
	colorFound      = "#00ff88"
	colorText       = "#e0f0ff"
)

// StepsSVG draws a search as a grid: one row per state, one cell per array
// element. The first row is the full interval before any comparison; each
// following row shows the element probed and the interval left after it.
func StepsSVG(array []int, steps []search.Step, cell float64) string {
	if len(array) == 0 {
		return ""
	}
	if cell <= 0 {
		cell = 24
	}

	rows := len(steps) + 1
	width := float64(len(array)) * cell
	height := float64(rows) * cell

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, colorBackground))

	writeRow := func(row, low, high, probe int, found bool) {
		y := float64(row) * cell
		for i, v := range array {
			fill := colorOut
			switch {
			case i == probe && found:
				fill = colorFound
			case i == probe:
				fill = colorMid
			case i >= low && i <= high:
				fill = colorActive
			}
			x := float64(i) * cell
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s"/>
`, x, y, cell, cell, fill, colorBackground))
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="%.1f" text-anchor="middle" fill="%s">%d</text>
`, x+cell/2, y+cell*0.65, cell*0.4, colorText, v))
		}
	}

	writeRow(0, 0, len(array)-1, -1, false)

	// the interval a comparison narrowed is the one from the row above
	low, high := 0, len(array)-1
	for i, st := range steps {
		writeRow(i+1, low, high, st.Mid, st.Transition == search.TransitionFound)
		low, high = st.Low, st.High
	}

	sb.WriteString("</svg>")
	return sb.String()
}
