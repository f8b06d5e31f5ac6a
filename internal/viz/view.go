package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/bsviz/internal/field"
	"github.com/san-kum/bsviz/internal/search"
)

const (
	cursorGlyph = "▏"
	hintText    = "click a field or press tab to edit, enter to search"
)

// View renders the TUI interface.
func (m Model) View() string {
	body := m.mainView()
	if m.lay.side {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(m.lay.main).Render(body),
			m.sideView(),
		)
	}
	return body + "\n\n" + m.help.View(m.keys)
}

func (m Model) mainView() string {
	var s strings.Builder

	s.WriteString(m.st.title.Render("BINARY SEARCH") + "  " + m.st.status.Render(m.statusText()) + "\n\n")

	inputs := lipgloss.JoinHorizontal(lipgloss.Top,
		m.inputView(m.array, m.lay.array),
		" ",
		m.inputView(m.target, m.lay.target),
		" ",
		m.buttonView(),
	)
	s.WriteString(inputs + "\n")

	if m.errText != "" {
		s.WriteString(m.st.banner.MaxWidth(m.lay.main).Render(m.errText))
	} else {
		s.WriteString(m.st.muted.MaxWidth(m.lay.main).Render(hintText))
	}
	s.WriteString("\n\n")

	s.WriteString(m.blocksView())
	return s.String()
}

func (m Model) statusText() string {
	if m.paused {
		return "PAUSED"
	}
	st := m.engine.Status()
	if st == search.StatusFound {
		return fmt.Sprintf("FOUND AT INDEX %d", m.engine.Mid())
	}
	return strings.ToUpper(st.String())
}

func (m Model) inputView(f *field.Field, r field.Rect) string {
	style := m.st.input
	if f.Focused() {
		style = m.st.inputFocus
	}
	inner := r.W - 4
	return style.Width(r.W - 2).Render(m.fieldText(f, inner))
}

// fieldText shows a focused field with its cursor, tail-truncated to width.
// Blurred fields reuse the cached rendering.
func (m Model) fieldText(f *field.Field, width int) string {
	runes := []rune(f.Value())
	if !f.Focused() {
		if len(runes) <= width {
			return f.Rendered()
		}
		return m.st.inputText.Render(string(runes[len(runes)-width:]))
	}

	c := min(max(f.Cursor(), 0), len(runes))
	glyph := " "
	if f.CursorVisible() {
		glyph = cursorGlyph
	}
	text := string(runes[:c]) + glyph + string(runes[c:])
	if r := []rune(text); len(r) > width && width > 0 {
		text = string(r[len(r)-width:])
	}
	return m.st.inputText.Render(text)
}

func (m Model) buttonView() string {
	style := m.st.button
	if m.buttonHover {
		style = m.st.buttonHover
	}
	return style.Width(m.lay.button.W - 2).Render("Search")
}

func (m Model) blocksView() string {
	if len(m.blocks) == 0 {
		return m.st.muted.Render("no values")
	}

	markers := m.engine.Markers()
	status := m.engine.Status()
	rows := make([]string, 0, m.lay.rows(len(m.blocks))*2)

	for start := 0; start < len(m.blocks); start += m.lay.perRow {
		end := min(start+m.lay.perRow, len(m.blocks))
		boxes := make([]string, 0, end-start)
		marks := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			boxes = append(boxes, m.blockStyle(i, markers, status).Width(m.lay.blockW-2).Render(m.blocks[i].Value()))
			marks = append(marks, lipgloss.PlaceHorizontal(m.lay.blockW, lipgloss.Center, m.markerText(i, markers)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
		rows = append(rows, strings.Join(marks, ""))
	}
	return strings.Join(rows, "\n")
}

func (m Model) blockStyle(i int, mk search.Markers, status search.Status) lipgloss.Style {
	switch {
	case status == search.StatusFound && i == mk.Mid.Index:
		return m.st.blockFound
	case mk.Mid.Visible && i == mk.Mid.Index:
		return m.st.blockMid
	case status != search.StatusIdle && (i < m.engine.Low() || i > m.engine.High()):
		return m.st.blockOut
	}
	return m.st.block
}

// markerText labels the pointers resting on block i.
func (m Model) markerText(i int, mk search.Markers) string {
	var s strings.Builder
	if mk.Low.Visible && mk.Low.Index == i {
		s.WriteString(m.st.low.Render("L"))
	}
	if mk.Mid.Visible && mk.Mid.Index == i {
		s.WriteString(m.st.mid.Render("M"))
	}
	if mk.High.Visible && mk.High.Index == i {
		s.WriteString(m.st.high.Render("H"))
	}
	return s.String()
}

func (m Model) sideView() string {
	var s strings.Builder
	s.WriteString(m.st.panelHeader.Render("DETAILS") + "\n")

	row := func(label, value string) {
		s.WriteString(m.st.label.Render(label) + m.st.value.Render(value) + "\n")
	}

	row("Status", m.statusText())
	if t, ok := m.engine.Target(); ok {
		row("Target", fmt.Sprint(t))
	} else {
		row("Target", "-")
	}
	arr := m.engine.Array()
	row("Low", pointerText(arr, m.engine.Low()))
	if m.engine.Markers().Mid.Visible || m.engine.Status() == search.StatusFound {
		row("Mid", pointerText(arr, m.engine.Mid()))
	} else {
		row("Mid", "-")
	}
	row("High", pointerText(arr, m.engine.High()))
	row("Steps", fmt.Sprintf("%d / %d", m.engine.Comparisons(), search.MaxComparisons(len(arr))))
	row("Interval", m.engine.Interval().String())
	row("Pointer", m.affordance.String())
	row("Theme", m.theme.Name)
	if m.savedID != "" {
		row("Saved", m.savedID)
	}

	if len(m.widths) > 1 {
		chart := asciigraph.Plot(m.widths,
			asciigraph.Height(5),
			asciigraph.Width(sidePanelW-16),
			asciigraph.Caption("interval width"),
		)
		s.WriteString("\n" + m.st.chart.Render(chart) + "\n")
	}

	s.WriteString("\n" + m.st.chart.Render(m.rangeStrip()))
	return m.st.panel.Width(sidePanelW - 3).Render(s.String())
}

func pointerText(arr []int, i int) string {
	if i < 0 || i >= len(arr) {
		return fmt.Sprintf("[%d] -", i)
	}
	return fmt.Sprintf("[%d] %d", i, arr[i])
}

// rangeStrip draws the array values as braille bars with the active
// interval underlined.
func (m Model) rangeStrip() string {
	c := NewCanvas(sidePanelW-8, 3)
	arr := m.engine.Array()
	if len(arr) == 0 {
		return c.String()
	}

	pw, ph := c.Width*2, c.Height*4
	lo, hi := arr[0], arr[len(arr)-1]
	col := func(i int) int { return i * pw / len(arr) }

	for i, v := range arr {
		h := ph - 2
		if hi > lo {
			h = 1 + int((float64(v)-float64(lo))/(float64(hi)-float64(lo))*float64(ph-3))
		}
		c.VLine(col(i), ph-3, ph-2-h)
	}

	low, high := max(m.engine.Low(), 0), min(m.engine.High(), len(arr)-1)
	if low <= high {
		c.HLine(col(low), col(high), ph-1)
	}
	return c.String()
}
