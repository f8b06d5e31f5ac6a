package viz

import "github.com/charmbracelet/lipgloss"

// styles is the full set of styles derived from one theme.
type styles struct {
	title       lipgloss.Style
	status      lipgloss.Style
	input       lipgloss.Style
	inputFocus  lipgloss.Style
	inputText   lipgloss.Style
	button      lipgloss.Style
	buttonHover lipgloss.Style
	block       lipgloss.Style
	blockOut    lipgloss.Style
	blockMid    lipgloss.Style
	blockFound  lipgloss.Style
	low         lipgloss.Style
	mid         lipgloss.Style
	high        lipgloss.Style
	found       lipgloss.Style
	label       lipgloss.Style
	value       lipgloss.Style
	muted       lipgloss.Style
	banner      lipgloss.Style
	panel       lipgloss.Style
	panelHeader lipgloss.Style
	chart       lipgloss.Style
}

func newStyles(t Theme) styles {
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(0, 1)
	block := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Align(lipgloss.Center)

	return styles{
		title:       lipgloss.NewStyle().Foreground(t.Title).Bold(true),
		status:      lipgloss.NewStyle().Foreground(t.Muted),
		input:       box,
		inputFocus:  box.BorderForeground(t.Focus),
		inputText:   lipgloss.NewStyle().Foreground(t.Text),
		button:      box.Foreground(t.Text).Bold(true).Align(lipgloss.Center),
		buttonHover: box.Foreground(t.Focus).BorderForeground(t.Focus).Bold(true).Align(lipgloss.Center),
		block:       block.BorderForeground(t.Border).Foreground(t.Text),
		blockOut:    block.BorderForeground(t.Muted).Foreground(t.Muted),
		blockMid:    block.BorderForeground(t.Mid).Foreground(t.Mid).Bold(true),
		blockFound:  block.BorderForeground(t.Found).Foreground(t.Found).Bold(true),
		low:         lipgloss.NewStyle().Foreground(t.Low).Bold(true),
		mid:         lipgloss.NewStyle().Foreground(t.Mid).Bold(true),
		high:        lipgloss.NewStyle().Foreground(t.High).Bold(true),
		found:       lipgloss.NewStyle().Foreground(t.Found).Bold(true),
		label:       lipgloss.NewStyle().Foreground(t.Muted).Width(11),
		value:       lipgloss.NewStyle().Foreground(t.Text),
		muted:       lipgloss.NewStyle().Foreground(t.Muted),
		banner:      lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		panel:       lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(t.Border).Padding(0, 2),
		panelHeader: lipgloss.NewStyle().Foreground(t.Title).Bold(true).MarginBottom(1),
		chart:       lipgloss.NewStyle().Foreground(t.Low),
	}
}
