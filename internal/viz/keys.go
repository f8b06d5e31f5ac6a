package viz

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/bsviz/internal/field"
)

type keyMap struct {
	Focus  key.Binding
	Search key.Binding
	Blur   key.Binding
	Pause  key.Binding
	Faster key.Binding
	Slower key.Binding
	Replay key.Binding
	Theme  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Search, k.Pause, k.Theme, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Search, k.Blur},
		{k.Pause, k.Faster, k.Slower, k.Replay},
		{k.Theme, k.Help, k.Quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Search: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave field"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// symbolsFor translates a terminal key press into field symbols. Pasted
// text arrives as one message and becomes one symbol per rune.
func symbolsFor(msg tea.KeyMsg) []field.Symbol {
	switch msg.Type {
	case tea.KeyEnter:
		return []field.Symbol{field.SymEnter}
	case tea.KeyBackspace:
		return []field.Symbol{field.SymBackspace}
	case tea.KeyLeft:
		return []field.Symbol{field.SymLeft}
	case tea.KeyRight:
		return []field.Symbol{field.SymRight}
	case tea.KeySpace:
		return []field.Symbol{" "}
	case tea.KeyRunes:
		syms := make([]field.Symbol, len(msg.Runes))
		for i, r := range msg.Runes {
			syms[i] = field.Symbol(string(r))
		}
		return syms
	}
	return []field.Symbol{field.Symbol(msg.String())}
}
