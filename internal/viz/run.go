package viz

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/bsviz/internal/config"
	"github.com/san-kum/bsviz/internal/storage"
)

// Run starts the visualizer and blocks until the user quits. A non-nil
// store records every finished search.
func Run(cfg *config.Config, store *storage.Store) error {
	m := NewModel(cfg, time.Now())
	if store != nil {
		m = m.WithStore(store)
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
