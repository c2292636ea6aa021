package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// frameMsg carries a rendered frame from the game loop to the program.
type frameMsg string

// model is the Bubble Tea model hosting the game. It holds no game state:
// keys go out to the loop, frames come back in.
type model struct {
	keys  *core.KeyQueue
	frame string
}

func newModel(keys *core.KeyQueue) model {
	return model{keys: keys}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		for _, ev := range KeyEvents(msg) {
			m.keys.Push(ev)
		}
	case frameMsg:
		m.frame = string(msg)
	case tea.WindowSizeMsg:
		// Frames have a fixed size, so resizes are ignored. SSH sessions
		// never see this message.
	}
	return m, nil
}

// View implements tea.Model.
func (m model) View() string {
	return m.frame
}
