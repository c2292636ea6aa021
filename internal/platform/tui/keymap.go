package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// KeyEvents translates a Bubble Tea key message into core key events.
// Printable keys become rune events, one per rune; everything else keeps
// Bubble Tea's key name ("ctrl+c", "left", "esc"). Pastes are ignored.
func KeyEvents(msg tea.KeyMsg) []core.KeyEvent {
	if msg.Paste {
		return nil
	}

	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return []core.KeyEvent{core.NamedKey(msg.String())}
		}
		events := make([]core.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, core.RuneKey(r))
		}
		return events
	case tea.KeySpace:
		return []core.KeyEvent{core.RuneKey(' ')}
	}

	return []core.KeyEvent{core.NamedKey(msg.String())}
}
