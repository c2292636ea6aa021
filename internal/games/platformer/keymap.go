package platformer

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Jump  key.Binding
	Quit  key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.PlatformerKeys) KeyMap {
	return KeyMap{
		Left:  newBinding(cfg.Left, "move left"),
		Right: newBinding(cfg.Right, "move right"),
		Jump:  newBinding(cfg.Jump, "jump"),
		Quit:  newBinding(cfg.Quit, "quit"),
	}
}

func newBinding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// Action maps a key press to the action it is bound to.
func (k KeyMap) Action(ev core.KeyEvent) core.Action {
	switch {
	case key.Matches(ev, k.Quit):
		return core.ActionQuit
	case key.Matches(ev, k.Left):
		return core.ActionLeft
	case key.Matches(ev, k.Right):
		return core.ActionRight
	case key.Matches(ev, k.Jump):
		return core.ActionJump
	}
	return core.ActionNone
}

// Decode turns at most one polled key into the intent for this tick.
// ok is false when no key arrived, which means neutral input.
func (k KeyMap) Decode(ev core.KeyEvent, ok bool) Intent {
	var in Intent
	if !ok {
		return in
	}

	switch k.Action(ev) {
	case core.ActionLeft:
		in.DirX = -1
	case core.ActionRight:
		// A right press after a left in the same decode would cancel it. Only
		// one event is decoded per tick, so DirX is always 0 here.
		if in.DirX == -1 {
			in.DirX = 0
		} else {
			in.DirX = 1
		}
	case core.ActionJump:
		in.Jump = true
	case core.ActionQuit:
		in.Quit = true
	}
	return in
}

// Help lists the bindings as "keys desc" pairs for display.
func (k KeyMap) Help() []string {
	bindings := []key.Binding{k.Left, k.Right, k.Jump, k.Quit}
	lines := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		lines = append(lines, h.Key+" "+h.Desc)
	}
	return lines
}
