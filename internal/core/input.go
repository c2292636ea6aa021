package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A - move one column left
	ActionRight        // D - move one column right
	ActionJump         // W - jump while grounded
	ActionQuit         // Q, Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyEvent is a single key press reported by a terminal backend.
// Printable keys carry their character in Rune; special keys carry a
// name such as "ctrl+c" or "left" in Name.
type KeyEvent struct {
	Rune rune
	Name string
}

// RuneKey returns the event for a printable character.
func RuneKey(r rune) KeyEvent {
	return KeyEvent{Rune: r}
}

// NamedKey returns the event for a special key.
func NamedKey(name string) KeyEvent {
	return KeyEvent{Name: name}
}

// String returns the key in the notation used by key bindings:
// the name for special keys, the character otherwise.
func (k KeyEvent) String() string {
	if k.Name != "" {
		return k.Name
	}
	if k.Rune == 0 {
		return ""
	}
	return string(k.Rune)
}
