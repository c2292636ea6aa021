// Package tcellterm implements core.Terminal on a tcell screen.
package tcellterm

import (
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

const keyBufferSize = 16

// Terminal draws lines straight into a tcell screen. A goroutine pumps
// screen events into a key queue until the screen is finalized.
type Terminal struct {
	screen tcell.Screen
	color  bool
	keys   *core.KeyQueue

	once    sync.Once
	started bool
	done    chan struct{}

	row int
}

// New creates a Terminal on the controlling terminal.
func New(color bool) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, core.WrapTermError("open screen", err)
	}
	return NewWithScreen(s, color), nil
}

// NewWithScreen wraps an existing, uninitialized screen.
func NewWithScreen(s tcell.Screen, color bool) *Terminal {
	return &Terminal{
		screen: s,
		color:  color,
		keys:   core.NewKeyQueue(keyBufferSize),
		done:   make(chan struct{}),
	}
}

// EnableRawMode initializes the screen and starts the event pump.
func (t *Terminal) EnableRawMode() error {
	if t.started {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	t.screen.Clear()
	t.started = true

	go t.pump()
	return nil
}

// DisableRawMode finalizes the screen and waits for the pump to exit.
// A finalized screen cannot be initialized again.
func (t *Terminal) DisableRawMode() error {
	if !t.started {
		return nil
	}
	t.once.Do(func() {
		t.screen.Fini()
		<-t.done
	})
	return nil
}

// pump forwards key events until PollEvent returns nil after Fini.
func (t *Terminal) pump() {
	defer close(t.done)

	for {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			t.keys.Push(KeyEvent(ev))
		}
	}
}

// PollKey waits up to timeout for a key.
func (t *Terminal) PollKey(timeout time.Duration) (core.KeyEvent, bool, error) {
	select {
	case ev := <-t.keys.C():
		return ev, true, nil
	default:
	}

	if t.closed() {
		return core.KeyEvent{}, false, core.ErrTerminalClosed
	}
	if timeout <= 0 {
		return core.KeyEvent{}, false, nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-t.keys.C():
		return ev, true, nil
	case <-t.done:
		return core.KeyEvent{}, false, core.ErrTerminalClosed
	case <-timer.C:
		return core.KeyEvent{}, false, nil
	}
}

// Clear blanks the screen and homes the cursor.
func (t *Terminal) Clear() error {
	if t.closed() {
		return core.ErrTerminalClosed
	}
	t.screen.Clear()
	t.row = 0
	return nil
}

// MoveCursor sets the row the next WriteLine draws on. Lines start at column 0.
func (t *Terminal) MoveCursor(_, y int) error {
	if y < 0 {
		y = 0
	}
	t.row = y
	return nil
}

// WriteLine draws text on the cursor row and moves to the next row.
// Text past the screen edge is clipped by tcell.
func (t *Terminal) WriteLine(text string) error {
	if t.closed() {
		return core.ErrTerminalClosed
	}

	width, _ := t.screen.Size()
	grid := t.color && isGridRow(text)

	x := 0
	for _, r := range text {
		if x >= width {
			break
		}
		style := tcell.StyleDefault
		if grid {
			style = tileStyle(r)
		}
		t.screen.SetContent(x, t.row, r, nil, style)
		x++
	}
	t.row++
	return nil
}

// Flush shows the drawn frame.
func (t *Terminal) Flush() error {
	if t.closed() {
		return core.ErrTerminalClosed
	}
	t.screen.Show()
	return nil
}

func (t *Terminal) closed() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// KeyEvent translates a tcell key event. Printable keys become rune events;
// named keys use the same names as Bubble Tea ("ctrl+c", "left", "esc").
func KeyEvent(ev *tcell.EventKey) core.KeyEvent {
	if ev.Key() == tcell.KeyRune {
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return core.NamedKey("alt+" + string(ev.Rune()))
		}
		return core.RuneKey(ev.Rune())
	}

	if name, ok := keyNames[ev.Key()]; ok {
		return core.NamedKey(name)
	}
	return core.NamedKey(strings.ToLower(ev.Name()))
}

var keyNames = map[tcell.Key]string{
	tcell.KeyCtrlC:      "ctrl+c",
	tcell.KeyEscape:     "esc",
	tcell.KeyEnter:      "enter",
	tcell.KeyTab:        "tab",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
}

var tileStyles = map[rune]tcell.Style{
	platformer.PlayerChar:   tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	platformer.PlatformChar: tcell.StyleDefault.Foreground(tcell.ColorGreen),
	platformer.EmptyChar:    tcell.StyleDefault.Foreground(tcell.ColorGray),
}

func tileStyle(r rune) tcell.Style {
	if s, ok := tileStyles[r]; ok {
		return s
	}
	return tcell.StyleDefault
}

// isGridRow reports whether line consists only of tile runes.
func isGridRow(line string) bool {
	if line == "" {
		return false
	}
	for _, r := range line {
		if _, ok := tileStyles[r]; !ok {
			return false
		}
	}
	return true
}

var _ core.Terminal = (*Terminal)(nil)
