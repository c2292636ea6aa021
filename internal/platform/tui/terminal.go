// Package tui provides the Bubble Tea terminal backend and the SSH server.
// A Bubble Tea program owns the real terminal; the game loop talks to it
// through core.Terminal.
package tui

import (
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// keyBufferSize bounds the number of keys waiting for the loop.
// The loop reads one key per tick, so older keys are dropped first.
const keyBufferSize = 16

// Options configures a Terminal.
type Options struct {
	// ProgramOptions are passed to tea.NewProgram (input, output, alt screen).
	ProgramOptions []tea.ProgramOption

	// Renderer builds the frame styles. Nil uses lipgloss.DefaultRenderer().
	Renderer *lipgloss.Renderer

	// Color enables styled tiles.
	Color bool
}

// Terminal implements core.Terminal on top of a Bubble Tea program.
// Written lines are buffered and handed to the program on Flush.
type Terminal struct {
	opts   Options
	styles Styles

	keys    *core.KeyQueue
	program *tea.Program
	done    chan struct{}
	runErr  error

	mu    sync.Mutex
	lines []string
	row   int
}

// NewTerminal creates a Terminal. The program starts on EnableRawMode.
func NewTerminal(opts Options) *Terminal {
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	return &Terminal{
		opts:   opts,
		styles: NewStyles(r, opts.Color),
		keys:   core.NewKeyQueue(keyBufferSize),
	}
}

// EnableRawMode starts the Bubble Tea program, which puts the terminal into
// raw mode and begins forwarding keys.
func (t *Terminal) EnableRawMode() error {
	if t.program != nil {
		return nil
	}

	t.done = make(chan struct{})
	t.program = tea.NewProgram(newModel(t.keys), t.opts.ProgramOptions...)

	go func() {
		defer close(t.done)
		_, err := t.program.Run()
		t.runErr = err
	}()
	return nil
}

// DisableRawMode stops the program and waits for it to restore the terminal.
func (t *Terminal) DisableRawMode() error {
	if t.program == nil {
		return nil
	}

	t.program.Quit()
	<-t.done
	t.program = nil
	return t.runErr
}

// PollKey waits up to timeout for a key.
func (t *Terminal) PollKey(timeout time.Duration) (core.KeyEvent, bool, error) {
	select {
	case ev := <-t.keys.C():
		return ev, true, nil
	default:
	}

	if err := t.closed(); err != nil {
		return core.KeyEvent{}, false, err
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
		return core.KeyEvent{}, false, t.closed()
	case <-timer.C:
		return core.KeyEvent{}, false, nil
	}
}

// Clear empties the line buffer and homes the cursor.
func (t *Terminal) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lines = t.lines[:0]
	t.row = 0
	return nil
}

// MoveCursor sets the row the next WriteLine replaces.
// Lines always start at column 0, so x is ignored.
func (t *Terminal) MoveCursor(_, y int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if y < 0 {
		y = 0
	}
	t.row = y
	return nil
}

// WriteLine writes text at the cursor row and moves to the next row.
func (t *Terminal) WriteLine(text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for len(t.lines) <= t.row {
		t.lines = append(t.lines, "")
	}
	t.lines[t.row] = text
	t.row++
	return nil
}

// Flush sends the buffered frame to the program for display.
func (t *Terminal) Flush() error {
	if err := t.closed(); err != nil {
		return err
	}
	if t.program == nil {
		return core.ErrTerminalClosed
	}

	t.program.Send(frameMsg(t.Frame()))
	return nil
}

// Lines returns a copy of the buffered lines.
func (t *Terminal) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

// Frame returns the buffered lines styled and joined for display.
func (t *Terminal) Frame() string {
	lines := t.Lines()
	styled := make([]string, len(lines))
	for i, line := range lines {
		styled[i] = t.styles.RenderLine(line)
	}
	return strings.Join(styled, "\n")
}

// closed reports the program exit error, or ErrTerminalClosed if it exited
// cleanly. It returns nil while the program is running.
func (t *Terminal) closed() error {
	if t.done == nil {
		return nil
	}
	select {
	case <-t.done:
		if t.runErr != nil {
			return t.runErr
		}
		return core.ErrTerminalClosed
	default:
		return nil
	}
}

var _ core.Terminal = (*Terminal)(nil)
