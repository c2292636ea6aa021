package tui

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestTerminalLineBuffer(t *testing.T) {
	term := NewTerminal(Options{})

	for _, line := range []string{"a", "b", "c"} {
		if err := term.WriteLine(line); err != nil {
			t.Fatal(err)
		}
	}
	if got := strings.Join(term.Lines(), "|"); got != "a|b|c" {
		t.Errorf("Lines() = %q, expected %q", got, "a|b|c")
	}

	// Overwrite the middle row
	if err := term.MoveCursor(0, 1); err != nil {
		t.Fatal(err)
	}
	if err := term.WriteLine("B"); err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(term.Lines(), "|"); got != "a|B|c" {
		t.Errorf("Lines() = %q, expected %q", got, "a|B|c")
	}

	if err := term.Clear(); err != nil {
		t.Fatal(err)
	}
	if len(term.Lines()) != 0 {
		t.Errorf("Lines() after Clear = %q, expected empty", term.Lines())
	}
}

func TestTerminalWriteBelowCursorPads(t *testing.T) {
	term := NewTerminal(Options{})

	term.MoveCursor(0, 2)
	term.WriteLine("x")

	lines := term.Lines()
	if len(lines) != 3 || lines[0] != "" || lines[1] != "" || lines[2] != "x" {
		t.Errorf("Lines() = %q, expected [\"\" \"\" \"x\"]", lines)
	}
}

func TestTerminalFrameWithoutColor(t *testing.T) {
	term := NewTerminal(Options{Color: false})
	term.WriteLine("P..X")
	term.WriteLine("12")

	if got := term.Frame(); got != "P..X\n12" {
		t.Errorf("Frame() = %q, expected %q", got, "P..X\n12")
	}
}

func TestTerminalPollKeyTimeout(t *testing.T) {
	term := NewTerminal(Options{})

	start := time.Now()
	_, ok, err := term.PollKey(5 * time.Millisecond)
	if err != nil || ok {
		t.Errorf("PollKey() = ok %v, err %v, expected timeout", ok, err)
	}
	if time.Since(start) < 5*time.Millisecond {
		t.Error("PollKey() returned before the timeout")
	}
}

func TestTerminalPollKeyQueued(t *testing.T) {
	term := NewTerminal(Options{})
	term.keys.Push(core.RuneKey('w'))

	ev, ok, err := term.PollKey(0)
	if err != nil || !ok || ev != core.RuneKey('w') {
		t.Errorf("PollKey() = %v, %v, %v, expected queued 'w'", ev, ok, err)
	}

	if _, ok, _ := term.PollKey(0); ok {
		t.Error("PollKey(0) should not block or report a key on an empty queue")
	}
}

func TestTerminalFlushBeforeStart(t *testing.T) {
	term := NewTerminal(Options{})
	if err := term.Flush(); !errors.Is(err, core.ErrTerminalClosed) {
		t.Errorf("Flush() = %v, expected ErrTerminalClosed", err)
	}
}

func TestTerminalProgramForwardsKeys(t *testing.T) {
	term := NewTerminal(Options{
		ProgramOptions: []tea.ProgramOption{
			tea.WithInput(strings.NewReader("d")),
			tea.WithOutput(io.Discard),
			tea.WithoutSignalHandler(),
		},
	})

	if err := term.EnableRawMode(); err != nil {
		t.Fatalf("EnableRawMode() failed: %v", err)
	}

	ev, ok, err := term.PollKey(2 * time.Second)
	if err != nil || !ok || ev != core.RuneKey('d') {
		t.Errorf("PollKey() = %v, %v, %v, expected 'd'", ev, ok, err)
	}

	term.WriteLine("P.")
	if err := term.Flush(); err != nil {
		t.Errorf("Flush() failed: %v", err)
	}

	if err := term.DisableRawMode(); err != nil {
		t.Errorf("DisableRawMode() failed: %v", err)
	}
	if err := term.Flush(); !errors.Is(err, core.ErrTerminalClosed) {
		t.Errorf("Flush() after stop = %v, expected ErrTerminalClosed", err)
	}
	if _, _, err := term.PollKey(time.Millisecond); !errors.Is(err, core.ErrTerminalClosed) {
		t.Errorf("PollKey() after stop = %v, expected ErrTerminalClosed", err)
	}
}
