package platformer

import (
	"errors"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// polled is one scripted PollKey result.
type polled struct {
	ev  core.KeyEvent
	ok  bool
	err error
}

func press(r rune) polled { return polled{ev: core.RuneKey(r), ok: true} }

func idle() polled { return polled{} }

// fakeTerminal records everything the loop writes and replays scripted input.
// When the script runs out it reports "q" so loops always terminate.
type fakeTerminal struct {
	script []polled
	polls  int

	enabled  int
	disabled int
	raw      bool

	lines   []string   // lines written since the last Clear
	frames  [][]string // lines at each Flush
	cursorY int

	enableErr error
	writeErr  error
}

var errFake = errors.New("fake failure")

func (f *fakeTerminal) EnableRawMode() error {
	if f.enableErr != nil {
		return f.enableErr
	}
	f.enabled++
	f.raw = true
	return nil
}

func (f *fakeTerminal) DisableRawMode() error {
	f.disabled++
	f.raw = false
	return nil
}

func (f *fakeTerminal) PollKey(time.Duration) (core.KeyEvent, bool, error) {
	if f.polls >= len(f.script) {
		f.polls++
		return core.RuneKey('q'), true, nil
	}
	p := f.script[f.polls]
	f.polls++
	return p.ev, p.ok, p.err
}

func (f *fakeTerminal) Clear() error {
	f.lines = f.lines[:0]
	return nil
}

func (f *fakeTerminal) MoveCursor(_, y int) error {
	f.cursorY = y
	return nil
}

func (f *fakeTerminal) WriteLine(text string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.lines = append(f.lines, text)
	f.cursorY++
	return nil
}

func (f *fakeTerminal) Flush() error {
	frame := make([]string, len(f.lines))
	copy(frame, f.lines)
	f.frames = append(f.frames, frame)
	return nil
}

var _ core.Terminal = (*fakeTerminal)(nil)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
