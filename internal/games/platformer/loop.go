package platformer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// State is the game loop state.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// Loop drives one game session: poll input, step physics, track the
// viewport, render. It owns the simulation and is not safe for concurrent use.
type Loop struct {
	term     core.Terminal
	cfg      config.PlatformerConfig
	sim      *Simulation
	keys     KeyMap
	tracker  Tracker
	renderer *Renderer
	logger   *log.Logger
	now      func() time.Time

	state    State
	view     Viewport
	lastTick time.Time
	frames   int
}

// NewLoop creates a session on the default level.
// A nil logger discards log output.
func NewLoop(term core.Terminal, cfg config.PlatformerConfig, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	l := &Loop{
		term:     term,
		cfg:      cfg,
		keys:     NewKeyMap(cfg.Keys),
		tracker:  NewTracker(cfg.Viewport),
		renderer: NewRenderer(),
		logger:   logger,
		now:      time.Now,
		state:    StateRunning,
		view:     DefaultViewport(cfg.Viewport),
	}
	l.reset()
	return l
}

// reset places the player at the start and restarts all timers.
func (l *Loop) reset() {
	now := l.now()
	start := Player{X: l.cfg.Player.StartX, Y: l.cfg.Player.StartY}
	l.sim = NewSimulation(start, DefaultLevel(), l.cfg.Physics, now)
	l.lastTick = now
}

// State returns the current loop state.
func (l *Loop) State() State {
	return l.state
}

// Player returns a copy of the player.
func (l *Loop) Player() Player {
	return l.sim.Player
}

// Viewport returns the viewport of the last rendered frame.
func (l *Loop) Viewport() Viewport {
	return l.view
}

// Frames returns the number of frames rendered so far.
func (l *Loop) Frames() int {
	return l.frames
}

// Run takes raw mode and ticks until the quit key is pressed, ctx is
// cancelled, or a terminal operation fails. Raw mode is released on every
// exit path; a release failure is reported only if nothing failed before it.
func (l *Loop) Run(ctx context.Context) (err error) {
	if err := l.term.EnableRawMode(); err != nil {
		return core.WrapTermError("enable raw mode", err)
	}
	defer func() {
		if rerr := l.term.DisableRawMode(); rerr != nil && err == nil {
			err = core.WrapTermError("disable raw mode", rerr)
		}
	}()

	l.reset()
	l.logger.Info("session started", "controls", l.keys.Help())

	for l.state == StateRunning {
		select {
		case <-ctx.Done():
			l.logger.Info("session cancelled", "reason", ctx.Err())
			l.state = StateTerminated
			continue
		default:
		}

		if err := l.Tick(); err != nil {
			l.logger.Error("tick failed", "frame", l.frames, "error", err)
			return err
		}
	}

	l.logger.Info("session ended", "frames", l.frames, "x", l.sim.Player.X, "y", l.sim.Player.Y)
	return nil
}

// Tick runs one iteration of the loop. It is a no-op once terminated.
func (l *Loop) Tick() error {
	if l.state != StateRunning {
		return nil
	}

	now := l.now()
	elapsed := now.Sub(l.lastTick)
	l.lastTick = now

	if !l.cfg.Viewport.Sticky {
		l.view = DefaultViewport(l.cfg.Viewport)
	}

	ev, ok, err := l.term.PollKey(l.cfg.Loop.PollTimeout())
	if err != nil {
		return core.WrapTermError("poll", err)
	}

	in := l.keys.Decode(ev, ok)
	if in.Quit {
		l.state = StateTerminated
		return nil
	}

	l.sim.Step(in, l.now())
	l.view = l.tracker.Update(l.sim.Player, l.view)

	if err := l.renderer.Render(l.term, l.sim.Player, l.sim.Obstacles, l.view); err != nil {
		return core.WrapTermError("write", err)
	}
	if err := l.writeDiagnostics(elapsed); err != nil {
		return core.WrapTermError("write", err)
	}
	if err := l.term.Flush(); err != nil {
		return core.WrapTermError("flush", err)
	}

	l.frames++
	return nil
}

// writeDiagnostics emits frame time, an FPS estimate and the grounded flag.
func (l *Loop) writeDiagnostics(elapsed time.Duration) error {
	grounded := l.sim.Grounded()
	fps := FPS(elapsed)

	l.logger.Debug("frame",
		"n", l.frames,
		"elapsed", elapsed,
		"fps", fps,
		"grounded", grounded,
		"x", l.sim.Player.X,
		"y", l.sim.Player.Y,
	)

	if !l.cfg.Loop.Diagnostics {
		return nil
	}

	lines := []string{
		fmt.Sprintf("frame: %s", elapsed.Round(time.Microsecond)),
		fmt.Sprintf("Running at %.1f fps", fps),
		fmt.Sprintf("grounded: %t", grounded),
	}
	for _, line := range lines {
		if err := l.term.WriteLine(line); err != nil {
			return err
		}
	}
	return nil
}

// FPS estimates the frame rate from a single frame time.
func FPS(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return 1 / elapsed.Seconds()
}
