package platformer

import (
	"strconv"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Renderer draws the visible part of the world into a reusable screen buffer.
type Renderer struct {
	screen *core.Screen
}

// NewRenderer creates a renderer with an empty buffer; it grows on first draw.
func NewRenderer() *Renderer {
	return &Renderer{screen: core.NewScreen(0, 0)}
}

// Draw renders one frame into the buffer and returns it.
// The player wins over platforms; platforms mark their top and bottom rows.
func (r *Renderer) Draw(p Player, obstacles []Obstacle, vp Viewport) *core.Screen {
	r.screen.Resize(vp.W, vp.H)
	r.screen.Fill(EmptyChar)

	for _, o := range obstacles {
		from, to := o.Clip(vp.X, vp.Right())
		if from >= to {
			continue
		}
		r.screen.DrawHLine(from-vp.X, o.Y-vp.Y, to-from, PlatformChar)
		r.screen.DrawHLine(from-vp.X, o.Bottom()-vp.Y, to-from, PlatformChar)
	}

	if vp.Contains(p.X, p.Y) {
		r.screen.Set(p.X-vp.X, p.Y-vp.Y, PlayerChar)
	}

	return r.screen
}

// Render clears the terminal and writes the frame row by row, followed by the
// player's raw coordinates. The caller flushes.
func (r *Renderer) Render(t core.Terminal, p Player, obstacles []Obstacle, vp Viewport) error {
	screen := r.Draw(p, obstacles, vp)

	if err := t.Clear(); err != nil {
		return err
	}
	if err := t.MoveCursor(0, 0); err != nil {
		return err
	}
	for y := 0; y < screen.Height(); y++ {
		if err := t.WriteLine(screen.Row(y)); err != nil {
			return err
		}
	}
	if err := t.WriteLine(strconv.Itoa(p.X)); err != nil {
		return err
	}
	return t.WriteLine(strconv.Itoa(p.Y))
}
