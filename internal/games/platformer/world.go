// Package platformer implements a side-scrolling terminal platformer.
// The player walks left and right, jumps between fixed platforms and falls
// under rate-limited gravity while a viewport follows it.
package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = 'P'
	PlatformChar = 'X'
	EmptyChar    = '.'
)

// Player is the controllable character, a single cell in world coordinates.
type Player struct {
	X, Y int // Y grows downward
}

// Obstacle is a fixed platform. Y is the row of its top surface and the
// height extends downward.
type Obstacle struct {
	core.Rect
}

// NewObstacle creates a platform with its top surface at row y.
func NewObstacle(x, y, width, height int) Obstacle {
	return Obstacle{Rect: core.NewRect(x, y, width, height)}
}

// StandingRow returns the row a player occupies when standing on this platform.
func (o Obstacle) StandingRow() int {
	return o.Y - 1
}

// Viewport is the world-coordinate window rendered to the terminal.
type Viewport struct {
	core.Rect
}

// NewViewport creates a viewport with origin (x, y).
func NewViewport(x, y, width, height int) Viewport {
	return Viewport{Rect: core.NewRect(x, y, width, height)}
}

// DefaultViewport returns a viewport at the world origin sized from cfg.
func DefaultViewport(cfg config.PlatformerViewport) Viewport {
	return NewViewport(0, 0, cfg.Width, cfg.Height)
}
