package platformer

import (
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

// Intent is the decoded player input for one tick.
type Intent struct {
	DirX int  // -1 left, 0 neutral, 1 right
	Jump bool // Jump requested this tick
	Quit bool // End the session
}

// Simulation owns the player and the timers that drive its movement.
// The obstacle slice is shared and never modified.
type Simulation struct {
	Player    Player
	Obstacles []Obstacle

	fallInterval time.Duration
	jumpHeight   int
	lastFall     time.Time // Time of the last gravity step
}

// NewSimulation creates a simulation with the player at start.
// The gravity timer starts at now.
func NewSimulation(start Player, obstacles []Obstacle, phys config.PlatformerPhysics, now time.Time) *Simulation {
	return &Simulation{
		Player:       start,
		Obstacles:    obstacles,
		fallInterval: phys.FallInterval(),
		jumpHeight:   phys.JumpHeight,
		lastFall:     now,
	}
}

// Step advances the player by one tick.
//
// Horizontal movement is never blocked; platforms only provide support.
// An airborne player falls one row at most once per fall interval. A grounded
// player jumps by an instant impulse when asked; jumps in the air are ignored.
func (s *Simulation) Step(in Intent, now time.Time) {
	s.Player.X += in.DirX

	if !IsOnSolidGround(s.Player, s.Obstacles) {
		if now.Sub(s.lastFall) >= s.fallInterval {
			s.Player.Y++
			s.lastFall = now
		}
		return
	}

	if in.Jump {
		s.Player.Y -= s.jumpHeight
	}
}

// Grounded reports whether the player currently stands on a platform.
func (s *Simulation) Grounded() bool {
	return IsOnSolidGround(s.Player, s.Obstacles)
}
