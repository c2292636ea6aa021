package platformer

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

func newTestSimulation(p Player, clock *fakeClock) *Simulation {
	return NewSimulation(p, DefaultLevel(), config.DefaultPlatformerConfig().Physics, clock.Now())
}

func TestHorizontalMovementIsUnconditional(t *testing.T) {
	clock := newFakeClock()

	tests := []struct {
		name  string
		start Player
		dirX  int
		wantX int
	}{
		{"left from mid-air", Player{X: 5, Y: 3}, -1, 4},
		{"right from mid-air", Player{X: 5, Y: 3}, 1, 6},
		{"neutral", Player{X: 5, Y: 3}, 0, 5},
		{"left while grounded", Player{X: 5, Y: 4}, -1, 4},
		{"through a platform row", Player{X: 12, Y: 5}, 1, 13},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sim := newTestSimulation(tc.start, clock)
			sim.Step(Intent{DirX: tc.dirX}, clock.Now())
			if sim.Player.X != tc.wantX {
				t.Errorf("X = %d, expected %d", sim.Player.X, tc.wantX)
			}
		})
	}
}

func TestGravityIsRateLimited(t *testing.T) {
	clock := newFakeClock()
	sim := newTestSimulation(Player{X: 5, Y: 0}, clock)

	// Two ticks 10ms apart, starting just after the gate opens
	clock.Advance(300 * time.Millisecond)
	sim.Step(Intent{}, clock.Now())
	clock.Advance(10 * time.Millisecond)
	sim.Step(Intent{}, clock.Now())

	if sim.Player.Y != 1 {
		t.Errorf("Y = %d, expected exactly one gravity step (1)", sim.Player.Y)
	}

	// Not yet 300ms since the last fall
	clock.Advance(280 * time.Millisecond)
	sim.Step(Intent{}, clock.Now())
	if sim.Player.Y != 1 {
		t.Errorf("Y = %d, gravity should wait for the full interval", sim.Player.Y)
	}

	clock.Advance(10 * time.Millisecond)
	sim.Step(Intent{}, clock.Now())
	if sim.Player.Y != 2 {
		t.Errorf("Y = %d, expected second gravity step after 300ms", sim.Player.Y)
	}
}

func TestGravityGateStartsAtCreation(t *testing.T) {
	clock := newFakeClock()
	sim := newTestSimulation(Player{X: 0, Y: 3}, clock)

	sim.Step(Intent{}, clock.Now())
	if sim.Player.Y != 3 {
		t.Errorf("Y = %d, gravity should not apply on the first tick", sim.Player.Y)
	}
}

func TestFallsOntoPlatformAndStops(t *testing.T) {
	clock := newFakeClock()
	sim := newTestSimulation(Player{X: 0, Y: 3}, clock)

	for i := 0; i < 10; i++ {
		clock.Advance(300 * time.Millisecond)
		sim.Step(Intent{}, clock.Now())
	}

	if sim.Player.Y != 4 {
		t.Errorf("Y = %d, expected to land on row 4", sim.Player.Y)
	}
	if !sim.Grounded() {
		t.Error("player should be grounded after landing")
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	clock := newFakeClock()

	grounded := newTestSimulation(Player{X: 2, Y: 4}, clock)
	grounded.Step(Intent{Jump: true}, clock.Now())
	if grounded.Player.Y != 0 {
		t.Errorf("grounded jump: Y = %d, expected 0", grounded.Player.Y)
	}

	airborne := newTestSimulation(Player{X: 2, Y: 2}, clock)
	airborne.Step(Intent{Jump: true}, clock.Now())
	if airborne.Player.Y != 2 {
		t.Errorf("airborne jump: Y = %d, jump must be ignored", airborne.Player.Y)
	}

	// Gravity may still apply to an airborne jump press
	clock.Advance(300 * time.Millisecond)
	airborne.Step(Intent{Jump: true}, clock.Now())
	if airborne.Player.Y != 3 {
		t.Errorf("airborne jump after gate: Y = %d, expected gravity only (3)", airborne.Player.Y)
	}
}

func TestJumpAndGravityAreExclusive(t *testing.T) {
	clock := newFakeClock()
	sim := newTestSimulation(Player{X: 2, Y: 4}, clock)

	// Gate is open, but a grounded tick never falls
	clock.Advance(time.Second)
	sim.Step(Intent{Jump: true}, clock.Now())
	if sim.Player.Y != 0 {
		t.Errorf("Y = %d, expected jump without fall (0)", sim.Player.Y)
	}
}

func TestGroundCheckUsesPositionAfterHorizontalMove(t *testing.T) {
	clock := newFakeClock()
	// Standing on the right edge of the first platform
	sim := newTestSimulation(Player{X: 9, Y: 4}, clock)

	// Walking off: the jump is ignored because the player is no longer grounded
	sim.Step(Intent{DirX: 1, Jump: true}, clock.Now())
	if sim.Player.X != 10 || sim.Player.Y != 4 {
		t.Errorf("player = %+v, expected (10, 4) with jump ignored", sim.Player)
	}

	clock.Advance(300 * time.Millisecond)
	sim.Step(Intent{}, clock.Now())
	if sim.Player.Y != 5 {
		t.Errorf("Y = %d, expected to start falling off the edge", sim.Player.Y)
	}
}

func TestRepeatedJumpHasNoCooldown(t *testing.T) {
	clock := newFakeClock()
	obstacles := []Obstacle{NewObstacle(0, 5, 10, 1), NewObstacle(0, 1, 10, 1)}
	sim := NewSimulation(Player{X: 2, Y: 4}, obstacles, config.DefaultPlatformerConfig().Physics, clock.Now())

	sim.Step(Intent{Jump: true}, clock.Now())
	if sim.Player.Y != 0 {
		t.Fatalf("Y = %d, expected first jump to land on the upper platform row 0", sim.Player.Y)
	}

	// Grounded again on the upper platform in the very next frame
	sim.Step(Intent{Jump: true}, clock.Now())
	if sim.Player.Y != -4 {
		t.Errorf("Y = %d, expected immediate second jump to -4", sim.Player.Y)
	}
}

func TestCustomPhysics(t *testing.T) {
	clock := newFakeClock()
	phys := config.PlatformerPhysics{FallIntervalMs: 100, JumpHeight: 2}
	sim := NewSimulation(Player{X: 2, Y: 4}, DefaultLevel(), phys, clock.Now())

	sim.Step(Intent{Jump: true}, clock.Now())
	if sim.Player.Y != 2 {
		t.Errorf("Y = %d, expected jump height 2", sim.Player.Y)
	}

	clock.Advance(100 * time.Millisecond)
	sim.Step(Intent{}, clock.Now())
	if sim.Player.Y != 3 {
		t.Errorf("Y = %d, expected fall after 100ms", sim.Player.Y)
	}
}
