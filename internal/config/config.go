// Package config provides YAML-based configuration loading for the platformer.
package config

import (
	"fmt"
	"time"
)

// PlatformerConfig contains all tunable settings for a game session.
// The level layout is fixed and deliberately not part of it.
type PlatformerConfig struct {
	Physics  PlatformerPhysics  `yaml:"physics"`
	Player   PlatformerPlayer   `yaml:"player"`
	Viewport PlatformerViewport `yaml:"viewport"`
	Loop     PlatformerLoop     `yaml:"loop"`
	Keys     PlatformerKeys     `yaml:"keys"`
	Render   PlatformerRender   `yaml:"render"`
}

// PlatformerPhysics defines movement parameters.
type PlatformerPhysics struct {
	FallIntervalMs int `yaml:"fall_interval_ms"` // Minimum time between gravity steps
	JumpHeight     int `yaml:"jump_height"`      // Rows gained by a jump impulse
}

// FallInterval returns the gravity gate as a duration.
func (p PlatformerPhysics) FallInterval() time.Duration {
	return time.Duration(p.FallIntervalMs) * time.Millisecond
}

// PlatformerPlayer defines where the player spawns.
type PlatformerPlayer struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// PlatformerViewport defines the visible window and its scroll thresholds.
type PlatformerViewport struct {
	Width       int  `yaml:"width"`
	Height      int  `yaml:"height"`
	MarginLeft  int  `yaml:"margin_left"`  // Scroll left when the player is closer than this to the left edge
	MarginRight int  `yaml:"margin_right"` // Scroll right when the player is further than this from the left edge
	OffsetTop   int  `yaml:"offset_top"`   // Rows kept above the player
	Sticky      bool `yaml:"sticky"`       // Carry the scroll origin across frames
}

// PlatformerLoop defines game loop timing and diagnostics.
type PlatformerLoop struct {
	PollTimeoutMs int  `yaml:"poll_timeout_ms"` // Max wait for a key press per tick
	Diagnostics   bool `yaml:"diagnostics"`     // Print frame time, FPS and grounded flag under the frame
}

// PollTimeout returns the input wait as a duration.
func (l PlatformerLoop) PollTimeout() time.Duration {
	return time.Duration(l.PollTimeoutMs) * time.Millisecond
}

// PlatformerKeys lists key names per action, in bubbles/key notation
// ("a", "ctrl+c", "left").
type PlatformerKeys struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Jump  []string `yaml:"jump"`
	Quit  []string `yaml:"quit"`
}

// PlatformerRender defines presentation options for terminal backends.
type PlatformerRender struct {
	Color bool `yaml:"color"` // Style player and platforms
}

// Validate reports the first setting that would make the game unplayable.
func (c PlatformerConfig) Validate() error {
	switch {
	case c.Viewport.Width <= 0 || c.Viewport.Height <= 0:
		return fmt.Errorf("config: viewport must be positive, got %dx%d", c.Viewport.Width, c.Viewport.Height)
	case c.Loop.PollTimeoutMs <= 0:
		return fmt.Errorf("config: poll_timeout_ms must be positive, got %d", c.Loop.PollTimeoutMs)
	case c.Physics.FallIntervalMs < 0:
		return fmt.Errorf("config: fall_interval_ms must not be negative, got %d", c.Physics.FallIntervalMs)
	case c.Physics.JumpHeight < 0:
		return fmt.Errorf("config: jump_height must not be negative, got %d", c.Physics.JumpHeight)
	case len(c.Keys.Quit) == 0:
		return fmt.Errorf("config: at least one quit key is required")
	}
	return nil
}
