package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			FallIntervalMs: 300,
			JumpHeight:     4,
		},
		Player: PlatformerPlayer{
			StartX: 0,
			StartY: 3,
		},
		Viewport: PlatformerViewport{
			Width:       100,
			Height:      30,
			MarginLeft:  5,
			MarginRight: 45,
			OffsetTop:   5,
			Sticky:      true,
		},
		Loop: PlatformerLoop{
			PollTimeoutMs: 50,
			Diagnostics:   true,
		},
		Keys: PlatformerKeys{
			Left:  []string{"a"},
			Right: []string{"d"},
			Jump:  []string{"w"},
			Quit:  []string{"q", "ctrl+c"},
		},
		Render: PlatformerRender{
			Color: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
