package platformer

// IsOnSolidGround returns true if the player stands directly on top of any
// obstacle: one row above its surface and within its horizontal span.
func IsOnSolidGround(p Player, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if p.Y == o.StandingRow() && o.SpansColumn(p.X) {
			return true
		}
	}
	return false
}
