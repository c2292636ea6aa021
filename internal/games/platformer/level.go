package platformer

// DefaultLevel returns the fixed level layout: five ten-column platforms
// stepping up and to the right.
func DefaultLevel() []Obstacle {
	return []Obstacle{
		NewObstacle(0, 5, 10, 1),
		NewObstacle(13, 5, 10, 1),
		NewObstacle(26, 3, 10, 1),
		NewObstacle(39, 1, 10, 1),
		NewObstacle(52, -1, 10, 1),
	}
}
