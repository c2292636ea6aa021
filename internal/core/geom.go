// Package core provides fundamental types shared by the platformer and its
// terminal backends. It has no external dependencies (especially no Bubble Tea
// or tcell) so game logic stays pure and testable.
package core

// Rect is an axis-aligned rectangle in integer cell coordinates.
// Y grows downward.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// SpansColumn returns true if x lies in [X, Right()).
func (r Rect) SpansColumn(x int) bool {
	return x >= r.X && x < r.Right()
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return r.SpansColumn(x) && y >= r.Y && y < r.Bottom()
}

// Clip returns the column range [from, to) of r that overlaps [minX, maxX).
// The range is empty (from >= to) when they do not overlap.
func (r Rect) Clip(minX, maxX int) (from, to int) {
	return max(r.X, minX), min(r.Right(), maxX)
}
