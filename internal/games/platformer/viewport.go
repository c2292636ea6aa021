package platformer

import "github.com/vovakirdan/tui-platformer/internal/config"

// Tracker recomputes the viewport origin from the player position.
type Tracker struct {
	Left  int // Minimum player column relative to the viewport
	Right int // Maximum player column relative to the viewport
	Top   int // Player row relative to the viewport
}

// DefaultTracker keeps the player between columns 5 and 45 and on row 5.
var DefaultTracker = Tracker{Left: 5, Right: 45, Top: 5}

// NewTracker builds a tracker from the viewport config.
func NewTracker(cfg config.PlatformerViewport) Tracker {
	return Tracker{Left: cfg.MarginLeft, Right: cfg.MarginRight, Top: cfg.OffsetTop}
}

// Update returns prev scrolled so the player is back inside the thresholds.
// Size is carried over unchanged.
//
// Horizontally this is a dead zone: the origin only moves when the player
// leaves [Left, Right]. Vertically both branches recenter on the same
// target, so any drift away from row Top snaps the window back.
func (t Tracker) Update(p Player, prev Viewport) Viewport {
	next := prev

	if p.X-prev.X < t.Left {
		next.X = p.X - t.Left
	} else if p.X-prev.X > t.Right {
		next.X = p.X - t.Right
	}

	if p.Y-prev.Y < t.Top {
		next.Y = p.Y - t.Top
	} else if p.Y-prev.Y > t.Top {
		next.Y = p.Y - t.Top
	}

	return next
}

// UpdateViewport applies DefaultTracker.
func UpdateViewport(p Player, prev Viewport) Viewport {
	return DefaultTracker.Update(p, prev)
}
