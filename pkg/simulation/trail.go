package simulation

import "github.com/anirudh242/c-solar-system/pkg/physics"

// Trail records a body's past positions in insertion order, oldest
// first. Growth is unbounded by default; the memory cost over a long
// run is accepted for the demo. A positive limit turns it into a
// sliding window that drops the oldest points.
type Trail struct {
	points []physics.Vec2
	limit  int
}

// Append adds one position to the end of the trail.
func (t *Trail) Append(p physics.Vec2) {
	t.points = append(t.points, p)
	if t.limit > 0 && len(t.points) > t.limit {
		t.points = t.points[len(t.points)-t.limit:]
	}
}

func (t *Trail) Len() int {
	return len(t.points)
}

// Points returns the recorded positions, oldest first. The slice is
// owned by the trail and must not be mutated by callers.
func (t *Trail) Points() []physics.Vec2 {
	return t.points
}
