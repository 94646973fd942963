package simulation

import "github.com/anirudh242/c-solar-system/pkg/physics"

// Planet couples an orbiting body with its recorded trail.
type Planet struct {
	Name      string
	Body      physics.Body
	Trail     Trail
	ShowTrail bool
}

// World is the whole simulation state: an immobile sun and the planets
// orbiting it. It is passed explicitly to everything that needs it —
// the scheduler, the renderer and the input handling all receive the
// same context object rather than reaching for globals.
type World struct {
	Name    string
	Sun     physics.Body
	Planets []*Planet
	Clock   Clock

	trailsVisible bool
}

// Step advances every planet by one physics step of dt simulated
// seconds and appends each new position to its trail. Planets are
// attracted by the sun only; they do not interact with each other.
func (w *World) Step(dt float64) {
	for _, p := range w.Planets {
		physics.Advance(&p.Body, w.Sun, dt)
		p.Trail.Append(p.Body.Pos)
	}
}

// Advance credits elapsed wall seconds to the accumulator and drains
// it in whole fixed steps, returning how many steps ran. Frames
// shorter than one fixed step leave their time in the accumulator for
// the next frame.
func (w *World) Advance(elapsed float64) int {
	c := &w.Clock
	if elapsed > c.MaxFrameDelta {
		elapsed = c.MaxFrameDelta
	}
	c.Accumulator += elapsed
	steps := 0
	for c.Accumulator >= c.FixedDt {
		w.Step(c.FixedDt * c.TimeMultiplier)
		c.Accumulator -= c.FixedDt
		steps++
	}
	return steps
}

// StepDt returns the simulated seconds covered by one fixed step.
func (w *World) StepDt() float64 {
	return w.Clock.FixedDt * w.Clock.TimeMultiplier
}

// TrailsVisible reports the shared trail visibility flag.
func (w *World) TrailsVisible() bool {
	return w.trailsVisible
}

// ToggleTrails flips the shared visibility flag and applies it
// uniformly to every planet.
func (w *World) ToggleTrails() {
	w.trailsVisible = !w.trailsVisible
	for _, p := range w.Planets {
		p.ShowTrail = w.trailsVisible
	}
}
