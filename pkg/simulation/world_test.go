package simulation

import (
	"testing"

	"github.com/anirudh242/c-solar-system/pkg/physics"
)

func solarWorld(t *testing.T) *World {
	t.Helper()
	return NewWorld(DefaultScenario())
}

func TestAdvanceBelowFixedStep(t *testing.T) {
	w := solarWorld(t)

	steps := w.Advance(0.0005)

	if steps != 0 {
		t.Errorf("steps = %d, want 0 for a frame shorter than FixedDt", steps)
	}
	if w.Clock.Accumulator != 0.0005 {
		t.Errorf("accumulator = %v, want 0.0005 carried to the next frame", w.Clock.Accumulator)
	}
	for _, p := range w.Planets {
		if p.Trail.Len() != 0 {
			t.Errorf("%s: trail grew without a physics step", p.Name)
		}
	}
}

func TestAdvanceDrainsWholeSteps(t *testing.T) {
	w := solarWorld(t)

	total := 0
	for i := 0; i < 10; i++ {
		total += w.Advance(FixedDt)
	}

	if total != 10 {
		t.Fatalf("steps = %d, want 10", total)
	}
	for _, p := range w.Planets {
		if p.Trail.Len() != 10 {
			t.Errorf("%s: trail len = %d, want one point per step", p.Name, p.Trail.Len())
		}
	}
}

func TestAdvanceClampsFrameDelta(t *testing.T) {
	// a huge stall must behave exactly like a MaxFrameDelta frame
	stalled := solarWorld(t)
	clamped := solarWorld(t)

	a := stalled.Advance(3600)
	b := clamped.Advance(MaxFrameDelta)

	if a != b {
		t.Errorf("stalled frame ran %d steps, clamped frame %d; clamp must cap catch-up", a, b)
	}
	if stalled.Clock.Accumulator != clamped.Clock.Accumulator {
		t.Errorf("accumulators diverged: %v vs %v", stalled.Clock.Accumulator, clamped.Clock.Accumulator)
	}
}

func TestStepAdvancesAllPlanets(t *testing.T) {
	w := solarWorld(t)
	before := make([]physics.Vec2, len(w.Planets))
	for i, p := range w.Planets {
		before[i] = p.Body.Pos
	}

	w.Step(w.StepDt())

	for i, p := range w.Planets {
		if p.Body.Pos == before[i] {
			t.Errorf("%s did not move", p.Name)
		}
		if p.Trail.Len() != 1 {
			t.Errorf("%s: trail len = %d, want 1", p.Name, p.Trail.Len())
		}
		if p.Trail.Points()[0] != p.Body.Pos {
			t.Errorf("%s: trail records %+v, body at %+v", p.Name, p.Trail.Points()[0], p.Body.Pos)
		}
	}
	if w.Sun.Pos != (physics.Vec2{}) || w.Sun.Vel != (physics.Vec2{}) {
		t.Error("the sun must stay immobile")
	}
}

func TestThousandStepTrails(t *testing.T) {
	w := solarWorld(t)
	if len(w.Planets) != 8 {
		t.Fatalf("planets = %d, want 8", len(w.Planets))
	}

	// shadow integration to verify trail contents point by point
	type shadow struct {
		body  physics.Body
		steps []physics.Vec2
	}
	shadows := make([]shadow, len(w.Planets))
	for i, p := range w.Planets {
		shadows[i].body = p.Body
	}
	dt := w.StepDt()
	for k := 0; k < 1000; k++ {
		for i := range shadows {
			physics.Advance(&shadows[i].body, w.Sun, dt)
			shadows[i].steps = append(shadows[i].steps, shadows[i].body.Pos)
		}
	}

	for i := 0; i < 1000; i++ {
		w.Advance(FixedDt)
	}

	for i, p := range w.Planets {
		if p.Trail.Len() != 1000 {
			t.Fatalf("%s: trail len = %d, want exactly 1000", p.Name, p.Trail.Len())
		}
		for k, got := range p.Trail.Points() {
			if got != shadows[i].steps[k] {
				t.Fatalf("%s: trail[%d] = %+v, want %+v (order or gap violation)", p.Name, k, got, shadows[i].steps[k])
			}
		}
	}
}

func TestToggleTrailsAppliesUniformly(t *testing.T) {
	w := solarWorld(t)
	if !w.TrailsVisible() {
		t.Fatal("trails must start visible")
	}

	w.ToggleTrails()
	for _, p := range w.Planets {
		if p.ShowTrail {
			t.Errorf("%s still visible after toggle off", p.Name)
		}
	}

	w.ToggleTrails()
	if !w.TrailsVisible() {
		t.Error("double toggle must restore the flag")
	}
	for _, p := range w.Planets {
		if !p.ShowTrail {
			t.Errorf("%s not restored by the second toggle", p.Name)
		}
	}
}
