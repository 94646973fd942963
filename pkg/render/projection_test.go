package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gonum/floats"

	"github.com/anirudh242/c-solar-system/pkg/physics"
)

func TestProjectionWideWindow(t *testing.T) {
	// aspect 2 >= 1: the horizontal world extent widens
	p := NewProjection(100, 400, 200)

	if p.halfW != 200 || p.halfH != 100 {
		t.Fatalf("half extents = (%v, %v), want (200, 100)", p.halfW, p.halfH)
	}
	if s := p.Scale(); s != 1 {
		t.Errorf("scale = %v, want 1 px per world unit", s)
	}
	x, y := p.ToScreen(physics.Vec2{})
	if x != 200 || y != 100 {
		t.Errorf("origin maps to (%v, %v), want window center (200, 100)", x, y)
	}
	x, y = p.ToScreen(physics.Vec2{X: 50, Y: -25})
	if x != 250 || y != 75 {
		t.Errorf("(50,-25) maps to (%v, %v), want (250, 75)", x, y)
	}
}

func TestProjectionTallWindow(t *testing.T) {
	// aspect 0.5 < 1: the vertical world extent widens
	p := NewProjection(100, 200, 400)

	if p.halfW != 100 || p.halfH != 200 {
		t.Fatalf("half extents = (%v, %v), want (100, 200)", p.halfW, p.halfH)
	}
	if s := p.Scale(); s != 1 {
		t.Errorf("scale = %v, want 1", s)
	}
}

func TestProjectionScaleUniform(t *testing.T) {
	for _, dim := range [][2]int{{1920, 1000}, {640, 480}, {500, 900}, {333, 777}} {
		p := NewProjection(1000, dim[0], dim[1])
		sx := float64(dim[0]) / (2 * p.halfW)
		sy := float64(dim[1]) / (2 * p.halfH)
		if !floats.EqualWithinRel(sx, sy, 1e-12) {
			t.Errorf("%dx%d: non-uniform scale %v vs %v", dim[0], dim[1], sx, sy)
		}
	}
}

func TestProjectionResize(t *testing.T) {
	p := NewProjection(100, 400, 200)
	p.Resize(200, 400)

	if p.halfW != 100 || p.halfH != 200 {
		t.Errorf("after resize: half extents = (%v, %v), want (100, 200)", p.halfW, p.halfH)
	}

	// degenerate sizes keep the previous mapping
	p.Resize(0, 400)
	if p.halfW != 100 || p.halfH != 200 {
		t.Error("degenerate resize must be ignored")
	}
}

func TestProjectionMatrix(t *testing.T) {
	p := NewProjection(100, 400, 200)

	got := p.Matrix()
	want := mgl32.Ortho2D(-200, 200, -100, 100)
	if !got.ApproxEqual(want) {
		t.Errorf("matrix = %v, want %v", got, want)
	}
}
