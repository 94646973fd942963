package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/anirudh242/c-solar-system/pkg/physics"
)

// Projection maps world coordinates (origin at the sun) to pixels. On
// resize the aspect ratio is preserved by widening whichever world
// extent the window is longer in, so the system is letterboxed rather
// than stretched.
type Projection struct {
	halfExtent float64 // world half-extent along the shorter window axis

	width, height int
	halfW, halfH  float64 // letterboxed world half-extents
}

func NewProjection(halfExtent float64, width, height int) *Projection {
	p := &Projection{halfExtent: halfExtent}
	p.Resize(width, height)
	return p
}

// Resize recomputes the letterboxed extents for a new window size:
// aspect >= 1 widens the horizontal extent, otherwise the vertical.
func (p *Projection) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.width, p.height = width, height
	aspect := float64(width) / float64(height)
	if aspect >= 1 {
		p.halfW = p.halfExtent * aspect
		p.halfH = p.halfExtent
	} else {
		p.halfW = p.halfExtent
		p.halfH = p.halfExtent / aspect
	}
}

// Scale returns pixels per world unit, uniform in x and y by
// construction of the letterbox.
func (p *Projection) Scale() float64 {
	return float64(p.width) / (2 * p.halfW)
}

// ToScreen maps a world point to pixel coordinates with the world
// origin at the window center.
func (p *Projection) ToScreen(pt physics.Vec2) (x, y float64) {
	s := p.Scale()
	return float64(p.width)/2 + pt.X*s, float64(p.height)/2 + pt.Y*s
}

// Matrix returns the equivalent orthographic matrix for a GL backend.
func (p *Projection) Matrix() mgl32.Mat4 {
	return mgl32.Ortho2D(float32(-p.halfW), float32(p.halfW), float32(-p.halfH), float32(p.halfH))
}
