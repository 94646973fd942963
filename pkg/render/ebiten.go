package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 1x1 white source pixel for untextured triangles. A 3x3 image with a
// 1x1 sub-image keeps texel bleeding away from the edges.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Renderer rasterizes draw commands onto an ebiten image through a
// projection. It holds no simulation state.
type Renderer struct {
	Proj *Projection
}

func NewRenderer(proj *Projection) *Renderer {
	return &Renderer{Proj: proj}
}

// Draw consumes the command list in order.
func (r *Renderer) Draw(screen *ebiten.Image, cmds []Command) {
	for _, c := range cmds {
		switch c := c.(type) {
		case Disk:
			r.drawDisk(screen, c)
		case Strip:
			r.drawStrip(screen, c)
		}
	}
}

// drawDisk fills a circle with a triangle fan around its center.
func (r *Renderer) drawDisk(screen *ebiten.Image, d Disk) {
	cx, cy := r.Proj.ToScreen(d.Center)
	radius := d.Radius * r.Proj.Scale()
	segs := d.Segments
	if segs < 3 {
		segs = 3
	}

	cr := float32(d.Color.R) / 255
	cg := float32(d.Color.G) / 255
	cb := float32(d.Color.B) / 255
	ca := float32(d.Color.A) / 255

	vs := make([]ebiten.Vertex, 0, segs+2)
	add := func(x, y float64) {
		vs = append(vs, ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	add(cx, cy)
	for i := 0; i <= segs; i++ {
		th := 2 * math.Pi * float64(i) / float64(segs)
		add(cx+radius*math.Cos(th), cy+radius*math.Sin(th))
	}

	is := make([]uint16, 0, segs*3)
	for i := 0; i < segs; i++ {
		is = append(is, 0, uint16(i+1), uint16(i+2))
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, whiteSubImage, op)
}

// drawStrip draws a connected polyline through the strip's points.
func (r *Renderer) drawStrip(screen *ebiten.Image, s Strip) {
	if len(s.Points) < 2 {
		return
	}
	x0, y0 := r.Proj.ToScreen(s.Points[0])
	for _, pt := range s.Points[1:] {
		x1, y1 := r.Proj.ToScreen(pt)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, s.Color, true)
		x0, y0 = x1, y1
	}
}
