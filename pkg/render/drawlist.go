// Package render turns simulation state into an ordered list of draw
// descriptors and rasterizes them. The descriptor list keeps the
// simulation core independent of any particular graphics backend.
package render

import (
	"image/color"

	"github.com/anirudh242/c-solar-system/pkg/physics"
	"github.com/anirudh242/c-solar-system/pkg/simulation"
)

// DiskSegments is the triangle-fan resolution used for filled disks.
const DiskSegments = 50

// Command is a single drawable descriptor. Backends consume commands
// strictly in list order.
type Command interface {
	cmd()
}

// Disk is a filled circle approximated by a triangle fan.
type Disk struct {
	Center   physics.Vec2
	Radius   float64
	Segments int
	Color    color.RGBA
}

// Strip is a connected line strip through its points in order.
type Strip struct {
	Points []physics.Vec2
	Color  color.RGBA
}

func (Disk) cmd()  {}
func (Strip) cmd() {}

// BuildScene flattens the world into draw commands: the sun first,
// then each planet's disk followed by its trail. A trail that is
// hidden or has fewer than two points emits nothing.
func BuildScene(w *simulation.World) []Command {
	cmds := make([]Command, 0, 1+2*len(w.Planets))
	cmds = append(cmds, Disk{
		Center:   w.Sun.Pos,
		Radius:   w.Sun.Radius,
		Segments: DiskSegments,
		Color:    w.Sun.Color,
	})
	for _, p := range w.Planets {
		cmds = append(cmds, Disk{
			Center:   p.Body.Pos,
			Radius:   p.Body.Radius,
			Segments: DiskSegments,
			Color:    p.Body.Color,
		})
		if p.ShowTrail && p.Trail.Len() >= 2 {
			cmds = append(cmds, Strip{
				Points: p.Trail.Points(),
				Color:  trailColor(p.Body.Color),
			})
		}
	}
	return cmds
}

// trailColor dims the body color so the trail reads as history.
func trailColor(c color.RGBA) color.RGBA {
	return color.RGBA{c.R / 2, c.G / 2, c.B / 2, 255}
}
