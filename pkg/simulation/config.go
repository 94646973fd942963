package simulation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/anirudh242/c-solar-system/pkg/physics"
)

//go:embed assets/solar.json
var solarJSON []byte

// Scenario describes a sun and its planets in the demo's scaled units:
// masses in 1e24 kg, orbital distances compressed so the whole system
// fits on screen (Mercury at 200 world units rather than 57.9e9 m).
type Scenario struct {
	Name       string       `json:"name"`
	Sun        BodyConfig   `json:"sun"`
	Planets    []BodyConfig `json:"planets"`
	TrailLimit int          `json:"trail_limit,omitempty"`
}

// BodyConfig is one body as written in a scenario file. Distance is
// the orbital radius from the sun; Vel, when present, overrides the
// computed circular-orbit velocity.
type BodyConfig struct {
	Name     string      `json:"name"`
	Mass     float64     `json:"mass"`
	Distance float64     `json:"distance,omitempty"`
	Radius   float64     `json:"radius"`
	Color    string      `json:"color"`
	Vel      *[2]float64 `json:"vel,omitempty"`
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return parseScenario(data)
}

// DefaultScenario returns the embedded solar system.
func DefaultScenario() *Scenario {
	sc, err := parseScenario(solarJSON)
	if err != nil {
		panic("embedded scenario: " + err.Error())
	}
	return sc
}

func parseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if sc.Sun.Mass <= 0 {
		return nil, fmt.Errorf("scenario %q: sun needs a positive mass", sc.Name)
	}
	return &sc, nil
}

// NewWorld builds the simulation state from a scenario. Planets start
// on the positive x axis at their configured distances; any body
// without an explicit velocity gets the tangential speed of a circular
// orbit, perpendicular to its radius vector.
func NewWorld(sc *Scenario) *World {
	sun := physics.Body{
		Mass:   sc.Sun.Mass,
		Radius: sc.Sun.Radius,
		Color:  parseColor(sc.Sun.Color),
	}
	w := &World{
		Name: sc.Name,
		Sun:  sun,
		Clock: Clock{
			FixedDt:        FixedDt,
			TimeMultiplier: TimeMultiplier,
			MaxFrameDelta:  MaxFrameDelta,
		},
		trailsVisible: true,
	}
	for _, bc := range sc.Planets {
		pos := sun.Pos.Add(physics.Vec2{X: bc.Distance})
		var vel physics.Vec2
		if bc.Vel != nil {
			vel = physics.Vec2{X: bc.Vel[0], Y: bc.Vel[1]}
		} else {
			r := pos.Sub(sun.Pos)
			vel = r.Normalize().Perp().Mul(physics.OrbitalVelocity(sun.Mass, r.Len()))
		}
		w.Planets = append(w.Planets, &Planet{
			Name: bc.Name,
			Body: physics.Body{
				Pos:    pos,
				Vel:    vel,
				Mass:   bc.Mass,
				Radius: bc.Radius,
				Color:  parseColor(bc.Color),
			},
			Trail:     Trail{limit: sc.TrailLimit},
			ShowTrail: true,
		})
	}
	return w
}

// parseColor maps a "#rrggbb" string to an opaque RGBA. Scenario files
// are hand edited, so malformed colors fall back to a pale blue rather
// than failing the load.
func parseColor(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{200, 200, 255, 255}
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}
