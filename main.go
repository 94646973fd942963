package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"golang.org/x/image/font/basicfont"

	"github.com/anirudh242/c-solar-system/pkg/render"
	"github.com/anirudh242/c-solar-system/pkg/simulation"
)

const (
	screenWidth  = 1280
	screenHeight = 960
	windowTitle  = "Solar System"

	// world half-extent along the shorter window axis; Neptune orbits
	// at 860 world units, so the whole system stays in view
	worldHalfExtent = 1000
)

// Game owns the simulation context and drives it from the ebiten loop:
// wall-clock time in, fixed physics steps out, one draw per frame.
type Game struct {
	world    *simulation.World
	proj     *render.Projection
	renderer *render.Renderer

	last    time.Time
	started bool
	paused  bool
	steps   uint64

	legendVisible bool
}

func (g *Game) Update() error {
	now := time.Now()
	elapsed := 0.0
	if g.started {
		elapsed = now.Sub(g.last).Seconds()
	}
	g.started = true
	g.last = now

	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.world.ToggleTrails()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.legendVisible = !g.legendVisible
	}

	if g.paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyN) {
			g.world.Step(g.world.StepDt())
			g.steps++
		}
		return nil
	}

	g.steps += uint64(g.world.Advance(elapsed))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, render.BuildScene(g.world))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  steps: %d  trails: %v\n[T] trails  [P] pause  [N] step  [H] legend",
		g.world.Name, g.steps, g.world.TrailsVisible()))
	if g.legendVisible {
		g.drawLegend(screen)
	}
}

// drawLegend lists the planets with their current speed, top-left
// under the status line.
func (g *Game) drawLegend(screen *ebiten.Image) {
	const lineH = 14
	y := 52
	for i, p := range g.world.Planets {
		line := fmt.Sprintf("%d %-8s r=%-5.0f v=%.2f", i, p.Name, p.Body.Pos.Sub(g.world.Sun.Pos).Len(), p.Body.Vel.Len())
		text.Draw(screen, line, basicfont.Face7x13, 12, y+i*lineH, color.RGBA{220, 220, 220, 255})
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.proj.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	scenarioPath := flag.String("env", "", "scenario JSON file (default: built-in solar system)")
	flag.Parse()

	var (
		sc  *simulation.Scenario
		err error
	)
	if *scenarioPath != "" {
		sc, err = simulation.LoadScenario(*scenarioPath)
		if err != nil {
			log.Fatalf("loading scenario: %v", err)
		}
	} else {
		sc = simulation.DefaultScenario()
	}

	world := simulation.NewWorld(sc)
	for i, p := range world.Planets {
		r := p.Body.Pos.Sub(world.Sun.Pos).Len()
		fmt.Printf("planet %d (%s): r=%.1f v=%.3f\n", i, p.Name, r, p.Body.Vel.Len())
	}

	proj := render.NewProjection(worldHalfExtent, screenWidth, screenHeight)
	game := &Game{
		world:         world,
		proj:          proj,
		renderer:      render.NewRenderer(proj),
		legendVisible: true,
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(windowTitle + " - " + world.Name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
