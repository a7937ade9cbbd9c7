// Package game hosts a Simulation in an Ebitengine window: cells are drawn as
// tinted square sprites, Space toggles run/pause.
package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
	"github.com/sheikhrachel/go-life/view"
)

var background = color.RGBA{0, 0, 0, 255}

const (
	keyToggle = ebiten.KeySpace
	keyStep   = ebiten.KeyN
	keyReset  = ebiten.KeyR
	keyQuit   = ebiten.KeyEscape
)

type Game struct {
	sim      *model.Simulation
	timestep *model.FixedTimestep
	stats    *utils.Stats
	config   utils.Config
	layout   view.Options

	sprite     *ebiten.Image
	lastUpdate time.Time
	width      int
	height     int
}

func NewGame(sim *model.Simulation, config utils.Config, stats *utils.Stats) *Game {
	sprite := ebiten.NewImage(1, 1)
	sprite.Fill(color.White)

	return &Game{
		sim:      sim,
		timestep: model.NewFixedTimestep(config.StepInterval),
		stats:    stats,
		config:   config,
		layout: view.Options{
			BorderSize: config.BorderSize,
			TileFill:   config.TileFill,
		},
		sprite:     sprite,
		lastUpdate: time.Now(),
		width:      config.WindowWidth,
		height:     config.WindowHeight,
	}
}

func (g *Game) Update() error {
	now := time.Now()
	elapsed := now.Sub(g.lastUpdate)
	g.lastUpdate = now

	if err := g.handleInput(); err != nil {
		return err
	}

	for range g.timestep.Advance(elapsed) {
		if g.sim.State() == model.Paused {
			break
		}
		if err := g.advance(g.sim.Tick); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) handleInput() error {
	switch {
	case inpututil.IsKeyJustPressed(keyQuit):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(keyToggle):
		g.sim.Toggle()
		g.timestep.Reset()
	case inpututil.IsKeyJustPressed(keyStep):
		return g.advance(g.sim.StepOnce)
	case inpututil.IsKeyJustPressed(keyReset):
		if err := g.sim.Reset(); err != nil {
			return errors.Wrap(err, "[handleInput] reset failed")
		}
		g.timestep.Reset()
	}
	return nil
}

// advance runs one step function and records its timing
func (g *Game) advance(stepFn func() error) error {
	start := time.Now()
	if err := stepFn(); err != nil {
		return err
	}
	g.stats.Update(g.sim.Generation(), g.sim.Grid().CountLivingCells(), time.Since(start))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	var (
		w = float64(g.width)
		h = float64(g.height)
	)
	for _, cell := range view.Views(g.sim.Grid(), w, h, g.layout) {
		drawCell(screen, g.sprite, cell, w, h)
	}

	DrawText(screen, &TextProps{Text: g.status(), X: 8, Y: 16})
	DrawText(screen, &TextProps{
		Text:    fmt.Sprintf("%.0f TPS", ebiten.ActualTPS()),
		X:       8,
		Y:       16,
		FromEnd: true,
	})
}

// drawCell converts the centre-origin, y-up cell position to Ebitengine's
// top-left, y-down screen space.
func drawCell(screen, sprite *ebiten.Image, cell view.CellView, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cell.Scale.X, cell.Scale.Y)
	op.GeoM.Translate(
		w/2+cell.Position.X-cell.Scale.X/2,
		h/2-cell.Position.Y-cell.Scale.Y/2,
	)
	op.ColorScale.ScaleWithColor(cell.Color)
	screen.DrawImage(sprite, op)
}

func (g *Game) status() string {
	status := g.sim.State().String()
	if g.sim.IsStagnant() {
		status += " (stagnant)"
	}
	return fmt.Sprintf("%s | Gen: %d | Living: %d | Rule: %s | Space: run/pause  N: step  R: reset",
		status, g.sim.Generation(), g.sim.Grid().CountLivingCells(), g.sim.Rule())
}

// Layout follows the window size so the grid is re-projected after a resize.
// A window without area means there is no display surface to draw on.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		panic(errors.Errorf("[Layout] no primary display surface: window is %dx%d", outsideWidth, outsideHeight))
	}
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) Run() error {
	ebiten.SetWindowSize(g.config.WindowWidth, g.config.WindowHeight)
	ebiten.SetWindowTitle(g.config.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if g.config.TPS > 0 {
		ebiten.SetTPS(g.config.TPS)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[Run] game loop failed")
	}
	return nil
}
