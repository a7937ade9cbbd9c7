// Package view turns grid state into screen-space draw data. Positions are
// centre-origin with y pointing up; hosts convert to their own screen space.
package view

import (
	"image/color"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

var (
	AliveColor = color.RGBA{R: 191, G: 217, B: 128, A: 255} // rgb(0.75, 0.85, 0.5)
	DeadColor  = color.RGBA{R: 77, G: 77, B: 77, A: 255}    // rgb(0.3, 0.3, 0.3)
)

const (
	DefaultBorderSize = 25.0
	DefaultTileFill   = 0.9
)

// Vec2 is a screen-space vector in pixels
type Vec2 struct {
	X, Y float64
}

// CellView is everything a renderer needs to draw one cell
type CellView struct {
	Color    color.RGBA
	Position Vec2 // centre of the tile
	Scale    Vec2 // tile size
}

// Options controls how the grid is laid out in the window
type Options struct {
	BorderSize float64 // padding subtracted from each window dimension
	TileFill   float64 // fraction of a tile covered by its sprite
}

// DefaultOptions matches the default window layout
func DefaultOptions() Options {
	return Options{BorderSize: DefaultBorderSize, TileFill: DefaultTileFill}
}

// Project maps a grid coordinate to the pixel centre of its tile, so that
// gridSize tiles fill windowSize pixels centred on the origin.
func Project(coord, windowSize, gridSize float64) float64 {
	tileSize := windowSize / gridSize
	return coord/gridSize*windowSize - windowSize/2 + tileSize/2
}

// TileScale returns the sprite size of one tile
func TileScale(fill, windowSize, gridSize float64) float64 {
	return fill / gridSize * windowSize
}

// ColorFor returns the colour of a cell in the given state
func ColorFor(alive bool) color.RGBA {
	if alive {
		return AliveColor
	}
	return DeadColor
}

// Views lays out every cell of g for a window of the given pixel size, in
// row-major order. It panics if the window has no area, which means no
// display surface is available.
func Views(g *model.Grid, windowWidth, windowHeight float64, opts Options) []CellView {
	if windowWidth <= 0 || windowHeight <= 0 {
		panic(errors.Errorf("[Views] window %vx%v has no area, no display surface", windowWidth, windowHeight))
	}

	var (
		gridW = float64(g.GetWidth())
		gridH = float64(g.GetHeight())
		// Scale uses the full window, positions the padded one
		scale = Vec2{
			X: TileScale(opts.TileFill, windowWidth, gridW),
			Y: TileScale(opts.TileFill, windowHeight, gridH),
		}
		areaW = windowWidth - opts.BorderSize
		areaH = windowHeight - opts.BorderSize
	)

	views := make([]CellView, 0, g.GetWidth()*g.GetHeight())
	g.Cells(func(c model.Coord, alive bool) {
		views = append(views, CellView{
			Color: ColorFor(alive),
			Position: Vec2{
				X: Project(float64(c.X), areaW, gridW),
				Y: Project(float64(c.Y), areaH, gridH),
			},
			Scale: scale,
		})
	})
	return views
}
