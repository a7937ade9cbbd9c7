package model

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Pattern names accepted by LoadPattern
const (
	PatternColumn  = "column"
	PatternGlider  = "glider"
	PatternBlinker = "blinker"
	PatternRandom  = "random"
	PatternMixed   = "mixed"
)

// columnX is the column lit by the column pattern
const columnX = 2

// AddGlider adds a glider pattern at the specified position
func (g *Grid) AddGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			g.Set(startX+x, startY+y, cell)
		}
	}
}

// AddBlinker adds a horizontal blinker oscillator pattern
func (g *Grid) AddBlinker(startX, startY int) {
	g.Set(startX, startY, true)
	g.Set(startX+1, startY, true)
	g.Set(startX+2, startY, true)
}

// AddColumn makes every cell of column x alive
func (g *Grid) AddColumn(x int) {
	for y := range g.height {
		g.Set(x, y, true)
	}
}

// LoadPattern clears the grid and seeds it with the named pattern
func (g *Grid) LoadPattern(name string, rng *rand.Rand, density float64) error {
	g.Clear()

	switch name {
	case PatternColumn:
		g.AddColumn(columnX)
	case PatternGlider:
		g.AddGlider(1, 1)
	case PatternBlinker:
		g.AddBlinker(g.width/2-1, g.height/2)
	case PatternRandom:
		g.Randomize(rng, density)
	case PatternMixed:
		g.Randomize(rng, density)
		if g.width >= 10 && g.height >= 10 {
			g.AddGlider(1, 1)
			if g.width >= 20 && g.height >= 15 {
				g.AddGlider(g.width-8, 5)
			}
			g.AddBlinker(g.width/4, 3*g.height/4)
			if g.width >= 30 {
				g.AddBlinker(3*g.width/4, 3*g.height/4)
			}
		}
	default:
		return errors.Errorf("[LoadPattern] unknown pattern %q", name)
	}
	return nil
}
