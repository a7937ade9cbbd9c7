package model

import (
	"bufio"
	"fmt"
	"io"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// ANSI clear screen and home cursor
	clearSequence = "\033[H\033[2J"
)

// TerminalRenderer draws the grid with block characters for headless runs
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the grid, top row last so that y grows upwards like on screen
func (r *TerminalRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.Out)
	for y := g.height - 1; y >= 0; y-- {
		for x := range g.width {
			if g.cells[y][x] {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := fmt.Fprint(r.Out, clearSequence)
	return err
}
