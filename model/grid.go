package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// historySize is how many recent grid hashes are kept for cycle detection
const historySize = 5

// Coord identifies a cell on the grid
type Coord struct {
	X, Y int
}

// EdgePolicy decides how neighbors past the grid edge are treated
type EdgePolicy int

const (
	// EdgeDead treats coordinates outside the grid as absent, i.e. dead
	EdgeDead EdgePolicy = iota
	// EdgeWrap wraps coordinates around the opposite edge (toroidal grid)
	EdgeWrap
)

// String returns the config name of the policy
func (p EdgePolicy) String() string {
	if p == EdgeWrap {
		return "wrap"
	}
	return "dead"
}

// ParseEdgePolicy maps a config name onto an EdgePolicy
func ParseEdgePolicy(name string) (EdgePolicy, bool) {
	switch name {
	case "", "dead":
		return EdgeDead, true
	case "wrap":
		return EdgeWrap, true
	}
	return EdgeDead, false
}

// Grid represents the game board
type Grid struct {
	width   int
	height  int
	cells   [][]bool
	history []string // Store recent grid states for cycle detection
}

// NewGrid creates a new grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resets the grid to new dimensions
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height
	g.history = nil

	// Resize cells if needed
	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
	g.history = nil
}

// InBounds reports whether (x, y) lies on the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set sets a cell to alive (true) or dead (false). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if g.InBounds(x, y) {
		g.cells[y][x] = alive
	}
}

// Get returns the state of a cell; out-of-bounds cells are dead
func (g *Grid) Get(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y][x]
}

// Snapshot returns a deep copy of the cell states
func (g *Grid) Snapshot() *Grid {
	s := NewGrid(g.width, g.height)
	for y := range g.height {
		copy(s.cells[y], g.cells[y])
	}
	return s
}

// Equal reports whether both grids have the same size and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// CountNeighbors counts the living cells in the Moore neighborhood of (x, y)
func (g *Grid) CountNeighbors(x, y int, edges EdgePolicy) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue // Skip the cell itself
			}
			nx, ny := x+dx, y+dy
			if edges == EdgeWrap {
				nx = (nx + g.width) % g.width
				ny = (ny + g.height) % g.height
			} else if !g.InBounds(nx, ny) {
				continue
			}
			if g.cells[ny][nx] {
				count++
			}
		}
	}
	return count
}

// Step writes the next generation of g into next. g is only read, so every
// cell sees the neighbors of the previous tick. next must have the same size.
func (g *Grid) Step(next *Grid, rule rules.Rule, edges EdgePolicy) {
	g.stepRows(next, rule, edges, 0, g.height)
}

// StepParallel is Step with rows split across one worker per CPU
func (g *Grid) StepParallel(next *Grid, rule rules.Rule, edges EdgePolicy) error {
	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			g.stepRows(next, rule, edges, startRow, endRow)
			return nil
		})
	}

	return eg.Wait()
}

func (g *Grid) stepRows(next *Grid, rule rules.Rule, edges EdgePolicy, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := range g.width {
			next.cells[y][x] = rule.Apply(g.CountNeighbors(x, y, edges), g.cells[y][x])
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.GetGridHash())
	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// IsStagnant reports a still life or a period 2 or 3 oscillator, judged
// against the recorded history. The current state must not be recorded yet.
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	currentHash := g.GetGridHash()
	for i := 1; i <= 3; i++ {
		if g.history[len(g.history)-i] == currentHash {
			return true
		}
	}
	return false
}

// Randomize fills the grid with random living cells
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = rng.Float64() < density
		}
	}
}

// Cells calls fn for every cell in row-major order
func (g *Grid) Cells(fn func(c Coord, alive bool)) {
	for y := range g.height {
		for x := range g.width {
			fn(Coord{X: x, Y: y}, g.cells[y][x])
		}
	}
}
