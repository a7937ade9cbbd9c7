package model

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// RunState is whether the simulation advances on timer ticks
type RunState int

const (
	Paused RunState = iota
	Running
)

func (s RunState) String() string {
	if s == Running {
		return "Running"
	}
	return "Paused"
}

// SimulationOptions configures a Simulation
type SimulationOptions struct {
	Width, Height int
	Rule          rules.Rule
	Edges         EdgePolicy
	Pattern       string
	RandomDensity float64
	Seed          int64
	UseParallel   bool
	UseMemoryPool bool
	StartRunning  bool
}

// Simulation owns the grid and advances it one generation per running tick.
// It is not safe for concurrent use; the host drives it from a single goroutine.
type Simulation struct {
	opts SimulationOptions
	rng  *rand.Rand
	pool *GridPool

	grid       *Grid
	state      RunState
	generation int
	stagnant   bool
}

// NewSimulation builds a simulation seeded with opts.Pattern
func NewSimulation(opts SimulationOptions) (*Simulation, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.Errorf("[NewSimulation] invalid grid size %dx%d", opts.Width, opts.Height)
	}

	s := &Simulation{
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
		grid: NewGrid(opts.Width, opts.Height),
	}
	if opts.UseMemoryPool {
		s.pool = NewGridPool()
	}
	if err := s.Reset(); err != nil {
		return nil, errors.Wrap(err, "[NewSimulation] failed to seed grid")
	}
	return s, nil
}

// Reset reloads the initial pattern and restores the initial run state
func (s *Simulation) Reset() error {
	if err := s.grid.LoadPattern(s.opts.Pattern, s.rng, s.opts.RandomDensity); err != nil {
		return err
	}
	s.generation = 0
	s.stagnant = false
	s.state = Paused
	if s.opts.StartRunning {
		s.state = Running
	}
	return nil
}

// Toggle flips between Paused and Running
func (s *Simulation) Toggle() {
	if s.state == Paused {
		s.state = Running
	} else {
		s.state = Paused
	}
}

// State returns the current run state
func (s *Simulation) State() RunState {
	return s.state
}

// Tick advances one generation while running and does nothing while paused
func (s *Simulation) Tick() error {
	if s.state == Paused {
		return nil
	}
	return s.StepOnce()
}

// StepOnce advances one generation regardless of the run state. The next
// generation is computed in full from the current grid before the buffers swap.
func (s *Simulation) StepOnce() error {
	next := newBuffer(s.pool, s.grid.width, s.grid.height)

	if s.opts.UseParallel {
		if err := s.grid.StepParallel(next, s.opts.Rule, s.opts.Edges); err != nil {
			GridToPool(next, s.pool)
			return errors.Wrap(err, "[StepOnce] parallel step failed")
		}
	} else {
		s.grid.Step(next, s.opts.Rule, s.opts.Edges)
	}

	s.grid.UpdateHistory()
	next.history = s.grid.history

	GridToPool(s.grid, s.pool)
	s.grid = next
	s.generation++
	s.stagnant = s.grid.IsStagnant()
	return nil
}

// Grid returns the current generation. Callers must not keep it across ticks.
func (s *Simulation) Grid() *Grid {
	return s.grid
}

// Generation returns the number of steps taken since the last reset
func (s *Simulation) Generation() int {
	return s.generation
}

// IsStagnant reports whether the last step produced a recently seen state
func (s *Simulation) IsStagnant() bool {
	return s.stagnant
}

// Rule returns the rule the simulation steps with
func (s *Simulation) Rule() rules.Rule {
	return s.opts.Rule
}
