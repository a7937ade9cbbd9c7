package model

import (
	"testing"
	"time"

	"github.com/sheikhrachel/go-life/rules"
)

func newTestSimulation(t *testing.T, opts SimulationOptions) *Simulation {
	t.Helper()
	if opts.Width == 0 {
		opts.Width, opts.Height = 16, 16
	}
	if opts.Rule == (rules.Rule{}) {
		opts.Rule = rules.Conway
	}
	s, err := NewSimulation(opts)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	return s
}

func TestSimulationStartsPaused(t *testing.T) {
	s := newTestSimulation(t, SimulationOptions{Pattern: PatternColumn})
	if s.State() != Paused {
		t.Fatalf("initial state = %s, want Paused", s.State())
	}

	s = newTestSimulation(t, SimulationOptions{Pattern: PatternColumn, StartRunning: true})
	if s.State() != Running {
		t.Fatalf("initial state = %s, want Running", s.State())
	}
}

func TestPausedTicksLeaveGridUnchanged(t *testing.T) {
	s := newTestSimulation(t, SimulationOptions{Pattern: PatternColumn})
	before := s.Grid().Snapshot()

	for range 5 {
		if err := s.Tick(); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	if !s.Grid().Equal(before) {
		t.Error("grid changed while paused")
	}
	if s.Generation() != 0 {
		t.Errorf("Generation() = %d, want 0", s.Generation())
	}
}

func TestToggleThenTickAppliesOneStep(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		s := newTestSimulation(t, SimulationOptions{
			Pattern:       PatternColumn,
			UseParallel:   parallel,
			UseMemoryPool: parallel,
		})
		want := NewGrid(16, 16)
		s.Grid().Step(want, rules.Conway, EdgeDead)

		s.Toggle()
		if s.State() != Running {
			t.Fatalf("state after Toggle = %s, want Running", s.State())
		}
		if err := s.Tick(); err != nil {
			t.Fatalf("Tick: %v", err)
		}
		if !s.Grid().Equal(want) {
			t.Errorf("parallel=%v: grid after one running tick differs from one rule evaluation", parallel)
		}
		if s.Generation() != 1 {
			t.Errorf("Generation() = %d, want 1", s.Generation())
		}

		s.Toggle()
		if s.State() != Paused {
			t.Fatalf("state after second Toggle = %s, want Paused", s.State())
		}
	}
}

func TestColumnPatternBecomesBand(t *testing.T) {
	s := newTestSimulation(t, SimulationOptions{Pattern: PatternColumn})
	if err := s.StepOnce(); err != nil {
		t.Fatalf("StepOnce: %v", err)
	}

	g := s.Grid()
	// The lit column shrinks at both ends and grows a column on each side
	for y := range 16 {
		interior := y > 0 && y < 15
		for _, x := range []int{1, 2, 3} {
			if got := g.Get(x, y); got != interior {
				t.Errorf("cell (%d, %d) = %v, want %v", x, y, got, interior)
			}
		}
	}
}

func TestResetRestoresPattern(t *testing.T) {
	s := newTestSimulation(t, SimulationOptions{Pattern: PatternBlinker})
	start := s.Grid().Snapshot()

	s.Toggle()
	for range 3 {
		if err := s.Tick(); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if !s.Grid().Equal(start) || s.Generation() != 0 || s.State() != Paused {
		t.Error("Reset did not restore the initial grid, generation and state")
	}
}

func TestSimulationDetectsStagnation(t *testing.T) {
	s := newTestSimulation(t, SimulationOptions{Pattern: PatternBlinker, UseMemoryPool: true})
	for range 3 {
		if err := s.StepOnce(); err != nil {
			t.Fatalf("StepOnce: %v", err)
		}
	}
	if !s.IsStagnant() {
		t.Error("blinker simulation not reported stagnant")
	}
}

func TestNewSimulationErrors(t *testing.T) {
	if _, err := NewSimulation(SimulationOptions{Width: 0, Height: 16, Pattern: PatternColumn}); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := NewSimulation(SimulationOptions{Width: 16, Height: 16, Pattern: "spaceship"}); err == nil {
		t.Error("expected error for unknown pattern")
	}
}

func TestFixedTimestep(t *testing.T) {
	f := NewFixedTimestep(100 * time.Millisecond)

	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{16 * time.Millisecond, 0},
		{16 * time.Millisecond, 0},
		{70 * time.Millisecond, 1}, // 102ms accumulated
		{98 * time.Millisecond, 1}, // 100ms accumulated
		{250 * time.Millisecond, 2},
		{0, 0},
		{50 * time.Millisecond, 1}, // 50ms carried over
		{2 * time.Second, DefaultMaxCatchUp},
		{99 * time.Millisecond, 0}, // backlog dropped after the cap
	}
	for i, tt := range tests {
		if got := f.Advance(tt.elapsed); got != tt.want {
			t.Errorf("step %d: Advance(%s) = %d, want %d", i, tt.elapsed, got, tt.want)
		}
	}
}

func TestFixedTimestepDisabled(t *testing.T) {
	f := NewFixedTimestep(0)
	if got := f.Advance(time.Second); got != 0 {
		t.Errorf("Advance with zero interval = %d, want 0", got)
	}
}
