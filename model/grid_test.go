package model

import (
	"math/rand"
	"testing"

	"github.com/sheikhrachel/go-life/rules"
)

func gridFrom(width, height int, alive ...Coord) *Grid {
	g := NewGrid(width, height)
	for _, c := range alive {
		g.Set(c.X, c.Y, true)
	}
	return g
}

func step(g *Grid, rule rules.Rule, edges EdgePolicy) *Grid {
	next := NewGrid(g.GetWidth(), g.GetHeight())
	g.Step(next, rule, edges)
	return next
}

func TestGetOutOfBoundsIsDead(t *testing.T) {
	g := gridFrom(3, 3, Coord{0, 0})
	for _, c := range []Coord{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {-1, -1}} {
		if g.Get(c.X, c.Y) {
			t.Errorf("Get(%d, %d) = true, want false", c.X, c.Y)
		}
	}

	// Writes outside the grid are dropped
	g.Set(5, 5, true)
	if got := g.CountLivingCells(); got != 1 {
		t.Errorf("CountLivingCells() = %d, want 1", got)
	}
}

func TestCountNeighbors(t *testing.T) {
	// Full 3x3 block: centre sees 8, corner sees 3
	g := NewGrid(3, 3)
	for y := range 3 {
		for x := range 3 {
			g.Set(x, y, true)
		}
	}

	tests := []struct {
		name  string
		c     Coord
		edges EdgePolicy
		want  int
	}{
		{"centre", Coord{1, 1}, EdgeDead, 8},
		{"corner skips negative coords", Coord{0, 0}, EdgeDead, 3},
		{"edge", Coord{1, 0}, EdgeDead, 5},
		{"corner wraps", Coord{0, 0}, EdgeWrap, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.CountNeighbors(tt.c.X, tt.c.Y, tt.edges); got != tt.want {
				t.Errorf("CountNeighbors(%v) = %d, want %d", tt.c, got, tt.want)
			}
		})
	}
}

func TestCornerIgnoresOppositeEdgeWithoutWrap(t *testing.T) {
	g := gridFrom(4, 4, Coord{3, 3}, Coord{3, 0}, Coord{0, 3})
	if got := g.CountNeighbors(0, 0, EdgeDead); got != 0 {
		t.Errorf("CountNeighbors(0, 0, EdgeDead) = %d, want 0", got)
	}
	if got := g.CountNeighbors(0, 0, EdgeWrap); got != 3 {
		t.Errorf("CountNeighbors(0, 0, EdgeWrap) = %d, want 3", got)
	}
}

func TestStepNeighborCounts(t *testing.T) {
	centre := Coord{2, 2}
	around := []Coord{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {3, 2}, {1, 3}, {2, 3}, {3, 3}}

	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{false, true} {
			g := gridFrom(5, 5, around[:n]...)
			g.Set(centre.X, centre.Y, alive)

			got := step(g, rules.Conway, EdgeDead).Get(centre.X, centre.Y)
			want := n == 3 || (alive && n == 2)
			if got != want {
				t.Errorf("neighbors=%d alive=%v: next = %v, want %v", n, alive, got, want)
			}
		}
	}
}

func TestDeadGridStaysDead(t *testing.T) {
	for _, rule := range []rules.Rule{rules.Conway, rules.TwoOrThree} {
		g := NewGrid(16, 16)
		for range 10 {
			g = step(g, rule, EdgeDead)
		}
		if got := g.CountLivingCells(); got != 0 {
			t.Errorf("rule %s: %d living cells after 10 steps of an empty grid", rule, got)
		}
	}
}

func TestBlinkerReturnsAfterTwoSteps(t *testing.T) {
	start := gridFrom(5, 5, Coord{1, 2}, Coord{2, 2}, Coord{3, 2})

	once := step(start, rules.Conway, EdgeDead)
	vertical := gridFrom(5, 5, Coord{2, 1}, Coord{2, 2}, Coord{2, 3})
	if !once.Equal(vertical) {
		t.Fatal("blinker did not turn vertical after one step")
	}

	twice := step(once, rules.Conway, EdgeDead)
	if !twice.Equal(start) {
		t.Fatal("blinker did not return to its start after two steps")
	}
}

func TestStepDoesNotMutateSource(t *testing.T) {
	g := gridFrom(5, 5, Coord{1, 2}, Coord{2, 2}, Coord{3, 2})
	before := g.Snapshot()
	step(g, rules.Conway, EdgeDead)
	if !g.Equal(before) {
		t.Error("Step modified the grid it read from")
	}
}

func TestGliderTranslates(t *testing.T) {
	g := NewGrid(10, 10)
	g.AddGlider(1, 1)
	want := NewGrid(10, 10)
	want.AddGlider(2, 2)

	for range 4 {
		g = step(g, rules.Conway, EdgeDead)
	}
	if !g.Equal(want) {
		t.Error("glider did not move by (1, 1) after 4 steps")
	}
}

func TestGliderWrapsAroundTorus(t *testing.T) {
	g := NewGrid(6, 6)
	g.AddGlider(0, 0)
	start := g.Snapshot()

	// A glider crosses a 6x6 torus diagonally in 6*4 generations
	for range 24 {
		g = step(g, rules.Conway, EdgeWrap)
	}
	if !g.Equal(start) {
		t.Error("glider did not return to its start on a 6x6 torus")
	}
}

func TestStepParallelMatchesStep(t *testing.T) {
	g := NewGrid(37, 23)
	g.Randomize(rand.New(rand.NewSource(7)), 0.35)

	for _, edges := range []EdgePolicy{EdgeDead, EdgeWrap} {
		want := step(g, rules.Conway, edges)
		got := NewGrid(37, 23)
		if err := g.StepParallel(got, rules.Conway, edges); err != nil {
			t.Fatalf("StepParallel: %v", err)
		}
		if !got.Equal(want) {
			t.Errorf("edges=%s: parallel step differs from sequential step", edges)
		}
	}
}

func TestStagnationDetection(t *testing.T) {
	g := gridFrom(5, 5, Coord{1, 2}, Coord{2, 2}, Coord{3, 2})
	if g.IsStagnant() {
		t.Fatal("fresh grid reported stagnant")
	}

	for range 3 {
		next := step(g, rules.Conway, EdgeDead)
		g.UpdateHistory()
		next.history = g.history
		g = next
	}
	if !g.IsStagnant() {
		t.Error("blinker not detected as a period 2 cycle")
	}
}

func TestEdgePolicyNames(t *testing.T) {
	for _, p := range []EdgePolicy{EdgeDead, EdgeWrap} {
		got, ok := ParseEdgePolicy(p.String())
		if !ok || got != p {
			t.Errorf("ParseEdgePolicy(%q) = %v, %v", p.String(), got, ok)
		}
	}
	if _, ok := ParseEdgePolicy("mirror"); ok {
		t.Error("ParseEdgePolicy accepted an unknown policy")
	}
}
