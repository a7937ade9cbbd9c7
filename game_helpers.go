package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*model.Simulation, *utils.Stats, error) {
	opts, err := config.SimulationOptions()
	if err != nil {
		return nil, nil, err
	}
	// Nobody can press Space in a terminal
	if config.Headless {
		opts.StartRunning = true
	}

	sim, err := model.NewSimulation(opts)
	if err != nil {
		return nil, nil, errors.Wrap(err, "[initializeGame] failed to create simulation")
	}
	return sim, utils.NewStats(), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, sim *model.Simulation) {
	grid := sim.Grid()
	fmt.Printf("Rule: %s | Edges: %s | Pattern: %s | Parallel: %v | Memory Pool: %v\n",
		sim.Rule(), config.Edges, config.Pattern, config.UseParallel, config.UseMemoryPool)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d | Step: %s\n",
		grid.GetWidth(), grid.GetHeight(), grid.CountLivingCells(), config.StepInterval)
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// displayGameStatus shows the current game status
func displayGameStatus(sim *model.Simulation, stats *utils.Stats) {
	grid := sim.Grid()

	status := "Active"
	if sim.IsStagnant() {
		status = "Stagnant"
	}
	if stats.ActiveCells == 0 {
		status = "Extinct"
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		sim.Generation(), stats.ActiveCells, stats.Density(grid.GetWidth()*grid.GetHeight()), status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}

// runHeadless drives the simulation from a ticker and draws it in the terminal
// until interrupted or config.MaxGenerations is reached.
func runHeadless(config utils.Config, sim *model.Simulation, stats *utils.Stats, stop <-chan os.Signal) error {
	renderer := &model.TerminalRenderer{Out: os.Stdout}
	ticker := time.NewTicker(config.StepInterval)
	defer ticker.Stop()

	displayGameInfo(config, sim)
	stats.Update(0, sim.Grid().CountLivingCells(), 0)

	for {
		if err := renderer.Clear(); err != nil {
			return errors.Wrap(err, "[runHeadless] failed to clear terminal")
		}
		displayGameStatus(sim, stats)
		if err := renderer.Display(sim.Grid()); err != nil {
			return errors.Wrap(err, "[runHeadless] failed to draw grid")
		}

		if config.MaxGenerations > 0 && sim.Generation() >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return nil
		}

		select {
		case <-stop:
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				sim.Generation(), time.Since(stats.StartTime).Seconds())
			return nil
		case <-ticker.C:
		}

		start := time.Now()
		if err := sim.Tick(); err != nil {
			return err
		}
		stats.Update(sim.Generation(), sim.Grid().CountLivingCells(), time.Since(start))
	}
}
