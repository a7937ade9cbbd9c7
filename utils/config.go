package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

// DefaultConfigFile is read when no -config flag is given
const DefaultConfigFile = "config.json"

// Config holds the configuration for the game
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	StepInterval   time.Duration `json:"step_interval"`
	WindowWidth    int           `json:"window_width"`
	WindowHeight   int           `json:"window_height"`
	Title          string        `json:"title"`
	BorderSize     float64       `json:"border_size"`
	TileFill       float64       `json:"tile_fill"`
	Rule           string        `json:"rule"`
	Edges          string        `json:"edges"`
	Pattern        string        `json:"pattern"`
	RandomDensity  float64       `json:"random_density"`
	Seed           int64         `json:"seed"`
	UseParallel    bool          `json:"use_parallel"`
	UseMemoryPool  bool          `json:"use_memory_pool"`
	StartRunning   bool          `json:"start_running"`
	MaxGenerations int           `json:"max_generations"`
	Headless       bool          `json:"headless"`
	TPS            int           `json:"tps"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          16,
		Height:         16,
		StepInterval:   300 * time.Millisecond,
		WindowWidth:    1000,
		WindowHeight:   1000,
		Title:          "Game of Life",
		BorderSize:     25,
		TileFill:       0.9,
		Rule:           rules.Conway.String(),
		Edges:          model.EdgeDead.String(),
		Pattern:        model.PatternColumn,
		RandomDensity:  0.15,
		Seed:           1,
		UseParallel:    false,
		UseMemoryPool:  true,
		StartRunning:   false,
		MaxGenerations: 0,
		Headless:       false,
		TPS:            60,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Flags are the command line overrides for a Config
type Flags struct {
	ConfigFile string
	Headless   bool
	Pattern    string
	Rule       string
}

// Bind registers the command line flags on fs
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigFile, "config", DefaultConfigFile, "path to a JSON config file")
	fs.BoolVar(&f.Headless, "headless", false, "render to the terminal instead of a window")
	fs.StringVar(&f.Pattern, "pattern", "", "initial pattern: column, glider, blinker, random, mixed")
	fs.StringVar(&f.Rule, "rule", "", "rule in B/S notation, e.g. B3/S23")
}

// Apply copies the flags that were set onto config
func (f *Flags) Apply(config *Config) {
	if f.Headless {
		config.Headless = true
	}
	if f.Pattern != "" {
		config.Pattern = f.Pattern
	}
	if f.Rule != "" {
		config.Rule = f.Rule
	}
}

// Validate checks the values that cannot be corrected at runtime
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] grid size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return errors.Errorf("[Validate] window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.BorderSize < 0 || c.BorderSize >= float64(min(c.WindowWidth, c.WindowHeight)) {
		return errors.Errorf("[Validate] border size %v does not fit the window", c.BorderSize)
	}
	if c.StepInterval <= 0 {
		return errors.Errorf("[Validate] step interval must be positive, got %s", c.StepInterval)
	}
	if c.TileFill <= 0 || c.TileFill > 1 {
		return errors.Errorf("[Validate] tile fill must be in (0, 1], got %v", c.TileFill)
	}
	if _, ok := model.ParseEdgePolicy(c.Edges); !ok {
		return errors.Errorf("[Validate] unknown edge policy %q", c.Edges)
	}
	if _, err := rules.ParseRule(c.Rule); err != nil {
		return errors.Wrap(err, "[Validate] invalid rule")
	}
	return nil
}

// SimulationOptions converts the config into options for model.NewSimulation
func (c Config) SimulationOptions() (model.SimulationOptions, error) {
	rule, err := rules.ParseRule(c.Rule)
	if err != nil {
		return model.SimulationOptions{}, errors.Wrap(err, "[SimulationOptions] invalid rule")
	}
	edges, ok := model.ParseEdgePolicy(c.Edges)
	if !ok {
		return model.SimulationOptions{}, errors.Errorf("[SimulationOptions] unknown edge policy %q", c.Edges)
	}

	return model.SimulationOptions{
		Width:         c.Width,
		Height:        c.Height,
		Rule:          rule,
		Edges:         edges,
		Pattern:       c.Pattern,
		RandomDensity: c.RandomDensity,
		Seed:          c.Seed,
		UseParallel:   c.UseParallel,
		UseMemoryPool: c.UseMemoryPool,
		StartRunning:  c.StartRunning,
	}, nil
}
