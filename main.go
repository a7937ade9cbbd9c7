package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	var flags utils.Flags
	flags.Bind(flag.CommandLine)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(flags.ConfigFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("invalid config: %+v", err)
		}
		fmt.Printf("Using default configuration (%s not found)\n", flags.ConfigFile)
		config = utils.DefaultConfig()
	}
	flags.Apply(&config)
	if err = config.Validate(); err != nil {
		log.Fatalf("invalid config: %+v", err)
	}

	sim, stats, err := initializeGame(config)
	if err != nil {
		log.Fatalf("failed to start: %+v", err)
	}

	if config.Headless {
		// Handle Ctrl+C gracefully
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		if err = runHeadless(config, sim, stats, sigChan); err != nil {
			log.Fatalf("headless run failed: %+v", err)
		}
		return
	}

	if err = game.NewGame(sim, config, stats).Run(); err != nil {
		log.Fatalf("%+v", err)
	}
}
