// Package main is the entry point for cavewalk, an explorer for an endless
// cellular-automaton cave.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/samdwyer/cavewalk/internal/game"
	"github.com/samdwyer/cavewalk/internal/telemetry"
	"github.com/samdwyer/cavewalk/internal/world"
)

func main() {
	preset := flag.String("preset", "", "parameter preset from presets.json (default, open, dense, tiny)")
	printOnly := flag.Bool("print", false, "print the current grid and exit instead of starting the explorer")
	moves := flag.String("moves", "", "moves to make before printing, e.g. NNEWS")
	flag.Parse()

	// .env is for local development; values may also come from the environment
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, telemetryConfig())
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := game.LoadConfig(*preset)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := world.Configure(cfg.Params); err != nil {
		log.Fatalf("Failed to configure generator: %v", err)
	}
	lattice := world.NewMap()

	if *printOnly {
		if err := printGrid(ctx, lattice, *moves); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	g, err := game.New(cfg, lattice)
	if err != nil {
		log.Fatalf("Failed to initialize explorer: %v", err)
	}
	if err := g.Run(ctx); err != nil {
		log.Fatalf("Explorer error: %v", err)
	}
}

// printGrid applies a move string and writes the resulting grid to stdout.
func printGrid(ctx context.Context, lattice *world.Map, moves string) error {
	for _, m := range moves {
		dir, err := world.ParseDirection(string(m))
		if err != nil {
			return fmt.Errorf("bad -moves: %w", err)
		}
		lattice.Go(ctx, dir)
	}
	grid := lattice.CurrentGrid(ctx)
	fmt.Fprintf(os.Stdout, "%s %s\n%s\n", lattice.Position(), lattice.SessionID(), grid)
	return nil
}

// telemetryConfig points the exporter at Honeycomb when an API key is present.
func telemetryConfig() telemetry.Config {
	apiKey := os.Getenv("HONEYCOMB_CAVEWALK_API_KEY")
	if apiKey == "" {
		return telemetry.Config{}
	}
	dataset := os.Getenv("HONEYCOMB_CAVEWALK_DATASET")
	if dataset == "" {
		dataset = "cavewalk"
	}
	return telemetry.Config{
		Endpoint: "https://api.honeycomb.io",
		Headers: map[string]string{
			"x-honeycomb-team":    strings.TrimSpace(apiKey),
			"x-honeycomb-dataset": dataset,
		},
	}
}
