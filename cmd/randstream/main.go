package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/glizzus/randstream/internal/config"
	"github.com/glizzus/randstream/internal/draw"
	"github.com/glizzus/randstream/internal/guard"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		if os.IsNotExist(err) {
			slog.Warn("No .env file found, continuing without it")
		} else {
			log.Fatalf("Failed to load .env file: %v", err)
		}
	}

	cfg, err := config.NewStreamConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	app := &cli.App{
		Name:        "randstream",
		Description: "Streams random characters until two consecutive draws collide",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "batch",
				Usage: "number of characters in the opening batch",
				Value: cfg.BatchSize,
			},
			&cli.StringFlag{
				Name:  "alphabet",
				Usage: "characters to draw from",
				Value: cfg.Alphabet,
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "seed for a deterministic run (0 draws from entropy)",
				Value: cfg.Seed,
			},
		},
		Action: func(c *cli.Context) error {
			return stream(c.Int("batch"), c.String("alphabet"), c.Int64("seed"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("Error running randstream: %v", err)
	}
}

// stream prints one batch and one single value from a plain source, then
// draws through a duplicate guard until two consecutive values collide.
// The collision is the only programmed way out of the loop.
func stream(batchSize int, alphabet string, seed int64) error {
	source, err := draw.NewAlphabet(alphabet, seed)
	if err != nil {
		return cli.Exit("Invalid alphabet: "+err.Error(), 1)
	}

	slog.Info("starting stream",
		"alphabet_size", len([]rune(alphabet)),
		"batch_size", batchSize,
		"seed", seed,
	)

	fmt.Printf("batch: %q\n", string(draw.Batch[rune](source, batchSize)))
	fmt.Printf("single: %q\n", source.Draw())

	// The guard wraps the same source; its draws continue the stream.
	guarded := guard.New[rune](source)
	for {
		v, err := guarded.Draw().Std()
		if err != nil {
			return cli.Exit("Stream stopped: "+err.Error(), 1)
		}
		fmt.Printf("drew: %q\n", v)
	}
}
