package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// DefaultAlphabet is the rune domain the stream draws from when none is
// configured. Letters and digits keep the output readable and the domain
// small enough that a consecutive collision arrives in reasonable time.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type StreamConfig struct {
	BatchSize int    `env:"RANDSTREAM_BATCH_SIZE, default=12"`
	Alphabet  string `env:"RANDSTREAM_ALPHABET"`
	Seed      int64  `env:"RANDSTREAM_SEED"`
}

func NewStreamConfigFromEnv() (*StreamConfig, error) {
	var cfg StreamConfig
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, err
	}
	if cfg.BatchSize <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", cfg.BatchSize)
	}
	if cfg.Alphabet == "" {
		cfg.Alphabet = DefaultAlphabet
	}
	return &cfg, nil
}
