package config_test

import (
	"os"
	"testing"

	"github.com/glizzus/randstream/internal/config"
)

// clearEnv unsets keys for the duration of the test. t.Setenv registers
// the restore; Unsetenv removes the empty value it just set.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestNewStreamConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t, "RANDSTREAM_BATCH_SIZE", "RANDSTREAM_ALPHABET", "RANDSTREAM_SEED")

		cfg, err := config.NewStreamConfigFromEnv()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.BatchSize != 12 {
			t.Errorf("BatchSize = %d, want 12", cfg.BatchSize)
		}
		if cfg.Alphabet != config.DefaultAlphabet {
			t.Errorf("Alphabet = %q, want the default alphabet", cfg.Alphabet)
		}
		if cfg.Seed != 0 {
			t.Errorf("Seed = %d, want 0", cfg.Seed)
		}
	})

	t.Run("explicit values", func(t *testing.T) {
		t.Setenv("RANDSTREAM_BATCH_SIZE", "5")
		t.Setenv("RANDSTREAM_ALPHABET", "xyz")
		t.Setenv("RANDSTREAM_SEED", "42")

		cfg, err := config.NewStreamConfigFromEnv()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.BatchSize != 5 || cfg.Alphabet != "xyz" || cfg.Seed != 42 {
			t.Errorf("got %+v, want {BatchSize:5 Alphabet:xyz Seed:42}", cfg)
		}
	})

	t.Run("non-positive batch size", func(t *testing.T) {
		t.Setenv("RANDSTREAM_BATCH_SIZE", "0")

		if _, err := config.NewStreamConfigFromEnv(); err == nil {
			t.Error("expected an error for a zero batch size")
		}
	})

	t.Run("malformed batch size", func(t *testing.T) {
		t.Setenv("RANDSTREAM_BATCH_SIZE", "dozen")

		if _, err := config.NewStreamConfigFromEnv(); err == nil {
			t.Error("expected an error for a non-numeric batch size")
		}
	})
}
