package config

import "github.com/joho/godotenv"

// LoadEnv loads environment variables from a .env file in the working
// directory. Callers decide whether a missing file matters, so the raw
// error is returned unwrapped.
func LoadEnv() error {
	return godotenv.Load()
}
