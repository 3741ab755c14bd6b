// Package config loads the settings of the resistortools command.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvVerbose names the environment variable that enables verbose logging.
const EnvVerbose = "RESISTORTOOLS_VERBOSE"

// Config holds the settings of the resistortools command.
type Config struct {
	Verbose bool // Verbose enables logging of every decoded resistor.
}

// Load reads the configuration from the environment. Variables found in a .env
// file in the working directory are loaded first and never override the
// environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	verbose, err := strconv.ParseBool(getEnv(EnvVerbose, "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvVerbose, err)
	}

	return &Config{
		Verbose: verbose,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}
