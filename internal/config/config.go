package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Output formats understood by the renderer.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds the configuration for the application.
type Config struct {
	LogLevel string

	// Meal plan generation
	DayCount    int
	Seed        uint64
	Seeded      bool
	CatalogPath string
	Output      string
}

// NewFromEnv creates a new Config object from environment variables.
// A .env file in the working directory is loaded first when present;
// variables already set in the environment win. A missing .env is fine, an
// unreadable or malformed one is an error.
func NewFromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	dayCount := 5
	if v := os.Getenv("MEAL_PLAN_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("MEAL_PLAN_DAYS must be an integer: %w", err)
		}
		if n < 1 || n > 7 {
			return nil, fmt.Errorf("MEAL_PLAN_DAYS must be between 1 and 7, got %d", n)
		}
		dayCount = n
	}

	var seed uint64
	var seeded bool
	if v := os.Getenv("MEAL_PLAN_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("MEAL_PLAN_SEED must be an integer: %w", err)
		}
		seed, seeded = uint64(n), true
	}

	output := os.Getenv("MEAL_PLAN_OUTPUT")
	switch output {
	case "":
		output = OutputText
	case OutputText, OutputJSON:
	default:
		return nil, fmt.Errorf("MEAL_PLAN_OUTPUT must be %q or %q, got %q", OutputText, OutputJSON, output)
	}

	return &Config{
		LogLevel:    logLevel,
		DayCount:    dayCount,
		Seed:        seed,
		Seeded:      seeded,
		CatalogPath: os.Getenv("MEAL_PLAN_CATALOG_PATH"),
		Output:      output,
	}, nil
}
