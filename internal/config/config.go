package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"oncostat/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Analysis  AnalysisConfig
	Generator GeneratorConfig
	Paths     PathConfig
}

// AnalysisConfig holds statistical testing settings
type AnalysisConfig struct {
	Alpha float64
}

// GeneratorConfig holds synthetic dataset generation defaults
type GeneratorConfig struct {
	Samples int
	Seed    int64
}

// PathConfig holds file system paths
type PathConfig struct {
	DataFile string
}

// Load reads configuration from environment variables and validates it.
// A .env file is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Analysis:  AnalysisConfig{Alpha: 0.05},
		Generator: GeneratorConfig{Samples: 1000, Seed: 42},
		Paths:     PathConfig{DataFile: os.Getenv("DATA_FILE")},
	}

	if raw := os.Getenv("ALPHA"); raw != "" {
		alpha, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.Wrap(err, "invalid ALPHA")
		}
		if alpha <= 0 || alpha >= 1 {
			return nil, errors.ConfigInvalid("ALPHA must be in (0, 1)")
		}
		config.Analysis.Alpha = alpha
	}

	if raw := os.Getenv("GENERATOR_SAMPLES"); raw != "" {
		samples, err := strconv.Atoi(raw)
		if err != nil || samples <= 0 {
			return nil, errors.ConfigInvalid("GENERATOR_SAMPLES must be a positive integer")
		}
		config.Generator.Samples = samples
	}

	if raw := os.Getenv("GENERATOR_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, "invalid GENERATOR_SEED")
		}
		config.Generator.Seed = seed
	}

	return config, nil
}
