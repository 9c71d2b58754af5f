// Package config loads and validates service configuration from the
// environment. A .env file, when present, is loaded by the CLI entry point
// before this package reads anything.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Defaults for values not supplied through the environment. The dataset
// paths match the demo's bundled DATA-SETS directory.
const (
	DefaultPort            = 8080
	DefaultGitHubDataset   = "DATA-SETS/Cleaned Better Schema Github Indian Users Deep Data.csv"
	DefaultLinkedInDataset = "DATA-SETS/10k_data_li_india.txt"
	DefaultRateLimitRPS    = 10
	DefaultRateLimitBurst  = 20
)

// Config holds everything the server needs to start. DatabaseURL,
// GeminiAPIKey and RulesPath are optional: without them the internal source
// serves mock profiles, the analysis endpoints answer 503, and the default
// classification ruleset applies.
type Config struct {
	Port            int    `validate:"gte=1,lte=65535"`
	GitHubDataset   string `validate:"required"`
	LinkedInDataset string `validate:"required"`
	DatabaseURL     string
	GeminiAPIKey    string
	RulesPath       string
	RateLimitRPS    float64 `validate:"gte=0"`
	RateLimitBurst  int     `validate:"gte=0"`
}

// FromEnv builds a Config from environment variables, applying defaults for
// anything unset and validating the result.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:            intEnv("PORT", DefaultPort),
		GitHubDataset:   strEnv("GITHUB_DATASET", DefaultGitHubDataset),
		LinkedInDataset: strEnv("LINKEDIN_DATASET", DefaultLinkedInDataset),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		RulesPath:       os.Getenv("RULES_PATH"),
		RateLimitRPS:    floatEnv("RATE_LIMIT_RPS", DefaultRateLimitRPS),
		RateLimitBurst:  intEnv("RATE_LIMIT_BURST", DefaultRateLimitBurst),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration's structural constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			e := errs[0]
			return fmt.Errorf("config error: field %s failed %q validation", e.Field(), e.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

func strEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// intEnv parses an integer environment variable, keeping the fallback for
// unset or unparseable values. Permissive by design: a bad value degrades to
// the default instead of refusing to start.
func intEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func floatEnv(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
