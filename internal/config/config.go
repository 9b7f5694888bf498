// Package config loads process-wide defaults from the environment.
// Command-line flags override every value.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/internal/logging"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/catalog"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
	"github.com/caarlos0/env/v11"
)

// Config holds the environment defaults of the CLI.
type Config struct {
	// Catalog is a YAML catalog path; empty selects the embedded catalog.
	Catalog    string `env:"SKILLTREE_CATALOG"`
	Port       int    `env:"SKILLTREE_PORT"        envDefault:"8080"`
	LogLevel   string `env:"SKILLTREE_LOG_LEVEL"   envDefault:"info"`
	BasePoints int    `env:"SKILLTREE_BASE_POINTS" envDefault:"75"`
	TierBonus  int    `env:"SKILLTREE_TIER_BONUS"  envDefault:"5"`
	Tier       int    `env:"SKILLTREE_TIER"        envDefault:"0"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the configuration from environ instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every out-of-range value.
func (c Config) Validate() error {
	var problems []error
	if c.Port < 0 || c.Port > 65535 {
		problems = append(problems, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.BasePoints < 0 {
		problems = append(problems, fmt.Errorf("base points must not be negative, got %d", c.BasePoints))
	}
	if c.TierBonus < 0 {
		problems = append(problems, fmt.Errorf("tier bonus must not be negative, got %d", c.TierBonus))
	}
	if c.Tier < 0 {
		problems = append(problems, fmt.Errorf("tier must not be negative, got %d", c.Tier))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err)
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(problems...))
	}
	return nil
}

// Budget returns the budget described by the configuration.
func (c Config) Budget() domain.Budget {
	return domain.Budget{
		BasePoints:     c.BasePoints,
		TierBonus:      c.TierBonus,
		ExpeditionTier: c.Tier,
	}
}

// Level returns the parsed log level, defaulting to Info.
func (c Config) Level() slog.Level {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// LoadCatalog opens the configured catalog.
func (c Config) LoadCatalog() (*catalog.Catalog, error) {
	if c.Catalog == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(c.Catalog)
}
