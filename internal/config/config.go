// Package config provides Viper-based configuration loading for the adventure.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// GameConfig holds the starting state and driver choices for a run.
type GameConfig struct {
	// StartHealth is the player's health at game start.
	StartHealth int `mapstructure:"start_health"`
	// StartAttack is the player's attack power at game start.
	StartAttack int `mapstructure:"start_attack"`
	// DedupeItems skips granting an item the player already holds.
	DedupeItems bool `mapstructure:"dedupe_items"`
	// Artifact names an artifact to discover before the dungeon. Empty means
	// a random remaining artifact is found with probability ArtifactChance.
	Artifact string `mapstructure:"artifact"`
	// ArtifactChance is the probability in [0, 1] of a random discovery.
	ArtifactChance float64 `mapstructure:"artifact_chance"`
	// Seed selects a reproducible random source. Zero uses crypto/rand.
	Seed int64 `mapstructure:"seed"`
}

// CombatConfig holds the optional pre-dungeon monster fight settings.
type CombatConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	MonsterName   string `mapstructure:"monster_name"`
	MonsterHealth int    `mapstructure:"monster_health"`
	MonsterDamage int    `mapstructure:"monster_damage"`
}

// ContentConfig holds optional overrides for the embedded content files.
// An empty path selects the built-in content.
type ContentConfig struct {
	Dungeon   string `mapstructure:"dungeon"`
	Artifacts string `mapstructure:"artifacts"`
	Clues     string `mapstructure:"clues"`
}

// DisplayConfig holds console rendering settings.
type DisplayConfig struct {
	// Color enables ANSI coloring of narration.
	Color bool `mapstructure:"color"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Combat  CombatConfig  `mapstructure:"combat"`
	Content ContentConfig `mapstructure:"content"`
	Display DisplayConfig `mapstructure:"display"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateCombat(c.Combat); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.StartHealth < 1 {
		errs = append(errs, fmt.Sprintf("game.start_health must be >= 1, got %d", g.StartHealth))
	}
	if g.StartAttack < 0 {
		errs = append(errs, fmt.Sprintf("game.start_attack must be >= 0, got %d", g.StartAttack))
	}
	if g.ArtifactChance < 0 || g.ArtifactChance > 1 {
		errs = append(errs, fmt.Sprintf("game.artifact_chance must be in [0, 1], got %g", g.ArtifactChance))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateCombat(c CombatConfig) error {
	if !c.Enabled {
		return nil
	}
	var errs []string
	if c.MonsterName == "" {
		errs = append(errs, "combat.monster_name must not be empty")
	}
	if c.MonsterHealth < 1 {
		errs = append(errs, fmt.Sprintf("combat.monster_health must be >= 1, got %d", c.MonsterHealth))
	}
	if c.MonsterDamage < 1 {
		errs = append(errs, fmt.Sprintf("combat.monster_damage must be >= 1, got %d", c.MonsterDamage))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment overrides only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with DUNGEON_ prefix
	v.SetEnvPrefix("DUNGEON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns the configuration used when no file or environment
// overrides are present.
func Defaults() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults are static and always decode.
	_ = v.Unmarshal(&cfg)
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.start_health", 100)
	v.SetDefault("game.start_attack", 5)
	v.SetDefault("game.dedupe_items", true)
	v.SetDefault("game.artifact", "")
	v.SetDefault("game.artifact_chance", 0.3)
	v.SetDefault("game.seed", 0)

	v.SetDefault("combat.enabled", false)
	v.SetDefault("combat.monster_name", "monster")
	v.SetDefault("combat.monster_health", 70)
	v.SetDefault("combat.monster_damage", 10)

	v.SetDefault("content.dungeon", "")
	v.SetDefault("content.artifacts", "")
	v.SetDefault("content.clues", "")

	v.SetDefault("display.color", false)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
}
