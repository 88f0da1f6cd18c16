// Package config provides Viper-based configuration loading for the
// codebreaker game. Game rules (code length, palette, turn limit) are
// deliberately not configurable; configuration covers only logging,
// input mode selection, and presentation.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Input mode values.
const (
	// ModeAuto uses raw keystroke input when stdin is a terminal and
	// falls back to line mode otherwise.
	ModeAuto = "auto"
	// ModeRaw requests raw keystroke input; acquisition failure still
	// degrades to line mode.
	ModeRaw = "raw"
	// ModeLine forces whole-line input.
	ModeLine = "line"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// File is the log destination path. Empty means stderr; in raw
	// interactive play an empty File disables logging so log lines do
	// not corrupt the board.
	File string `mapstructure:"file"`
}

// InputConfig holds input device settings.
type InputConfig struct {
	// Mode selects the input mode: "auto", "raw", or "line".
	Mode string `mapstructure:"mode"`
}

// RenderConfig holds presentation settings.
type RenderConfig struct {
	// Color enables ANSI color output.
	Color bool `mapstructure:"color"`
	// Theme is an optional path to a YAML peg theme file. Empty uses
	// the built-in theme.
	Theme string `mapstructure:"theme"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Input   InputConfig   `mapstructure:"input"`
	Render  RenderConfig  `mapstructure:"render"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error
// describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateInput(c.Input); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
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

func validateInput(i InputConfig) error {
	validModes := map[string]bool{ModeAuto: true, ModeRaw: true, ModeLine: true}
	if !validModes[i.Mode] {
		return fmt.Errorf("input.mode must be one of [auto, raw, line], got %q", i.Mode)
	}
	return nil
}

// Load reads configuration from the given file path, applies
// environment variable overrides, and validates the result. An empty
// path loads defaults and environment overrides only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with CODEBREAKER_ prefix
	v.SetEnvPrefix("CODEBREAKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper
// instance.
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

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")

	v.SetDefault("input.mode", ModeAuto)

	v.SetDefault("render.color", true)
	v.SetDefault("render.theme", "")
}
