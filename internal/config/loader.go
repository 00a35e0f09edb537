// Package config provides configuration loading and management for bubblechart.
package config

import (
	"errors"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	charterrors "github.com/dbmrq/bubblechart/internal/errors"
)

const (
	// DefaultConfigPath is the default path to the config file relative to the working directory.
	DefaultConfigPath = ".bubblechart/config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "BUBBLECHART"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig loads configuration from the specified path, applies defaults,
// merges environment variables, and validates the result.
// If path is empty, it uses DefaultConfigPath relative to the working directory.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, charterrors.ConfigNotFound(path)
	}

	l.v.SetConfigFile(path)

	if err := l.v.ReadInConfig(); err != nil {
		return nil, charterrors.ConfigParseError(path, err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, charterrors.ConfigParseError(path, err)
	}

	return l.finish(cfg, path)
}

// LoadOptional behaves like LoadConfig, except that a missing file at path
// yields the defaults (with environment overrides) instead of an error.
func (l *Loader) LoadOptional(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return l.finish(NewConfig(), path)
	}
	return l.LoadConfig(path)
}

// finish applies env overrides and defaults, then validates.
func (l *Loader) finish(cfg *Config, path string) (*Config, error) {
	l.applyEnvOverrides(cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, validationError(path, err)
	}

	return cfg, nil
}

// validationError reports the first invalid field. The full ValidationErrors
// list stays reachable through errors.As.
func validationError(path string, err error) *charterrors.ChartError {
	field, options := "", []string(nil)
	var verrs ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field = verrs[0].Field
		if field == "animation.easing" {
			options = []string{string(EasingCubicInOut), string(EasingLinear)}
		}
	}
	return charterrors.ConfigValidationError(field, path, options).
		WithDetails("path", path).
		WithCause(err)
}

// applyEnvOverrides applies environment variable overrides to the config.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "_DATA_PATH"); v != "" {
		cfg.Data.Path = v
	}
	if v := os.Getenv(EnvPrefix + "_LOCALE"); v != "" {
		cfg.Locale = v
	}

	// Chart settings
	if v := os.Getenv(EnvPrefix + "_CHART_Y_MIN"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Chart.YMin = f
		}
	}

	// Animation settings (parse durations)
	if v := os.Getenv(EnvPrefix + "_ANIMATION_UPDATE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Animation.Update = d
		}
	}
	if v := os.Getenv(EnvPrefix + "_ANIMATION_EXIT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Animation.Exit = d
		}
	}
	if v := os.Getenv(EnvPrefix + "_ANIMATION_EASING"); v != "" {
		cfg.Animation.Easing = Easing(v)
	}
	if v := os.Getenv(EnvPrefix + "_ANIMATION_FPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Animation.FPS = n
		}
	}

	// Player settings
	if v := os.Getenv(EnvPrefix + "_PLAYER_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Player.Interval = d
		}
	}
	if v := os.Getenv(EnvPrefix + "_PLAYER_LOOP"); v != "" {
		cfg.Player.Loop = parseBool(v)
	}
}

// parseBool parses a string as a boolean value.
// Returns true for "true", "1", "yes" (case-insensitive).
// Returns false for anything else.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// viperDecodeHook provides custom decoding for viper unmarshaling.
// Keys are matched against the yaml tags so snake_case names decode.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.TagName = "yaml"
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToCustomTypeHookFunc(),
	)
}

// stringToCustomTypeHookFunc creates a decode hook for our custom types.
func stringToCustomTypeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		switch to {
		case reflect.TypeOf(Easing("")):
			return Easing(data.(string)), nil
		}

		return data, nil
	}
}

// Load is a convenience function that creates a new Loader and loads configuration.
// If path is empty, it uses DefaultConfigPath.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}

// LoadOptional is a convenience function for Loader.LoadOptional.
func LoadOptional(path string) (*Config, error) {
	return NewLoader().LoadOptional(path)
}
