package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Save writes cfg to path as YAML, creating parent directories as needed.
func Save(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Marshal encodes cfg as YAML with two-space indentation.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalYAML writes durations in their string form so that the file
// round-trips through the duration decode hook.
func (a AnimationConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Update string `yaml:"update"`
		Exit   string `yaml:"exit"`
		Easing Easing `yaml:"easing"`
		FPS    int    `yaml:"fps"`
	}{a.Update.String(), a.Exit.String(), a.Easing, a.FPS}, nil
}

// MarshalYAML writes the interval in its string form.
func (p PlayerConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Interval string `yaml:"interval"`
		Loop     bool   `yaml:"loop"`
	}{p.Interval.String(), p.Loop}, nil
}
