package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	charterrors "github.com/dbmrq/bubblechart/internal/errors"
)

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	if !errors.Is(err, charterrors.ErrConfig) {
		t.Errorf("expected ErrConfig, got %v", err)
	}
	var ce *charterrors.ChartError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ChartError, got %T", err)
	}
	if ce.Details["path"] != "nonexistent/config.yaml" {
		t.Errorf("expected path 'nonexistent/config.yaml', got %q", ce.Details["path"])
	}
	if !strings.Contains(ce.Suggestion, "bubblechart init") {
		t.Errorf("suggestion should point at init, got %q", ce.Suggestion)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
data:
  path: data/gapminder.csv

chart:
  width: 800
  height: 500
  margin:
    top: 20
    right: 20
    bottom: 60
    left: 60
  y_min: 40
  radius_min: 1
  radius_max: 30
  palette:
    - "#111111"
    - "#222222"

animation:
  update: 750ms
  exit: 250ms
  easing: linear
  fps: 24

tooltip:
  offset_x: 12
  offset_y: 8

player:
  interval: 2s
  loop: true

locale: de
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Data.Path != "data/gapminder.csv" {
		t.Errorf("expected data.path 'data/gapminder.csv', got %q", cfg.Data.Path)
	}

	// Verify chart settings
	if cfg.Chart.Width != 800 || cfg.Chart.Height != 500 {
		t.Errorf("expected 800x500, got %dx%d", cfg.Chart.Width, cfg.Chart.Height)
	}
	if cfg.Chart.Margin.Left != 60 || cfg.Chart.Margin.Top != 20 {
		t.Errorf("unexpected margin %+v", cfg.Chart.Margin)
	}
	if cfg.Chart.YMin != 40 {
		t.Errorf("expected y_min 40, got %v", cfg.Chart.YMin)
	}
	if cfg.Chart.RadiusMin != 1 || cfg.Chart.RadiusMax != 30 {
		t.Errorf("expected radius [1,30], got [%v,%v]", cfg.Chart.RadiusMin, cfg.Chart.RadiusMax)
	}
	if len(cfg.Chart.Palette) != 2 || cfg.Chart.Palette[1] != "#222222" {
		t.Errorf("unexpected palette %v", cfg.Chart.Palette)
	}

	// Verify animation settings
	if cfg.Animation.Update != 750*time.Millisecond {
		t.Errorf("expected update 750ms, got %v", cfg.Animation.Update)
	}
	if cfg.Animation.Exit != 250*time.Millisecond {
		t.Errorf("expected exit 250ms, got %v", cfg.Animation.Exit)
	}
	if cfg.Animation.Easing != EasingLinear {
		t.Errorf("expected easing linear, got %q", cfg.Animation.Easing)
	}
	if cfg.Animation.FPS != 24 {
		t.Errorf("expected fps 24, got %d", cfg.Animation.FPS)
	}

	if cfg.Tooltip.OffsetX != 12 || cfg.Tooltip.OffsetY != 8 {
		t.Errorf("unexpected tooltip offsets %+v", cfg.Tooltip)
	}
	if cfg.Player.Interval != 2*time.Second || !cfg.Player.Loop {
		t.Errorf("unexpected player config %+v", cfg.Player)
	}
	if cfg.Locale != "de" {
		t.Errorf("expected locale de, got %q", cfg.Locale)
	}
}

func TestLoad_DefaultsApplied(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Minimal config - just the data path
	configContent := `
data:
  path: other.csv
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Data.Path != "other.csv" {
		t.Errorf("expected data.path 'other.csv', got %q", cfg.Data.Path)
	}
	if cfg.Chart.YMin != DefaultYMin {
		t.Errorf("expected default y_min %v, got %v", DefaultYMin, cfg.Chart.YMin)
	}
	if cfg.Animation.Update != DefaultUpdateDuration {
		t.Errorf("expected default update %v, got %v", DefaultUpdateDuration, cfg.Animation.Update)
	}
	if cfg.Animation.Exit != DefaultExitDuration {
		t.Errorf("expected default exit %v, got %v", DefaultExitDuration, cfg.Animation.Exit)
	}
	if len(cfg.Chart.Palette) != len(Tableau10) {
		t.Errorf("expected default palette, got %v", cfg.Chart.Palette)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
data:
  path: file.csv
animation:
  update: 1s
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("BUBBLECHART_DATA_PATH", "env.csv")
	t.Setenv("BUBBLECHART_ANIMATION_UPDATE", "3s")
	t.Setenv("BUBBLECHART_ANIMATION_EXIT", "100ms")
	t.Setenv("BUBBLECHART_ANIMATION_FPS", "60")
	t.Setenv("BUBBLECHART_CHART_Y_MIN", "30")
	t.Setenv("BUBBLECHART_PLAYER_LOOP", "yes")
	t.Setenv("BUBBLECHART_LOCALE", "fr")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Data.Path != "env.csv" {
		t.Errorf("expected data.path 'env.csv' from env, got %q", cfg.Data.Path)
	}
	if cfg.Animation.Update != 3*time.Second {
		t.Errorf("expected update 3s from env, got %v", cfg.Animation.Update)
	}
	if cfg.Animation.Exit != 100*time.Millisecond {
		t.Errorf("expected exit 100ms from env, got %v", cfg.Animation.Exit)
	}
	if cfg.Animation.FPS != 60 {
		t.Errorf("expected fps 60 from env, got %d", cfg.Animation.FPS)
	}
	if cfg.Chart.YMin != 30 {
		t.Errorf("expected y_min 30 from env, got %v", cfg.Chart.YMin)
	}
	if !cfg.Player.Loop {
		t.Error("expected player.loop true from env")
	}
	if cfg.Locale != "fr" {
		t.Errorf("expected locale fr from env, got %q", cfg.Locale)
	}
}

func TestLoad_ValidationError(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
animation:
  easing: bounce
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var ce *charterrors.ChartError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ChartError, got %T", err)
	}
	if ce.Details["field"] != "animation.easing" {
		t.Errorf("expected field animation.easing, got %q", ce.Details["field"])
	}
	if ce.Details["path"] != configPath {
		t.Errorf("expected path %q, got %q", configPath, ce.Details["path"])
	}
	if !strings.Contains(ce.Suggestion, "cubic-in-out, linear") {
		t.Errorf("suggestion should list the easings, got %q", ce.Suggestion)
	}

	want := "invalid configuration: " + configPath + ": animation.easing: must be 'cubic-in-out' or 'linear'"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	var verrs ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) != 1 {
		t.Errorf("validation errors should stay reachable, got %v", err)
	}
	if !strings.Contains(charterrors.FormatAny(err), "Suggestion:") {
		t.Error("formatted error should carry the suggestion")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
data:
  path: [invalid yaml
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}

	if !errors.Is(err, charterrors.ErrConfig) {
		t.Errorf("expected ErrConfig, got %v", err)
	}
	if !strings.Contains(err.Error(), "failed to parse configuration: "+configPath) {
		t.Errorf("error should name the file, got %q", err.Error())
	}
}

func TestLoadOptional_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("BUBBLECHART_DATA_PATH", "from-env.csv")

	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadOptional() error = %v", err)
	}
	if cfg.Chart.Width != DefaultWidth {
		t.Errorf("expected default width, got %d", cfg.Chart.Width)
	}
	if cfg.Data.Path != "from-env.csv" {
		t.Errorf("env overrides should apply without a file, got %q", cfg.Data.Path)
	}
}

func TestLoadOptional_ExistingFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("locale: nl\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadOptional(configPath)
	if err != nil {
		t.Fatalf("LoadOptional() error = %v", err)
	}
	if cfg.Locale != "nl" {
		t.Errorf("expected locale nl, got %q", cfg.Locale)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := NewConfig()
	cfg.Data.Path = "saved.csv"
	cfg.Animation.Exit = 300 * time.Millisecond
	cfg.Player.Loop = true

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved config: %v", err)
	}
	if !strings.Contains(string(data), "exit: 300ms") {
		t.Errorf("durations should be written as strings, got:\n%s", data)
	}
	if !strings.Contains(string(data), "y_min: 50") {
		t.Errorf("keys should use yaml tags, got:\n%s", data)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() of saved config error = %v", err)
	}
	if loaded.Data.Path != "saved.csv" {
		t.Errorf("expected data.path 'saved.csv', got %q", loaded.Data.Path)
	}
	if loaded.Animation.Exit != 300*time.Millisecond {
		t.Errorf("expected exit 300ms, got %v", loaded.Animation.Exit)
	}
	if !loaded.Player.Loop {
		t.Error("expected player.loop true after round trip")
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"", false},
		{"invalid", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := parseBool(tt.input)
			if result != tt.expected {
				t.Errorf("parseBool(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}
