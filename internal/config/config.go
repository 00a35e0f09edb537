// Package config provides configuration data structures for bubblechart.
package config

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Config represents the complete bubblechart configuration loaded from .bubblechart/config.yaml.
type Config struct {
	Data      DataConfig      `yaml:"data"      json:"data"`
	Chart     ChartConfig     `yaml:"chart"     json:"chart"`
	Animation AnimationConfig `yaml:"animation" json:"animation"`
	Tooltip   TooltipConfig   `yaml:"tooltip"   json:"tooltip"`
	Player    PlayerConfig    `yaml:"player"    json:"player"`
	// Locale is the BCP 47 tag used to format numbers (default: "en").
	Locale string `yaml:"locale" json:"locale"`
}

// DataConfig configures the input dataset.
type DataConfig struct {
	// Path is the CSV file to load (default: bubble_data.csv).
	Path string `yaml:"path" json:"path"`
}

// MarginConfig is the space around the plot area, in chart pixels.
type MarginConfig struct {
	Top    int `yaml:"top"    json:"top"`
	Right  int `yaml:"right"  json:"right"`
	Bottom int `yaml:"bottom" json:"bottom"`
	Left   int `yaml:"left"   json:"left"`
}

// ChartConfig configures the chart geometry and scales.
type ChartConfig struct {
	// Width is the full chart width in pixels (default: 1000).
	Width int `yaml:"width" json:"width"`
	// Height is the full chart height in pixels (default: 600).
	Height int `yaml:"height" json:"height"`
	// Margin surrounds the plot area.
	Margin MarginConfig `yaml:"margin" json:"margin"`
	// YMin is the lower bound of the life expectancy axis (default: 50).
	YMin float64 `yaml:"y_min" json:"y_min"`
	// RadiusMin is the bubble radius for a population of zero (default: 2).
	RadiusMin float64 `yaml:"radius_min" json:"radius_min"`
	// RadiusMax is the bubble radius for the largest population (default: 40).
	RadiusMax float64 `yaml:"radius_max" json:"radius_max"`
	// Ticks is the suggested gridline count per axis (default: 10).
	Ticks int `yaml:"ticks" json:"ticks"`
	// Palette is the categorical colour list assigned to countries in first-seen order.
	Palette []string `yaml:"palette" json:"palette"`
}

// InnerWidth returns the width of the plot area.
func (c ChartConfig) InnerWidth() int {
	return c.Width - c.Margin.Left - c.Margin.Right
}

// InnerHeight returns the height of the plot area.
func (c ChartConfig) InnerHeight() int {
	return c.Height - c.Margin.Top - c.Margin.Bottom
}

// Easing names a transition timing function.
type Easing string

const (
	// EasingCubicInOut accelerates then decelerates (default).
	EasingCubicInOut Easing = "cubic-in-out"
	// EasingLinear moves at constant speed.
	EasingLinear Easing = "linear"
)

// AnimationConfig configures bubble transitions.
type AnimationConfig struct {
	// Update is the enter/update transition length (default: 1s).
	Update time.Duration `yaml:"update" json:"update"`
	// Exit is the shrink-and-remove transition length (default: 500ms).
	Exit time.Duration `yaml:"exit" json:"exit"`
	// Easing is the timing function (default: cubic-in-out).
	Easing Easing `yaml:"easing" json:"easing"`
	// FPS is the redraw rate while a transition is running (default: 30).
	FPS int `yaml:"fps" json:"fps"`
}

// FrameInterval returns the time between animation frames.
func (a AnimationConfig) FrameInterval() time.Duration {
	if a.FPS <= 0 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(a.FPS)
}

// TooltipConfig configures the pointer tooltip.
type TooltipConfig struct {
	// OffsetX is the horizontal distance from the pointer in pixels (default: 10).
	OffsetX int `yaml:"offset_x" json:"offset_x"`
	// OffsetY is the vertical distance from the pointer in pixels (default: 10).
	OffsetY int `yaml:"offset_y" json:"offset_y"`
	// CellX and CellY are the least distance in terminal cells between the
	// pointer and the tooltip box (default: 2, 1).
	CellX int `yaml:"cell_x" json:"cell_x"`
	CellY int `yaml:"cell_y" json:"cell_y"`
}

// PlayerConfig configures the year autoplay.
type PlayerConfig struct {
	// Interval is how long each year is shown while playing (default: 1s).
	Interval time.Duration `yaml:"interval" json:"interval"`
	// Loop restarts from the first year after the last (default: false).
	Loop bool `yaml:"loop" json:"loop"`
}

// Default values.
const (
	DefaultDataPath       = "bubble_data.csv"
	DefaultWidth          = 1000
	DefaultHeight         = 600
	DefaultYMin           = 50.0
	DefaultRadiusMin      = 2.0
	DefaultRadiusMax      = 40.0
	DefaultTicks          = 10
	DefaultUpdateDuration = time.Second
	DefaultExitDuration   = 500 * time.Millisecond
	DefaultFPS            = 30
	DefaultTooltipOffset  = 10
	DefaultTooltipCellX   = 2
	DefaultTooltipCellY   = 1
	DefaultPlayerInterval = time.Second
	DefaultLocale         = "en"
)

// DefaultMargin is the margin around the plot area.
var DefaultMargin = MarginConfig{Top: 40, Right: 40, Bottom: 80, Left: 80}

// Tableau10 is the default categorical palette.
var Tableau10 = []string{
	"#4e79a7", "#f28e2c", "#e15759", "#76b7b2", "#59a14f",
	"#edc949", "#af7aa1", "#ff9da7", "#9c755f", "#bab0ab",
}

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Data: DataConfig{
			Path: DefaultDataPath,
		},
		Chart: ChartConfig{
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			Margin:    DefaultMargin,
			YMin:      DefaultYMin,
			RadiusMin: DefaultRadiusMin,
			RadiusMax: DefaultRadiusMax,
			Ticks:     DefaultTicks,
			Palette:   append([]string(nil), Tableau10...),
		},
		Animation: AnimationConfig{
			Update: DefaultUpdateDuration,
			Exit:   DefaultExitDuration,
			Easing: EasingCubicInOut,
			FPS:    DefaultFPS,
		},
		Tooltip: TooltipConfig{
			OffsetX: DefaultTooltipOffset,
			OffsetY: DefaultTooltipOffset,
			CellX:   DefaultTooltipCellX,
			CellY:   DefaultTooltipCellY,
		},
		Player: PlayerConfig{
			Interval: DefaultPlayerInterval,
		},
		Locale: DefaultLocale,
	}
}

// ApplyDefaults applies default values to any unset fields.
// This is used after loading config from file to fill in missing values.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Data.Path == "" {
		c.Data.Path = defaults.Data.Path
	}

	// Chart geometry
	if c.Chart.Width == 0 {
		c.Chart.Width = defaults.Chart.Width
	}
	if c.Chart.Height == 0 {
		c.Chart.Height = defaults.Chart.Height
	}
	if c.Chart.Margin == (MarginConfig{}) {
		c.Chart.Margin = defaults.Chart.Margin
	}
	// Note: YMin of zero is a legitimate axis floor, so only the loader's
	// default-config base supplies 50.
	if c.Chart.RadiusMax == 0 {
		c.Chart.RadiusMin = defaults.Chart.RadiusMin
		c.Chart.RadiusMax = defaults.Chart.RadiusMax
	}
	if c.Chart.Ticks == 0 {
		c.Chart.Ticks = defaults.Chart.Ticks
	}
	if len(c.Chart.Palette) == 0 {
		c.Chart.Palette = defaults.Chart.Palette
	}

	// Animation
	if c.Animation.Update == 0 {
		c.Animation.Update = defaults.Animation.Update
	}
	if c.Animation.Exit == 0 {
		c.Animation.Exit = defaults.Animation.Exit
	}
	if c.Animation.Easing == "" {
		c.Animation.Easing = defaults.Animation.Easing
	}
	if c.Animation.FPS == 0 {
		c.Animation.FPS = defaults.Animation.FPS
	}

	if c.Player.Interval == 0 {
		c.Player.Interval = defaults.Player.Interval
	}
	if c.Locale == "" {
		c.Locale = defaults.Locale
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	// Chart geometry
	if c.Chart.Width <= 0 {
		errs = append(errs, &ValidationError{Field: "chart.width", Message: "must be positive"})
	}
	if c.Chart.Height <= 0 {
		errs = append(errs, &ValidationError{Field: "chart.height", Message: "must be positive"})
	}
	m := c.Chart.Margin
	if m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0 {
		errs = append(errs, &ValidationError{Field: "chart.margin", Message: "must be non-negative"})
	}
	if c.Chart.Width > 0 && c.Chart.InnerWidth() <= 0 {
		errs = append(errs, &ValidationError{Field: "chart.margin", Message: "left + right must be less than chart.width"})
	}
	if c.Chart.Height > 0 && c.Chart.InnerHeight() <= 0 {
		errs = append(errs, &ValidationError{Field: "chart.margin", Message: "top + bottom must be less than chart.height"})
	}
	if c.Chart.RadiusMin < 0 {
		errs = append(errs, &ValidationError{Field: "chart.radius_min", Message: "must be non-negative"})
	}
	if c.Chart.RadiusMax <= c.Chart.RadiusMin {
		errs = append(errs, &ValidationError{Field: "chart.radius_max", Message: "must be greater than chart.radius_min"})
	}
	if c.Chart.Ticks < 0 {
		errs = append(errs, &ValidationError{Field: "chart.ticks", Message: "must be non-negative"})
	}
	if len(c.Chart.Palette) == 0 {
		errs = append(errs, &ValidationError{Field: "chart.palette", Message: "must contain at least one colour"})
	}
	for i, col := range c.Chart.Palette {
		if !isHexColor(col) {
			errs = append(errs, &ValidationError{
				Field:   fmt.Sprintf("chart.palette[%d]", i),
				Message: fmt.Sprintf("%q is not a #rrggbb colour", col),
			})
		}
	}

	// Animation
	if c.Animation.Update < 0 {
		errs = append(errs, &ValidationError{Field: "animation.update", Message: "must be non-negative"})
	}
	if c.Animation.Exit < 0 {
		errs = append(errs, &ValidationError{Field: "animation.exit", Message: "must be non-negative"})
	}
	if c.Animation.Easing != "" {
		switch c.Animation.Easing {
		case EasingCubicInOut, EasingLinear:
			// valid
		default:
			errs = append(errs, &ValidationError{
				Field:   "animation.easing",
				Message: "must be 'cubic-in-out' or 'linear'",
			})
		}
	}
	if c.Animation.FPS < 0 || c.Animation.FPS > 120 {
		errs = append(errs, &ValidationError{Field: "animation.fps", Message: "must be between 1 and 120"})
	}

	if c.Tooltip.CellX < 0 || c.Tooltip.CellY < 0 {
		errs = append(errs, &ValidationError{Field: "tooltip.cell_x", Message: "cell offsets must be non-negative"})
	}

	if c.Player.Interval < 0 {
		errs = append(errs, &ValidationError{Field: "player.interval", Message: "must be non-negative"})
	}

	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			errs = append(errs, &ValidationError{Field: "locale", Message: fmt.Sprintf("%q is not a BCP 47 language tag", c.Locale)})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Language returns the parsed Locale, falling back to English.
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range strings.ToLower(s[1:]) {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
