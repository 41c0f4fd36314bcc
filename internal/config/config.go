// Package config handles track-file and viewer configuration loading.
package config

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/coastermesh/pkg/math"
	"github.com/Faultbox/coastermesh/pkg/spline"
	"github.com/Faultbox/coastermesh/pkg/track"
)

// Config holds all settings: the track definition plus viewer and
// logging options.
type Config struct {
	Track   TrackConfig   `yaml:"track"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// TrackConfig describes a track layout and its mesh options.
type TrackConfig struct {
	// Points are the spline control points, x/y/z per entry.
	Points [][3]float32 `yaml:"points"`
	Closed bool         `yaml:"closed"`

	Divisions  int     `yaml:"divisions"`
	Style      string  `yaml:"style"`
	RailSides  int     `yaml:"rail_sides"`
	RailRadius float32 `yaml:"rail_radius"`

	// Bank keyframes; angles are degrees in the file, converted to
	// radians at resolution. T values above 1 are read as percentages.
	Bank []BankKey `yaml:"bank"`
}

// BankKey is one bank keyframe in a track file.
type BankKey struct {
	T        float32 `yaml:"t"`
	AngleDeg float32 `yaml:"angle_deg"`
}

// ViewerConfig holds display settings.
type ViewerConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with a small demo loop and sensible viewer
// defaults.
func Default() *Config {
	return &Config{
		Track: TrackConfig{
			Points: [][3]float32{
				{-6, 1, 0},
				{-3, 3, 3},
				{0, 1.5, 5},
				{3, 4, 3},
				{6, 1, 0},
				{3, 0.5, -4},
				{0, 2, -5},
				{-3, 0.5, -4},
			},
			Closed:    true,
			Divisions: 400,
			Style:     "track",
			Bank: []BankKey{
				{T: 0, AngleDeg: 0},
				{T: 25, AngleDeg: 30},
				{T: 50, AngleDeg: 0},
				{T: 75, AngleDeg: -30},
				{T: 100, AngleDeg: 0},
			},
		},
		Viewer: ViewerConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks the track definition for structural faults that would
// make a build fail, so CLI users get file-level messages instead of
// build errors.
func (c *TrackConfig) Validate() error {
	if c.Divisions < 1 {
		return fmt.Errorf("track: divisions must be >= 1, got %d", c.Divisions)
	}
	if len(c.Points) < 2 {
		return errors.New("track: need at least 2 control points")
	}
	return nil
}

// Curve builds the spline described by the track config.
func (c *TrackConfig) Curve() (track.Curve, error) {
	pts := make([]math.Vec3, len(c.Points))
	for i, p := range c.Points {
		pts[i] = math.Vec3{X: p[0], Y: p[1], Z: p[2]}
	}
	return spline.NewCatmullRom(pts, c.Closed)
}

// Options resolves the track config into build options. styleKnown is
// false when the file named an unknown style and the default was
// substituted; callers may log a diagnostic.
func (c *TrackConfig) Options() (opts track.Options, styleKnown bool) {
	style, known := track.ParseStyle(c.Style)

	keys := make([]track.BankKeyframe, len(c.Bank))
	for i, k := range c.Bank {
		t := k.T
		if t > 1 {
			t /= 100
		}
		keys[i] = track.BankKeyframe{
			T:     t,
			Angle: k.AngleDeg * gomath.Pi / 180,
		}
	}

	return track.Options{
		Style:         style,
		RailSides:     c.RailSides,
		RailRadius:    c.RailRadius,
		BankKeyframes: keys,
	}, known
}
