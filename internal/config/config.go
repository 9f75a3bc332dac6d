package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/1broseidon/dockwm/internal/anim"
	"github.com/1broseidon/dockwm/internal/window"
)

// Interaction tunes the hover zones used to start a resize.
type Interaction struct {
	// WindowOffset is the distance in px of each resize line from the edge.
	WindowOffset float64 `yaml:"window_offset"`
	// ResizeOffset is the hover tolerance in px on either side of the line.
	ResizeOffset float64 `yaml:"resize_offset"`
}

// Animation configures minimize/maximize/close timing.
type Animation struct {
	MinimizeMS int     `yaml:"minimize_ms"`
	MaximizeMS int     `yaml:"maximize_ms"`
	CloseMS    int     `yaml:"close_ms"`
	Easing     string  `yaml:"easing"`
	CloseScale float64 `yaml:"close_scale"`
}

// Terminal configures the terminal front end.
type Terminal struct {
	// CellWidth and CellHeight map one terminal cell to pixels.
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
	PanelRows  int `yaml:"panel_rows"`
	DockRows   int `yaml:"dock_rows"`
	TickMS     int `yaml:"tick_ms"`
	// IPC enables the control socket while the desktop runs.
	IPC bool `yaml:"ipc"`
}

// WindowSpec is one window of the initial scene. Geometry is in px.
type WindowSpec struct {
	ID        string  `yaml:"id"`
	Title     string  `yaml:"title"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MinWidth  float64 `yaml:"min_width"`
	MinHeight float64 `yaml:"min_height"`
	// NoIcon leaves the window without a dock icon.
	NoIcon bool `yaml:"no_icon,omitempty"`
}

// Scene lists the windows placed on the desktop at startup.
type Scene struct {
	Windows []WindowSpec `yaml:"windows"`
}

// LoggingConfig configures the slog logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// File receives log output; empty discards logs while the desktop runs.
	File string `yaml:"file,omitempty"`
	// MaxSizeMB rotates File once it grows past this size.
	MaxSizeMB int `yaml:"max_size_mb"`
	// MaxFiles is the number of rotated files kept.
	MaxFiles int `yaml:"max_files"`
}

// Config is the effective dockwm configuration.
type Config struct {
	Interaction Interaction   `yaml:"interaction"`
	Animation   Animation     `yaml:"animation"`
	Terminal    Terminal      `yaml:"terminal"`
	Scene       Scene         `yaml:"scene"`
	Logging     LoggingConfig `yaml:"logging"`
}

// ValidationError reports the config path of an invalid value.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Interaction: Interaction{
			WindowOffset: 8,
			ResizeOffset: 4,
		},
		Animation: Animation{
			MinimizeMS: 300,
			MaximizeMS: 500,
			CloseMS:    500,
			Easing:     "cubic-bezier(.26,0,.06,1.01)",
			CloseScale: 0.7,
		},
		Terminal: Terminal{
			CellWidth:  10,
			CellHeight: 20,
			PanelRows:  1,
			DockRows:   1,
			TickMS:     16,
			IPC:        true,
		},
		Scene: Scene{
			Windows: []WindowSpec{
				{ID: "terminal", Title: "Terminal", X: 40, Y: 60, Width: 400, Height: 200, MinWidth: 200, MinHeight: 100},
				{ID: "files", Title: "Files", X: 300, Y: 140, Width: 360, Height: 220, MinWidth: 200, MinHeight: 100},
				{ID: "notes", Title: "Notes", X: 560, Y: 80, Width: 300, Height: 180, MinWidth: 160, MinHeight: 80},
			},
		},
		Logging: LoggingConfig{
			Level:     "info",
			MaxSizeMB: 10,
			MaxFiles:  3,
		},
	}
}

// Validate checks the configuration for values the desktop cannot use.
func (c *Config) Validate() error {
	if c.Interaction.WindowOffset < 0 {
		return &ValidationError{Path: "interaction.window_offset", Err: fmt.Errorf("must be >= 0")}
	}
	if c.Interaction.ResizeOffset < 0 {
		return &ValidationError{Path: "interaction.resize_offset", Err: fmt.Errorf("must be >= 0")}
	}

	durations := []struct {
		path string
		ms   int
	}{
		{"animation.minimize_ms", c.Animation.MinimizeMS},
		{"animation.maximize_ms", c.Animation.MaximizeMS},
		{"animation.close_ms", c.Animation.CloseMS},
	}
	for _, d := range durations {
		if d.ms < 0 {
			return &ValidationError{Path: d.path, Err: fmt.Errorf("must be >= 0")}
		}
	}
	if _, err := anim.ParseEasing(c.Animation.Easing); err != nil {
		return &ValidationError{Path: "animation.easing", Err: err}
	}
	if c.Animation.CloseScale <= 0 || c.Animation.CloseScale > 1 {
		return &ValidationError{Path: "animation.close_scale", Err: fmt.Errorf("must be in (0, 1]")}
	}

	if c.Terminal.CellWidth < 1 || c.Terminal.CellHeight < 1 {
		return &ValidationError{Path: "terminal", Err: fmt.Errorf("cell_width and cell_height must be >= 1")}
	}
	if c.Terminal.PanelRows < 0 || c.Terminal.DockRows < 1 {
		return &ValidationError{Path: "terminal", Err: fmt.Errorf("panel_rows must be >= 0 and dock_rows >= 1")}
	}
	if c.Terminal.TickMS < 1 {
		return &ValidationError{Path: "terminal.tick_ms", Err: fmt.Errorf("must be >= 1")}
	}

	seen := make(map[string]struct{}, len(c.Scene.Windows))
	for i, w := range c.Scene.Windows {
		path := fmt.Sprintf("scene.windows[%d]", i)
		if strings.TrimSpace(w.ID) == "" {
			return &ValidationError{Path: path + ".id", Err: fmt.Errorf("id is required")}
		}
		if _, dup := seen[w.ID]; dup {
			return &ValidationError{Path: path + ".id", Err: fmt.Errorf("duplicate window id %q", w.ID)}
		}
		seen[w.ID] = struct{}{}
		if w.MinWidth < 0 || w.MinHeight < 0 {
			return &ValidationError{Path: path, Err: fmt.Errorf("min_width and min_height must be >= 0")}
		}
		if w.Width < w.MinWidth || w.Height < w.MinHeight {
			return &ValidationError{Path: path, Err: fmt.Errorf("size %vx%v is below minimum %vx%v", w.Width, w.Height, w.MinWidth, w.MinHeight)}
		}
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Path: "logging.level", Err: fmt.Errorf("must be one of: debug, info, warn, error")}
	}
	if c.Logging.MaxSizeMB < 1 {
		return &ValidationError{Path: "logging.max_size_mb", Err: fmt.Errorf("must be >= 1")}
	}
	if c.Logging.MaxFiles < 0 {
		return &ValidationError{Path: "logging.max_files", Err: fmt.Errorf("must be >= 0")}
	}
	return nil
}

// WindowSettings converts the interaction and animation sections for the
// window controllers. The config must have been validated.
func (c *Config) WindowSettings() window.Settings {
	easing, err := anim.ParseEasing(c.Animation.Easing)
	if err != nil {
		easing = window.DefaultSettings().Easing
	}
	return window.Settings{
		WindowOffset:     c.Interaction.WindowOffset,
		ResizeOffset:     c.Interaction.ResizeOffset,
		MinimizeDuration: time.Duration(c.Animation.MinimizeMS) * time.Millisecond,
		MaximizeDuration: time.Duration(c.Animation.MaximizeMS) * time.Millisecond,
		CloseDuration:    time.Duration(c.Animation.CloseMS) * time.Millisecond,
		Easing:           easing,
		CloseScale:       c.Animation.CloseScale,
	}
}

// TickInterval returns the animation frame interval of the terminal front end.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Terminal.TickMS) * time.Millisecond
}
