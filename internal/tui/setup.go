package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/1broseidon/dockwm/internal/anim"
	"github.com/1broseidon/dockwm/internal/config"
)

// setupFields holds the string values edited by the setup form.
type setupFields struct {
	WindowOffset string
	ResizeOffset string
	MinimizeMS   string
	MaximizeMS   string
	CloseMS      string
	Easing       string
	CloseScale   string
	LogLevel     string
	IPC          bool
}

func fieldsFromConfig(cfg *config.Config) setupFields {
	return setupFields{
		WindowOffset: formatFloat(cfg.Interaction.WindowOffset),
		ResizeOffset: formatFloat(cfg.Interaction.ResizeOffset),
		MinimizeMS:   strconv.Itoa(cfg.Animation.MinimizeMS),
		MaximizeMS:   strconv.Itoa(cfg.Animation.MaximizeMS),
		CloseMS:      strconv.Itoa(cfg.Animation.CloseMS),
		Easing:       cfg.Animation.Easing,
		CloseScale:   formatFloat(cfg.Animation.CloseScale),
		LogLevel:     cfg.Logging.Level,
		IPC:          cfg.Terminal.IPC,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// apply writes the fields into a copy of cfg and validates the result.
func (f setupFields) apply(cfg *config.Config) (*config.Config, error) {
	out := *cfg
	out.Scene.Windows = append([]config.WindowSpec(nil), cfg.Scene.Windows...)

	var err error
	if out.Interaction.WindowOffset, err = parseFloatField("window offset", f.WindowOffset); err != nil {
		return nil, err
	}
	if out.Interaction.ResizeOffset, err = parseFloatField("resize offset", f.ResizeOffset); err != nil {
		return nil, err
	}
	if out.Animation.MinimizeMS, err = parseIntField("minimize duration", f.MinimizeMS); err != nil {
		return nil, err
	}
	if out.Animation.MaximizeMS, err = parseIntField("maximize duration", f.MaximizeMS); err != nil {
		return nil, err
	}
	if out.Animation.CloseMS, err = parseIntField("close duration", f.CloseMS); err != nil {
		return nil, err
	}
	if out.Animation.CloseScale, err = parseFloatField("close scale", f.CloseScale); err != nil {
		return nil, err
	}
	out.Animation.Easing = strings.TrimSpace(f.Easing)
	out.Logging.Level = f.LogLevel
	out.Terminal.IPC = f.IPC

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

func parseFloatField(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, s)
	}
	return v, nil
}

func parseIntField(name, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a whole number", name, s)
	}
	return v, nil
}

func validateNonNegativeFloat(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v < 0 {
		return fmt.Errorf("must be >= 0")
	}
	return nil
}

func validateDuration(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter milliseconds")
	}
	if v < 0 {
		return fmt.Errorf("must be >= 0")
	}
	return nil
}

func validateEasing(s string) error {
	_, err := anim.ParseEasing(s)
	return err
}

func validateScale(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v <= 0 || v > 1 {
		return fmt.Errorf("must be in (0, 1]")
	}
	return nil
}

func (f *setupFields) form() *huh.Form {
	levels := []huh.Option[string]{
		huh.NewOption("debug", "debug"),
		huh.NewOption("info", "info"),
		huh.NewOption("warn", "warn"),
		huh.NewOption("error", "error"),
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("window_offset").
				Title("Resize Line Offset").
				Description("Pixels inside each edge where the resize zone is centred").
				Validate(validateNonNegativeFloat).
				Value(&f.WindowOffset),
			huh.NewInput().
				Key("resize_offset").
				Title("Resize Tolerance").
				Description("Pixels on either side of the resize line").
				Validate(validateNonNegativeFloat).
				Value(&f.ResizeOffset),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("minimize_ms").
				Title("Minimize Duration (ms)").
				Validate(validateDuration).
				Value(&f.MinimizeMS),
			huh.NewInput().
				Key("maximize_ms").
				Title("Maximize Duration (ms)").
				Validate(validateDuration).
				Value(&f.MaximizeMS),
			huh.NewInput().
				Key("close_ms").
				Title("Close Duration (ms)").
				Validate(validateDuration).
				Value(&f.CloseMS),
			huh.NewInput().
				Key("easing").
				Title("Easing").
				Description("linear, ease, ease-in, ease-out, ease-in-out or cubic-bezier(x1,y1,x2,y2)").
				Validate(validateEasing).
				Value(&f.Easing),
			huh.NewInput().
				Key("close_scale").
				Title("Close Scale").
				Description("Scale a closing window shrinks to").
				Validate(validateScale).
				Value(&f.CloseScale),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("log_level").
				Title("Log Level").
				Options(levels...).
				Value(&f.LogLevel),
			huh.NewConfirm().
				Key("ipc").
				Title("Serve the control socket?").
				Description("Lets `dockwm status`, `dockwm action` and the MCP server drive the desktop").
				Value(&f.IPC),
		),
	).WithShowHelp(true).WithShowErrors(true)
}

// RunSetup walks the user through the interaction and animation settings
// and returns the edited configuration. cfg is not modified.
func RunSetup(cfg *config.Config) (*config.Config, error) {
	fields := fieldsFromConfig(cfg)
	if err := fields.form().Run(); err != nil {
		return nil, err
	}
	return fields.apply(cfg)
}
