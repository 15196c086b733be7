// Package config persists the browsing session between runs: the last
// visited path, the animation preferences, and the color theme.
package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"filey/internal/errors"
	"filey/internal/log"

	"gopkg.in/yaml.v3"
)

// Animation kinds for the list transition.
const (
	AnimFade  = "Fade"
	AnimSlide = "Slide"
	AnimNone  = "None"
)

// Durations selectable in the animation settings dialog, in milliseconds.
var AnimDurations = []int{100, 200, 400, 800}

// Theme maps the five fixed color roles to #rrggbb values. A theme missing
// any role is rejected wholesale at load time.
type Theme struct {
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	SelectedBg string `yaml:"selected_bg"`
	HoverBg    string `yaml:"hover_bg"`
	TooltipBg  string `yaml:"tooltip_bg"`
}

// Complete reports whether every color role is set.
func (t Theme) Complete() bool {
	return t.Background != "" && t.Text != "" && t.SelectedBg != "" &&
		t.HoverBg != "" && t.TooltipBg != ""
}

// Built-in themes.
var (
	LightTheme = Theme{
		Background: "#f0f0f0",
		Text:       "#202020",
		SelectedBg: "#007acc",
		HoverBg:    "#cce4f7",
		TooltipBg:  "#eeeeee",
	}
	DarkTheme = Theme{
		Background: "#1e1e1e",
		Text:       "#dddddd",
		SelectedBg: "#007acc",
		HoverBg:    "#094771",
		TooltipBg:  "#333333",
	}
)

// Settings is the persisted session state. It is loaded once at startup and
// rewritten after every successful navigation and every accepted settings
// dialog.
type Settings struct {
	LastPath     string `yaml:"last_path"`
	AnimDuration int    `yaml:"anim_duration"`
	AnimType     string `yaml:"anim_type"`
	Theme        Theme  `yaml:"theme"`
}

// New returns the default settings: home directory, 200ms fade, dark theme.
func New() *Settings {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Settings{
		LastPath:     home,
		AnimDuration: 200,
		AnimType:     AnimFade,
		Theme:        DarkTheme,
	}
}

// DefaultPath returns the settings file location
// (~/.config/filey/settings.yaml).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "filey", "settings.yaml")
	}
	return filepath.Join(home, ".config", "filey", "settings.yaml")
}

// Load loads settings from the default location.
func Load() *Settings {
	return LoadFile(DefaultPath())
}

// LoadFile loads settings from path. Any failure degrades to defaults:
// an unreadable or malformed file is logged, never surfaced to the user.
func LoadFile(path string) *Settings {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("could not read settings file %s: %v", path, err)
		}
		return cfg
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		log.Warnf("could not parse settings file %s: %v", path, err)
		return cfg
	}

	if loaded.LastPath != "" {
		cfg.LastPath = loaded.LastPath
	}
	if validDuration(loaded.AnimDuration) {
		cfg.AnimDuration = loaded.AnimDuration
	}
	if validAnimType(loaded.AnimType) {
		cfg.AnimType = loaded.AnimType
	}
	if loaded.Theme.Complete() {
		cfg.Theme = loaded.Theme
	} else if loaded.Theme != (Theme{}) {
		log.Warnf("settings file %s has an incomplete theme, using default", path)
	}

	return cfg
}

// Save writes the settings to path, creating parent directories as needed.
func Save(cfg *Settings, path string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "could not create settings directory")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "could not marshal settings")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "could not write settings file")
	}

	return nil
}

// Validate checks that the settings hold values the UI can act on.
func (s *Settings) Validate() error {
	if s == nil {
		return errors.NewConfigError("nil settings", "", errors.InvalidConfig, nil)
	}
	if !validDuration(s.AnimDuration) {
		return errors.NewConfigError(fmt.Sprintf("invalid animation duration %d", s.AnimDuration), "anim_duration", errors.InvalidConfig, nil)
	}
	if !validAnimType(s.AnimType) {
		return errors.NewConfigError(fmt.Sprintf("invalid animation type %q", s.AnimType), "anim_type", errors.InvalidConfig, nil)
	}
	if !s.Theme.Complete() {
		return errors.NewConfigError("theme is missing color roles", "theme", errors.InvalidConfig, nil)
	}
	return nil
}

func validDuration(d int) bool {
	for _, v := range AnimDurations {
		if d == v {
			return true
		}
	}
	return false
}

func validAnimType(t string) bool {
	switch t {
	case AnimFade, AnimSlide, AnimNone:
		return true
	}
	return false
}

// ParseColor converts a #rrggbb string to an NRGBA color. Malformed values
// come back black so a broken theme never takes the UI down.
func ParseColor(s string) color.NRGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.NRGBA{A: 255}
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{A: 255}
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
