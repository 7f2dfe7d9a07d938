// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings holds the values that may be changed without rebuilding the game.
// Zero values in a settings file mean "keep the default".
type Settings struct {
	Balloons     int    `toml:"balloons"`
	Label        string `toml:"label"`
	Prompt       string `toml:"prompt"`
	Sound        string `toml:"sound"`
	Font         string `toml:"font"`
	Seed         int64  `toml:"seed"`
	Muted        bool   `toml:"muted"`
	WindowWidth  int    `toml:"window_width"`
	WindowHeight int    `toml:"window_height"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Balloons:     NumBalloons,
		Label:        DefaultLabel,
		Prompt:       DefaultPrompt,
		Sound:        DefaultSound,
		WindowWidth:  ScreenWidth,
		WindowHeight: ScreenHeight,
	}
}

// Load reads a TOML settings file on top of the defaults. A missing file is
// not an error: the defaults are returned as is.
func Load(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return s, nil
	}

	var file Settings
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return s, fmt.Errorf("failed to decode settings %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return s, fmt.Errorf("unknown settings in %q: %v", path, undecoded)
	}
	s.merge(file)
	return s, s.Validate()
}

// Decode parses settings from TOML text on top of the defaults.
func Decode(data string) (Settings, error) {
	s := DefaultSettings()
	var file Settings
	if _, err := toml.Decode(data, &file); err != nil {
		return s, fmt.Errorf("failed to decode settings: %w", err)
	}
	s.merge(file)
	return s, s.Validate()
}

func (s *Settings) merge(o Settings) {
	if o.Balloons != 0 {
		s.Balloons = o.Balloons
	}
	if o.Label != "" {
		s.Label = o.Label
	}
	if o.Prompt != "" {
		s.Prompt = o.Prompt
	}
	if o.Sound != "" {
		s.Sound = o.Sound
	}
	if o.Font != "" {
		s.Font = o.Font
	}
	if o.Seed != 0 {
		s.Seed = o.Seed
	}
	if o.Muted {
		s.Muted = true
	}
	if o.WindowWidth != 0 {
		s.WindowWidth = o.WindowWidth
	}
	if o.WindowHeight != 0 {
		s.WindowHeight = o.WindowHeight
	}
}

// Validate rejects settings the game cannot run with.
func (s Settings) Validate() error {
	if s.Balloons <= 0 {
		return fmt.Errorf("balloons must be positive, got %d", s.Balloons)
	}
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.WindowWidth, s.WindowHeight)
	}
	return nil
}
