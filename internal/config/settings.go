// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// AutopilotSettings tunes the headless driver.
type AutopilotSettings struct {
	Mix     []string `yaml:"mix" validate:"dive,oneof=firewall ids honeypot patch"`
	Spacing float64  `yaml:"spacing" validate:"gte=10,lte=500"`
	Offset  float64  `yaml:"offset" validate:"gte=0,lte=200"`
}

// Settings is the optional runtime configuration loaded from YAML.
type Settings struct {
	LogLevel    string            `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error disabled off"`
	LogFormat   string            `yaml:"log_format" validate:"oneof=console json"`
	Seed        int64             `yaml:"seed"`
	WindowScale float64           `yaml:"window_scale" validate:"gt=0,lte=4"`
	MaxTicks    int               `yaml:"max_ticks" validate:"gte=0"`
	Autopilot   AutopilotSettings `yaml:"autopilot"`
}

// DefaultSettings returns the values used when no file is given.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:    "info",
		LogFormat:   "console",
		WindowScale: 1,
		MaxTicks:    60 * TicksPerSecond * 20,
		Autopilot: AutopilotSettings{
			Mix:     []string{"firewall", "honeypot", "ids", "firewall"},
			Spacing: 70,
			Offset:  45,
		},
	}
}

var validate = validator.New()

// LoadSettings reads a YAML file on top of DefaultSettings. An empty path
// returns the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	return ParseSettings(data)
}

// ParseSettings decodes YAML bytes on top of DefaultSettings and validates the result.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	// уровень сравнивается без учёта регистра, как в logging.ParseLevel
	s.LogLevel = strings.ToLower(s.LogLevel)
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate checks field constraints.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid settings: field %s failed %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}
