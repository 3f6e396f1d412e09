package config

import (
	"os"
	"path/filepath"
	"testing"

	"firewall-frenzy/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	require.NoError(t, DefaultSettings().Validate())
}

func TestLoadSettings_EmptyPath(t *testing.T) {
	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettings_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frenzy.yaml")
	body := `
log_level: debug
log_format: json
seed: 7
window_scale: 1.5
autopilot:
  mix: [ids, patch]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "json", s.LogFormat)
	assert.Equal(t, int64(7), s.Seed)
	assert.Equal(t, 1.5, s.WindowScale)
	assert.Equal(t, []string{"ids", "patch"}, s.Autopilot.Mix)
	// не указанные поля остаются по умолчанию
	assert.Equal(t, DefaultSettings().Autopilot.Spacing, s.Autopilot.Spacing)
	assert.Equal(t, DefaultSettings().MaxTicks, s.MaxTicks)
}

func TestParseSettings_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad level":  "log_level: loud\n",
		"bad scale":  "window_scale: 0\n",
		"bad tower":  "autopilot:\n  mix: [cannon]\n",
		"bad format": "log_format: xml\n",
		"not yaml":   "log_level: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSettings([]byte(body))
			assert.Error(t, err)
		})
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseSettings_LogLevelMatchesLogger(t *testing.T) {
	for _, level := range []string{"OFF", "off", "Debug", "WARN", "disabled", "''"} {
		t.Run(level, func(t *testing.T) {
			s, err := ParseSettings([]byte("log_level: " + level + "\n"))
			require.NoError(t, err)
			_, err = logging.ParseLevel(s.LogLevel)
			assert.NoError(t, err)
		})
	}
}
