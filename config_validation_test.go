package parsedutch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLoadConfig_StrictMode_UnknownKeys(t *testing.T) {
	// Create a temporary config file with unknown keys
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "parsedutch.yaml")

	configContent := `
position: true
unknown_key: "should cause error"
log:
  level: debug
  unknown_log_key: "should also cause error"
`

	err := os.WriteFile(configPath, []byte(configContent), 0o644)
	assert.NoError(t, err)

	// Load config should fail due to unknown keys
	_, err = LoadConfig(configPath)
	assert.Error(t, err, "expected error for unknown keys in strict mode")
	assert.IsError(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "parsedutch.yaml")

	configContent := `
position: false
abbreviations:
  - hfdst
fixtures:
  dir: "${PARSEDUTCH_TEST_ROOT}/fixture"
`

	err := os.WriteFile(configPath, []byte(configContent), 0o644)
	assert.NoError(t, err)

	t.Setenv("PARSEDUTCH_TEST_ROOT", "/tmp/parsedutch")

	config, err := LoadConfig(configPath)
	assert.NoError(t, err)
	assert.False(t, config.PositionEnabled())
	assert.Equal(t, []string{"hfdst"}, config.Abbreviations)
	assert.Equal(t, "/tmp/parsedutch/fixture", config.Fixtures.Dir)
	assert.Equal(t, "info", config.Log.Level)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, getDefaultConfig(), config)
}

func TestLoadConfig_PositionEnv(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	t.Setenv(PositionEnv, "false")

	config, err := LoadConfig(missing)
	assert.NoError(t, err)
	assert.False(t, config.PositionEnabled())

	t.Setenv(PositionEnv, "sometimes")

	_, err = LoadConfig(missing)
	assert.IsError(t, err, ErrInvalidConfig)
	assert.IsError(t, err, ErrPositionNotBoolean)
}

func TestDecodeConfig_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		document string
		target   error
	}{
		{"scalar document", "true", ErrConfigNotMapping},
		{"sequence document", "- position", ErrConfigNotMapping},
		{"string position", "position: \"yes\"", ErrPositionNotBoolean},
		{"numeric position", "position: 1", ErrPositionNotBoolean},
		{"empty abbreviation", "abbreviations: [\"..\"]", ErrEmptyAbbreviation},
		{"unknown key", "positions: true", ErrInvalidConfig},
		{"broken yaml", "position: [", ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeConfig([]byte(tt.document))
			assert.IsError(t, err, ErrInvalidConfig)
			assert.IsError(t, err, tt.target)
		})
	}
}

func TestValidateConfig_InvalidLog(t *testing.T) {
	err := validateConfig(&Config{Log: LogConfig{Level: "loud"}})
	assert.IsError(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "loud")

	err = validateConfig(&Config{Log: LogConfig{Format: "xml"}})
	assert.IsError(t, err, ErrInvalidConfig)
}

func TestValidateConfig_ValidConfig(t *testing.T) {
	assert.NoError(t, validateConfig(getDefaultConfig()))
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("PARSEDUTCH_A", "alpha")
	t.Setenv("PARSEDUTCH_B", "bravo")

	assert.Equal(t, "alpha/bravo/x", expandEnvVars("${PARSEDUTCH_A}/$PARSEDUTCH_B/x"))
	assert.Equal(t, "/plain", expandEnvVars("/plain"))
}
