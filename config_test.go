package parsedutch

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/goccy/go-yaml"
)

func TestConfig_DefaultValues(t *testing.T) {
	config := getDefaultConfig()

	assert.True(t, config.PositionEnabled())
	assert.Equal(t, []string{}, config.Abbreviations)
	assert.Equal(t, "./testdata/fixture", config.Fixtures.Dir)
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
}

func TestConfig_PositionEnabled(t *testing.T) {
	enabled := true
	disabled := false

	tests := []struct {
		name     string
		position *bool
		expected bool
	}{
		{"unset", nil, true},
		{"true", &enabled, true},
		{"false", &disabled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{Position: tt.position}
			assert.Equal(t, tt.expected, config.PositionEnabled())
		})
	}
}

func TestDecodeConfig(t *testing.T) {
	tests := []struct {
		name          string
		document      string
		position      bool
		abbreviations []string
	}{
		{
			name:     "empty document",
			document: "",
			position: true,
		},
		{
			name:     "position false",
			document: "position: false\n",
			position: false,
		},
		{
			name:     "null position",
			document: "position: null\n",
			position: true,
		},
		{
			name:     "json object",
			document: `{"position": false, "abbreviations": ["blz", "t.a.v."]}`,
			position: false,
			abbreviations: []string{
				"blz", "t.a.v.",
			},
		},
		{
			name: "yaml sequence",
			document: `
abbreviations:
  - hfdst
  - z.h.
log:
  level: debug
  format: json
`,
			position:      true,
			abbreviations: []string{"hfdst", "z.h."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := DecodeConfig([]byte(tt.document))
			assert.NoError(t, err)
			assert.Equal(t, tt.position, config.PositionEnabled())

			expected := tt.abbreviations
			if expected == nil {
				expected = []string{}
			}

			assert.Equal(t, expected, config.Abbreviations)
		})
	}
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	position := false
	config := &Config{
		Position:      &position,
		Abbreviations: []string{"blz"},
		Fixtures:      FixturesConfig{Dir: "fixtures"},
		Log:           LogConfig{Level: "warn", Format: "json"},
	}

	data, err := yaml.Marshal(config)
	assert.NoError(t, err)

	decoded, err := DecodeConfig(data)
	assert.NoError(t, err)
	assert.Equal(t, config, decoded)
}
