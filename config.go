package parsedutch

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/shibukawa/parsedutch/exceptions"
	"github.com/shibukawa/parsedutch/internal/logging"
)

// PositionEnv overrides the `position` setting when set.
const PositionEnv = "PARSEDUTCH_POSITION"

// Config represents the parsedutch configuration
type Config struct {
	// Position is nil when the document does not set it; it defaults to true.
	Position      *bool          `yaml:"position"`
	Abbreviations []string       `yaml:"abbreviations"`
	Fixtures      FixturesConfig `yaml:"fixtures"`
	Log           LogConfig      `yaml:"log"`
}

// FixturesConfig represents fixture regeneration settings
type FixturesConfig struct {
	Dir string `yaml:"dir"`
}

// LogConfig represents logging settings
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// PositionEnabled reports whether nodes carry positions.
func (c *Config) PositionEnabled() bool {
	return c.Position == nil || *c.Position
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	var config *Config

	// Check if config file exists
	if !fileExists(configPath) {
		// Use default configuration if file doesn't exist
		config = getDefaultConfig()
	} else {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		config, err = DecodeConfig(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	err = applyEnvOverrides(config)
	if err != nil {
		return nil, err
	}

	// Expand environment variables
	expandConfigEnvVars(config)

	return config, nil
}

// DecodeConfig parses a YAML (or JSON) configuration document, validates it
// and fills in defaults. An empty document yields the default configuration.
func DecodeConfig(data []byte) (*Config, error) {
	var raw any

	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	switch doc := raw.(type) {
	case nil:
		return getDefaultConfig(), nil
	case map[string]any:
		if value, ok := doc["position"]; ok && value != nil {
			if _, ok := value.(bool); !ok {
				return nil, fmt.Errorf("%w: %w: got %v", ErrInvalidConfig, ErrPositionNotBoolean, value)
			}
		}
	default:
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, ErrConfigNotMapping)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	// Validate the configuration
	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	// Apply defaults for missing values
	applyDefaults(&config)

	return &config, nil
}

// validateConfig validates the configuration for common errors
func validateConfig(config *Config) error {
	for i, entry := range config.Abbreviations {
		if len(exceptions.SplitAbbreviation(entry)) == 0 {
			return fmt.Errorf("%w: %w: abbreviations[%d]", ErrInvalidConfig, ErrEmptyAbbreviation, i)
		}
	}

	if _, err := logging.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("%w: log: %w", ErrInvalidConfig, err)
	}

	if _, err := logging.ParseFormat(config.Log.Format); err != nil {
		return fmt.Errorf("%w: log: %w", ErrInvalidConfig, err)
	}

	return nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)

	return config
}

// applyDefaults fills in default values for missing configuration
func applyDefaults(config *Config) {
	if config.Position == nil {
		position := true
		config.Position = &position
	}

	if config.Abbreviations == nil {
		config.Abbreviations = []string{}
	}

	if config.Fixtures.Dir == "" {
		config.Fixtures.Dir = "./testdata/fixture"
	}

	if config.Log.Level == "" {
		config.Log.Level = "info"
	}

	if config.Log.Format == "" {
		config.Log.Format = "text"
	}
}

// applyEnvOverrides applies PARSEDUTCH_POSITION when set
func applyEnvOverrides(config *Config) error {
	value, ok := os.LookupEnv(PositionEnv)
	if !ok || value == "" {
		return nil
	}

	position, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%w: %w: %s=%q", ErrInvalidConfig, ErrPositionNotBoolean, PositionEnv, value)
	}

	config.Position = &position

	return nil
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	// Try to load .env file from current directory
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

var (
	bracedEnvVar = regexp.MustCompile(`\$\{([^}]+)\}`)
	plainEnvVar  = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = bracedEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return plainEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}

// expandConfigEnvVars expands environment variables in path settings
func expandConfigEnvVars(config *Config) {
	config.Fixtures.Dir = expandEnvVars(config.Fixtures.Dir)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
