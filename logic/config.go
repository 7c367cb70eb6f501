package logic

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gnolang/tlogic/internal/boolean"
)

// DefaultConfigFile is the configuration file looked up when none is given.
const DefaultConfigFile = ".tlogic.yaml"

// Config represents the tlogic configuration file.
type Config struct {
	Name string `yaml:"name"`
	// MaxVariables caps the variables of one expression. Zero selects the
	// engine default; values above the engine's hard ceiling are clamped.
	MaxVariables int `yaml:"max_variables"`
	// Notation is "text" (not/and/or) or "symbolic" (¬/∧/∨).
	Notation string `yaml:"notation"`
	// CacheDir enables the on-disk report cache when set.
	CacheDir    string        `yaml:"cache_dir,omitempty"`
	CacheMaxAge time.Duration `yaml:"cache_max_age,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Name:         "tlogic",
		MaxVariables: boolean.DefaultMaxVariables,
		Notation:     boolean.NotationText.String(),
	}
}

// LoadConfig reads the configuration file at path. An empty path or a
// missing file yields DefaultConfig; fields absent from the file keep their
// defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, fmt.Errorf("error decoding %s: %w", path, err)
	}

	if _, err := config.AnalyzerConfig(); err != nil {
		return config, fmt.Errorf("invalid configuration %s: %w", path, err)
	}
	return config, nil
}

// WriteConfig writes config as YAML to path, replacing any existing file.
func WriteConfig(path string, config Config) error {
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0o644)
}

// AnalyzerConfig converts the file settings into engine settings.
func (c Config) AnalyzerConfig() (boolean.Config, error) {
	if c.MaxVariables < 0 {
		return boolean.Config{}, fmt.Errorf("max_variables must not be negative, got %d", c.MaxVariables)
	}
	notation, err := boolean.ParseNotation(c.Notation)
	if err != nil {
		return boolean.Config{}, err
	}
	return boolean.Config{
		MaxVariables: boolean.EffectiveLimit(c.MaxVariables),
		Notation:     notation,
	}, nil
}

// Fingerprint identifies the settings that change analysis output, so
// cached reports made under other settings are not reused.
func (c Config) Fingerprint() string {
	ac, err := c.AnalyzerConfig()
	if err != nil {
		return ""
	}
	return fmt.Sprintf("max=%d;notation=%s", ac.MaxVariables, ac.Notation)
}
