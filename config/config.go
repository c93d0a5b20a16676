// Package config holds the settings that control a model import.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Options control how a single import session interprets its source.
type Options struct {
	// Uniform multiplier applied to all parsed positions.
	Scale float32 `yaml:"scale"`

	// Derive texture coordinates from the X/Z position of each vertex
	// instead of using the texture coordinates defined in the file.
	FlatXZ bool `yaml:"flat_xz"`

	// Enable verbose parse progress and per-mesh statistics.
	Debug bool `yaml:"debug"`

	// Preserve polygonal faces instead of fan-triangulating them.
	Polygon bool `yaml:"polygon"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Config is the on-disk configuration file layout.
type Config struct {
	Import  Options       `yaml:"import"`
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultOptions returns the import options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Scale: 1,
	}
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Import: DefaultOptions(),
		Logging: LoggingConfig{
			Level: "notice",
		},
	}
}

// Validate checks option values that would produce a degenerate model.
func (o Options) Validate() error {
	if o.Scale == 0 {
		return fmt.Errorf("config: scale must be non-zero")
	}
	return nil
}

// Load reads a YAML config file on top of the defaults. A leading "~" in the
// path is expanded to the user's home directory.
func Load(path string) (*Config, error) {
	cfg := Default()

	expPath, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("config: could not expand %q: %w", path, err)
	}

	data, err := os.ReadFile(expPath)
	if err != nil {
		return nil, fmt.Errorf("config: loading %s: %w", expPath, err)
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", expPath, err)
	}

	if err = cfg.Import.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveTo writes the config to the given path.
func (c *Config) SaveTo(path string) error {
	expPath, err := homedir.Expand(path)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(expPath, data, 0644)
}
