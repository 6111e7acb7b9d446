package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Output settings
	Output     string `yaml:"output"`
	Title      string `yaml:"title"`
	JSONOutput string `yaml:"json"`

	// Input selection
	Filter        string   `yaml:"filter"`
	PathsToIgnore []string `yaml:"skip_dirs"`

	// Console settings
	NoProgress bool `yaml:"no_progress"`
	Verbose    bool `yaml:"verbose"`

	// Command flags
	Flags Flags `yaml:"-"`
}

// Flags holds command-line flags. Empty strings and false mean "not set",
// so flags only override the other layers when given explicitly.
type Flags struct {
	Output     string
	Title      string
	JSONOutput string
	Filter     string
	ConfigFile string
	EnvFile    string
	NoProgress bool
	Verbose    bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		Output: DefaultOutput,
		Title:  DefaultTitle,
	}
	// Copy default paths to ignore
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load builds the effective config: defaults, then the YAML file, then the
// environment (including the dotenv file), then flags.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	cfg.Flags = flags

	if flags.ConfigFile != "" {
		if err := cfg.LoadFile(flags.ConfigFile); err != nil {
			return nil, err
		}
	}

	envFile := flags.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := loadDotEnv(envFile); err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)

	cfg.applyFlags(flags)
	return cfg, nil
}

// LoadFile merges the YAML file at path into c.
// Keys missing from the file keep their current value.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides c with the JUNIT2HTML_* variables found by lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	set(EnvOutput, &c.Output)
	set(EnvTitle, &c.Title)
	set(EnvJSON, &c.JSONOutput)
	set(EnvFilter, &c.Filter)
}

func (c *Config) applyFlags(flags Flags) {
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Title != "" {
		c.Title = flags.Title
	}
	if flags.JSONOutput != "" {
		c.JSONOutput = flags.JSONOutput
	}
	if flags.Filter != "" {
		c.Filter = flags.Filter
	}
	if flags.NoProgress {
		c.NoProgress = true
	}
	if flags.Verbose {
		c.Verbose = true
	}
}

// loadDotEnv loads path into the process environment. A missing file is
// not an error; variables already set are not overwritten.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}
