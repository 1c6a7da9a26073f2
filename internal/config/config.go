package config

import (
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// Exit codes
	ExitSuccess = iota
	ExitGeneralError
	ExitUsageError
	ExitConfigurationError
)

// FileName is the config file cakectl looks for (without extension).
const FileName = "cakectl"

// DefaultLogLevel applies when no config file sets one.
const DefaultLogLevel = "info"

// Config holds optional defaults that reseed the option descriptors. A
// missing config file leaves every value at its zero default, which matches
// the documented CLI defaults exactly.
type Config struct {
	Bakery  BakeryConfig  `mapstructure:"bakery" yaml:"bakery"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// BakeryConfig overrides the per-subcommand option defaults.
type BakeryConfig struct {
	Minutes int  `mapstructure:"minutes" yaml:"minutes"`
	Fancy   bool `mapstructure:"fancy" yaml:"fancy"`
	Box     bool `mapstructure:"box" yaml:"box"`
}

// LoggingConfig sets the baseline log level before the global flags apply.
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Load reads cakectl.yaml from path, then from the home directory. A missing
// file is not an error; unknown keys are, so typos fail fast instead of
// silently changing nothing.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	strict := func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnused = true
	}
	if err := v.Unmarshal(&cfg, strict); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", v.ConfigFileUsed(), err)
	}

	return &cfg, nil
}

// Starter returns the config written by `cakectl init`.
func Starter() Config {
	return Config{
		Logging: LoggingConfig{Level: DefaultLogLevel},
	}
}

// Write marshals cfg to path as YAML.
func Write(path string, cfg Config) error {
	content, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
