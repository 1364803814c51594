// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/hktkzyx/engineering-toolbox/pkg/constants"
)

// Configuration holds all configuration for engineering-toolbox.
type Configuration struct {
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Defaults DefaultsConfig `yaml:"defaults,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// DefaultsConfig holds default values for CLI flags.
type DefaultsConfig struct {
	Series  string `yaml:"series,omitempty"`  // E3..E192, defaults to E24
	Mode    string `yaml:"mode,omitempty"`    // nearest, floor, ceil
	LEDKind string `yaml:"ledKind,omitempty"` // r (red) or o (other)
}

// Default returns the built-in configuration used when no config file is
// present.
func Default() *Configuration {
	return &Configuration{
		Defaults: DefaultsConfig{
			Series:  "E24",
			Mode:    "nearest",
			LEDKind: "o",
		},
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file at the default path is not an error;
// the built-in defaults apply instead.
func LoadConfiguration(configPath string) (*Configuration, error) {
	if configPath == constants.DefaultConfigFile {
		if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
	}

	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	configuration := Default()
	if err := viper.Unmarshal(configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return configuration, nil
}
