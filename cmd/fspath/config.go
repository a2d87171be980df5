package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jmgilman/go/fspath/errors"
)

// Config holds the CLI settings.
// Values come from flags, FSPATH_* environment variables, the fspath.yaml
// config file and defaults, in that order of precedence.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	Output   string `mapstructure:"output"`
	// Workers bounds how many paths resolve concurrently.
	Workers int `mapstructure:"workers"`
}

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func defaultConfig() Config {
	return Config{
		LogLevel: "warn",
		Output:   outputText,
		Workers:  8,
	}
}

// LoadConfig reads the configuration. An explicit path must exist; otherwise
// fspath.yaml is looked up in the working directory and the user config
// directory, and a missing file is not an error. overrides holds values set
// on the command line.
func LoadConfig(path string, overrides map[string]any) (*Config, error) {
	v := viper.New()

	def := defaultConfig()
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("output", def.Output)
	v.SetDefault("workers", def.Workers)

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrap(err, errors.CodeInvalidInput, "failed to read config file")
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("fspath")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "fspath"))
		}
	}

	v.SetEnvPrefix("FSPATH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, errors.CodeInvalidInput, "failed to read config file")
		}
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "unable to decode config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Output {
	case outputText, outputJSON, outputYAML:
	default:
		return errors.Newf(errors.CodeInvalidInput, "invalid output format %q", c.Output)
	}
	if c.Workers < 1 {
		return errors.Newf(errors.CodeInvalidInput, "invalid worker count %d", c.Workers)
	}
	return nil
}
