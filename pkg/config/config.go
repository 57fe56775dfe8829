// Package config loads the user settings file of the mvg command line tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/travigo/mvg/pkg/mvg"
	"github.com/travigo/mvg/pkg/util"
	"gopkg.in/yaml.v3"
)

type ColorOption string

const (
	ColorTrueColor ColorOption = "TrueColor"
	ColorAnsi      ColorOption = "Ansi"
	ColorNo        ColorOption = "No"
)

func (c ColorOption) Valid() bool {
	switch c {
	case ColorTrueColor, ColorAnsi, ColorNo:
		return true
	}
	return false
}

type Config struct {
	ColorOption    ColorOption   `yaml:"color_option"`
	DefaultStation string        `yaml:"default_station"`
	Endpoint       string        `yaml:"endpoint"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	UserAgent      string        `yaml:"user_agent"`
}

// Default returns the settings used when no file exists. The colour option
// follows COLORTERM and NO_COLOR from environment.
func Default(environment map[string]string) *Config {
	return &Config{
		ColorOption:    colorFromEnvironment(environment),
		RequestTimeout: 30 * time.Second,
	}
}

func colorFromEnvironment(environment map[string]string) ColorOption {
	if environment["NO_COLOR"] != "" {
		return ColorNo
	}

	switch strings.ToLower(environment["COLORTERM"]) {
	case "truecolor", "24bit":
		return ColorTrueColor
	}
	return ColorAnsi
}

// Path is $MVG_CONFIG when set, otherwise ~/.mvg.conf.
func Path(environment map[string]string) (string, error) {
	if path := environment["MVG_CONFIG"]; path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".mvg.conf"), nil
}

// LoadDotEnv reads .env into the process environment. A missing file is fine.
func LoadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Load reads the file at path over the defaults and then applies the
// MVG_DEFAULT_STATION, MVG_ENDPOINT and MVG_USER_AGENT overrides. A missing file is not an
// error. On a malformed file the defaults are returned alongside the error.
func Load(path string, environment map[string]string) (*Config, error) {
	cfg := Default(environment)

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		cfg.applyEnvironment(environment)
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	default:
		parsed := *cfg
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			cfg.applyEnvironment(environment)
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		if !parsed.ColorOption.Valid() {
			cfg.applyEnvironment(environment)
			return cfg, fmt.Errorf("config file %s: unknown color_option %q", path, parsed.ColorOption)
		}
		cfg = &parsed
	}

	cfg.applyEnvironment(environment)
	return cfg, nil
}

func (c *Config) applyEnvironment(environment map[string]string) {
	overrides := util.GetPrefixedEnvironmentVariables(environment, "MVG_")

	if station, ok := overrides["DEFAULT_STATION"]; ok {
		c.DefaultStation = station
	}
	if endpoint, ok := overrides["ENDPOINT"]; ok {
		c.Endpoint = endpoint
	}
	if userAgent, ok := overrides["USER_AGENT"]; ok {
		c.UserAgent = userAgent
	}
}

// ClientOptions turns the upstream settings into mvg client options.
func (c *Config) ClientOptions() []mvg.Option {
	options := []mvg.Option{
		mvg.WithUserAgent(c.UserAgent),
	}
	if c.Endpoint != "" {
		options = append(options, mvg.WithBaseURL(c.Endpoint))
	}
	if c.RequestTimeout > 0 {
		options = append(options, mvg.WithTimeout(c.RequestTimeout))
	}
	return options
}
