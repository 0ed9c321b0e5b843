// Package config loads the similarity server configuration from an optional
// YAML file and command line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/baditaflorin/go_fuzzy_compare/internal/core/similarity"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 10 * 1024 * 1024 // 10MB
	DefaultConcurrency    = 0                // 0 means fasthttp's default
	DefaultThreshold      = 0.6
)

// Config holds the server settings.
type Config struct {
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	MaxRequestSize int           `yaml:"max_request_size"`
	Concurrency    int           `yaml:"concurrency"`
	WarmUp         bool          `yaml:"warm_up"`
	LogFile        string        `yaml:"log_file"`
	LogJSON        bool          `yaml:"log_json"`

	Threshold     float64 `yaml:"threshold"`
	CharacterMode string  `yaml:"character_mode"`
	Markup        bool    `yaml:"markup"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:           DefaultPort,
		ReadTimeout:    DefaultReadTimeout,
		WriteTimeout:   DefaultWriteTimeout,
		MaxRequestSize: DefaultMaxRequestSize,
		Concurrency:    DefaultConcurrency,
		WarmUp:         true,
		LogJSON:        true,
		Threshold:      DefaultThreshold,
		CharacterMode:  similarity.QuickRatioMode.String(),
	}
}

// LoadFile overlays the YAML file at path onto cfg. Keys absent from the
// file keep their current value.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// Parse builds the configuration from args. The -config file is applied
// first and explicitly set flags override it.
func Parse(name string, args []string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	configFile := fs.String("config", "", "Path to a YAML configuration file")
	port := fs.Int("port", cfg.Port, "HTTP server port")
	readTimeout := fs.Duration("read-timeout", cfg.ReadTimeout, "HTTP read timeout")
	writeTimeout := fs.Duration("write-timeout", cfg.WriteTimeout, "HTTP write timeout")
	maxRequestSize := fs.Int("max-request-size", cfg.MaxRequestSize, "Maximum request size in bytes")
	concurrency := fs.Int("concurrency", cfg.Concurrency, "Maximum number of concurrent connections (0 = default)")
	warmUp := fs.Bool("warm-up", cfg.WarmUp, "Perform system warm-up on startup")
	logFile := fs.String("log-file", cfg.LogFile, "Log file path (empty = stdout)")
	logJSON := fs.Bool("log-json", cfg.LogJSON, "Write logs as JSON")
	threshold := fs.Float64("threshold", cfg.Threshold, "Default similarity threshold")
	mode := fs.String("character-mode", cfg.CharacterMode, "Character fallback: quick or blocks")
	markup := fs.Bool("markup", cfg.Markup, "Split markup and punctuation into words before comparing")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if *configFile != "" {
		if err := LoadFile(*configFile, &cfg); err != nil {
			return cfg, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = *port
		case "read-timeout":
			cfg.ReadTimeout = *readTimeout
		case "write-timeout":
			cfg.WriteTimeout = *writeTimeout
		case "max-request-size":
			cfg.MaxRequestSize = *maxRequestSize
		case "concurrency":
			cfg.Concurrency = *concurrency
		case "warm-up":
			cfg.WarmUp = *warmUp
		case "log-file":
			cfg.LogFile = *logFile
		case "log-json":
			cfg.LogJSON = *logJSON
		case "threshold":
			cfg.Threshold = *threshold
		case "character-mode":
			cfg.CharacterMode = *mode
		case "markup":
			cfg.Markup = *markup
		}
	})

	return cfg, cfg.Validate()
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	if c.MaxRequestSize <= 0 {
		return fmt.Errorf("%w: max_request_size must be positive", ErrInvalidConfig)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("%w: concurrency must not be negative", ErrInvalidConfig)
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("%w: threshold %v must be between 0 and 1", ErrInvalidConfig, c.Threshold)
	}
	if _, err := similarity.ParseCharacterMode(c.CharacterMode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Mode returns the parsed character mode. Call Validate first.
func (c Config) Mode() similarity.CharacterMode {
	mode, _ := similarity.ParseCharacterMode(c.CharacterMode)
	return mode
}
