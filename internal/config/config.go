// Package config loads textsign settings from a TOML file, a .env file and
// the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/textsign/textsign"
	"github.com/textsign/textsign/internal/log"
)

// Environment variables that override file settings.
const (
	EnvFormat     = "TEXTSIGN_FORMAT"
	EnvKeyDir     = "TEXTSIGN_KEY_DIR"
	EnvLogLevel   = "TEXTSIGN_LOG_LEVEL"
	EnvLogFile    = "TEXTSIGN_LOG_FILE"
	EnvLogDisable = "TEXTSIGN_LOG_DISABLE"
)

const (
	defaultLogLevel = "NOTICE"
	defaultKeyDir   = "."
)

// Logging is the logging configuration.
type Logging struct {
	// Disable disables logging entirely.
	Disable bool
	// File specifies the log file, if omitted stderr will be used.
	File string
	// Level specifies the log level.
	Level string
}

// Text is the configuration for the text sign/verify/encrypt commands.
type Text struct {
	// Format is the default signing format.
	Format string
	// KeyDir is where generated keys are written by default.
	KeyDir string
}

// Config is the top level textsign configuration.
type Config struct {
	Logging *Logging
	Text    *Text
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := new(Config)
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Logging == nil {
		cfg.Logging = &Logging{}
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
	if cfg.Text == nil {
		cfg.Text = &Text{}
	}
	if cfg.Text.Format == "" {
		cfg.Text.Format = string(textsign.FormatBlake3)
	}
	if cfg.Text.KeyDir == "" {
		cfg.Text.KeyDir = defaultKeyDir
	}
}

// Validate returns nil if the config is valid
// and otherwise an error is returned.
func (cfg *Config) Validate() error {
	if !log.ValidLevel(cfg.Logging.Level) {
		return fmt.Errorf("config: Logging: Level '%v' is invalid", cfg.Logging.Level)
	}
	if _, err := textsign.ParseFormat(cfg.Text.Format); err != nil {
		return fmt.Errorf("config: Text: %w", err)
	}
	return nil
}

// Format returns the parsed default format. It must only be called on a
// validated Config.
func (cfg *Config) Format() textsign.Format {
	f, _ := textsign.ParseFormat(cfg.Text.Format)
	return f
}

// Load parses and validates the provided buffer b as a config file body and
// returns the Config.
func Load(b []byte) (*Config, error) {
	cfg := new(Config)
	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return nil, fmt.Errorf("config: Undecoded keys in config file: %v", undecoded)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads, parses and validates the provided file and returns the
// Config.
func LoadFile(f string) (*Config, error) {
	b, err := os.ReadFile(f)
	if err != nil {
		return nil, err
	}
	return Load(b)
}

// Resolve builds the effective configuration: defaults, then the TOML file at
// path (skipped when path is empty), then variables from envFile (skipped
// when it does not exist), then the process environment.
func Resolve(path, envFile string) (*Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFile(path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if envFile != "" {
		// Variables already set in the environment win over the .env file.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvFormat); ok && v != "" {
		cfg.Text.Format = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvKeyDir); ok && v != "" {
		cfg.Text.KeyDir = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.Logging.File = v
	}
	if v, ok := lookup(EnvLogDisable); ok && v != "" {
		disable, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvLogDisable, err)
		}
		cfg.Logging.Disable = disable
	}
	return nil
}
