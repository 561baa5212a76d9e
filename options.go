package textsign

import (
	"gopkg.in/op/go-logging.v1"

	"github.com/textsign/textsign/internal/passgen"
)

// engineConfig holds configuration for the engine.
type engineConfig struct {
	logger    *logging.Logger
	passwords func(length int) (string, error)
}

// Option configures the engine.
type Option func(*engineConfig)

// WithLogger sets the logger the engine reports operations to. Key material
// is never logged.
func WithLogger(l *logging.Logger) Option {
	return func(c *engineConfig) {
		c.logger = l
	}
}

// WithPasswordSource replaces the password generator used to build blake3
// keys. The source must return exactly length single-byte characters.
func WithPasswordSource(fn func(length int) (string, error)) Option {
	return func(c *engineConfig) {
		c.passwords = fn
	}
}

func defaultPasswordSource(length int) (string, error) {
	return passgen.Generate(length, passgen.AllClasses)
}
