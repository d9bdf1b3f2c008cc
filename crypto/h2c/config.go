package h2c

import (
	"github.com/pkg/errors"

	"github.com/eth2030/g2map/log"
)

// DefaultMaxSearchIterations bounds the try-and-increment root search. About
// half of all candidates succeed, so exhausting 1024 candidates has
// probability around 2^-1024.
const DefaultMaxSearchIterations = 1024

// Config holds the tunables of a Mapper.
type Config struct {
	// Digest selects the message digest. Defaults to sha256.
	Digest Digest
	// MaxSearchIterations caps the number of candidate x values tried before
	// Map gives up with ErrSearchExhausted.
	MaxSearchIterations int
	// LogLevel is the level of the mapper's logger: debug, info, warn or
	// error.
	LogLevel string
}

// DefaultConfig returns the default mapper configuration.
func DefaultConfig() Config {
	return Config{
		Digest:              DigestSHA256,
		MaxSearchIterations: DefaultMaxSearchIterations,
		LogLevel:            "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Digest.Size() == 0 {
		return errors.Wrapf(ErrUnknownDigest, "%q", string(c.Digest))
	}
	if c.MaxSearchIterations <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "max search iterations must be positive: %d", c.MaxSearchIterations)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "unknown log level %q", c.LogLevel)
	}
	return nil
}
