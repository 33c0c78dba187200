package ecc

import (
	"crypto/rand"
	"io"

	"github.com/athanorlabs/go-ecc/logging"
)

// DefaultMaxSignAttempts bounds the number of nonces Sign draws before it
// gives up with ErrInvalidNonce.
const DefaultMaxSignAttempts = 64

// Config holds the optional knobs of a Curve. The zero value is ready to use.
type Config struct {
	// Rand is the entropy source for keys and nonces. It must be safe for
	// concurrent use. Nil selects crypto/rand.Reader.
	Rand io.Reader

	// Logger receives debug records about curve construction and retries.
	// Nil selects logging.New(nil).
	Logger logging.Logger

	// ConstantTime selects a constant-time arithmetic provider for curves
	// that have one (currently secp256k1). Other curves ignore it.
	ConstantTime bool

	// MaxSignAttempts bounds the retry loop of Sign. Values below 1 select
	// DefaultMaxSignAttempts.
	MaxSignAttempts int
}

func (c Config) withDefaults() Config {
	if c.Rand == nil {
		c.Rand = rand.Reader
	}
	if c.Logger == nil {
		c.Logger = logging.New(nil)
	}
	if c.MaxSignAttempts < 1 {
		c.MaxSignAttempts = DefaultMaxSignAttempts
	}
	return c
}
