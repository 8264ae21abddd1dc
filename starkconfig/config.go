// Package starkconfig carries configuration bounds for the polynomial
// core: minimum/maximum log-sizes, the blow-up factor separating a circle
// domain from its canonic trace, and which adapters back the consumed
// Channel/MerkleHasher/GrindOps contracts. The core's operations do not
// consult it; CheckLogSize and Validate are called explicitly.
package starkconfig

import (
	"fmt"

	"github.com/vybium/circle-stark-core/starkerr"
)

// Config holds the bounds and adapter names CheckLogSize and Validate
// check against.
type Config struct {
	// MinLogSize is the smallest log2(domain size) CheckLogSize accepts.
	MinLogSize uint32

	// MaxLogSize is the largest log2(domain size) CheckLogSize accepts.
	MaxLogSize uint32

	// BlowupFactorLog is log2 of the ratio between an evaluation domain's
	// size and the canonic trace it extends.
	BlowupFactorLog uint32

	// ChannelHash names the default Channel adapter's transcript hash
	// ("sha3" is the only adapter shipped).
	ChannelHash string

	// MerkleHash names the default MerkleHasher adapter's node hash
	// ("blake2b" is the only adapter shipped).
	MerkleHash string

	// ProofOfWorkBits is the default grinding difficulty passed to GrindOps.
	ProofOfWorkBits uint32
}

// DefaultConfig returns the bounds used throughout the core's own tests.
func DefaultConfig() *Config {
	return &Config{
		MinLogSize:      0,
		MaxLogSize:      28,
		BlowupFactorLog: 1,
		ChannelHash:     "sha3",
		MerkleHash:      "blake2b",
		ProofOfWorkBits: 0,
	}
}

// Validate reports the first violated bound, wrapped in the relevant
// starkerr.Code.
func (c *Config) Validate() error {
	if c.MinLogSize > c.MaxLogSize {
		return starkerr.New(starkerr.CodeLogSizeTooSmall,
			fmt.Sprintf("min log size %d exceeds max log size %d", c.MinLogSize, c.MaxLogSize))
	}
	if c.ChannelHash != "sha3" {
		return starkerr.New(starkerr.CodeUnknown, fmt.Sprintf("unsupported channel hash %q", c.ChannelHash))
	}
	if c.MerkleHash != "blake2b" {
		return starkerr.New(starkerr.CodeUnknown, fmt.Sprintf("unsupported merkle hash %q", c.MerkleHash))
	}
	return nil
}

// WithLogSizeBounds sets MinLogSize/MaxLogSize.
func (c *Config) WithLogSizeBounds(min, max uint32) *Config {
	c.MinLogSize, c.MaxLogSize = min, max
	return c
}

// WithBlowupFactorLog sets BlowupFactorLog.
func (c *Config) WithBlowupFactorLog(log uint32) *Config {
	c.BlowupFactorLog = log
	return c
}

// WithProofOfWorkBits sets ProofOfWorkBits.
func (c *Config) WithProofOfWorkBits(bits uint32) *Config {
	c.ProofOfWorkBits = bits
	return c
}

// CheckLogSize validates a log-size argument against the configured bounds.
func (c *Config) CheckLogSize(logSize uint32) error {
	if logSize < c.MinLogSize {
		return starkerr.New(starkerr.CodeLogSizeTooSmall,
			fmt.Sprintf("log size %d below minimum %d", logSize, c.MinLogSize))
	}
	if logSize > c.MaxLogSize {
		return starkerr.New(starkerr.CodeLogSizeTooSmall,
			fmt.Sprintf("log size %d above maximum %d", logSize, c.MaxLogSize))
	}
	return nil
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
