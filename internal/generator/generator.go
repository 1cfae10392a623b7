// Package generator builds ULIDs from resolved instants and decodes them
// back into their timestamp and entropy fields.
package generator

import (
	"crypto/rand"
	"io"
	"time"
)

// ParseResult holds the fields decoded from a ULID.
type ParseResult struct {
	ULID          string    // canonical uppercase encoding
	TimestampMs   int64     // absolute unix ms
	Time          time.Time // TimestampMs as UTC time
	RandomPayload string    // hex-encoded 80-bit entropy
}

// Option configures a Generator.
type Option func(*Generator)

// WithEntropy sets the randomness source. It must be safe for concurrent
// reads if the Generator is shared.
func WithEntropy(r io.Reader) Option {
	return func(g *Generator) { g.entropy = r }
}

// WithClock sets the clock used to resolve "now" instants.
func WithClock(clock func() time.Time) Option {
	return func(g *Generator) { g.clock = clock }
}

// Generator creates ULIDs. It keeps no per-ID state, so one Generator can
// serve any number of independent invocations.
type Generator struct {
	entropy io.Reader
	clock   func() time.Time
}

// NewGenerator creates a Generator reading entropy from crypto/rand.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		entropy: rand.Reader,
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
