package generator

import (
	"encoding/hex"
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/weiawesome/wes-io-live/ulid-udf/internal/resolver"
)

const (
	// EncodedLength is the fixed length of an encoded ULID.
	EncodedLength = ulid.EncodedSize
	// Alphabet is Crockford's base32 without I, L, O and U.
	Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
)

// Timestamp returns the 48-bit millisecond timestamp for in. Pre-epoch
// instants clamp to zero and larger values keep only their low 48 bits.
func (g *Generator) Timestamp(in resolver.Instant) uint64 {
	ms := in.Time(g.clock).UnixMilli()
	if ms < 0 {
		return 0
	}
	return uint64(ms) & ulid.MaxTime()
}

// New builds a ULID for in with fresh entropy.
func (g *Generator) New(in resolver.Instant) (ulid.ULID, error) {
	id, err := ulid.New(g.Timestamp(in), g.entropy)
	if err != nil {
		return ulid.ULID{}, fmt.Errorf("failed to generate ULID: %w", err)
	}
	return id, nil
}

// Encode renders id as 26 uppercase Crockford base32 characters.
func Encode(id ulid.ULID) string {
	return id.String()
}

// Decode parses an encoded ULID, accepting either letter case.
func Decode(s string) (ulid.ULID, error) {
	if len(s) != EncodedLength {
		return ulid.ULID{}, fmt.Errorf("expected length %d, got %d", EncodedLength, len(s))
	}
	id, err := ulid.ParseStrict(s)
	if err != nil {
		return ulid.ULID{}, fmt.Errorf("invalid ULID format: %w", err)
	}
	return id, nil
}

// Validate reports whether s is a well-formed ULID and, if not, why.
func Validate(s string) (bool, string) {
	if _, err := Decode(s); err != nil {
		return false, err.Error()
	}
	return true, ""
}

// Parse decodes s into its timestamp and entropy fields.
func Parse(s string) (*ParseResult, error) {
	id, err := Decode(s)
	if err != nil {
		return nil, err
	}
	return Inspect(id), nil
}

// Inspect splits id into its fields.
func Inspect(id ulid.ULID) *ParseResult {
	return &ParseResult{
		ULID:          Encode(id),
		TimestampMs:   int64(id.Time()),
		Time:          ulid.Time(id.Time()).UTC(),
		RandomPayload: hex.EncodeToString(id.Entropy()),
	}
}
