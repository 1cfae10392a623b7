// Package udf implements the ulid() callable: Init resolves the optional
// date argument and builds one identifier, Process hands that identifier
// back as text.
package udf

import (
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/weiawesome/wes-io-live/ulid-udf/internal/generator"
	"github.com/weiawesome/wes-io-live/ulid-udf/internal/resolver"
	"github.com/weiawesome/wes-io-live/ulid-udf/pkg/log"
)

// Returns is the result metadata declared to the host at Init.
type Returns struct {
	MaxLen    int  `json:"max_len"`
	MaybeNull bool `json:"maybe_null"`
	IsConst   bool `json:"is_const"`
}

// ReturnSpec is a non-null, fixed 26-byte string that must not be folded
// into a constant across rows.
var ReturnSpec = Returns{
	MaxLen:    generator.EncodedLength,
	MaybeNull: false,
	IsConst:   false,
}

// Function is the registered callable. It is stateless between invocations
// and safe for concurrent use; per-invocation state lives in Handle.
type Function struct {
	resolver  *resolver.Resolver
	generator *generator.Generator
}

// New creates a Function. Nil arguments select the defaults.
func New(r *resolver.Resolver, g *generator.Generator) *Function {
	if r == nil {
		r = resolver.New(nil)
	}
	if g == nil {
		g = generator.NewGenerator()
	}
	return &Function{resolver: r, generator: g}
}

// Returns reports the result metadata for the host.
func (f *Function) Returns() Returns {
	return ReturnSpec
}

// Init validates args, resolves the instant and builds the identifier that
// every Process call on the returned Handle will yield. Errors are
// *resolver.WrongArityError or resolver.ErrUnparseableDate; their messages
// are meant to be passed to the host unchanged.
func (f *Function) Init(ctx context.Context, args []resolver.Arg) (*Handle, error) {
	l := log.Ctx(ctx)

	instant, err := f.resolver.Resolve(args)
	if err != nil {
		l.Debug().Err(err).Int(log.FieldArity, len(args)).Msg("ulid init rejected")
		return nil, err
	}

	id, err := f.generator.New(instant)
	if err != nil {
		l.Error().Err(err).Msg("ulid generation failed")
		return nil, err
	}

	h := &Handle{id: id, encoded: generator.Encode(id)}
	l.Debug().
		Int(log.FieldArity, len(args)).
		Str(log.FieldDate, instant.String()).
		Str(log.FieldULID, h.encoded).
		Uint64(log.FieldTimestamp, id.Time()).
		Msg("ulid initialized")
	return h, nil
}

// Handle is the Ready state of one invocation.
type Handle struct {
	id      ulid.ULID
	encoded string
}

// Process returns the identifier built at Init. Repeated calls return the
// same string.
func (h *Handle) Process() string {
	return h.encoded
}

// ULID returns the identifier built at Init.
func (h *Handle) ULID() ulid.ULID {
	return h.id
}
