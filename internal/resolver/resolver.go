// Package resolver turns the optional date argument of a ULID call into the
// instant that seeds the identifier.
package resolver

// MaxArgs is the largest argument count a call accepts.
const MaxArgs = 1

// Resolver maps an argument list to an Instant. It holds no mutable state
// and is safe for concurrent use.
type Resolver struct {
	parser DateParser
}

// New creates a Resolver. A nil parser selects DefaultDateParser.
func New(parser DateParser) *Resolver {
	if parser == nil {
		parser = DefaultDateParser()
	}
	return &Resolver{parser: parser}
}

// Resolve returns Now for no argument or a null one, the parsed time for a
// string argument, *WrongArityError for more than one argument, and
// ErrUnparseableDate when the string cannot be read as a date.
func (r *Resolver) Resolve(args []Arg) (Instant, error) {
	if len(args) > MaxArgs {
		return Instant{}, &WrongArityError{Got: len(args)}
	}
	if len(args) == 0 {
		return Now(), nil
	}

	arg := args[0]
	switch arg.Kind() {
	case KindAbsent, KindNull:
		return Now(), nil
	case KindValue:
		s, _ := arg.Value()
		t, err := r.parser.Parse(s)
		if err != nil {
			return Instant{}, ErrUnparseableDate
		}
		return At(t), nil
	default:
		return Instant{}, ErrUnparseableDate
	}
}
