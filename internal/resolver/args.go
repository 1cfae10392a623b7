package resolver

// Kind tags which of the three argument states an Arg is in.
type Kind uint8

const (
	// KindAbsent means no argument was supplied at that position.
	KindAbsent Kind = iota
	// KindNull means an argument was supplied but its value is SQL NULL.
	KindNull
	// KindValue means an argument was supplied with a string payload.
	KindValue
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindValue:
		return "value"
	default:
		return "unknown"
	}
}

// Arg is a single call-time argument.
type Arg struct {
	kind  Kind
	value string
}

// AbsentArg returns an argument slot with nothing in it.
func AbsentArg() Arg { return Arg{kind: KindAbsent} }

// NullArg returns a present argument whose value is null.
func NullArg() Arg { return Arg{kind: KindNull} }

// ValueArg returns a present argument carrying s.
func ValueArg(s string) Arg { return Arg{kind: KindValue, value: s} }

// Kind reports the argument state.
func (a Arg) Kind() Kind { return a.kind }

// Value returns the payload and whether one is present.
func (a Arg) Value() (string, bool) {
	return a.value, a.kind == KindValue
}
