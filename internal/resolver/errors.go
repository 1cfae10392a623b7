package resolver

import (
	"errors"
	"fmt"
)

// ErrUnparseableDate is returned when a supplied date string has no
// interpretation the date parser accepts.
var ErrUnparseableDate = errors.New("unable to parse date format")

// WrongArityError reports a call with more arguments than accepted.
type WrongArityError struct {
	Got int
}

func (e *WrongArityError) Error() string {
	return fmt.Sprintf("expected 0 or 1 argument; got %d", e.Got)
}
