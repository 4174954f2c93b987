package compile

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidNumber        = errors.New("invalid number")
	ErrInvalidOperator      = errors.New("invalid operator")
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
)

// ParseError reports where parsing stopped. Kind is one of the sentinel
// errors above, so callers can match with errors.Is.
type ParseError struct {
	Kind  error
	Token string
	// Pos is the zero-based index of the offending token. For
	// ErrUnexpectedEndOfInput it is the number of tokens read.
	Pos int
}

func (e *ParseError) Error() string {
	if errors.Is(e.Kind, ErrUnexpectedEndOfInput) {
		return fmt.Sprintf("%s after %d tokens", e.Kind, e.Pos)
	}
	return fmt.Sprintf("%s: %q at token %d", e.Kind, e.Token, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
