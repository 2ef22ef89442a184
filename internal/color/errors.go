package color

import (
	"errors"
	"fmt"
)

// ErrInvalidColor is matched by every error returned from Parse
var ErrInvalidColor = errors.New("invalid color")

// ParseError reports an input that matches no supported color grammar,
// or matches one but carries a malformed or out-of-range component.
type ParseError struct {
	Input  string // the string as given, untrimmed
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid color %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidColor
}

func parseErrorf(input, format string, a ...interface{}) *ParseError {
	return &ParseError{Input: input, Reason: fmt.Sprintf(format, a...)}
}
