package pep

import (
	"errors"
	"fmt"
)

// ErrMissingField is wrapped by a ParseError when a required header field
// is absent.
var ErrMissingField = errors.New("missing header field")

// ParseError reports a PEP whose header couldn't be turned into metadata.
type ParseError struct {
	Path  string
	Field string // empty when the header block itself is malformed
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	switch {
	case e.Field == "":
		return fmt.Sprintf("%s: bad header: %v", e.Path, e.Err)
	case e.Value == "":
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Field, e.Err)
	default:
		return fmt.Sprintf("%s: %s %q: %v", e.Path, e.Field, e.Value, e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
