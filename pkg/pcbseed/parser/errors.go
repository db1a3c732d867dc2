package parser

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat indicates the input bytes are not a readable OOXML package.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrPartNotFound indicates a required package part is absent.
var ErrPartNotFound = errors.New("package part not found")

// FormatError reports a failure to decode the package or one of its parts.
type FormatError struct {
	Part string // empty when the container itself is unreadable
	Err  error
}

func (e *FormatError) Error() string {
	if e.Part == "" {
		return fmt.Sprintf("format error: %v", e.Err)
	}
	return fmt.Sprintf("format error in part %q: %v", e.Part, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is reports every FormatError as ErrInvalidFormat so callers can test with a single sentinel.
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

func newFormatError(part string, err error) *FormatError {
	return &FormatError{Part: part, Err: err}
}
