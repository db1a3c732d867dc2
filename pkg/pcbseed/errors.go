package pcbseed

import (
	"fmt"

	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/parser"
)

// ErrInvalidFormat indicates a source is not a valid xlsx package.
var ErrInvalidFormat = parser.ErrInvalidFormat

// ErrPartNotFound indicates a required package part is missing.
var ErrPartNotFound = parser.ErrPartNotFound

// SourceError represents a failure while processing one source workbook.
type SourceError struct {
	Source string
	Stage  string // "open", "ingest"
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %q (%s): %v", e.Source, e.Stage, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a new SourceError.
func NewSourceError(source, stage string, err error) *SourceError {
	return &SourceError{
		Source: source,
		Stage:  stage,
		Err:    err,
	}
}
