package aggregate

import "fmt"

// WarningKind classifies a non-fatal ingestion issue.
type WarningKind string

const (
	// WarnNonNumericCount marks a summary count that could not be parsed and was treated as zero.
	WarnNonNumericCount WarningKind = "non_numeric_count"
	// WarnDateFallback marks a detail row whose date hint fell back to the reference time.
	WarnDateFallback WarningKind = "date_fallback"
	// WarnMissingSheet marks an expected sheet absent from a workbook.
	WarnMissingSheet WarningKind = "missing_sheet"
)

// Warning is a non-fatal issue surfaced instead of silently defaulting.
type Warning struct {
	Kind   WarningKind `json:"kind"`
	Source string      `json:"source"`
	Sheet  string      `json:"sheet"`
	Row    int         `json:"row,omitempty"`
	Value  string      `json:"value,omitempty"`
}

func (w Warning) String() string {
	if w.Row > 0 {
		return fmt.Sprintf("%s: %s/%s row %d (%q)", w.Kind, w.Source, w.Sheet, w.Row, w.Value)
	}
	return fmt.Sprintf("%s: %s/%s", w.Kind, w.Source, w.Sheet)
}
