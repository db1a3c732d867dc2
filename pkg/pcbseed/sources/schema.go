// Package sources maps each workbook's sheet and column layout onto the typed
// records consumed by the aggregation stage.
package sources

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/parser"
)

// SummarySheet describes a sheet with one row per component and a pre-aggregated count.
type SummarySheet struct {
	Sheet       string `yaml:"sheet"`
	NameColumn  string `yaml:"name_column"`
	CountColumn string `yaml:"count_column"`
}

// DetailSheet describes sheets with one row per production unit. Either Sheet
// names a single sheet or Pattern selects every sheet whose full name matches.
type DetailSheet struct {
	Sheet   string   `yaml:"sheet,omitempty"`
	Pattern string   `yaml:"pattern,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`

	PCBColumn string `yaml:"pcb_column"`
	// ComponentColumns are tried in order; the first non-empty value is used.
	ComponentColumns []string `yaml:"component_columns"`
	DateColumn       string   `yaml:"date_column"`
	// PCBFromSheetName uses the sheet name when the PCB column is empty.
	PCBFromSheetName bool `yaml:"pcb_from_sheet_name,omitempty"`
}

// Schema is the sheet contract of one source workbook.
type Schema struct {
	Name      string         `yaml:"name"`
	Summaries []SummarySheet `yaml:"summaries"`
	Details   []DetailSheet  `yaml:"details"`
}

// IsZero reports whether the schema declares no sheets.
func (s Schema) IsZero() bool {
	return len(s.Summaries) == 0 && len(s.Details) == 0
}

// Validate checks column letters and sheet selectors.
func (s Schema) Validate() error {
	for i, sum := range s.Summaries {
		if sum.Sheet == "" {
			return fmt.Errorf("schema %s: summary %d: sheet is required", s.Name, i)
		}
		for _, col := range []string{sum.NameColumn, sum.CountColumn} {
			if !isColumn(col) {
				return fmt.Errorf("schema %s: summary %q: invalid column %q", s.Name, sum.Sheet, col)
			}
		}
	}
	for i, det := range s.Details {
		if (det.Sheet == "") == (det.Pattern == "") {
			return fmt.Errorf("schema %s: detail %d: exactly one of sheet or pattern is required", s.Name, i)
		}
		if det.Pattern != "" {
			if _, err := det.compile(); err != nil {
				return fmt.Errorf("schema %s: detail %d: invalid pattern: %w", s.Name, i, err)
			}
		}
		if len(det.ComponentColumns) == 0 {
			return fmt.Errorf("schema %s: detail %d: at least one component column is required", s.Name, i)
		}
		cols := append([]string{det.PCBColumn}, det.ComponentColumns...)
		if det.DateColumn != "" {
			cols = append(cols, det.DateColumn)
		}
		for _, col := range cols {
			if !isColumn(col) {
				return fmt.Errorf("schema %s: detail %d: invalid column %q", s.Name, i, col)
			}
		}
	}
	return nil
}

// Sheets returns the workbook sheets this detail definition selects, in workbook order.
func (d DetailSheet) Sheets(names []string) []string {
	if d.Sheet != "" {
		return []string{d.Sheet}
	}
	re, err := d.compile()
	if err != nil {
		return nil
	}

	var out []string
	for _, name := range names {
		if re.MatchString(name) && !d.excluded(name) {
			out = append(out, name)
		}
	}
	return out
}

func (d DetailSheet) compile() (*regexp.Regexp, error) {
	return regexp.Compile(`^(?:` + d.Pattern + `)$`)
}

func (d DetailSheet) excluded(name string) bool {
	for _, ex := range d.Exclude {
		if ex == name {
			return true
		}
	}
	return false
}

func isColumn(col string) bool {
	return col != "" && parser.ColumnLetters(col) == col && strings.ToUpper(col) == col
}
