package parser

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

// Row is one non-empty worksheet row.
type Row struct {
	// Number is the 1-based row number.
	Number int
	// Cells maps column letters (e.g. "C") to trimmed, non-empty values.
	Cells map[string]string
}

// Get returns the value in the given column, or "".
func (r Row) Get(column string) string {
	return r.Cells[column]
}

// ReadRows parses the worksheet part at partPath in document order. Cells are
// resolved against shared; empty cells and rows without any value are skipped.
func ReadRows(data []byte, partPath string, shared SharedStrings) ([]Row, error) {
	var result []Row

	decoder := newDecoder(data)
	lastRow := 0
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, newFormatError(partPath, err)
		}

		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "row" {
			continue
		}

		number := lastRow + 1
		if n, err := strconv.Atoi(attr(se, "r")); err == nil && n > 0 {
			number = n
		}
		lastRow = number

		cells, err := parseRow(decoder, shared)
		if err != nil {
			return nil, newFormatError(partPath, err)
		}
		if len(cells) > 0 {
			result = append(result, Row{Number: number, Cells: cells})
		}
	}

	return result, nil
}

// parseRow consumes a row element and returns its non-empty cells.
func parseRow(decoder *xml.Decoder, shared SharedStrings) (map[string]string, error) {
	cells := make(map[string]string)
	lastCol := 0
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local != "c" {
				depth++
				continue
			}
			column := ColumnLetters(attr(t, "r"))
			if column == "" {
				column = ColumnName(lastCol + 1)
			}
			lastCol = ColumnNumber(column)

			value, err := parseCell(decoder, attr(t, "t"), shared)
			if err != nil {
				return nil, err
			}
			if value = strings.TrimSpace(value); value != "" {
				cells[column] = value
			}
		case xml.EndElement:
			depth--
		}
	}
	return cells, nil
}

// parseCell consumes a c element and resolves its value by declared type:
// shared-string index, inline string, or the raw v text.
func parseCell(decoder *xml.Decoder, cellType string, shared SharedStrings) (string, error) {
	var raw, inline string
	var hasInline bool

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return "", err
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "v":
				if raw, err = readElementText(decoder); err != nil {
					return "", err
				}
			case "is":
				if inline, err = collectText(decoder, "t"); err != nil {
					return "", err
				}
				hasInline = true
			default:
				depth++
			}
		case xml.EndElement:
			depth--
		}
	}

	switch {
	case cellType == "s" && isDigits(raw):
		idx, err := strconv.Atoi(raw)
		if err != nil {
			return "", nil
		}
		return shared.At(idx), nil
	case cellType == "inlineStr":
		if hasInline {
			return inline, nil
		}
		return "", nil
	default:
		return raw, nil
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
