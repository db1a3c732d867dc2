package parser

import (
	"encoding/xml"
	"io"
)

// SharedStrings is the workbook's shared string table, indexed from zero.
type SharedStrings []string

// At returns the string at index i, or "" when i is out of range.
func (s SharedStrings) At(i int) string {
	if i < 0 || i >= len(s) {
		return ""
	}
	return s[i]
}

// ParseSharedStrings parses the shared-strings part. Each string item becomes
// one entry holding the concatenation of all its text runs.
func ParseSharedStrings(data []byte) (SharedStrings, error) {
	var result SharedStrings

	decoder := newDecoder(data)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, newFormatError(SharedStringsPart, err)
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "si" {
			text, err := collectText(decoder, "t")
			if err != nil {
				return nil, newFormatError(SharedStringsPart, err)
			}
			result = append(result, text)
		}
	}

	return result, nil
}
