package parser

import (
	"bytes"
	"encoding/xml"
	"path"
	"strings"
)

func newDecoder(data []byte) *xml.Decoder {
	return xml.NewDecoder(bytes.NewReader(data))
}

// attr returns the value of the first attribute with the given local name.
func attr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// readElementText consumes tokens up to the end of the current element and
// returns its character data, ignoring nested elements' markup.
func readElementText(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return sb.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return sb.String(), nil
}

// collectText consumes the current element and concatenates the text of every
// descendant element named local.
func collectText(decoder *xml.Decoder, local string) (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return sb.String(), err
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == local {
				text, err := readElementText(decoder)
				if err != nil {
					return sb.String(), err
				}
				sb.WriteString(text)
				continue
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return sb.String(), nil
}

// resolvePartPath converts a workbook relationship target to a package part path.
func resolvePartPath(target string) string {
	target = strings.ReplaceAll(target, "\\", "/")
	if strings.HasPrefix(target, "/") {
		return path.Clean(strings.TrimPrefix(target, "/"))
	}
	return path.Clean("xl/" + target)
}
