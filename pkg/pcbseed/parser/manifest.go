package parser

import (
	"encoding/xml"
	"io"
)

// Manifest maps sheet names to worksheet part paths, in workbook order.
type Manifest struct {
	names []string
	paths map[string]string
}

// ParseManifest resolves sheet names to part paths from the workbook part and
// its relationship part. Sheets whose relationship cannot be resolved are left out.
func ParseManifest(workbookXML, relsXML []byte) (*Manifest, error) {
	type sheetRef struct {
		name string
		rID  string
	}

	var refs []sheetRef
	decoder := newDecoder(workbookXML)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, newFormatError(WorkbookPart, err)
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			name := attr(se, "name")
			rID := attr(se, "id")
			if name != "" && rID != "" {
				refs = append(refs, sheetRef{name: name, rID: rID})
			}
		}
	}

	targets := make(map[string]string) // rId -> target
	decoder = newDecoder(relsXML)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, newFormatError(WorkbookRelsPart, err)
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			if id, target := attr(se, "Id"), attr(se, "Target"); id != "" && target != "" {
				targets[id] = target
			}
		}
	}

	m := &Manifest{paths: make(map[string]string, len(refs))}
	for _, ref := range refs {
		target, ok := targets[ref.rID]
		if !ok {
			continue
		}
		if _, dup := m.paths[ref.name]; !dup {
			m.names = append(m.names, ref.name)
		}
		m.paths[ref.name] = resolvePartPath(target)
	}
	return m, nil
}

// SheetNames returns the sheet names in workbook order.
func (m *Manifest) SheetNames() []string {
	return append([]string(nil), m.names...)
}

// PartPath returns the worksheet part for a sheet. A missing sheet is reported
// through ok rather than an error.
func (m *Manifest) PartPath(sheet string) (string, bool) {
	p, ok := m.paths[sheet]
	return p, ok
}
