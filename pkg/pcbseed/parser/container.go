// Package parser reads the subset of the OOXML spreadsheet format needed to
// pull typed cell values out of a workbook: package parts, the shared string
// table, the sheet manifest and worksheet rows.
package parser

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Well-known part names.
const (
	WorkbookPart      = "xl/workbook.xml"
	WorkbookRelsPart  = "xl/_rels/workbook.xml.rels"
	SharedStringsPart = "xl/sharedStrings.xml"
)

// Package is an opened zip-based OOXML container.
type Package struct {
	parts map[string]*zip.File
}

// OpenPackage opens raw package bytes.
func OpenPackage(data []byte) (*Package, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, newFormatError("", err)
	}

	parts := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		parts[strings.TrimPrefix(f.Name, "/")] = f
	}
	return &Package{parts: parts}, nil
}

// Has reports whether the named part exists.
func (p *Package) Has(name string) bool {
	return p.lookup(name) != nil
}

// Part returns the raw bytes of the named part.
func (p *Package) Part(name string) ([]byte, error) {
	f := p.lookup(name)
	if f == nil {
		return nil, newFormatError(name, ErrPartNotFound)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, newFormatError(name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, newFormatError(name, fmt.Errorf("read: %w", err))
	}
	return data, nil
}

// Names returns all part names in sorted order.
func (p *Package) Names() []string {
	names := make([]string, 0, len(p.parts))
	for name := range p.parts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lookup resolves a part name exactly, then case-insensitively (OPC part names are case-insensitive).
func (p *Package) lookup(name string) *zip.File {
	name = strings.TrimPrefix(name, "/")
	if f, ok := p.parts[name]; ok {
		return f
	}
	for partName, f := range p.parts {
		if strings.EqualFold(partName, name) {
			return f
		}
	}
	return nil
}
