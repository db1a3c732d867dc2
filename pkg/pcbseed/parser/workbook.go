package parser

// Workbook is an opened package with its shared strings and sheet manifest resolved.
type Workbook struct {
	pkg      *Package
	strings  SharedStrings
	manifest *Manifest
}

// OpenWorkbook opens raw workbook bytes. The workbook part and its relationship
// part are required; the shared-strings part is optional.
func OpenWorkbook(data []byte) (*Workbook, error) {
	pkg, err := OpenPackage(data)
	if err != nil {
		return nil, err
	}

	var shared SharedStrings
	if pkg.Has(SharedStringsPart) {
		raw, err := pkg.Part(SharedStringsPart)
		if err != nil {
			return nil, err
		}
		if shared, err = ParseSharedStrings(raw); err != nil {
			return nil, err
		}
	}

	workbookXML, err := pkg.Part(WorkbookPart)
	if err != nil {
		return nil, err
	}
	relsXML, err := pkg.Part(WorkbookRelsPart)
	if err != nil {
		return nil, err
	}
	manifest, err := ParseManifest(workbookXML, relsXML)
	if err != nil {
		return nil, err
	}

	return &Workbook{pkg: pkg, strings: shared, manifest: manifest}, nil
}

// SheetNames returns sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.manifest.SheetNames()
}

// HasSheet reports whether the workbook declares the sheet.
func (w *Workbook) HasSheet(name string) bool {
	_, ok := w.manifest.PartPath(name)
	return ok
}

// PartPath returns the worksheet part backing a sheet.
func (w *Workbook) PartPath(name string) (string, bool) {
	return w.manifest.PartPath(name)
}

// SharedStrings returns the workbook's shared string table.
func (w *Workbook) SharedStrings() SharedStrings {
	return w.strings
}

// ReadSheet returns the non-empty rows of a sheet. An undeclared sheet yields
// no rows and no error; a declared sheet whose part is missing is a FormatError.
func (w *Workbook) ReadSheet(name string) ([]Row, error) {
	partPath, ok := w.manifest.PartPath(name)
	if !ok {
		return nil, nil
	}
	data, err := w.pkg.Part(partPath)
	if err != nil {
		return nil, err
	}
	return ReadRows(data, partPath, w.strings)
}
