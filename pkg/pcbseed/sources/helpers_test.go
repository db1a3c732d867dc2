package sources

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/parser"
	"github.com/xuri/excelize/v2"
)

type sheetFixture struct {
	name  string
	cells map[string]interface{}
}

// openFixture writes the sheets with excelize and opens the result with parser.OpenWorkbook.
func openFixture(t *testing.T, sheets ...sheetFixture) *parser.Workbook {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.name); err != nil {
				t.Fatalf("Failed to rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(sheet.name); err != nil {
			t.Fatalf("Failed to create sheet %s: %v", sheet.name, err)
		}
		for cell, value := range sheet.cells {
			if err := f.SetCellValue(sheet.name, cell, value); err != nil {
				t.Fatalf("Failed to set %s!%s: %v", sheet.name, cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to write workbook: %v", err)
	}
	wb, err := parser.OpenWorkbook(buf.Bytes())
	if err != nil {
		t.Fatalf("OpenWorkbook failed: %v", err)
	}
	return wb
}

// zipParts builds a package from raw parts, for layouts excelize will not produce.
func zipParts(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("Failed to create part %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write part %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return buf.Bytes()
}
