package parser

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestOpenWorkbookFromExcelize(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Master_Summary"); err != nil {
		t.Fatalf("Failed to rename sheet: %v", err)
	}
	if _, err := f.NewSheet("101"); err != nil {
		t.Fatalf("Failed to create sheet: %v", err)
	}
	f.SetCellValue("Master_Summary", "B1", "Component")
	f.SetCellValue("Master_Summary", "D1", "Count")
	f.SetCellValue("Master_Summary", "B2", "R1")
	f.SetCellValue("Master_Summary", "D2", 12)
	f.SetCellValue("101", "J3", "PCB-A")
	f.SetCellValue("101", "U3", "R1/R2")
	f.SetCellValue("101", "N3", 45231)

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to write workbook: %v", err)
	}

	wb, err := OpenWorkbook(buf.Bytes())
	if err != nil {
		t.Fatalf("OpenWorkbook failed: %v", err)
	}

	names := wb.SheetNames()
	if len(names) != 2 || names[0] != "Master_Summary" || names[1] != "101" {
		t.Errorf("SheetNames() = %v", names)
	}

	rows, err := wb.ReadSheet("Master_Summary")
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[1].Number != 2 || rows[1].Get("B") != "R1" || rows[1].Get("D") != "12" {
		t.Errorf("Unexpected summary row: %+v", rows[1])
	}

	rows, err = wb.ReadSheet("101")
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.Number != 3 || row.Get("J") != "PCB-A" || row.Get("U") != "R1/R2" || row.Get("N") != "45231" {
		t.Errorf("Unexpected detail row: %+v", row)
	}
}

func TestOpenWorkbookWithoutSharedStrings(t *testing.T) {
	data := buildPackage(t, map[string]string{
		WorkbookPart:               "<workbook " + nsMain + " " + nsRel + "><sheets><sheet name=\"Data\" sheetId=\"1\" r:id=\"rId1\"/></sheets></workbook>",
		WorkbookRelsPart:           relsXML("worksheets/sheet1.xml"),
		"xl/worksheets/sheet1.xml": sheetXML(`<row r="2"><c r="B2" t="inlineStr"><is><t>X</t></is></c><c r="C2"><v>3</v></c></row>`),
	})

	wb, err := OpenWorkbook(data)
	if err != nil {
		t.Fatalf("OpenWorkbook failed: %v", err)
	}
	if len(wb.SharedStrings()) != 0 {
		t.Errorf("Expected empty shared strings, got %v", wb.SharedStrings())
	}

	rows, err := wb.ReadSheet("Data")
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Get("B") != "X" || rows[0].Get("C") != "3" {
		t.Errorf("Unexpected rows: %+v", rows)
	}
}

func TestReadSheetMissing(t *testing.T) {
	data := buildPackage(t, map[string]string{
		WorkbookPart:               workbookXML("Data", "Ghost"),
		WorkbookRelsPart:           relsXML("worksheets/sheet1.xml", "worksheets/sheet2.xml"),
		SharedStringsPart:          sharedStringsXML("a"),
		"xl/worksheets/sheet1.xml": sheetXML(`<row r="1"><c r="A1" t="s"><v>0</v></c></row>`),
	})

	wb, err := OpenWorkbook(data)
	if err != nil {
		t.Fatalf("OpenWorkbook failed: %v", err)
	}

	rows, err := wb.ReadSheet("Nope")
	if err != nil || rows != nil {
		t.Errorf("ReadSheet(undeclared) = (%v, %v), expected (nil, nil)", rows, err)
	}
	if wb.HasSheet("Nope") {
		t.Error("HasSheet(undeclared) = true")
	}

	// Declared but the worksheet part is absent from the package.
	_, err = wb.ReadSheet("Ghost")
	if !errors.Is(err, ErrPartNotFound) {
		t.Errorf("ReadSheet(Ghost) error = %v, expected ErrPartNotFound", err)
	}
}

func TestOpenWorkbookMissingRequiredParts(t *testing.T) {
	tests := []struct {
		name  string
		parts map[string]string
		part  string
	}{
		{
			name:  "no workbook",
			parts: map[string]string{WorkbookRelsPart: relsXML()},
			part:  WorkbookPart,
		},
		{
			name:  "no rels",
			parts: map[string]string{WorkbookPart: workbookXML()},
			part:  WorkbookRelsPart,
		},
	}

	for _, tt := range tests {
		_, err := OpenWorkbook(buildPackage(t, tt.parts))
		if !errors.Is(err, ErrPartNotFound) {
			t.Errorf("%s: error = %v, expected ErrPartNotFound", tt.name, err)
			continue
		}
		var fe *FormatError
		if !errors.As(err, &fe) || fe.Part != tt.part {
			t.Errorf("%s: expected FormatError for part %q, got %v", tt.name, tt.part, err)
		}
	}
}
