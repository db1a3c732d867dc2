package parser

import (
	"errors"
	"testing"
)

func TestOpenPackageInvalidBytes(t *testing.T) {
	_, err := OpenPackage([]byte("definitely not a zip"))
	if err == nil {
		t.Fatal("Expected error for non-zip input")
	}
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got %v", err)
	}
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("Expected *FormatError, got %T", err)
	}
	if fe.Part != "" {
		t.Errorf("Expected empty part for container error, got %q", fe.Part)
	}
}

func TestPackagePart(t *testing.T) {
	data := buildPackage(t, map[string]string{
		"xl/workbook.xml":     "<workbook/>",
		"xl/Worksheets/A.xml": "<worksheet/>",
	})
	pkg, err := OpenPackage(data)
	if err != nil {
		t.Fatalf("OpenPackage failed: %v", err)
	}

	tests := []struct {
		name     string
		expected string
		found    bool
	}{
		{"xl/workbook.xml", "<workbook/>", true},
		{"/xl/workbook.xml", "<workbook/>", true},
		{"xl/worksheets/a.xml", "<worksheet/>", true},
		{"xl/sharedStrings.xml", "", false},
	}

	for _, tt := range tests {
		if got := pkg.Has(tt.name); got != tt.found {
			t.Errorf("Has(%q) = %v, expected %v", tt.name, got, tt.found)
		}
		data, err := pkg.Part(tt.name)
		if !tt.found {
			if !errors.Is(err, ErrPartNotFound) || !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Part(%q) error = %v, expected ErrPartNotFound", tt.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Part(%q) failed: %v", tt.name, err)
			continue
		}
		if string(data) != tt.expected {
			t.Errorf("Part(%q) = %q, expected %q", tt.name, data, tt.expected)
		}
	}

	names := pkg.Names()
	if len(names) != 2 || names[0] != "xl/Worksheets/A.xml" || names[1] != "xl/workbook.xml" {
		t.Errorf("Names() = %v", names)
	}
}
