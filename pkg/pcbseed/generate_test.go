package pcbseed

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/output"
	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/sources"
)

var reference = time.Date(2025, 12, 1, 8, 30, 0, 0, time.UTC)

func buildWorkbook(t *testing.T, sheets map[string]map[string]interface{}, order ...string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("Failed to rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("Failed to create sheet %s: %v", name, err)
		}
		for cell, value := range sheets[name] {
			if err := f.SetCellValue(name, cell, value); err != nil {
				t.Fatalf("Failed to set %s!%s: %v", name, cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to write workbook: %v", err)
	}
	return buf.Bytes()
}

func atombergInput(t *testing.T) Input {
	data := buildWorkbook(t, map[string]map[string]interface{}{
		"Component Consumption": {
			"B1": "Row Labels", "C1": "Sum of Qty",
			"B2": "R1", "C2": 10,
			"B3": "NA", "C3": 4,
			"B4": "Grand Total", "C4": 14,
		},
		"PCB-Serial-No": {
			"C1": "Date", "D1": "Part Code", "F1": "Components",
			"C2": 45231, "D2": "PCB-A", "F2": "R1/R2",
			"C3": 45231, "D3": "PCB-A", "E3": "R1",
		},
	}, "Component Consumption", "PCB-Serial-No")
	return Input{Schema: sources.Atomberg(), Data: data}
}

func bajajInput(t *testing.T) Input {
	data := buildWorkbook(t, map[string]map[string]interface{}{
		"Master_Summary": {
			"B1": "Component", "D1": "Total",
			"B2": "Q1", "D2": 3,
			"B3": "-", "D3": 9,
		},
		"101": {
			"J1": "Part Code", "U1": "Components", "N1": "Date",
			"J2": "PCB-X", "U2": "Q1+Q2", "N2": "2023-11-05",
			"U3": "Q1", "N3": "not a date",
		},
	}, "Master_Summary", "101")
	return Input{Schema: sources.Bajaj(), Data: data}
}

func TestGenerateScenario(t *testing.T) {
	result, err := Generate([]Input{atombergInput(t), bajajInput(t)}, Options{ReferenceTime: reference})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	data := result.Seed

	expectedComponents := map[string]int64{"Q1": 5, "Q2": 1, "R1": 12, "R2": 1}
	if len(data.Components) != len(expectedComponents) {
		t.Fatalf("len(Components) = %d, expected %d", len(data.Components), len(expectedComponents))
	}
	for i, comp := range data.Components {
		if comp.CurrentStockQty != expectedComponents[comp.Name] {
			t.Errorf("%s quantity = %d, expected %d", comp.Name, comp.CurrentStockQty, expectedComponents[comp.Name])
		}
		if comp.CreatedAt != "2025-12-01T08:30:00Z" {
			t.Errorf("%s createdAt = %q", comp.Name, comp.CreatedAt)
		}
		if i > 0 && strings.ToLower(data.Components[i-1].Name) > strings.ToLower(comp.Name) {
			t.Errorf("Components not sorted: %q before %q", data.Components[i-1].Name, comp.Name)
		}
	}

	var pcbNames []string
	for _, pcb := range data.PCBs {
		pcbNames = append(pcbNames, pcb.Name)
	}
	if strings.Join(pcbNames, ",") != "101,PCB-A,PCB-X" {
		t.Errorf("PCB names = %v", pcbNames)
	}
	if len(data.ProductionEntries) != 3 {
		t.Errorf("len(ProductionEntries) = %d, expected 3", len(data.ProductionEntries))
	}
	if len(data.ConsumptionHistory) != 5 {
		t.Errorf("len(ConsumptionHistory) = %d, expected 5", len(data.ConsumptionHistory))
	}
	if len(data.ProcurementTriggers) != 0 {
		t.Errorf("ProcurementTriggers should be empty, got %v", data.ProcurementTriggers)
	}

	// Row 3 of sheet 101 carries an undecodable date.
	var fallback bool
	for _, rec := range data.ConsumptionHistory {
		if rec.PCBName == "101" && rec.Date == "2025-12-01T08:30:00Z" {
			fallback = true
		}
	}
	if !fallback {
		t.Error("Expected a consumption row dated at the reference time")
	}

	if result.Stats["atomberg"].DetailRows != 2 || result.Stats["bajaj"].DetailRows != 2 {
		t.Errorf("Unexpected stats: %+v", result.Stats)
	}
	if len(result.Warnings) != 1 {
		t.Errorf("Expected 1 warning, got %v", result.Warnings)
	}
}

func TestGenerateNoPlaceholderNames(t *testing.T) {
	result, err := Generate([]Input{atombergInput(t), bajajInput(t)}, Options{ReferenceTime: reference})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for _, comp := range result.Seed.Components {
		switch strings.ToLower(comp.Name) {
		case "", "na", "-", "none", "row labels", "grand total":
			t.Errorf("Placeholder component emitted: %q", comp.Name)
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	opts := Options{ReferenceTime: reference}

	first, err := Generate([]Input{atombergInput(t), bajajInput(t)}, opts)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := Generate([]Input{bajajInput(t), atombergInput(t)}, opts)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	a, err := output.ToJSON(first.Seed, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	b, err := output.ToJSON(second.Seed, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("Output differs between runs:\n%s\n---\n%s", a, b)
	}
	if first.RunID == second.RunID {
		t.Error("Each run should get its own run ID")
	}
}

func TestGenerateSourceErrors(t *testing.T) {
	broken := Input{Schema: sources.Schema{Name: "broken"}, Data: []byte("not a zip")}

	tests := []struct {
		name      string
		keepGoing bool
	}{
		{"abort", false},
		{"continue", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{ReferenceTime: reference, ContinueOnSourceError: tt.keepGoing}
			result, err := Generate([]Input{broken, atombergInput(t)}, opts)

			if !tt.keepGoing {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Fatalf("Generate error = %v, expected ErrInvalidFormat", err)
				}
				var srcErr *SourceError
				if !errors.As(err, &srcErr) || srcErr.Source != "broken" || srcErr.Stage != "open" {
					t.Errorf("Expected SourceError for broken/open, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			if len(result.SourceErrors) != 1 || !errors.Is(result.SourceErrors[0], ErrInvalidFormat) {
				t.Errorf("SourceErrors = %v", result.SourceErrors)
			}
			if len(result.Seed.Components) != 2 {
				t.Errorf("Expected the atomberg components only, got %d", len(result.Seed.Components))
			}
		})
	}
}

func TestGenerateEmpty(t *testing.T) {
	result, err := Generate(nil, DefaultOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	got, err := output.ToJSON(result.Seed, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	expected := `{"components":[],"pcbs":[],"productionEntries":[],"procurementTriggers":[],"consumptionHistory":[]}`
	if string(got) != expected {
		t.Errorf("ToJSON() = %s, expected %s", got, expected)
	}
}
