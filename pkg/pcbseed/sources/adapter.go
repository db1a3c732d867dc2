package sources

import (
	"strings"

	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/aggregate"
	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/parser"
)

// Record maps a summary row to its typed record.
func (s SummarySheet) Record(source string, row parser.Row) aggregate.SummaryRecord {
	return aggregate.SummaryRecord{
		Source: source,
		Sheet:  s.Sheet,
		Row:    row.Number,
		Name:   row.Get(s.NameColumn),
		Count:  row.Get(s.CountColumn),
	}
}

// Record maps a detail row of the given sheet to its typed record.
func (d DetailSheet) Record(source, sheet string, row parser.Row) aggregate.DetailRecord {
	pcb := row.Get(d.PCBColumn)
	if pcb == "" && d.PCBFromSheetName {
		pcb = strings.TrimSpace(sheet)
	}

	var components string
	for _, col := range d.ComponentColumns {
		if v := row.Get(col); v != "" {
			components = v
			break
		}
	}

	var date string
	if d.DateColumn != "" {
		date = row.Get(d.DateColumn)
	}

	return aggregate.DetailRecord{
		Source:     source,
		Sheet:      sheet,
		Row:        row.Number,
		PCB:        pcb,
		Components: components,
		DateHint:   date,
	}
}
