package sources

import (
	"fmt"

	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/aggregate"
	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/parser"
)

// Stats counts rows read and rows that contributed during ingestion of one workbook.
type Stats struct {
	SheetsRead  int
	RowsRead    int
	SummaryRows int
	DetailRows  int
	SkippedRows int
}

// Ingest feeds every summary sheet, then every detail sheet, of wb into c.
// All sheets are read before any row is aggregated, so a read error leaves c
// untouched. Expected sheets missing from the workbook produce a warning and no rows.
func Ingest(c *aggregate.Context, wb *parser.Workbook, schema Schema) (Stats, error) {
	var stats Stats
	var summaries []aggregate.SummaryRecord
	var details []aggregate.DetailRecord
	var missing []aggregate.Warning

	for _, sum := range schema.Summaries {
		rows, ok, err := readSheet(wb, sum.Sheet)
		if err != nil {
			return Stats{}, err
		}
		if !ok {
			missing = append(missing, missingSheet(schema.Name, sum.Sheet))
			continue
		}
		stats.SheetsRead++
		for _, row := range rows {
			summaries = append(summaries, sum.Record(schema.Name, row))
		}
	}

	for _, det := range schema.Details {
		sheets := det.Sheets(wb.SheetNames())
		if det.Pattern != "" && len(sheets) == 0 {
			missing = append(missing, missingSheet(schema.Name, det.Pattern))
		}
		for _, sheet := range sheets {
			rows, ok, err := readSheet(wb, sheet)
			if err != nil {
				return Stats{}, err
			}
			if !ok {
				missing = append(missing, missingSheet(schema.Name, sheet))
				continue
			}
			stats.SheetsRead++
			for _, row := range rows {
				details = append(details, det.Record(schema.Name, sheet, row))
			}
		}
	}

	for _, w := range missing {
		c.Warn(w)
	}
	for _, rec := range summaries {
		stats.RowsRead++
		if c.AddSummary(rec) {
			stats.SummaryRows++
		} else {
			stats.SkippedRows++
		}
	}
	for _, rec := range details {
		stats.RowsRead++
		if c.AddDetail(rec) {
			stats.DetailRows++
		} else {
			stats.SkippedRows++
		}
	}

	return stats, nil
}

func readSheet(wb *parser.Workbook, sheet string) ([]parser.Row, bool, error) {
	if !wb.HasSheet(sheet) {
		return nil, false, nil
	}
	rows, err := wb.ReadSheet(sheet)
	if err != nil {
		return nil, false, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, true, nil
}

func missingSheet(source, sheet string) aggregate.Warning {
	return aggregate.Warning{Kind: aggregate.WarnMissingSheet, Source: source, Sheet: sheet}
}
