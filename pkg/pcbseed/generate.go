package pcbseed

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/aggregate"
	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/models"
	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/parser"
	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/seed"
	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/sources"
)

// Input is one source workbook and the schema describing its sheets.
type Input struct {
	Schema sources.Schema
	Data   []byte
}

// Result is the outcome of a generation run.
type Result struct {
	// RunID uniquely identifies the run in logs and persisted stores.
	RunID string
	// Seed is the generated dataset.
	Seed *models.SeedData
	// Stats holds per-source ingestion counts, keyed by source name.
	Stats map[string]sources.Stats
	// Warnings lists non-fatal issues found while reading the sources.
	Warnings []aggregate.Warning
	// SourceErrors lists sources skipped under ContinueOnSourceError.
	SourceErrors []error
}

// Generate reads every input, aggregates them into one context and builds the
// seed dataset. Inputs are processed in order; identifiers depend only on the
// aggregated content, never on input order.
func Generate(inputs []Input, opts Options) (*Result, error) {
	runID := uuid.NewString()
	logger := opts.logger().With(zap.String("run_id", runID))
	reference := opts.reference()

	result := &Result{
		RunID: runID,
		Stats: make(map[string]sources.Stats, len(inputs)),
	}
	ctx := aggregate.NewContext(reference, logger)

	for _, in := range inputs {
		name := in.Schema.Name
		stats, err := ingest(ctx, in)
		if err != nil {
			if !opts.ContinueOnSourceError {
				return nil, err
			}
			logger.Warn("source skipped", zap.String("source", name), zap.Error(err))
			result.SourceErrors = append(result.SourceErrors, err)
			continue
		}
		result.Stats[name] = stats
		logger.Info("source ingested",
			zap.String("source", name),
			zap.Int("sheets", stats.SheetsRead),
			zap.Int("rows", stats.RowsRead),
			zap.Int("summary_rows", stats.SummaryRows),
			zap.Int("detail_rows", stats.DetailRows),
		)
	}

	result.Seed = seed.Build(ctx, reference)
	result.Warnings = ctx.Warnings()

	logger.Info("seed generated",
		zap.Int("components", len(result.Seed.Components)),
		zap.Int("pcbs", len(result.Seed.PCBs)),
		zap.Int("production_entries", len(result.Seed.ProductionEntries)),
		zap.Int("consumption_records", len(result.Seed.ConsumptionHistory)),
		zap.Int("warnings", len(result.Warnings)),
	)
	return result, nil
}

func ingest(ctx *aggregate.Context, in Input) (sources.Stats, error) {
	wb, err := parser.OpenWorkbook(in.Data)
	if err != nil {
		return sources.Stats{}, NewSourceError(in.Schema.Name, "open", err)
	}
	stats, err := sources.Ingest(ctx, wb, in.Schema)
	if err != nil {
		return stats, NewSourceError(in.Schema.Name, "ingest", err)
	}
	return stats, nil
}
