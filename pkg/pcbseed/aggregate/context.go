package aggregate

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ukaji3/pcbseed-go/pkg/utils"
)

// Header and footer labels that appear in the name column of summary sheets.
var summaryLabelPrefixes = []string{"row labels", "grand"}

var summaryLabels = []string{"component"}

// Header label that appears in the PCB column of detail sheets.
const pcbHeaderPrefix = "part code"

// SummaryRecord is one row of a summary-style sheet: a component and its pre-aggregated count.
type SummaryRecord struct {
	Source string
	Sheet  string
	Row    int
	Name   string
	Count  string
}

// DetailRecord is one row of a detail-style sheet: a production unit for a PCB.
type DetailRecord struct {
	Source     string
	Sheet      string
	Row        int
	PCB        string
	Components string
	DateHint   string
}

// Context is the aggregation state of a single run. It is created per run,
// fed by one goroutine, and read by the builder once accumulation is done.
type Context struct {
	Components *Aggregator
	Ledger     *Ledger

	reference time.Time
	logger    *zap.Logger
	warnings  []Warning
}

// NewContext creates an aggregation context. reference is the run's processing
// instant, used when a date hint cannot be decoded.
func NewContext(reference time.Time, logger *zap.Logger) *Context {
	return &Context{
		Components: NewAggregator(),
		Ledger:     NewLedger(),
		reference:  reference.UTC(),
		logger:     utils.OrNop(logger),
	}
}

// Reference returns the run's reference time.
func (c *Context) Reference() time.Time {
	return c.reference
}

// Warnings returns the warnings collected so far.
func (c *Context) Warnings() []Warning {
	return append([]Warning(nil), c.warnings...)
}

// Warn records a non-fatal warning.
func (c *Context) Warn(w Warning) {
	c.warnings = append(c.warnings, w)
	c.logger.Warn("ingestion warning",
		zap.String("kind", string(w.Kind)),
		zap.String("source", w.Source),
		zap.String("sheet", w.Sheet),
		zap.Int("row", w.Row),
		zap.String("value", w.Value),
	)
}

// AddSummary folds a summary row into the component totals. It reports whether
// the row contributed.
func (c *Context) AddSummary(rec SummaryRecord) bool {
	name := strings.TrimSpace(rec.Name)
	if name == "" || isSummaryLabel(name) || IsPlaceholder(name) {
		c.logger.Debug("summary row skipped",
			zap.String("sheet", rec.Sheet), zap.Int("row", rec.Row), zap.String("name", name))
		return false
	}

	count := decimal.Zero
	if raw := strings.TrimSpace(rec.Count); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			c.Warn(Warning{Kind: WarnNonNumericCount, Source: rec.Source, Sheet: rec.Sheet, Row: rec.Row, Value: raw})
		} else {
			count = parsed
		}
	}

	if !count.IsPositive() {
		return false
	}
	c.Components.Add(name, count)
	return true
}

// AddDetail books a detail row: component occurrences, bill of materials,
// production count and dated consumption. It reports whether the row contributed.
func (c *Context) AddDetail(rec DetailRecord) bool {
	pcb := strings.TrimSpace(rec.PCB)
	if pcb == "" || strings.HasPrefix(strings.ToLower(pcb), pcbHeaderPrefix) {
		c.logger.Debug("detail row skipped",
			zap.String("sheet", rec.Sheet), zap.Int("row", rec.Row), zap.String("pcb", pcb))
		return false
	}

	components := SplitComponents(rec.Components)
	if len(components) == 0 {
		return false
	}

	date := c.resolveDate(rec)
	for _, comp := range components {
		c.Components.Increment(comp)
	}
	c.Ledger.Record(pcb, date, components)
	return true
}

func (c *Context) resolveDate(rec DetailRecord) string {
	if t, ok := ParseDateHint(rec.DateHint); ok {
		return FormatTimestamp(t)
	}
	c.Warn(Warning{Kind: WarnDateFallback, Source: rec.Source, Sheet: rec.Sheet, Row: rec.Row, Value: rec.DateHint})
	return FormatTimestamp(c.reference)
}

func isSummaryLabel(name string) bool {
	lower := strings.ToLower(name)
	for _, prefix := range summaryLabelPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	for _, label := range summaryLabels {
		if lower == label {
			return true
		}
	}
	return false
}
