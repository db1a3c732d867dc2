// Package pcbseed derives a normalized inventory seed dataset from component
// consumption workbooks.
package pcbseed

import (
	"time"

	"go.uber.org/zap"

	"github.com/ukaji3/pcbseed-go/pkg/utils"
)

// Options configures a generation run.
type Options struct {
	// ReferenceTime stamps createdAt on every entity and replaces undecodable
	// date hints. If zero, the current time is captured once at the start of the run.
	ReferenceTime time.Time
	// ContinueOnSourceError keeps aggregating the remaining sources when one
	// workbook cannot be read. Failures are reported in Result.SourceErrors.
	ContinueOnSourceError bool
	// Logger receives structured progress and warnings. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{}
}

// reference returns the run's reference time.
func (o Options) reference() time.Time {
	if o.ReferenceTime.IsZero() {
		return time.Now().UTC()
	}
	return o.ReferenceTime.UTC()
}

func (o Options) logger() *zap.Logger {
	return utils.OrNop(o.Logger)
}
