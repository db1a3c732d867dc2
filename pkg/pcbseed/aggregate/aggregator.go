package aggregate

import (
	"github.com/shopspring/decimal"
)

// Aggregator keeps a running quantity total per component name, shared by
// summary sheets (pre-aggregated counts) and detail sheets (one per occurrence).
type Aggregator struct {
	totals map[string]decimal.Decimal
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{totals: make(map[string]decimal.Decimal)}
}

// Add adds qty to the named component's total.
func (a *Aggregator) Add(name string, qty decimal.Decimal) {
	a.totals[name] = a.totals[name].Add(qty)
}

// Increment adds one occurrence of the named component.
func (a *Aggregator) Increment(name string) {
	a.Add(name, decimal.NewFromInt(1))
}

// Total returns the named component's total and whether it was ever aggregated.
func (a *Aggregator) Total(name string) (decimal.Decimal, bool) {
	total, ok := a.totals[name]
	return total, ok
}

// Totals returns a copy of all totals.
func (a *Aggregator) Totals() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(a.totals))
	for name, total := range a.totals {
		out[name] = total
	}
	return out
}

// Len returns the number of distinct components.
func (a *Aggregator) Len() int {
	return len(a.totals)
}
