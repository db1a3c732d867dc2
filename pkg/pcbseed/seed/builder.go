// Package seed turns accumulated aggregation state into the seed dataset,
// assigning sequential identifiers in natural-key order.
package seed

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/aggregate"
	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/models"
)

// Identifier formats per entity kind.
const (
	componentIDFormat   = "cmp-%04d"
	pcbIDFormat         = "pcb-%04d"
	productionIDFormat  = "prd-seed-%05d"
	consumptionIDFormat = "cons-%07d"
)

// minQuantity is the floor for seeded stock and monthly requirement.
const minQuantity = 1

// builder holds the component registry while the dataset is materialized.
type builder struct {
	createdAt string
	data      *models.SeedData
	ids       map[string]string
}

// Build materializes the dataset from a finished aggregation context. It must
// only be called once accumulation is complete; createdAt stamps every entity.
func Build(c *aggregate.Context, createdAt time.Time) *models.SeedData {
	b := &builder{
		createdAt: aggregate.FormatTimestamp(createdAt),
		data:      models.NewSeedData(),
		ids:       make(map[string]string),
	}

	b.buildComponents(c.Components)
	b.buildPCBs(c.Ledger)
	b.buildProduction(c.Ledger)
	b.buildConsumption(c.Ledger)
	return b.data
}

func (b *builder) buildComponents(agg *aggregate.Aggregator) {
	totals := agg.Totals()
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		b.addComponent(name, Quantity(totals[name]))
	}
}

// addComponent registers a component under the next sequential id.
func (b *builder) addComponent(name string, qty int64) string {
	id := fmt.Sprintf(componentIDFormat, len(b.data.Components)+1)
	b.ids[name] = id
	b.data.Components = append(b.data.Components, models.Component{
		ID:                 id,
		Name:               name,
		PartNumber:         name,
		CurrentStockQty:    qty,
		MonthlyRequiredQty: qty,
		CreatedAt:          b.createdAt,
	})
	return id
}

func (b *builder) buildPCBs(ledger *aggregate.Ledger) {
	for i, name := range ledger.PCBs() {
		bom := ledger.BillOfMaterials(name)
		mappings := make([]models.ComponentMapping, 0, len(bom))
		for _, comp := range bom {
			id, ok := b.ids[comp]
			if !ok {
				id = b.addComponent(comp, minQuantity)
			}
			mappings = append(mappings, models.ComponentMapping{ComponentID: id, QuantityPerComponent: 1})
		}

		b.data.PCBs = append(b.data.PCBs, models.PCB{
			ID:         fmt.Sprintf(pcbIDFormat, i+1),
			Name:       name,
			Components: mappings,
			CreatedAt:  b.createdAt,
		})
	}
}

func (b *builder) buildProduction(ledger *aggregate.Ledger) {
	for i, name := range ledger.ProducedPCBs() {
		b.data.ProductionEntries = append(b.data.ProductionEntries, models.ProductionEntry{
			ID:                fmt.Sprintf(productionIDFormat, i+1),
			PCBName:           name,
			QuantityToProduce: ledger.ProductionCount(name),
			CreatedAt:         b.createdAt,
			Deductions:        []models.Deduction{},
		})
	}
}

func (b *builder) buildConsumption(ledger *aggregate.Ledger) {
	for i, entry := range ledger.Consumption() {
		b.data.ConsumptionHistory = append(b.data.ConsumptionHistory, models.ConsumptionRecord{
			ID:            fmt.Sprintf(consumptionIDFormat, i+1),
			Date:          entry.Key.Date,
			ComponentName: entry.Key.Component,
			ComponentID:   b.ids[entry.Key.Component],
			PCBName:       entry.Key.PCB,
			ConsumedQty:   entry.Quantity,
		})
	}
}

// Quantity rounds an aggregate total half-to-even and clamps it to at least one.
func Quantity(total decimal.Decimal) int64 {
	qty := total.RoundBank(0).IntPart()
	if qty < minQuantity {
		return minQuantity
	}
	return qty
}
