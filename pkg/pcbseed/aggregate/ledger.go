package aggregate

import (
	"sort"
)

// ConsumptionKey identifies one ledger cell: a component consumed for a PCB on a date.
type ConsumptionKey struct {
	Date      string
	PCB       string
	Component string
}

// Less orders keys by date, then PCB, then component.
func (k ConsumptionKey) Less(other ConsumptionKey) bool {
	if k.Date != other.Date {
		return k.Date < other.Date
	}
	if k.PCB != other.PCB {
		return k.PCB < other.PCB
	}
	return k.Component < other.Component
}

// Ledger tracks per-(date, PCB, component) consumption, per-PCB production row
// counts and each PCB's deduplicated bill of materials.
type Ledger struct {
	consumption map[ConsumptionKey]int
	production  map[string]int
	bom         map[string]map[string]struct{}
}

// NewLedger creates an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{
		consumption: make(map[ConsumptionKey]int),
		production:  make(map[string]int),
		bom:         make(map[string]map[string]struct{}),
	}
}

// Record books one detail row: every component joins the PCB's bill of
// materials and consumes one unit on date. A row with components counts as
// one production row.
func (l *Ledger) Record(pcb, date string, components []string) {
	if pcb == "" || len(components) == 0 {
		return
	}

	l.production[pcb]++

	set, ok := l.bom[pcb]
	if !ok {
		set = make(map[string]struct{})
		l.bom[pcb] = set
	}
	for _, comp := range components {
		set[comp] = struct{}{}
		l.consumption[ConsumptionKey{Date: date, PCB: pcb, Component: comp}]++
	}
}

// Consumption returns the ledger entries sorted by key.
func (l *Ledger) Consumption() []ConsumptionEntry {
	out := make([]ConsumptionEntry, 0, len(l.consumption))
	for key, qty := range l.consumption {
		out = append(out, ConsumptionEntry{Key: key, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key.Less(out[j].Key)
	})
	return out
}

// ConsumptionEntry is one aggregated ledger cell.
type ConsumptionEntry struct {
	Key      ConsumptionKey
	Quantity int
}

// ProductionCount returns the number of production rows booked for a PCB.
func (l *Ledger) ProductionCount(pcb string) int {
	return l.production[pcb]
}

// ProducedPCBs returns the PCB names with at least one production row, sorted.
func (l *Ledger) ProducedPCBs() []string {
	return sortedKeys(l.production)
}

// PCBs returns every PCB with a bill of materials, sorted.
func (l *Ledger) PCBs() []string {
	return sortedKeys(l.bom)
}

// BillOfMaterials returns the PCB's component names, sorted.
func (l *Ledger) BillOfMaterials(pcb string) []string {
	return sortedKeys(l.bom[pcb])
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
