package models

// SeedData is the full dataset snapshot, in the collection order the inventory application loads.
type SeedData struct {
	Components          []Component          `json:"components"`
	PCBs                []PCB                `json:"pcbs"`
	ProductionEntries   []ProductionEntry    `json:"productionEntries"`
	ProcurementTriggers []ProcurementTrigger `json:"procurementTriggers"`
	ConsumptionHistory  []ConsumptionRecord  `json:"consumptionHistory"`
}

// NewSeedData returns an empty dataset whose collections serialize as [] rather than null.
func NewSeedData() *SeedData {
	return &SeedData{
		Components:          []Component{},
		PCBs:                []PCB{},
		ProductionEntries:   []ProductionEntry{},
		ProcurementTriggers: []ProcurementTrigger{},
		ConsumptionHistory:  []ConsumptionRecord{},
	}
}
