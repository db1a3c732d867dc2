package models

// Deduction records stock taken from one component by a production entry.
type Deduction struct {
	ComponentID      string `json:"componentId"`
	ComponentName    string `json:"componentName"`
	QuantityDeducted int64  `json:"quantityDeducted"`
}

// ProductionEntry summarizes production of one PCB. Seeded entries carry no deductions.
type ProductionEntry struct {
	ID                string      `json:"id"`
	PCBName           string      `json:"pcbName"`
	QuantityToProduce int         `json:"quantityToProduce"`
	CreatedAt         string      `json:"createdAt"`
	Deductions        []Deduction `json:"deductions"`
}
