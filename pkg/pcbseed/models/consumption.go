package models

// ConsumptionRecord is the number of units of a component consumed for a PCB on a date.
type ConsumptionRecord struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	ComponentName string `json:"componentName"`
	ComponentID   string `json:"componentId"`
	PCBName       string `json:"pcbName"`
	ConsumedQty   int    `json:"consumedQty"`
}
