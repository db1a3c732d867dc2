package models

// ProcurementSnapshot captures the quantities that raised a procurement trigger.
type ProcurementSnapshot struct {
	Stock           int64   `json:"stock"`
	MonthlyRequired int64   `json:"monthlyRequired"`
	Threshold       float64 `json:"threshold"`
}

// ProcurementTrigger is a low-stock event raised by the inventory application.
// The seed never produces any; the type fixes the collection's shape.
type ProcurementTrigger struct {
	ID                 string              `json:"id"`
	ComponentID        string              `json:"componentId"`
	ComponentName      string              `json:"componentName"`
	PartNumber         string              `json:"partNumber"`
	CurrentStockQty    int64               `json:"currentStockQty"`
	MonthlyRequiredQty int64               `json:"monthlyRequiredQty"`
	LowStockThreshold  float64             `json:"lowStockThreshold"`
	TriggeredAt        string              `json:"triggeredAt"`
	Status             string              `json:"status"`
	ResolvedAt         *string             `json:"resolvedAt"`
	Snapshot           ProcurementSnapshot `json:"snapshot"`
}
