// Package models defines the seed dataset emitted for the inventory application.
package models

// Component represents one electronic component with its baseline quantities.
type Component struct {
	// ID is the assigned identifier (cmp-0001...).
	ID string `json:"id"`
	// Name is the component's natural key, case preserved.
	Name string `json:"name"`
	// PartNumber mirrors Name; the sources carry no separate part number.
	PartNumber string `json:"partNumber"`
	// CurrentStockQty is the seeded stock level.
	CurrentStockQty int64 `json:"currentStockQty"`
	// MonthlyRequiredQty is the seeded monthly requirement.
	MonthlyRequiredQty int64 `json:"monthlyRequiredQty"`
	// CreatedAt is the run's reference timestamp.
	CreatedAt string `json:"createdAt"`
}
