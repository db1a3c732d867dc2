package models

// ComponentMapping links a PCB to one component of its bill of materials.
type ComponentMapping struct {
	ComponentID          string `json:"componentId"`
	QuantityPerComponent int    `json:"quantityPerComponent"`
}

// PCB represents a printed-circuit-board product line and its bill of materials.
type PCB struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Components []ComponentMapping `json:"components"`
	CreatedAt  string             `json:"createdAt"`
}
