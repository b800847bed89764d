package models

// SparePart is one cost line item attached to a moto: a freeform name
// with a budgeted and an actual cost.
type SparePart struct {
	Base
	MotoID        string  `gorm:"type:uuid;not null;index" json:"motoId"`
	Name          string  `gorm:"not null" json:"name"`
	CostEstimated float64 `gorm:"not null;default:0" json:"costEstimated"`
	CostReal      float64 `gorm:"not null;default:0" json:"costReal"`
}
