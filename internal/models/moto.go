package models

import (
	"math"
	"time"
)

// MotoStatus represents the lifecycle stage of a moto project.
type MotoStatus string

const (
	StatusEnLaMira MotoStatus = "EN_LA_MIRA"
	StatusComprada MotoStatus = "COMPRADA"
	StatusEnTaller MotoStatus = "EN_TALLER"
	StatusEnVenta  MotoStatus = "EN_VENTA"
	StatusVendida  MotoStatus = "VENDIDA"
)

// statusOrder is the fixed lifecycle sequence: prospecting, bought,
// in shop, for sale, sold.
var statusOrder = [...]MotoStatus{
	StatusEnLaMira,
	StatusComprada,
	StatusEnTaller,
	StatusEnVenta,
	StatusVendida,
}

// Valid reports whether s is a member of the status enumeration.
func (s MotoStatus) Valid() bool {
	for _, v := range statusOrder {
		if s == v {
			return true
		}
	}
	return false
}

// Advance returns the next lifecycle stage. Advancing from the last
// stage is a no-op.
func (s MotoStatus) Advance() MotoStatus {
	for i, v := range statusOrder {
		if s == v && i < len(statusOrder)-1 {
			return statusOrder[i+1]
		}
	}
	return s
}

// Retreat returns the previous lifecycle stage. Retreating from the
// first stage is a no-op.
func (s MotoStatus) Retreat() MotoStatus {
	for i, v := range statusOrder {
		if s == v && i > 0 {
			return statusOrder[i-1]
		}
	}
	return s
}

// Moto represents one motorcycle trading project: purchase, repair,
// resale, with budgeted vs actual costs per category.
type Moto struct {
	Base
	UserID string `gorm:"type:uuid;not null;index" json:"userId"`
	Brand  string `gorm:"not null" json:"brand"`
	Model  string `gorm:"not null" json:"model"`
	Year   int    `gorm:"not null" json:"year"`
	Plate  string `json:"plate,omitempty"`
	Image  *string `json:"image"`

	Status MotoStatus `gorm:"not null;default:'EN_LA_MIRA'" json:"status"`

	PurchaseCostEstimated  float64 `gorm:"not null;default:0" json:"purchaseCostEstimated"`
	PurchaseCostReal       float64 `gorm:"not null;default:0" json:"purchaseCostReal"`
	PaperworkCostEstimated float64 `gorm:"not null;default:0" json:"paperworkCostEstimated"`
	PaperworkCostReal      float64 `gorm:"not null;default:0" json:"paperworkCostReal"`
	LaborCostEstimated     float64 `gorm:"not null;default:0" json:"laborCostEstimated"`
	LaborCostReal          float64 `gorm:"not null;default:0" json:"laborCostReal"`
	SalePriceEstimated     float64 `gorm:"not null;default:0" json:"salePriceEstimated"`

	PurchaseDate time.Time `gorm:"not null" json:"purchaseDate"`

	SpareParts []SparePart `gorm:"foreignKey:MotoID;constraint:OnDelete:CASCADE" json:"spareParts"`
}

// TotalInvestment is the sum of all real costs: the three base
// categories plus every spare part's real cost.
func (m *Moto) TotalInvestment() float64 {
	total := m.PurchaseCostReal + m.PaperworkCostReal + m.LaborCostReal
	for i := range m.SpareParts {
		total += m.SpareParts[i].CostReal
	}
	return total
}

// NetProfit is the estimated sale price minus the total investment.
func (m *Moto) NetProfit() float64 {
	return m.SalePriceEstimated - m.TotalInvestment()
}

// Margin is the net profit as a rounded percentage of the total
// investment. Defined as 0 when the investment is 0.
func (m *Moto) Margin() int {
	total := m.TotalInvestment()
	if total == 0 {
		return 0
	}
	return int(math.Round(m.NetProfit() / total * 100))
}
