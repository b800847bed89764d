package services

import (
	"time"

	"rmotos/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, name string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// SparePartInput is one spare-part entry supplied by the client.
// An entry with an ID updates the existing row; an entry without one
// inserts a new row linked to the moto.
type SparePartInput struct {
	ID            string
	Name          string
	CostEstimated float64
	CostReal      float64
}

// CreateMotoInput holds the fields accepted when creating a moto.
type CreateMotoInput struct {
	Brand                  string
	Model                  string
	Year                   int
	Plate                  string
	Image                  *string
	PurchaseCostEstimated  float64
	PaperworkCostEstimated float64
	LaborCostEstimated     float64
	PurchaseDate           time.Time
	Parts                  []SparePartInput
}

// MotoUpdateFields holds the mutable field set pushed back on save.
// Top-level fields overwrite the stored record unconditionally.
type MotoUpdateFields struct {
	PurchaseCostReal   float64
	PaperworkCostReal  float64
	LaborCostReal      float64
	SalePriceEstimated float64
	Image              *string
	Plate              string
	Status             models.MotoStatus
	Parts              []SparePartInput
}

// MotoSummary contains the derived financials for a single moto.
type MotoSummary struct {
	MotoID             string  `json:"motoId"`
	TotalInvestment    float64 `json:"totalInvestment"`
	SalePriceEstimated float64 `json:"salePriceEstimated"`
	NetProfit          float64 `json:"netProfit"`
	Margin             int     `json:"margin"`
}

// FleetSummary contains aggregated figures across all of a user's motos.
type FleetSummary struct {
	TotalMotos       int                       `json:"totalMotos"`
	TotalInvested    float64                   `json:"totalInvested"`
	ProjectedRevenue float64                   `json:"projectedRevenue"`
	ExpectedProfit   float64                   `json:"expectedProfit"`
	CountByStatus    map[models.MotoStatus]int `json:"countByStatus"`
}

// MotoServicer defines the contract for moto-related business logic.
type MotoServicer interface {
	ListMotos(userID string) ([]models.Moto, error)
	CreateMoto(userID string, input CreateMotoInput) (*models.Moto, error)
	GetMotoByID(userID, motoID string) (*models.Moto, error)
	UpdateMoto(userID, motoID string, fields MotoUpdateFields) error
	DeleteMoto(userID, motoID string) error
	AdvanceStatus(userID, motoID string) (models.MotoStatus, error)
	RetreatStatus(userID, motoID string) (models.MotoStatus, error)
	GetMotoSummary(userID, motoID string) (*MotoSummary, error)
	GetFleetSummary(userID string) (*FleetSummary, error)
}
