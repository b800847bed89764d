package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "rmotos/internal/errors"
	"rmotos/internal/models"
)

// motoService handles moto-related business logic.
type motoService struct {
	db *gorm.DB
}

// NewMotoService creates a new MotoServicer.
func NewMotoService(db *gorm.DB) MotoServicer {
	return &motoService{db: db}
}

// ListMotos retrieves all motos owned by the user with their spare
// parts, newest first. An owner with no motos gets an empty slice.
func (s *motoService) ListMotos(userID string) ([]models.Moto, error) {
	motos := []models.Moto{}
	err := s.db.Preload("SpareParts").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&motos).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return motos, nil
}

// CreateMoto creates a moto owned by the user. The lifecycle starts at
// EN_LA_MIRA and every real cost field starts at 0 regardless of the
// input; seed spare parts are created in the same transaction.
func (s *motoService) CreateMoto(userID string, input CreateMotoInput) (*models.Moto, error) {
	if input.Brand == "" || input.Model == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "brand and model are required")
	}

	moto := &models.Moto{
		UserID:                 userID,
		Brand:                  input.Brand,
		Model:                  input.Model,
		Year:                   input.Year,
		Plate:                  strings.ToUpper(input.Plate),
		Image:                  input.Image,
		Status:                 models.StatusEnLaMira,
		PurchaseCostEstimated:  input.PurchaseCostEstimated,
		PaperworkCostEstimated: input.PaperworkCostEstimated,
		LaborCostEstimated:     input.LaborCostEstimated,
		PurchaseDate:           input.PurchaseDate,
		SpareParts:             make([]models.SparePart, 0, len(input.Parts)),
	}

	for _, p := range input.Parts {
		moto.SpareParts = append(moto.SpareParts, models.SparePart{
			Name:          p.Name,
			CostEstimated: p.CostEstimated,
			CostReal:      p.CostReal,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(moto).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return moto, nil
}

// GetMotoByID retrieves a moto with its spare parts. An unknown id
// yields not-found; a moto owned by a different user yields forbidden.
func (s *motoService) GetMotoByID(userID, motoID string) (*models.Moto, error) {
	var moto models.Moto
	if err := s.db.Preload("SpareParts").Where("id = ?", motoID).First(&moto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMotoNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if moto.UserID != userID {
		return nil, apperrors.ErrForbidden
	}

	return &moto, nil
}

// getOwnedMoto fetches a moto scoped to the owner. Absent and
// not-owned collapse into a single forbidden result, matching the
// update/delete failure semantics.
func (s *motoService) getOwnedMoto(userID, motoID string) (*models.Moto, error) {
	var moto models.Moto
	if err := s.db.Where("id = ? AND user_id = ?", motoID, userID).First(&moto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrForbidden
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &moto, nil
}

// UpdateMoto overwrites the mutable field set and upserts the supplied
// spare parts. The whole write runs in a single transaction: a failure
// anywhere rolls back every part of the update.
func (s *motoService) UpdateMoto(userID, motoID string, fields MotoUpdateFields) error {
	if !fields.Status.Valid() {
		return apperrors.ErrInvalidStatus
	}

	moto, err := s.getOwnedMoto(userID, motoID)
	if err != nil {
		return err
	}

	// Maps, not structs: zero values must overwrite too.
	updates := map[string]interface{}{
		"purchase_cost_real":   fields.PurchaseCostReal,
		"paperwork_cost_real":  fields.PaperworkCostReal,
		"labor_cost_real":      fields.LaborCostReal,
		"sale_price_estimated": fields.SalePriceEstimated,
		"image":                fields.Image,
		"plate":                strings.ToUpper(fields.Plate),
		"status":               fields.Status,
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(moto).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		for _, p := range fields.Parts {
			if p.ID != "" {
				// Update scoped to this moto; a stale or foreign id
				// matches no row and is skipped silently.
				err := tx.Model(&models.SparePart{}).
					Where("id = ? AND moto_id = ?", p.ID, moto.ID).
					Updates(map[string]interface{}{
						"name":           p.Name,
						"cost_estimated": p.CostEstimated,
						"cost_real":      p.CostReal,
					}).Error
				if err != nil {
					return apperrors.Wrap(apperrors.ErrInternalServer, err)
				}
				continue
			}

			part := &models.SparePart{
				MotoID:        moto.ID,
				Name:          p.Name,
				CostEstimated: p.CostEstimated,
				CostReal:      p.CostReal,
			}
			if err := tx.Create(part).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		return nil
	})
}

// DeleteMoto permanently removes a moto and its spare parts.
func (s *motoService) DeleteMoto(userID, motoID string) error {
	moto, err := s.getOwnedMoto(userID, motoID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("moto_id = ?", moto.ID).Delete(&models.SparePart{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(moto).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// AdvanceStatus moves a moto one stage forward in the lifecycle.
// Advancing from the final stage leaves the status unchanged.
func (s *motoService) AdvanceStatus(userID, motoID string) (models.MotoStatus, error) {
	return s.stepStatus(userID, motoID, models.MotoStatus.Advance)
}

// RetreatStatus moves a moto one stage back in the lifecycle.
// Retreating from the first stage leaves the status unchanged.
func (s *motoService) RetreatStatus(userID, motoID string) (models.MotoStatus, error) {
	return s.stepStatus(userID, motoID, models.MotoStatus.Retreat)
}

func (s *motoService) stepStatus(userID, motoID string, step func(models.MotoStatus) models.MotoStatus) (models.MotoStatus, error) {
	moto, err := s.GetMotoByID(userID, motoID)
	if err != nil {
		return "", err
	}

	next := step(moto.Status)
	if next == moto.Status {
		return moto.Status, nil
	}

	if err := s.db.Model(moto).Update("status", next).Error; err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return next, nil
}

// GetMotoSummary computes the derived financials for a single moto.
func (s *motoService) GetMotoSummary(userID, motoID string) (*MotoSummary, error) {
	moto, err := s.GetMotoByID(userID, motoID)
	if err != nil {
		return nil, err
	}

	return &MotoSummary{
		MotoID:             moto.ID,
		TotalInvestment:    moto.TotalInvestment(),
		SalePriceEstimated: moto.SalePriceEstimated,
		NetProfit:          moto.NetProfit(),
		Margin:             moto.Margin(),
	}, nil
}

// GetFleetSummary aggregates dashboard figures across the user's motos.
// Per moto, the invested figure falls back to the purchase estimate
// until a real purchase cost is recorded.
func (s *motoService) GetFleetSummary(userID string) (*FleetSummary, error) {
	motos, err := s.ListMotos(userID)
	if err != nil {
		return nil, err
	}

	summary := &FleetSummary{
		TotalMotos:    len(motos),
		CountByStatus: make(map[models.MotoStatus]int),
	}

	for i := range motos {
		m := &motos[i]
		invested := m.PurchaseCostReal
		if invested == 0 {
			invested = m.PurchaseCostEstimated
		}
		summary.TotalInvested += invested
		summary.ProjectedRevenue += m.SalePriceEstimated
		summary.CountByStatus[m.Status]++
	}
	summary.ExpectedProfit = summary.ProjectedRevenue - summary.TotalInvested

	return summary, nil
}
