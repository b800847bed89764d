package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "rmotos/internal/errors"
	"rmotos/internal/models"
	"rmotos/internal/pdf"
	"rmotos/internal/services"
)

// MotoHandler handles moto-related requests.
type MotoHandler struct {
	motoService services.MotoServicer
}

// NewMotoHandler creates a new MotoHandler.
func NewMotoHandler(motoService services.MotoServicer) *MotoHandler {
	return &MotoHandler{motoService: motoService}
}

// PartPayload is a spare-part entry on the wire. Entries with an id
// update the existing row; entries without one insert a new row.
type PartPayload struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Estimated float64 `json:"estimated"`
	Real      float64 `json:"real"`
}

// CreateMotoRequest represents the request payload for creating a moto.
type CreateMotoRequest struct {
	Brand                  string        `json:"brand" binding:"required,max=100"`
	Model                  string        `json:"model" binding:"required,max=100"`
	Year                   int           `json:"year" binding:"required,gte=1900,lte=2100"`
	PurchaseCostEstimated  float64       `json:"purchaseCostEstimated" binding:"required,gte=0"`
	PurchaseDate           string        `json:"purchaseDate" binding:"required"`
	Plate                  string        `json:"plate" binding:"max=20"`
	Image                  *string       `json:"image"`
	LaborCostEstimated     float64       `json:"laborCostEstimated" binding:"gte=0"`
	PaperworkCostEstimated float64       `json:"paperworkCostEstimated" binding:"gte=0"`
	Parts                  []PartPayload `json:"parts"`
}

// UpdateMotoRequest represents the full mutable field set pushed back
// on save. Supplied values overwrite the stored record unconditionally.
type UpdateMotoRequest struct {
	PurchaseCostReal   float64           `json:"purchaseCostReal" binding:"gte=0"`
	PaperworkCostReal  float64           `json:"paperworkCostReal" binding:"gte=0"`
	LaborCostReal      float64           `json:"laborCostReal" binding:"gte=0"`
	SalePriceEstimated float64           `json:"salePriceEstimated" binding:"gte=0"`
	Plate              string            `json:"plate" binding:"max=20"`
	Image              *string           `json:"image"`
	Status             models.MotoStatus `json:"status" binding:"required,moto_status"`
	Parts              []PartPayload     `json:"parts"`
}

// parsePurchaseDate accepts both a bare date and a full RFC3339 timestamp.
func parsePurchaseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func toPartInputs(parts []PartPayload) []services.SparePartInput {
	inputs := make([]services.SparePartInput, 0, len(parts))
	for _, p := range parts {
		inputs = append(inputs, services.SparePartInput{
			ID:            p.ID,
			Name:          p.Name,
			CostEstimated: p.Estimated,
			CostReal:      p.Real,
		})
	}
	return inputs
}

// ListMotos returns every moto owned by the authenticated user.
// @Summary     List motos
// @Description Get all motos owned by the authenticated user with their spare parts, newest first
// @Tags        motos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  models.Moto "Motos with spare parts"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /motos [get]
func (h *MotoHandler) ListMotos(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	motos, err := h.motoService.ListMotos(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, motos)
}

// CreateMoto creates a new moto project for the authenticated user.
// @Summary     Create a moto
// @Description Create a new moto project. Lifecycle starts at EN_LA_MIRA with all real costs at 0.
// @Tags        motos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateMotoRequest true "Moto details"
// @Success     200 {object} models.Moto "Created moto"
// @Failure     400 {object} ErrorResponse "Missing required fields"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /motos [post]
func (h *MotoHandler) CreateMoto(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateMotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	purchaseDate, err := parsePurchaseDate(req.PurchaseDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid purchaseDate format"))
		return
	}

	moto, err := h.motoService.CreateMoto(userID, services.CreateMotoInput{
		Brand:                  req.Brand,
		Model:                  req.Model,
		Year:                   req.Year,
		Plate:                  req.Plate,
		Image:                  req.Image,
		PurchaseCostEstimated:  req.PurchaseCostEstimated,
		PaperworkCostEstimated: req.PaperworkCostEstimated,
		LaborCostEstimated:     req.LaborCostEstimated,
		PurchaseDate:           purchaseDate,
		Parts:                  toPartInputs(req.Parts),
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, moto)
}

// GetMotoByID returns a single moto with its spare parts.
// @Summary     Get moto by ID
// @Description Get a specific moto with its spare parts
// @Tags        motos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Moto ID"
// @Success     200 {object} models.Moto "Moto with spare parts"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owned by a different user"
// @Failure     404 {object} ErrorResponse "Moto not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /motos/{id} [get]
func (h *MotoHandler) GetMotoByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	moto, err := h.motoService.GetMotoByID(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, moto)
}

// UpdateMoto overwrites the mutable fields of a moto and upserts its parts.
// @Summary     Update moto
// @Description Overwrite the mutable field set of a moto and upsert its spare parts in one transaction
// @Tags        motos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Moto ID"
// @Param       request body UpdateMotoRequest true "Updated fields"
// @Success     200 {object} map[string]bool "success acknowledgement"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not found or owned by a different user"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /motos/{id} [put]
func (h *MotoHandler) UpdateMoto(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateMotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	err = h.motoService.UpdateMoto(userID, c.Param("id"), services.MotoUpdateFields{
		PurchaseCostReal:   req.PurchaseCostReal,
		PaperworkCostReal:  req.PaperworkCostReal,
		LaborCostReal:      req.LaborCostReal,
		SalePriceEstimated: req.SalePriceEstimated,
		Plate:              req.Plate,
		Image:              req.Image,
		Status:             req.Status,
		Parts:              toPartInputs(req.Parts),
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteMoto permanently removes a moto and its spare parts.
// @Summary     Delete moto
// @Description Permanently remove a moto and its spare parts
// @Tags        motos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Moto ID"
// @Success     200 {object} map[string]bool "success acknowledgement"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not found or owned by a different user"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /motos/{id} [delete]
func (h *MotoHandler) DeleteMoto(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.motoService.DeleteMoto(userID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AdvanceStatus moves a moto one lifecycle stage forward.
// @Summary     Advance moto status
// @Description Move a moto one lifecycle stage forward; a no-op at the final stage
// @Tags        motos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Moto ID"
// @Success     200 {object} map[string]string "Resulting status"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owned by a different user"
// @Failure     404 {object} ErrorResponse "Moto not found"
// @Router      /motos/{id}/status/advance [post]
func (h *MotoHandler) AdvanceStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	status, err := h.motoService.AdvanceStatus(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}

// RetreatStatus moves a moto one lifecycle stage back.
// @Summary     Retreat moto status
// @Description Move a moto one lifecycle stage back; a no-op at the first stage
// @Tags        motos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Moto ID"
// @Success     200 {object} map[string]string "Resulting status"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owned by a different user"
// @Failure     404 {object} ErrorResponse "Moto not found"
// @Router      /motos/{id}/status/retreat [post]
func (h *MotoHandler) RetreatStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	status, err := h.motoService.RetreatStatus(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}

// GetMotoSummary returns the derived financials for one moto.
// @Summary     Get moto financial summary
// @Description Get total investment, net profit, and margin for one moto
// @Tags        motos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Moto ID"
// @Success     200 {object} services.MotoSummary "Financial summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owned by a different user"
// @Failure     404 {object} ErrorResponse "Moto not found"
// @Router      /motos/{id}/summary [get]
func (h *MotoHandler) GetMotoSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.motoService.GetMotoSummary(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetFleetSummary returns dashboard aggregates across all of the user's motos.
// @Summary     Get fleet summary
// @Description Get aggregated investment, projected revenue, and status counts across all motos
// @Tags        motos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.FleetSummary "Fleet aggregates"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /motos/summary [get]
func (h *MotoHandler) GetFleetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.motoService.GetFleetSummary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ExportBudgetPDF streams the budget document for one moto.
// @Summary     Export budget PDF
// @Description Download the budget document for one moto as a PDF
// @Tags        motos
// @Produce     application/pdf
// @Security    BearerAuth
// @Param       id path string true "Moto ID"
// @Success     200 {file}   file "Budget PDF"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owned by a different user"
// @Failure     404 {object} ErrorResponse "Moto not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /motos/{id}/pdf [get]
func (h *MotoHandler) ExportBudgetPDF(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	moto, err := h.motoService.GetMotoByID(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	doc, err := pdf.BuildBudget(moto)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	filename := fmt.Sprintf("Presupuesto_%s_%s_%s.pdf",
		moto.Brand, moto.Model, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", doc)
}
