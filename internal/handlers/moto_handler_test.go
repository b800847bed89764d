package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "rmotos/internal/errors"
	"rmotos/internal/models"
	"rmotos/internal/services"
)

// --- mock moto service ---

type mockMotoService struct {
	listMotosFn       func(userID string) ([]models.Moto, error)
	createMotoFn      func(userID string, input services.CreateMotoInput) (*models.Moto, error)
	getMotoByIDFn     func(userID, motoID string) (*models.Moto, error)
	updateMotoFn      func(userID, motoID string, fields services.MotoUpdateFields) error
	deleteMotoFn      func(userID, motoID string) error
	advanceStatusFn   func(userID, motoID string) (models.MotoStatus, error)
	retreatStatusFn   func(userID, motoID string) (models.MotoStatus, error)
	getMotoSummaryFn  func(userID, motoID string) (*services.MotoSummary, error)
	getFleetSummaryFn func(userID string) (*services.FleetSummary, error)
}

func (m *mockMotoService) ListMotos(userID string) ([]models.Moto, error) {
	if m.listMotosFn != nil {
		return m.listMotosFn(userID)
	}
	return []models.Moto{}, nil
}

func (m *mockMotoService) CreateMoto(userID string, input services.CreateMotoInput) (*models.Moto, error) {
	if m.createMotoFn != nil {
		return m.createMotoFn(userID, input)
	}
	return &models.Moto{}, nil
}

func (m *mockMotoService) GetMotoByID(userID, motoID string) (*models.Moto, error) {
	if m.getMotoByIDFn != nil {
		return m.getMotoByIDFn(userID, motoID)
	}
	return &models.Moto{}, nil
}

func (m *mockMotoService) UpdateMoto(userID, motoID string, fields services.MotoUpdateFields) error {
	if m.updateMotoFn != nil {
		return m.updateMotoFn(userID, motoID, fields)
	}
	return nil
}

func (m *mockMotoService) DeleteMoto(userID, motoID string) error {
	if m.deleteMotoFn != nil {
		return m.deleteMotoFn(userID, motoID)
	}
	return nil
}

func (m *mockMotoService) AdvanceStatus(userID, motoID string) (models.MotoStatus, error) {
	if m.advanceStatusFn != nil {
		return m.advanceStatusFn(userID, motoID)
	}
	return models.StatusComprada, nil
}

func (m *mockMotoService) RetreatStatus(userID, motoID string) (models.MotoStatus, error) {
	if m.retreatStatusFn != nil {
		return m.retreatStatusFn(userID, motoID)
	}
	return models.StatusEnLaMira, nil
}

func (m *mockMotoService) GetMotoSummary(userID, motoID string) (*services.MotoSummary, error) {
	if m.getMotoSummaryFn != nil {
		return m.getMotoSummaryFn(userID, motoID)
	}
	return &services.MotoSummary{}, nil
}

func (m *mockMotoService) GetFleetSummary(userID string) (*services.FleetSummary, error) {
	if m.getFleetSummaryFn != nil {
		return m.getFleetSummaryFn(userID)
	}
	return &services.FleetSummary{CountByStatus: map[models.MotoStatus]int{}}, nil
}

// verify interface compliance
var _ services.MotoServicer = (*mockMotoService)(nil)

func setupMotoRouter(handler *MotoHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID("user-1"))
	auth.GET("/motos", handler.ListMotos)
	auth.POST("/motos", handler.CreateMoto)
	auth.GET("/motos/summary", handler.GetFleetSummary)
	auth.GET("/motos/:id", handler.GetMotoByID)
	auth.PUT("/motos/:id", handler.UpdateMoto)
	auth.DELETE("/motos/:id", handler.DeleteMoto)
	auth.POST("/motos/:id/status/advance", handler.AdvanceStatus)
	auth.POST("/motos/:id/status/retreat", handler.RetreatStatus)
	auth.GET("/motos/:id/summary", handler.GetMotoSummary)
	auth.GET("/motos/:id/pdf", handler.ExportBudgetPDF)
	return r
}

func parseJSONArray(t *testing.T, body string) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, body)
	}
	return result
}

// --- tests ---

func TestMotoHandler_ListMotos(t *testing.T) {
	t.Run("returns 200 with bare array", func(t *testing.T) {
		motoSvc := &mockMotoService{
			listMotosFn: func(_ string) ([]models.Moto, error) {
				return []models.Moto{
					{Base: models.Base{ID: "moto-1"}, Brand: "Yamaha", Model: "NMAX"},
					{Base: models.Base{ID: "moto-2"}, Brand: "Honda", Model: "CB190"},
				}, nil
			},
		}
		handler := NewMotoHandler(motoSvc)
		r := setupMotoRouter(handler)

		rec := doRequest(r, "GET", "/motos", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		motos := parseJSONArray(t, rec.Body.String())
		if len(motos) != 2 {
			t.Fatalf("expected 2 motos, got %d", len(motos))
		}
		first := motos[0].(map[string]interface{})
		if first["brand"] != "Yamaha" {
			t.Errorf("expected brand Yamaha, got %v", first["brand"])
		}
	})

	t.Run("returns 200 with empty array", func(t *testing.T) {
		handler := NewMotoHandler(&mockMotoService{})
		r := setupMotoRouter(handler)

		rec := doRequest(r, "GET", "/motos", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if strings.TrimSpace(rec.Body.String()) != "[]" {
			t.Errorf("expected bare empty array, got %s", rec.Body.String())
		}
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewMotoHandler(&mockMotoService{})
		r := gin.New()
		r.GET("/motos", handler.ListMotos)

		rec := doRequest(r, "GET", "/motos", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestMotoHandler_CreateMoto(t *testing.T) {
	t.Run("returns 200 with created moto", func(t *testing.T) {
		var captured services.CreateMotoInput
		motoSvc := &mockMotoService{
			createMotoFn: func(_ string, input services.CreateMotoInput) (*models.Moto, error) {
				captured = input
				return &models.Moto{
					Base:                  models.Base{ID: "moto-1"},
					Brand:                 input.Brand,
					Model:                 input.Model,
					Year:                  input.Year,
					Status:                models.StatusEnLaMira,
					PurchaseCostEstimated: input.PurchaseCostEstimated,
					SpareParts:            []models.SparePart{},
				}, nil
			},
		}
		handler := NewMotoHandler(motoSvc)
		r := setupMotoRouter(handler)

		rec := doRequest(r, "POST", "/motos",
			`{"brand":"Yamaha","model":"NMAX","year":2020,"purchaseCostEstimated":5000000,"purchaseDate":"2024-01-01"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["status"] != "EN_LA_MIRA" {
			t.Errorf("expected status EN_LA_MIRA, got %v", result["status"])
		}
		if captured.PurchaseDate.Format("2006-01-02") != "2024-01-01" {
			t.Errorf("expected parsed date 2024-01-01, got %v", captured.PurchaseDate)
		}
	})

	t.Run("accepts RFC3339 purchase date", func(t *testing.T) {
		var captured services.CreateMotoInput
		motoSvc := &mockMotoService{
			createMotoFn: func(_ string, input services.CreateMotoInput) (*models.Moto, error) {
				captured = input
				return &models.Moto{}, nil
			},
		}
		handler := NewMotoHandler(motoSvc)
		r := setupMotoRouter(handler)

		rec := doRequest(r, "POST", "/motos",
			`{"brand":"Yamaha","model":"NMAX","year":2020,"purchaseCostEstimated":5000000,"purchaseDate":"2024-01-15T10:30:00Z"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		want := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
		if !captured.PurchaseDate.Equal(want) {
			t.Errorf("expected %v, got %v", want, captured.PurchaseDate)
		}
	})

	t.Run("forwards seed parts", func(t *testing.T) {
		var captured services.CreateMotoInput
		motoSvc := &mockMotoService{
			createMotoFn: func(_ string, input services.CreateMotoInput) (*models.Moto, error) {
				captured = input
				return &models.Moto{}, nil
			},
		}
		handler := NewMotoHandler(motoSvc)
		r := setupMotoRouter(handler)

		rec := doRequest(r, "POST", "/motos",
			`{"brand":"Yamaha","model":"NMAX","year":2020,"purchaseCostEstimated":5000000,"purchaseDate":"2024-01-01",`+
				`"parts":[{"name":"Llantas","estimated":300000}]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if len(captured.Parts) != 1 || captured.Parts[0].Name != "Llantas" || captured.Parts[0].CostEstimated != 300000 {
			t.Errorf("unexpected parts: %+v", captured.Parts)
		}
	})

	t.Run("returns 400 on missing brand", func(t *testing.T) {
		handler := NewMotoHandler(&mockMotoService{})
		r := setupMotoRouter(handler)

		rec := doRequest(r, "POST", "/motos",
			`{"model":"NMAX","year":2020,"purchaseCostEstimated":5000000,"purchaseDate":"2024-01-01"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on out-of-range year", func(t *testing.T) {
		handler := NewMotoHandler(&mockMotoService{})
		r := setupMotoRouter(handler)

		rec := doRequest(r, "POST", "/motos",
			`{"brand":"Yamaha","model":"NMAX","year":1800,"purchaseCostEstimated":5000000,"purchaseDate":"2024-01-01"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed purchase date", func(t *testing.T) {
		handler := NewMotoHandler(&mockMotoService{})
		r := setupMotoRouter(handler)

		rec := doRequest(r, "POST", "/motos",
			`{"brand":"Yamaha","model":"NMAX","year":2020,"purchaseCostEstimated":5000000,"purchaseDate":"01/15/2024"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestMotoHandler_GetMotoByID(t *testing.T) {
	t.Run("returns 200 with moto", func(t *testing.T) {
		motoSvc := &mockMotoService{
			getMotoByIDFn: func(_, motoID string) (*models.Moto, error) {
				return &models.Moto{
					Base:  models.Base{ID: motoID},
					Brand: "Yamaha",
					Model: "NMAX",
					SpareParts: []models.SparePart{
						{Base: models.Base{ID: "part-1"}, Name: "Llantas"},
					},
				}, nil
			},
		}
		handler := NewMotoHandler(motoSvc)
		r := setupMotoRouter(handler)

		rec := doRequest(r, "GET", "/motos/moto-1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["brand"] != "Yamaha" {
			t.Errorf("expected brand Yamaha, got %v", result["brand"])
		}
		parts := result["spareParts"].([]interface{})
		if len(parts) != 1 {
			t.Errorf("expected 1 spare part, got %d", len(parts))
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		motoSvc := &mockMotoService{
			getMotoByIDFn: func(_, _ string) (*models.Moto, error) {
				return nil, apperrors.ErrMotoNotFound
			},
		}
		handler := NewMotoHandler(motoSvc)
		r := setupMotoRouter(handler)

		rec := doRequest(r, "GET", "/motos/missing", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "MOTO_NOT_FOUND")
	})

	t.Run("returns 403 when owned by another user", func(t *testing.T) {
		motoSvc := &mockMotoService{
			getMotoByIDFn: func(_, _ string) (*models.Moto, error) {
				return nil, apperrors.ErrForbidden
			},
		}
		handler := NewMotoHandler(motoSvc)
		r := setupMotoRouter(handler)

		rec := doRequest(r, "GET", "/motos/moto-1", "")

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "FORBIDDEN")
	})
}

func TestMotoHandler_UpdateMoto(t *testing.T) {
	t.Run("returns 200 with success flag", func(t *testing.T) {
		var captured services.MotoUpdateFields
		motoSvc := &mockMotoService{
			updateMotoFn: func(_, _ string, fields services.MotoUpdateFields) error {
				captured = fields
				return nil
			},
		}
		handler := NewMotoHandler(motoSvc)
		r := setupMotoRouter(handler)

		rec := doRequest(r, "PUT", "/motos/moto-1",
			`{"purchaseCostReal":4800000,"paperworkCostReal":100000,"laborCostReal":300000,`+
				`"salePriceEstimated":6000000,"status":"EN_TALLER",`+
				`"parts":[{"id":"part-1","name":"Llantas","estimated":300000,"real":250000}]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["success"] != true {
			t.Errorf("expected success true, got %v", result["success"])
		}
		if captured.Status != models.StatusEnTaller {
			t.Errorf("expected status EN_TALLER, got %s", captured.Status)
		}
		if len(captured.Parts) != 1 || captured.Parts[0].ID != "part-1" || captured.Parts[0].CostReal != 250000 {
			t.Errorf("unexpected parts: %+v", captured.Parts)
		}
	})

	t.Run("returns 400 on missing status", func(t *testing.T) {
		handler := NewMotoHandler(&mockMotoService{})
		r := setupMotoRouter(handler)

		rec := doRequest(r, "PUT", "/motos/moto-1", `{"purchaseCostReal":4800000}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on unknown status", func(t *testing.T) {
		handler := NewMotoHandler(&mockMotoService{})
		r := setupMotoRouter(handler)

		rec := doRequest(r, "PUT", "/motos/moto-1", `{"status":"DESGUAZADA"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 403 on foreign moto", func(t *testing.T) {
		motoSvc := &mockMotoService{
			updateMotoFn: func(_, _ string, _ services.MotoUpdateFields) error {
				return apperrors.ErrForbidden
			},
		}
		handler := NewMotoHandler(motoSvc)
		r := setupMotoRouter(handler)

		rec := doRequest(r, "PUT", "/motos/moto-1", `{"status":"COMPRADA"}`)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})
}

func TestMotoHandler_DeleteMoto(t *testing.T) {
	t.Run("returns 200 with success flag", func(t *testing.T) {
		handler := NewMotoHandler(&mockMotoService{})
		r := setupMotoRouter(handler)

		rec := doRequest(r, "DELETE", "/motos/moto-1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["success"] != true {
			t.Errorf("expected success true, got %v", result["success"])
		}
	})

	t.Run("returns 403 on foreign moto", func(t *testing.T) {
		motoSvc := &mockMotoService{
			deleteMotoFn: func(_, _ string) error {
				return apperrors.ErrForbidden
			},
		}
		handler := NewMotoHandler(motoSvc)
		r := setupMotoRouter(handler)

		rec := doRequest(r, "DELETE", "/motos/moto-1", "")

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})
}

func TestMotoHandler_StatusSteps(t *testing.T) {
	t.Run("advance returns resulting status", func(t *testing.T) {
		motoSvc := &mockMotoService{
			advanceStatusFn: func(_, _ string) (models.MotoStatus, error) {
				return models.StatusEnTaller, nil
			},
		}
		handler := NewMotoHandler(motoSvc)
		r := setupMotoRouter(handler)

		rec := doRequest(r, "POST", "/motos/moto-1/status/advance", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["status"] != "EN_TALLER" {
			t.Errorf("expected EN_TALLER, got %v", result["status"])
		}
	})

	t.Run("retreat returns resulting status", func(t *testing.T) {
		motoSvc := &mockMotoService{
			retreatStatusFn: func(_, _ string) (models.MotoStatus, error) {
				return models.StatusComprada, nil
			},
		}
		handler := NewMotoHandler(motoSvc)
		r := setupMotoRouter(handler)

		rec := doRequest(r, "POST", "/motos/moto-1/status/retreat", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["status"] != "COMPRADA" {
			t.Errorf("expected COMPRADA, got %v", result["status"])
		}
	})

	t.Run("advance returns 404 when moto missing", func(t *testing.T) {
		motoSvc := &mockMotoService{
			advanceStatusFn: func(_, _ string) (models.MotoStatus, error) {
				return "", apperrors.ErrMotoNotFound
			},
		}
		handler := NewMotoHandler(motoSvc)
		r := setupMotoRouter(handler)

		rec := doRequest(r, "POST", "/motos/missing/status/advance", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestMotoHandler_GetMotoSummary(t *testing.T) {
	t.Run("returns 200 with financials", func(t *testing.T) {
		motoSvc := &mockMotoService{
			getMotoSummaryFn: func(_, motoID string) (*services.MotoSummary, error) {
				return &services.MotoSummary{
					MotoID:             motoID,
					TotalInvestment:    5200000,
					SalePriceEstimated: 6000000,
					NetProfit:          800000,
					Margin:             15,
				}, nil
			},
		}
		handler := NewMotoHandler(motoSvc)
		r := setupMotoRouter(handler)

		rec := doRequest(r, "GET", "/motos/moto-1/summary", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["totalInvestment"].(float64) != 5200000 {
			t.Errorf("expected totalInvestment 5200000, got %v", result["totalInvestment"])
		}
		if result["margin"].(float64) != 15 {
			t.Errorf("expected margin 15, got %v", result["margin"])
		}
	})
}

func TestMotoHandler_GetFleetSummary(t *testing.T) {
	t.Run("returns 200 with aggregates", func(t *testing.T) {
		motoSvc := &mockMotoService{
			getFleetSummaryFn: func(_ string) (*services.FleetSummary, error) {
				return &services.FleetSummary{
					TotalMotos:       2,
					TotalInvested:    9800000,
					ProjectedRevenue: 6000000,
					ExpectedProfit:   -3800000,
					CountByStatus: map[models.MotoStatus]int{
						models.StatusEnLaMira: 1,
						models.StatusEnVenta:  1,
					},
				}, nil
			},
		}
		handler := NewMotoHandler(motoSvc)
		r := setupMotoRouter(handler)

		rec := doRequest(r, "GET", "/motos/summary", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["totalMotos"].(float64) != 2 {
			t.Errorf("expected totalMotos 2, got %v", result["totalMotos"])
		}
		counts := result["countByStatus"].(map[string]interface{})
		if counts["EN_LA_MIRA"].(float64) != 1 {
			t.Errorf("unexpected status counts: %v", counts)
		}
	})
}

func TestMotoHandler_ExportBudgetPDF(t *testing.T) {
	t.Run("returns 200 with pdf attachment", func(t *testing.T) {
		motoSvc := &mockMotoService{
			getMotoByIDFn: func(_, motoID string) (*models.Moto, error) {
				return &models.Moto{
					Base:                  models.Base{ID: motoID},
					Brand:                 "Yamaha",
					Model:                 "NMAX",
					Year:                  2020,
					Status:                models.StatusEnTaller,
					PurchaseCostEstimated: 5000000,
					PurchaseDate:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				}, nil
			},
		}
		handler := NewMotoHandler(motoSvc)
		r := setupMotoRouter(handler)

		rec := doRequest(r, "GET", "/motos/moto-1/pdf", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Errorf("expected application/pdf, got %s", ct)
		}
		cd := rec.Header().Get("Content-Disposition")
		if !strings.Contains(cd, "Presupuesto_Yamaha_NMAX") {
			t.Errorf("unexpected Content-Disposition: %s", cd)
		}
		if !strings.HasPrefix(rec.Body.String(), "%PDF-") {
			t.Error("expected PDF magic bytes in body")
		}
	})

	t.Run("returns 404 when moto missing", func(t *testing.T) {
		motoSvc := &mockMotoService{
			getMotoByIDFn: func(_, _ string) (*models.Moto, error) {
				return nil, apperrors.ErrMotoNotFound
			},
		}
		handler := NewMotoHandler(motoSvc)
		r := setupMotoRouter(handler)

		rec := doRequest(r, "GET", "/motos/missing/pdf", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
