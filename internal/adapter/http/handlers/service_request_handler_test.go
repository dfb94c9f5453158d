package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"borewell_ops/internal/adapter/http/handlers/mocks"
	"borewell_ops/internal/domain/entities"
	"borewell_ops/internal/domain/pricing"
	"borewell_ops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const createRequestBody = `{
	"customer_name": "Raju",
	"phone": "9876543210",
	"site": "Hosur Road",
	"drilling_depth_ft": 437,
	"drilling_rate": 70,
	"rate_variant": "tiered",
	"casing_depth_ft": 100,
	"casing_rate": 250,
	"secondary_casing_depth_ft": 50,
	"secondary_casing_rate": 600
}`

func TestServiceRequestHandler_CreateRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.CreateRequest)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("pricing rule violation maps to 422 with reason code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		uc.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return(entities.ServiceRequest{}, &usecase.PricingRuleError{
			Outcome: pricing.Outcome{
				Reason:  pricing.ReasonCasingExceedsDrillingDepth,
				Message: "Casing depth cannot exceed drilling depth",
			},
		})

		r := gin.New()
		r.POST("/v1/requests", h.CreateRequest)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(createRequestBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["code"] != string(pricing.ReasonCasingExceedsDrillingDepth) {
			t.Fatalf("expected reason code, got %+v", body)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		now := time.Now().UTC()
		uc.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.CreateRequestCommand) (entities.ServiceRequest, error) {
				if cmd.CustomerName != "Raju" || cmd.RateVariant != pricing.VariantTiered {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.ServiceRequest{
					ID:           "req-1",
					CustomerName: cmd.CustomerName,
					Phone:        cmd.Phone,
					Total:        90930,
					Status:       entities.RequestStatusPending,
					CreatedAt:    now,
					UpdatedAt:    now,
				}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/requests", h.CreateRequest)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(createRequestBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["id"] != "req-1" || body["total"] != 90930.0 {
			t.Fatalf("unexpected response: %+v", body)
		}
	})
}

func TestServiceRequestHandler_Quote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		uc.EXPECT().Quote(gomock.Any()).Return(pricing.CostResult{
			DrillingSubtotal:        32330,
			CasingSubtotal:          25000,
			SecondaryCasingSubtotal: 30000,
			ItemsSubtotal:           3600,
			Total:                   90930,
		}, nil)

		r := gin.New()
		r.POST("/v1/requests/quote", h.Quote)

		body := `{"drilling_depth_ft":437,"drilling_rate":70,"rate_variant":"tiered"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests/quote", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if res["total"] != 90930.0 || res["drilling_subtotal"] != 32330.0 {
			t.Fatalf("unexpected response: %+v", res)
		}
	})

	t.Run("invalid variant maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		uc.EXPECT().Quote(gomock.Any()).Return(pricing.CostResult{}, usecase.ErrInvalidRateVariant)

		r := gin.New()
		r.POST("/v1/requests/quote", h.Quote)

		body := `{"drilling_depth_ft":437,"drilling_rate":70,"rate_variant":"progressive"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests/quote", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestServiceRequestHandler_StatusAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		uc.EXPECT().ApproveByID(gomock.Any(), "req-1").
			Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusApproved}, nil)

		r := gin.New()
		r.PATCH("/v1/requests/:id/approve", h.ApproveRequest)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.ServiceRequest{}, usecase.ErrRequestNotFound)

		r := gin.New()
		r.GET("/v1/requests/:id", h.GetRequest)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
