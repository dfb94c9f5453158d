package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"borewell_ops/internal/domain/entities"
	mock_interfaces "borewell_ops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestJobPaymentUseCase_CreateAndApprove(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"pix"}`)

	t.Run("invalid request id", func(t *testing.T) {
		uc := NewJobPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "  ", payload)
		if !errors.Is(err, ErrInvalidPaymentRequestID) {
			t.Fatalf("expected ErrInvalidPaymentRequestID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewJobPaymentUseCase(nil, nil, gateway)

		_, err := uc.CreateAndApprove(context.Background(), "req-1", json.RawMessage("{"))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("request not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		requestRepo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewJobPaymentUseCase(nil, requestRepo, gateway)

		requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "req-1", payload)
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("request not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		requestRepo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewJobPaymentUseCase(nil, requestRepo, gateway)

		requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").
			Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusPending}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "req-1", payload)
		if !errors.Is(err, ErrRequestNotApproved) {
			t.Fatalf("expected ErrRequestNotApproved, got %v", err)
		}
	})

	t.Run("amount forced to stored total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		requestRepo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		paymentRepo := mock_interfaces.NewMockIJobPaymentRepository(ctrl)
		uc := NewJobPaymentUseCase(paymentRepo, requestRepo, gateway)

		requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").
			Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusApproved, Total: 90930}, nil)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, enriched json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(enriched, &m); err != nil {
					t.Fatalf("enriched payload not json: %v", err)
				}
				if m["transaction_amount"] != 90930.0 {
					t.Fatalf("expected transaction_amount forced to 90930, got %v", m["transaction_amount"])
				}
				if m["external_reference"] != "req-1" {
					t.Fatalf("expected external_reference req-1, got %v", m["external_reference"])
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1","status":"approved"}`), nil
			},
		)

		paymentRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.JobPayment{})).DoAndReturn(
			func(_ context.Context, p entities.JobPayment) (entities.JobPayment, error) {
				if p.ID != "mp-1" || p.RequestID != "req-1" || p.Status != entities.PaymentStatusApproved {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)

		res, err := uc.CreateAndApprove(context.Background(), " req-1 ", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "mp-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("gateway error classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		requestRepo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewJobPaymentUseCase(nil, requestRepo, gateway)

		requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").
			Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusApproved, Total: 100}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		_, err := uc.CreateAndApprove(context.Background(), "req-1", payload)
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})
}

func TestJobPaymentUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid id", func(t *testing.T) {
		uc := NewJobPaymentUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobPaymentRepository(ctrl)
		uc := NewJobPaymentUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.JobPayment{}, nil)

		_, err := uc.GetByID(context.Background(), "pay-1")
		if !errors.Is(err, ErrJobPaymentNotFound) {
			t.Fatalf("expected ErrJobPaymentNotFound, got %v", err)
		}
	})

	t.Run("ListByRequestID success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobPaymentRepository(ctrl)
		uc := NewJobPaymentUseCase(repo, nil, nil)
		repo.EXPECT().ListByRequestID(gomock.Any(), "req-1").Return([]entities.JobPayment{{ID: "pay-1"}}, nil)

		res, err := uc.ListByRequestID(context.Background(), " req-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "pay-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
