package usecase

import (
	"context"
	"errors"
	"testing"

	"borewell_ops/internal/domain/entities"
	"borewell_ops/internal/domain/pricing"
	mock_interfaces "borewell_ops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func tieredPricingCmd() RequestPricingCommand {
	return RequestPricingCommand{
		DrillingDepthFt:        437,
		DrillingRate:           70,
		RateVariant:            pricing.VariantTiered,
		CasingDepthFt:          100,
		CasingRate:             250,
		CasingKind:             `7"`,
		SecondaryCasingDepthFt: 50,
		SecondaryCasingRate:    600,
		Items: []entities.RequestItem{
			{ProductID: "pump-1", Name: "1HP pump", Quantity: 3, UnitPrice: 1200},
		},
	}
}

func TestServiceRequestUseCase_Quote(t *testing.T) {
	t.Run("invalid variant", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil)
		cmd := tieredPricingCmd()
		cmd.RateVariant = "progressive"
		_, err := uc.Quote(cmd)
		if !errors.Is(err, ErrInvalidRateVariant) {
			t.Fatalf("expected ErrInvalidRateVariant, got %v", err)
		}
	})

	t.Run("invalid line item", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil)
		cmd := tieredPricingCmd()
		cmd.Items = []entities.RequestItem{{ProductID: "p-1", Quantity: 0, UnitPrice: 10}}
		_, err := uc.Quote(cmd)
		if !errors.Is(err, ErrInvalidLineItem) {
			t.Fatalf("expected ErrInvalidLineItem, got %v", err)
		}
	})

	t.Run("casing deeper than borehole", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil)
		cmd := tieredPricingCmd()
		cmd.CasingDepthFt = 500
		_, err := uc.Quote(cmd)

		var ruleErr *PricingRuleError
		if !errors.As(err, &ruleErr) {
			t.Fatalf("expected PricingRuleError, got %v", err)
		}
		if ruleErr.Outcome.Reason != pricing.ReasonCasingExceedsDrillingDepth {
			t.Fatalf("unexpected reason: %+v", ruleErr.Outcome)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil)
		res, err := uc.Quote(tieredPricingCmd())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Total != 90930 {
			t.Fatalf("expected total 90930, got %v", res.Total)
		}
		if res.DrillingSubtotal != 32330 || res.CasingSubtotal != 25000 || res.SecondaryCasingSubtotal != 30000 || res.ItemsSubtotal != 3600 {
			t.Fatalf("unexpected breakdown: %+v", res)
		}
	})
}

func TestServiceRequestUseCase_CreateRequest(t *testing.T) {
	t.Run("missing customer name", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil)
		_, err := uc.CreateRequest(context.Background(), CreateRequestCommand{
			Phone:                 "9876543210",
			RequestPricingCommand: tieredPricingCmd(),
		})
		if !errors.Is(err, ErrMissingCustomerName) {
			t.Fatalf("expected ErrMissingCustomerName, got %v", err)
		}
	})

	t.Run("missing phone", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil)
		_, err := uc.CreateRequest(context.Background(), CreateRequestCommand{
			CustomerName:          "Raju",
			Phone:                 "   ",
			RequestPricingCommand: tieredPricingCmd(),
		})
		if !errors.Is(err, ErrMissingCustomerPhone) {
			t.Fatalf("expected ErrMissingCustomerPhone, got %v", err)
		}
	})

	t.Run("pricing rule failure blocks create", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil)
		cmd := tieredPricingCmd()
		cmd.SecondaryCasingDepthFt = 1000
		_, err := uc.CreateRequest(context.Background(), CreateRequestCommand{
			CustomerName:          "Raju",
			Phone:                 "9876543210",
			RequestPricingCommand: cmd,
		})

		var ruleErr *PricingRuleError
		if !errors.As(err, &ruleErr) {
			t.Fatalf("expected PricingRuleError, got %v", err)
		}
		if ruleErr.Outcome.Reason != pricing.ReasonSecondaryCasingExceedsDrillingDepth {
			t.Fatalf("unexpected reason: %+v", ruleErr.Outcome)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceRequest{}, errors.New("db"))

		_, err := uc.CreateRequest(context.Background(), CreateRequestCommand{
			CustomerName:          "Raju",
			Phone:                 "9876543210",
			RequestPricingCommand: tieredPricingCmd(),
		})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceRequest{})).DoAndReturn(
			func(_ context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error) {
				if r.ID == "" || r.CustomerName != "Raju" || r.Phone != "9876543210" {
					t.Fatalf("unexpected request: %+v", r)
				}
				if r.Total != 90930 {
					t.Fatalf("expected server-computed total 90930, got %v", r.Total)
				}
				if r.Status != entities.RequestStatusPending {
					t.Fatalf("expected pending status, got %s", r.Status)
				}
				if r.CreatedAt.IsZero() || r.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return r, nil
			},
		)

		res, err := uc.CreateRequest(context.Background(), CreateRequestCommand{
			CustomerName:          " Raju ",
			Phone:                 " 9876543210 ",
			Site:                  "Hosur Road",
			RequestPricingCommand: tieredPricingCmd(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestServiceRequestUseCase_StatusFlows(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *ServiceRequestUseCase, ctx context.Context, id string) (entities.ServiceRequest, error)
		status entities.RequestStatus
	}{
		{name: "approve", call: (*ServiceRequestUseCase).ApproveByID, status: entities.RequestStatusApproved},
		{name: "reject", call: (*ServiceRequestUseCase).RejectByID, status: entities.RequestStatusRejected},
		{name: "cancel", call: (*ServiceRequestUseCase).CancelByID, status: entities.RequestStatusCancelled},
	}

	for _, tc := range cases {
		t.Run(tc.name+" invalid id", func(t *testing.T) {
			uc := NewServiceRequestUseCase(nil)
			_, err := tc.call(uc, context.Background(), "")
			if !errors.Is(err, ErrInvalidRequestID) {
				t.Fatalf("expected ErrInvalidRequestID, got %v", err)
			}
		})

		t.Run(tc.name+" repo error", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
			uc := NewServiceRequestUseCase(repo)
			repo.EXPECT().UpdateStatusByID(gomock.Any(), "req-1", tc.status).Return(entities.ServiceRequest{}, errors.New("db"))

			_, err := tc.call(uc, context.Background(), "req-1")
			if err == nil || err.Error() != "db" {
				t.Fatalf("expected db error, got %v", err)
			}
		})

		t.Run(tc.name+" not found", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
			uc := NewServiceRequestUseCase(repo)
			repo.EXPECT().UpdateStatusByID(gomock.Any(), "req-1", tc.status).Return(entities.ServiceRequest{}, nil)

			_, err := tc.call(uc, context.Background(), "req-1")
			if !errors.Is(err, ErrRequestNotFound) {
				t.Fatalf("expected ErrRequestNotFound, got %v", err)
			}
		})

		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
			uc := NewServiceRequestUseCase(repo)
			expected := entities.ServiceRequest{ID: "req-1", Status: tc.status}
			repo.EXPECT().UpdateStatusByID(gomock.Any(), "req-1", tc.status).Return(expected, nil)

			res, err := tc.call(uc, context.Background(), " req-1 ")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.status {
				t.Fatalf("expected %s got %s", tc.status, res.Status)
			}
		})
	}
}

func TestServiceRequestUseCase_UpdatePricing(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil)
		_, err := uc.UpdatePricing(context.Background(), " ", tieredPricingCmd())
		if !errors.Is(err, ErrInvalidRequestID) {
			t.Fatalf("expected ErrInvalidRequestID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{}, nil)

		_, err := uc.UpdatePricing(context.Background(), "req-1", tieredPricingCmd())
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("recomputes total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo)

		existing := entities.ServiceRequest{
			ID:           "req-1",
			CustomerName: "Raju",
			Phone:        "9876543210",
			Status:       entities.RequestStatusPending,
			Total:        12345,
		}
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(existing, nil)
		repo.EXPECT().UpdatePricingByID(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceRequest{})).DoAndReturn(
			func(_ context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error) {
				if r.Total != 90930 {
					t.Fatalf("expected recomputed total 90930, got %v", r.Total)
				}
				if r.CustomerName != "Raju" || r.Status != entities.RequestStatusPending {
					t.Fatalf("identity/status must be untouched: %+v", r)
				}
				return r, nil
			},
		)

		res, err := uc.UpdatePricing(context.Background(), "req-1", tieredPricingCmd())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Total != 90930 {
			t.Fatalf("unexpected total: %v", res.Total)
		}
	})
}

func TestServiceRequestUseCase_Getters(t *testing.T) {
	t.Run("GetByID not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{}, nil)

		_, err := uc.GetByID(context.Background(), "req-1")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("GetByID success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1"}, nil)

		res, err := uc.GetByID(context.Background(), " req-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "req-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("ListByPhone empty phone", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil)
		_, err := uc.ListByPhone(context.Background(), "  ")
		if !errors.Is(err, ErrMissingCustomerPhone) {
			t.Fatalf("expected ErrMissingCustomerPhone, got %v", err)
		}
	})

	t.Run("ListByPhone success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo)
		repo.EXPECT().ListByPhone(gomock.Any(), "9876543210").Return([]entities.ServiceRequest{{ID: "req-1"}}, nil)

		res, err := uc.ListByPhone(context.Background(), " 9876543210 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "req-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
