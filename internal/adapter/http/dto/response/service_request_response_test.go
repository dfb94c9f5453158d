package response

import (
	"testing"
	"time"

	"borewell_ops/internal/domain/entities"
	"borewell_ops/internal/domain/pricing"
)

func TestFromCostResult(t *testing.T) {
	r := pricing.CostResult{
		DrillingSubtotal:        32330,
		CasingSubtotal:          25000,
		SecondaryCasingSubtotal: 30000,
		ItemsSubtotal:           3600,
		Total:                   90930,
	}

	res := FromCostResult(r)
	if res.Total != 90930 || res.DrillingSubtotal != 32330 {
		t.Fatalf("unexpected mapping: %+v", res)
	}
	if res.CasingSubtotal != 25000 || res.SecondaryCasingSubtotal != 30000 || res.ItemsSubtotal != 3600 {
		t.Fatalf("unexpected subtotals: %+v", res)
	}
}

func TestFromServiceRequest(t *testing.T) {
	now := time.Now().UTC()
	r := entities.ServiceRequest{
		ID:           "req-1",
		CustomerName: "Raju",
		Phone:        "9876543210",
		RateVariant:  pricing.VariantTiered,
		CasingKind:   `7"`,
		Items: []entities.RequestItem{
			{ProductID: "pump-1", Name: "1HP pump", Quantity: 3, UnitPrice: 1200},
		},
		Total:     90930,
		Status:    entities.RequestStatusApproved,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromServiceRequest(r)
	if res.ID != "req-1" || res.CustomerName != "Raju" {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if res.RateVariant != "tiered" || res.Status != "approved" {
		t.Fatalf("unexpected enum mapping: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].UnitPrice != 1200 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}
