package entities

import (
	"time"

	"borewell_ops/internal/domain/pricing"
)

// RequestStatus represents the lifecycle of a borewell service request.
//
// Domain notes:
//   - This service is the source of truth for request and payment state.
//   - Transitions are driven by the office console: a pending request is
//     approved or rejected by the customer, and either side may cancel.

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// RequestItem is a catalog product attached to a service request.
//
// UnitPrice is the price frozen when the item was added; it is never re-read
// from the live catalog, so later price changes leave historical requests
// untouched.
type RequestItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// ServiceRequest is a drilling job persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Total is always recomputed server-side from the depth/rate/item fields
//     via the pricing engine; a client-supplied total is never trusted.

type ServiceRequest struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Site         string `json:"site"`

	DrillingDepthFt float64         `json:"drilling_depth_ft"`
	DrillingRate    float64         `json:"drilling_rate"`
	RateVariant     pricing.Variant `json:"rate_variant"`

	CasingDepthFt float64 `json:"casing_depth_ft"`
	CasingRate    float64 `json:"casing_rate"`
	CasingKind    string  `json:"casing_kind"`

	SecondaryCasingDepthFt float64 `json:"secondary_casing_depth_ft"`
	SecondaryCasingRate    float64 `json:"secondary_casing_rate"`

	Items []RequestItem `json:"items,omitempty"`

	Total     float64       `json:"total"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// CostInput snapshots the priceable fields for the pricing engine.
func (r ServiceRequest) CostInput() pricing.CostInput {
	items := make([]pricing.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, pricing.LineItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return pricing.CostInput{
		DrillingDepthFt:        r.DrillingDepthFt,
		DrillingRate:           r.DrillingRate,
		CasingDepthFt:          r.CasingDepthFt,
		CasingRate:             r.CasingRate,
		CasingKind:             r.CasingKind,
		SecondaryCasingDepthFt: r.SecondaryCasingDepthFt,
		SecondaryCasingRate:    r.SecondaryCasingRate,
		Items:                  items,
	}
}
