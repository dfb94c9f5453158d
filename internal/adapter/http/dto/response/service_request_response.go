package response

import (
	"time"

	"borewell_ops/internal/domain/entities"
	"borewell_ops/internal/domain/pricing"
)

// QuoteResponse mirrors pricing.CostResult on the wire. Values are raw
// numerics; currency formatting is the consumer's concern.
type QuoteResponse struct {
	DrillingSubtotal        float64 `json:"drilling_subtotal"`
	CasingSubtotal          float64 `json:"casing_subtotal"`
	SecondaryCasingSubtotal float64 `json:"secondary_casing_subtotal"`
	ItemsSubtotal           float64 `json:"items_subtotal"`
	Total                   float64 `json:"total"`
}

func FromCostResult(r pricing.CostResult) QuoteResponse {
	return QuoteResponse{
		DrillingSubtotal:        r.DrillingSubtotal,
		CasingSubtotal:          r.CasingSubtotal,
		SecondaryCasingSubtotal: r.SecondaryCasingSubtotal,
		ItemsSubtotal:           r.ItemsSubtotal,
		Total:                   r.Total,
	}
}

type RequestItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type ServiceRequestResponse struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Site         string `json:"site"`

	DrillingDepthFt float64 `json:"drilling_depth_ft"`
	DrillingRate    float64 `json:"drilling_rate"`
	RateVariant     string  `json:"rate_variant"`

	CasingDepthFt float64 `json:"casing_depth_ft"`
	CasingRate    float64 `json:"casing_rate"`
	CasingKind    string  `json:"casing_kind"`

	SecondaryCasingDepthFt float64 `json:"secondary_casing_depth_ft"`
	SecondaryCasingRate    float64 `json:"secondary_casing_rate"`

	Items []RequestItemResponse `json:"items"`

	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromServiceRequest(r entities.ServiceRequest) ServiceRequestResponse {
	items := make([]RequestItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, RequestItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return ServiceRequestResponse{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Site:         r.Site,

		DrillingDepthFt: r.DrillingDepthFt,
		DrillingRate:    r.DrillingRate,
		RateVariant:     string(r.RateVariant),

		CasingDepthFt: r.CasingDepthFt,
		CasingRate:    r.CasingRate,
		CasingKind:    r.CasingKind,

		SecondaryCasingDepthFt: r.SecondaryCasingDepthFt,
		SecondaryCasingRate:    r.SecondaryCasingRate,

		Items: items,

		Total:     r.Total,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
