package request

import (
	"strings"

	"borewell_ops/internal/domain/entities"
	"borewell_ops/internal/domain/pricing"
	"borewell_ops/internal/usecase"
)

type RequestItemPayload struct {
	ProductID string        `json:"product_id" binding:"required"`
	Name      string        `json:"name"`
	Quantity  int           `json:"quantity" binding:"required"`
	UnitPrice LenientNumber `json:"unit_price"`
}

// ServiceRequestPricingRequest carries the priceable fields of a request.
// The drilling-rate variant is always explicit in the payload; the server
// never infers it from the numbers.
type ServiceRequestPricingRequest struct {
	DrillingDepthFt LenientNumber `json:"drilling_depth_ft"`
	DrillingRate    LenientNumber `json:"drilling_rate"`
	RateVariant     string        `json:"rate_variant" binding:"required"`

	CasingDepthFt LenientNumber `json:"casing_depth_ft"`
	CasingRate    LenientNumber `json:"casing_rate"`
	CasingKind    string        `json:"casing_kind"`

	SecondaryCasingDepthFt LenientNumber `json:"secondary_casing_depth_ft"`
	SecondaryCasingRate    LenientNumber `json:"secondary_casing_rate"`

	Items []RequestItemPayload `json:"items"`
}

func (r ServiceRequestPricingRequest) ToCommand() usecase.RequestPricingCommand {
	items := make([]entities.RequestItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.RequestItem{
			ProductID: strings.TrimSpace(it.ProductID),
			Name:      strings.TrimSpace(it.Name),
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.Float64(),
		})
	}
	return usecase.RequestPricingCommand{
		DrillingDepthFt:        r.DrillingDepthFt.Float64(),
		DrillingRate:           r.DrillingRate.Float64(),
		RateVariant:            pricing.Variant(strings.TrimSpace(strings.ToLower(r.RateVariant))),
		CasingDepthFt:          r.CasingDepthFt.Float64(),
		CasingRate:             r.CasingRate.Float64(),
		CasingKind:             strings.TrimSpace(r.CasingKind),
		SecondaryCasingDepthFt: r.SecondaryCasingDepthFt.Float64(),
		SecondaryCasingRate:    r.SecondaryCasingRate.Float64(),
		Items:                  items,
	}
}

// CreateServiceRequestRequest is the submit payload: customer identity plus
// the pricing fields. Totals are never accepted from the client.
type CreateServiceRequestRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Site         string `json:"site"`

	ServiceRequestPricingRequest
}

func (r CreateServiceRequestRequest) ToCommand() usecase.CreateRequestCommand {
	return usecase.CreateRequestCommand{
		CustomerName:          strings.TrimSpace(r.CustomerName),
		Phone:                 strings.TrimSpace(r.Phone),
		Site:                  strings.TrimSpace(r.Site),
		RequestPricingCommand: r.ServiceRequestPricingRequest.ToCommand(),
	}
}
