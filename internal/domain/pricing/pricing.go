// Package pricing computes borewell service costs.
//
// Everything in this package is pure: no I/O, no clocks, no hidden state.
// Callers recompute on every field change, so every function must be cheap
// and deterministic.
package pricing

// Variant selects the drilling-rate policy. The caller always picks one
// explicitly; the engine never guesses from input shape.
type Variant string

const (
	// VariantFlat bills the whole borehole at one uniform rate.
	VariantFlat Variant = "flat"
	// VariantTiered bills the first 300 ft at the base rate, then every
	// subsequent 100 ft band at the previous band's rate plus 10.
	VariantTiered Variant = "tiered"
)

// Tier geometry for VariantTiered.
const (
	firstTierFt       = 300.0
	tierBandFt        = 100.0
	tierRateIncrement = 10.0
)

// LineItem is a catalog product attached to a service request.
//
// UnitPrice is copied from the catalog at the moment the item is added and
// never re-read. Holding only the scalar makes the price-freeze structural:
// later catalog changes cannot retroactively alter a historical total.
type LineItem struct {
	ProductID string
	Quantity  int
	UnitPrice float64
}

// CostInput is a snapshot of the priceable fields of a service request.
type CostInput struct {
	DrillingDepthFt float64
	DrillingRate    float64

	CasingDepthFt float64
	CasingRate    float64
	// CasingKind labels the primary casing diameter (e.g. `7"`).
	// Informational only; it never affects price.
	CasingKind string

	SecondaryCasingDepthFt float64
	SecondaryCasingRate    float64

	Items []LineItem
}

// CostResult is the per-component breakdown plus the grand total.
type CostResult struct {
	DrillingSubtotal        float64
	CasingSubtotal          float64
	SecondaryCasingSubtotal float64
	ItemsSubtotal           float64
	Total                   float64
}

// DrillingSubtotal prices the borehole under the given variant.
func DrillingSubtotal(depthFt, baseRate float64, v Variant) float64 {
	if depthFt == 0 || baseRate == 0 {
		return 0
	}
	if v != VariantTiered {
		return depthFt * baseRate
	}

	billed := 0.0
	remaining := depthFt
	rate := baseRate

	// First slice is at most 300 ft and always at the base rate.
	slice := minf(remaining, firstTierFt)
	billed += slice * rate
	remaining -= slice

	// Each further band is up to 100 ft at rate+10 over the previous band.
	// A partial band bills the actual remaining footage, not a full band.
	for remaining > 0 {
		rate += tierRateIncrement
		slice = minf(remaining, tierBandFt)
		billed += slice * rate
		remaining -= slice
	}
	return billed
}

// FlatSubtotal prices a uniform-rate component (used for both casings).
func FlatSubtotal(depthFt, rate float64) float64 {
	return depthFt * rate
}

// ItemsSubtotal sums quantity times frozen unit price over all line items.
func ItemsSubtotal(items []LineItem) float64 {
	total := 0.0
	for _, it := range items {
		total += float64(it.Quantity) * it.UnitPrice
	}
	return total
}

// ComputeTotal prices a full request. Pure and idempotent; safe to call on
// every keystroke.
func ComputeTotal(in CostInput, v Variant) CostResult {
	r := CostResult{
		DrillingSubtotal:        DrillingSubtotal(in.DrillingDepthFt, in.DrillingRate, v),
		CasingSubtotal:          FlatSubtotal(in.CasingDepthFt, in.CasingRate),
		SecondaryCasingSubtotal: FlatSubtotal(in.SecondaryCasingDepthFt, in.SecondaryCasingRate),
		ItemsSubtotal:           ItemsSubtotal(in.Items),
	}
	r.Total = r.DrillingSubtotal + r.CasingSubtotal + r.SecondaryCasingSubtotal + r.ItemsSubtotal
	return r
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
