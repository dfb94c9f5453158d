package pricing

// Reason identifies which consistency rule a CostInput broke.
type Reason string

const (
	// ReasonNegativeTotal should be unreachable with sane inputs; it fires
	// when a caller lets a negative (or non-finite) depth or rate through.
	ReasonNegativeTotal Reason = "NEGATIVE_TOTAL"
	// ReasonCasingExceedsDrillingDepth fires when more primary casing is
	// recorded than borehole drilled.
	ReasonCasingExceedsDrillingDepth Reason = "CASING_EXCEEDS_DRILLING_DEPTH"
	// ReasonSecondaryCasingExceedsDrillingDepth is the same rule for the
	// secondary casing.
	ReasonSecondaryCasingExceedsDrillingDepth Reason = "SECONDARY_CASING_EXCEEDS_DRILLING_DEPTH"
)

// Outcome is the result of Validate. Business-rule violations come back as
// data, never as errors; the caller surfaces Message to the end user and
// blocks submission while Valid is false.
type Outcome struct {
	Valid   bool
	Reason  Reason
	Message string
}

func valid() Outcome {
	return Outcome{Valid: true}
}

func invalid(reason Reason, message string) Outcome {
	return Outcome{Reason: reason, Message: message}
}

// Validate checks a CostInput in a fixed order and stops at the first
// failure, since the caller shows one error at a time.
//
// The caller is expected to have checked its own required fields (customer
// identity, contact) before invoking the engine; those are not priceable
// concerns and are not re-checked here.
func Validate(in CostInput, v Variant) Outcome {
	// The comparison is written so NaN totals also fail it.
	if total := ComputeTotal(in, v).Total; !(total >= 0) {
		return invalid(ReasonNegativeTotal, "Computed total is negative; check depths and rates for stray minus signs")
	}
	if in.CasingDepthFt > in.DrillingDepthFt {
		return invalid(ReasonCasingExceedsDrillingDepth, "Casing depth cannot exceed drilling depth")
	}
	if in.SecondaryCasingDepthFt > in.DrillingDepthFt {
		return invalid(ReasonSecondaryCasingExceedsDrillingDepth, "Secondary casing depth cannot exceed drilling depth")
	}
	return valid()
}
