package request

import (
	"encoding/json"
	"testing"
)

func TestLenientNumber_Unmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"plain number", `437.5`, 437.5},
		{"quoted number", `"250"`, 250},
		{"quoted with spaces", `" 70 "`, 70},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
		{"garbage", `"12ft"`, 0},
		{"nan string", `"NaN"`, 0},
		{"inf string", `"+Inf"`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var n LenientNumber
			if err := json.Unmarshal([]byte(tc.in), &n); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n.Float64() != tc.want {
				t.Fatalf("got %v, want %v", n.Float64(), tc.want)
			}
		})
	}
}

func TestServiceRequestPricingRequest_ToCommand(t *testing.T) {
	var payload ServiceRequestPricingRequest
	body := `{
		"drilling_depth_ft": "437",
		"drilling_rate": 70,
		"rate_variant": "Tiered",
		"casing_depth_ft": 100,
		"casing_rate": "250",
		"casing_kind": "7\"",
		"secondary_casing_depth_ft": 50,
		"secondary_casing_rate": 600,
		"items": [{"product_id": " pump-1 ", "name": "1HP pump", "quantity": 3, "unit_price": 1200}]
	}`
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cmd := payload.ToCommand()
	if cmd.DrillingDepthFt != 437 || cmd.DrillingRate != 70 {
		t.Fatalf("unexpected drilling fields: %+v", cmd)
	}
	if string(cmd.RateVariant) != "tiered" {
		t.Fatalf("expected variant normalized to tiered, got %q", cmd.RateVariant)
	}
	if len(cmd.Items) != 1 || cmd.Items[0].ProductID != "pump-1" || cmd.Items[0].UnitPrice != 1200 {
		t.Fatalf("unexpected items: %+v", cmd.Items)
	}
}
