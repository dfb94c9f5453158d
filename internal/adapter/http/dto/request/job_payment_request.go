package request

import "encoding/json"

// JobPaymentCreateRequest is the payload for the create-and-process-payment
// route.
//
// `mp_payload` is stored as-is (raw JSON) to support varying Mercado Pago
// schemas.

type JobPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
