package response

import (
	"time"

	"borewell_ops/internal/domain/entities"
)

type JobPaymentResponse struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromJobPayment(p entities.JobPayment) JobPaymentResponse {
	return JobPaymentResponse{
		ID:           p.ID,
		RequestID:    p.RequestID,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}
