package interfaces

import (
	"context"

	"borewell_ops/internal/domain/entities"
)

// IJobPaymentRepository abstracts DynamoDB persistence for JobPayment.

type IJobPaymentRepository interface {
	Create(ctx context.Context, p entities.JobPayment) (entities.JobPayment, error)
	GetByID(ctx context.Context, id string) (entities.JobPayment, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.JobPayment, error)
}
