package interfaces

import (
	"context"

	"borewell_ops/internal/domain/entities"
)

// IServiceRequestRepository abstracts DynamoDB persistence for ServiceRequest.
//
// The service must be able to:
//   - create a request once the office accepts the computed total
//   - update status by id (approve/reject/cancel)
//   - re-persist pricing fields and the recomputed total after an edit

type IServiceRequestRepository interface {
	Create(ctx context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	ListByPhone(ctx context.Context, phone string) ([]entities.ServiceRequest, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.RequestStatus) (entities.ServiceRequest, error)
	UpdatePricingByID(ctx context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error)
}
