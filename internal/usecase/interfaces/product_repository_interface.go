package interfaces

import (
	"context"

	"borewell_ops/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for the product catalog.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	UpdatePriceByID(ctx context.Context, id string, newPrice float64) (entities.Product, error)
}
