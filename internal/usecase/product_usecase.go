package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"borewell_ops/internal/domain/entities"
	"borewell_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidProductID    = errors.New("invalid product id")
	ErrMissingProductName  = errors.New("missing product name")
	ErrInvalidProductPrice = errors.New("invalid product price")
	ErrInvalidQuantity     = errors.New("invalid quantity")
)

// IProductUseCase exposes catalog operations.
//
// FreezeItem is the price-freeze boundary: it reads the live catalog price
// exactly once and hands back a RequestItem carrying a copied scalar. The
// request side never sees the catalog again.

type IProductUseCase interface {
	CreateProduct(ctx context.Context, name, category string, unitPrice float64, stockQty int) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	UpdatePrice(ctx context.Context, id string, newPrice float64) (entities.Product, error)
	FreezeItem(ctx context.Context, productID string, quantity int) (entities.RequestItem, error)
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func (u *ProductUseCase) CreateProduct(ctx context.Context, name, category string, unitPrice float64, stockQty int) (entities.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Product{}, ErrMissingProductName
	}
	if unitPrice < 0 {
		return entities.Product{}, ErrInvalidProductPrice
	}

	now := time.Now().UTC()
	p := entities.Product{
		ID:        uuid.NewString(),
		Name:      name,
		Category:  strings.TrimSpace(category),
		UnitPrice: unitPrice,
		StockQty:  stockQty,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

func (u *ProductUseCase) UpdatePrice(ctx context.Context, id string, newPrice float64) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	if newPrice < 0 {
		return entities.Product{}, ErrInvalidProductPrice
	}

	updated, err := u.repo.UpdatePriceByID(ctx, id, newPrice)
	if err != nil {
		return entities.Product{}, err
	}
	if updated.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return updated, nil
}

// FreezeItem copies the current catalog price into a RequestItem. Updating
// the product afterwards does not touch items frozen earlier.
func (u *ProductUseCase) FreezeItem(ctx context.Context, productID string, quantity int) (entities.RequestItem, error) {
	if quantity < 1 {
		return entities.RequestItem{}, ErrInvalidQuantity
	}

	p, err := u.GetByID(ctx, productID)
	if err != nil {
		return entities.RequestItem{}, err
	}

	return entities.RequestItem{
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  quantity,
		UnitPrice: p.UnitPrice,
	}, nil
}
