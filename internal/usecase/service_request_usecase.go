package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"borewell_ops/internal/domain/entities"
	"borewell_ops/internal/domain/pricing"
	"borewell_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound      = errors.New("service request not found")
	ErrInvalidRequestID     = errors.New("invalid service request id")
	ErrMissingCustomerName  = errors.New("missing customer name")
	ErrMissingCustomerPhone = errors.New("missing customer phone")
	ErrInvalidRateVariant   = errors.New("invalid drilling rate variant")
	ErrInvalidLineItem      = errors.New("invalid line item")
)

// PricingRuleError carries a failed pricing.Outcome across the usecase
// boundary. Business-rule violations stay structured data end to end; this
// wrapper only exists so they can travel an error return.
type PricingRuleError struct {
	Outcome pricing.Outcome
}

func (e *PricingRuleError) Error() string {
	return e.Outcome.Message
}

// RequestPricingCommand groups the priceable fields of a request as entered
// in the office console. Totals are never part of a command; they are always
// derived.
type RequestPricingCommand struct {
	DrillingDepthFt float64
	DrillingRate    float64
	RateVariant     pricing.Variant

	CasingDepthFt float64
	CasingRate    float64
	CasingKind    string

	SecondaryCasingDepthFt float64
	SecondaryCasingRate    float64

	Items []entities.RequestItem
}

// CreateRequestCommand is RequestPricingCommand plus customer identity.
type CreateRequestCommand struct {
	CustomerName string
	Phone        string
	Site         string

	RequestPricingCommand
}

// IServiceRequestUseCase exposes borewell service request operations.
//
// Operation map:
//   - live quote while the office types => Quote()
//   - submit a new request => CreateRequest()
//   - customer decision => ApproveByID()/RejectByID(), CancelByID()
//   - edit depths/rates/items after creation => UpdatePricing()

type IServiceRequestUseCase interface {
	Quote(cmd RequestPricingCommand) (pricing.CostResult, error)
	CreateRequest(ctx context.Context, cmd CreateRequestCommand) (entities.ServiceRequest, error)
	ApproveByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	RejectByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	CancelByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	UpdatePricing(ctx context.Context, id string, cmd RequestPricingCommand) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	ListByPhone(ctx context.Context, phone string) ([]entities.ServiceRequest, error)
}

type ServiceRequestUseCase struct {
	repo interfaces.IServiceRequestRepository
}

var _ IServiceRequestUseCase = (*ServiceRequestUseCase)(nil)

func NewServiceRequestUseCase(repo interfaces.IServiceRequestRepository) *ServiceRequestUseCase {
	return &ServiceRequestUseCase{repo: repo}
}

// Quote prices a draft without persisting anything. It backs the live total
// shown while the office fills the form, so it must stay side-effect free.
func (u *ServiceRequestUseCase) Quote(cmd RequestPricingCommand) (pricing.CostResult, error) {
	in, variant, err := resolvePricing(cmd)
	if err != nil {
		return pricing.CostResult{}, err
	}
	if out := pricing.Validate(in, variant); !out.Valid {
		return pricing.CostResult{}, &PricingRuleError{Outcome: out}
	}
	return pricing.ComputeTotal(in, variant), nil
}

func (u *ServiceRequestUseCase) CreateRequest(ctx context.Context, cmd CreateRequestCommand) (entities.ServiceRequest, error) {
	cmd.CustomerName = strings.TrimSpace(cmd.CustomerName)
	cmd.Phone = strings.TrimSpace(cmd.Phone)
	if cmd.CustomerName == "" {
		return entities.ServiceRequest{}, ErrMissingCustomerName
	}
	if cmd.Phone == "" {
		return entities.ServiceRequest{}, ErrMissingCustomerPhone
	}

	result, err := u.Quote(cmd.RequestPricingCommand)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	now := time.Now().UTC()
	r := entities.ServiceRequest{
		ID:           uuid.NewString(),
		CustomerName: cmd.CustomerName,
		Phone:        cmd.Phone,
		Site:         strings.TrimSpace(cmd.Site),

		DrillingDepthFt: cmd.DrillingDepthFt,
		DrillingRate:    cmd.DrillingRate,
		RateVariant:     cmd.RateVariant,

		CasingDepthFt: cmd.CasingDepthFt,
		CasingRate:    cmd.CasingRate,
		CasingKind:    cmd.CasingKind,

		SecondaryCasingDepthFt: cmd.SecondaryCasingDepthFt,
		SecondaryCasingRate:    cmd.SecondaryCasingRate,

		Items: cmd.Items,

		Total:     result.Total,
		Status:    entities.RequestStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, r)
}

func (u *ServiceRequestUseCase) ApproveByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	return u.updateStatusByID(ctx, id, entities.RequestStatusApproved)
}

func (u *ServiceRequestUseCase) RejectByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	return u.updateStatusByID(ctx, id, entities.RequestStatusRejected)
}

func (u *ServiceRequestUseCase) CancelByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	return u.updateStatusByID(ctx, id, entities.RequestStatusCancelled)
}

func (u *ServiceRequestUseCase) updateStatusByID(ctx context.Context, id string, status entities.RequestStatus) (entities.ServiceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if updated.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	return updated, nil
}

// UpdatePricing replaces the priceable fields of an existing request and
// recomputes its total. Identity and status are untouched.
func (u *ServiceRequestUseCase) UpdatePricing(ctx context.Context, id string, cmd RequestPricingCommand) (entities.ServiceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestID
	}

	result, err := u.Quote(cmd)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if existing.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}

	existing.DrillingDepthFt = cmd.DrillingDepthFt
	existing.DrillingRate = cmd.DrillingRate
	existing.RateVariant = cmd.RateVariant
	existing.CasingDepthFt = cmd.CasingDepthFt
	existing.CasingRate = cmd.CasingRate
	existing.CasingKind = cmd.CasingKind
	existing.SecondaryCasingDepthFt = cmd.SecondaryCasingDepthFt
	existing.SecondaryCasingRate = cmd.SecondaryCasingRate
	existing.Items = cmd.Items
	existing.Total = result.Total
	existing.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.UpdatePricingByID(ctx, existing)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if updated.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	return updated, nil
}

func (u *ServiceRequestUseCase) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	return r, nil
}

func (u *ServiceRequestUseCase) ListByPhone(ctx context.Context, phone string) ([]entities.ServiceRequest, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrMissingCustomerPhone
	}
	return u.repo.ListByPhone(ctx, phone)
}

// resolvePricing converts a command into engine input, rejecting malformed
// commands before the engine sees them.
func resolvePricing(cmd RequestPricingCommand) (pricing.CostInput, pricing.Variant, error) {
	switch cmd.RateVariant {
	case pricing.VariantFlat, pricing.VariantTiered:
	default:
		return pricing.CostInput{}, "", ErrInvalidRateVariant
	}

	items := make([]pricing.LineItem, 0, len(cmd.Items))
	for _, it := range cmd.Items {
		if strings.TrimSpace(it.ProductID) == "" || it.Quantity < 1 {
			return pricing.CostInput{}, "", ErrInvalidLineItem
		}
		items = append(items, pricing.LineItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	in := pricing.CostInput{
		DrillingDepthFt:        cmd.DrillingDepthFt,
		DrillingRate:           cmd.DrillingRate,
		CasingDepthFt:          cmd.CasingDepthFt,
		CasingRate:             cmd.CasingRate,
		CasingKind:             cmd.CasingKind,
		SecondaryCasingDepthFt: cmd.SecondaryCasingDepthFt,
		SecondaryCasingRate:    cmd.SecondaryCasingRate,
		Items:                  items,
	}
	return in, cmd.RateVariant, nil
}
