package handlers

import (
	"context"
	"errors"
	"net/http"

	request "borewell_ops/internal/adapter/http/dto/request"
	response "borewell_ops/internal/adapter/http/dto/response"
	"borewell_ops/internal/domain/entities"
	"borewell_ops/internal/usecase"
	"borewell_ops/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_PAYLOAD", "Invalid service request payload", http.StatusBadRequest)
	errInvalidQuotePayload   = pkg.NewDomainErrorSimple("INVALID_QUOTE_PAYLOAD", "Invalid quote payload", http.StatusBadRequest)
)

// ServiceRequestHandler handles HTTP requests for borewell service requests.

type ServiceRequestHandler struct {
	usecase usecase.IServiceRequestUseCase
}

func NewServiceRequestHandler(uc usecase.IServiceRequestUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{usecase: uc}
}

// Quote prices a draft without persisting it. The office console calls this
// on every field change to show a live total.
func (h *ServiceRequestHandler) Quote(c *gin.Context) {
	var payload request.ServiceRequestPricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Quote(payload.ToCommand())
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCostResult(result))
}

// CreateRequest submits a new service request. The stored total is computed
// server-side from the pricing fields.
func (h *ServiceRequestHandler) CreateRequest(c *gin.Context) {
	var payload request.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateRequest(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceRequest(created))
}

func (h *ServiceRequestHandler) GetRequest(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}

// ListRequests returns the requests for a customer phone number.
func (h *ServiceRequestHandler) ListRequests(c *gin.Context) {
	rs, err := h.usecase.ListByPhone(c.Request.Context(), c.Query("phone"))
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.ServiceRequestResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, response.FromServiceRequest(r))
	}
	c.JSON(http.StatusOK, out)
}

func (h *ServiceRequestHandler) ApproveRequest(c *gin.Context) {
	h.patchStatusByID(c, h.usecase.ApproveByID)
}

func (h *ServiceRequestHandler) RejectRequest(c *gin.Context) {
	h.patchStatusByID(c, h.usecase.RejectByID)
}

func (h *ServiceRequestHandler) CancelRequest(c *gin.Context) {
	h.patchStatusByID(c, h.usecase.CancelByID)
}

func (h *ServiceRequestHandler) patchStatusByID(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.ServiceRequest, error),
) {
	r, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}

// UpdatePricing replaces the pricing fields of an existing request and
// persists the recomputed total.
func (h *ServiceRequestHandler) UpdatePricing(c *gin.Context) {
	var payload request.ServiceRequestPricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdatePricing(c.Request.Context(), c.Param("id"), payload.ToCommand())
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(updated))
}

func mapServiceRequestError(err error) *pkg.AppError {
	var ruleErr *usecase.PricingRuleError
	switch {
	case errors.As(err, &ruleErr):
		// Pricing-rule violations keep their engine reason as the code so
		// the console can highlight the offending field.
		return pkg.NewDomainErrorSimple(string(ruleErr.Outcome.Reason), ruleErr.Outcome.Message, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrMissingCustomerName),
		errors.Is(err, usecase.ErrMissingCustomerPhone),
		errors.Is(err, usecase.ErrInvalidRateVariant),
		errors.Is(err, usecase.ErrInvalidLineItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Service request not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
