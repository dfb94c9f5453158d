package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"borewell_ops/internal/domain/entities"
	"borewell_ops/internal/usecase/interfaces"
)

var (
	ErrJobPaymentNotFound         = errors.New("job payment not found")
	ErrInvalidPaymentRequestID    = errors.New("invalid request_id")
	ErrInvalidPaymentID           = errors.New("invalid payment id")
	ErrInvalidMPPayload           = errors.New("invalid mercado pago payload")
	ErrRequestNotApproved         = errors.New("service request not approved")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IJobPaymentUseCase encapsulates the "create and process payment" behavior
// for completed borewell jobs.
//
// The amount charged is always the stored request total; the caller cannot
// override it through the payment payload.

type IJobPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, requestID string, mpPayload json.RawMessage) (entities.JobPayment, error)
	GetByID(ctx context.Context, id string) (entities.JobPayment, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.JobPayment, error)
}

type JobPaymentUseCase struct {
	repo        interfaces.IJobPaymentRepository
	requestRepo interfaces.IServiceRequestRepository
	gateway     interfaces.IPaymentGateway
}

var _ IJobPaymentUseCase = (*JobPaymentUseCase)(nil)

func NewJobPaymentUseCase(repo interfaces.IJobPaymentRepository, requestRepo interfaces.IServiceRequestRepository, gateway interfaces.IPaymentGateway) *JobPaymentUseCase {
	return &JobPaymentUseCase{repo: repo, requestRepo: requestRepo, gateway: gateway}
}

func (u *JobPaymentUseCase) CreateAndApprove(ctx context.Context, requestID string, mpPayload json.RawMessage) (entities.JobPayment, error) {
	log.Printf("[payment][usecase] create-and-approve start raw_request_id=%q payload_len=%d", requestID, len(mpPayload))
	mockMode := isPaymentGatewayMockEnabled()
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.JobPayment{}, ErrInvalidPaymentRequestID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload request_id=%s", requestID)
			return entities.JobPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.JobPayment{}, errors.New("payment gateway not configured")
	}
	if u.requestRepo == nil {
		return entities.JobPayment{}, errors.New("service request repository not configured")
	}

	req, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading request request_id=%s err=%v", requestID, err)
		return entities.JobPayment{}, err
	}
	if req.ID == "" {
		return entities.JobPayment{}, ErrRequestNotFound
	}
	if !mockMode && req.Status != entities.RequestStatusApproved {
		log.Printf("[payment][usecase] request not approved request_id=%s status=%s", requestID, req.Status)
		return entities.JobPayment{}, ErrRequestNotApproved
	}
	log.Printf("[payment][usecase] request loaded request_id=%s status=%s total=%.2f", requestID, req.Status, req.Total)

	// Link the payment to the request and force the charged amount to the
	// stored total. The DB is the source of truth for the amount.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = requestID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Borewell service request %s", requestID)
		}
		reqMap["transaction_amount"] = req.Total
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	}

	providerPaymentID := ""
	providerStatus := ""
	providerResp := json.RawMessage(nil)

	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway request_id=%s", requestID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{}
		if len(mpPayload) > 0 && json.Valid(mpPayload) {
			_ = json.Unmarshal(mpPayload, &mockResp)
		}
		mockResp["id"] = providerPaymentID
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now
		mockResp["date_approved"] = now
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.JobPayment{}, mErr
		}
		providerResp = b
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed request_id=%s err=%v", requestID, err)
			if isGatewayUnauthorized(err) {
				return entities.JobPayment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.JobPayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.JobPayment{}, err
		}
	}
	log.Printf("[payment][usecase] payment gateway success request_id=%s provider_payment_id=%s provider_status=%s", requestID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed request_id=%s err=%v", requestID, err)
	}

	p := entities.JobPayment{
		ID:           providerPaymentID,
		RequestID:    requestID,
		Date:         time.Now().UTC(),
		Status:       entities.PaymentStatusApproved,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed request_id=%s payment_id=%s err=%v", requestID, p.ID, err)
		return entities.JobPayment{}, err
	}
	log.Printf("[payment][usecase] create-and-approve success request_id=%s payment_id=%s status=%s", requestID, created.ID, created.Status)
	return created, nil
}

func (u *JobPaymentUseCase) GetByID(ctx context.Context, id string) (entities.JobPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.JobPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.JobPayment{}, err
	}
	if p.ID == "" {
		return entities.JobPayment{}, ErrJobPaymentNotFound
	}
	return p, nil
}

func (u *JobPaymentUseCase) ListByRequestID(ctx context.Context, requestID string) ([]entities.JobPayment, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, ErrInvalidPaymentRequestID
	}
	return u.repo.ListByRequestID(ctx, requestID)
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
