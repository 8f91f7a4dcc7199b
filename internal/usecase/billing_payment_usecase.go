package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"theater_billing/internal/domain/entities"
	"theater_billing/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrBillingPaymentNotFound         = errors.New("billing payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPaymentStatementID      = errors.New("invalid statement_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrStatementAlreadyPaid           = errors.New("statement already paid")
	ErrStatementPaymentInProgress     = errors.New("statement payment in progress")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrStatementRepoNotConfigured     = errors.New("statement repository not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions carries the payment provider settings the use case depends on.
type PaymentOptions struct {
	// MockMode skips the provider and approves every payment locally.
	MockMode bool
	// SandboxToken is set when the configured access token is a TEST- token.
	SandboxToken bool
	// TestPayerEmail / TestPayerUserID map sandbox payer ids to a payer email.
	TestPayerEmail  string
	TestPayerUserID string
}

// IBillingPaymentUseCase encapsulates the "charge the amount owed on a statement" behavior.

type IBillingPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, statementID string, mpPayload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByStatementID(ctx context.Context, statementID string) ([]entities.BillingPayment, error)
}

type BillingPaymentUseCase struct {
	repo          interfaces.IBillingPaymentRepository
	statementRepo interfaces.IStatementRepository
	gateway       interfaces.IPaymentGateway
	opts          PaymentOptions
	log           *zap.Logger
	now           func() time.Time
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(
	repo interfaces.IBillingPaymentRepository,
	statementRepo interfaces.IStatementRepository,
	gateway interfaces.IPaymentGateway,
	opts PaymentOptions,
	log *zap.Logger,
) *BillingPaymentUseCase {
	return &BillingPaymentUseCase{
		repo:          repo,
		statementRepo: statementRepo,
		gateway:       gateway,
		opts:          opts,
		log:           log.Named("payment.usecase"),
		now:           time.Now,
	}
}

func (u *BillingPaymentUseCase) CreateAndApprove(ctx context.Context, statementID string, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	log := u.log.With(zap.String("statement_id", strings.TrimSpace(statementID)))
	log.Debug("create-and-approve start", zap.Int("payload_len", len(mpPayload)))

	mockMode := u.opts.MockMode
	statementID = strings.TrimSpace(statementID)
	if statementID == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentStatementID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Warn("invalid payload")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Error("gateway not configured")
		return entities.BillingPayment{}, ErrPaymentGatewayNotConfigured
	}
	if u.statementRepo == nil {
		log.Error("statement repository not configured")
		return entities.BillingPayment{}, ErrStatementRepoNotConfigured
	}

	st, err := u.statementRepo.GetByID(ctx, statementID)
	if err != nil {
		log.Error("failed loading statement", zap.Error(err))
		return entities.BillingPayment{}, err
	}
	if st.ID == "" {
		return entities.BillingPayment{}, ErrStatementNotFound
	}
	switch st.Status {
	case entities.StatementStatusPaid:
		return entities.BillingPayment{}, ErrStatementAlreadyPaid
	case entities.StatementStatusProcessing:
		return entities.BillingPayment{}, ErrStatementPaymentInProgress
	}
	log.Debug("statement loaded", zap.String("status", string(st.Status)), zap.Float64("amount_owed", st.AmountOwed))

	// Mercado Pago uses external_reference to reconcile events with the statement.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Warn("missing payment_method_id")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		if !mockMode {
			u.normalizeSandboxPayerFromUserID(reqMap)
			u.ensurePayerDefaults(reqMap)
		}
		if !mockMode && !hasPayer(reqMap) {
			log.Warn("missing or invalid payer")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}

		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = statementID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Statement for %s", st.Customer)
		}

		// The statement is the source of truth for the amount charged.
		reqMap["transaction_amount"] = st.AmountOwed
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	} else {
		log.Warn("payload unmarshal failed", zap.Error(err))
	}

	// Only one charge per statement may be in flight.
	claimed, err := u.statementRepo.TransitionStatusByID(ctx, statementID, entities.StatementStatusIssued, entities.StatementStatusProcessing)
	if err != nil {
		log.Error("failed claiming statement", zap.Error(err))
		return entities.BillingPayment{}, err
	}
	if claimed.ID == "" {
		log.Warn("statement claimed concurrently")
		return entities.BillingPayment{}, ErrStatementPaymentInProgress
	}
	// An approved charge keeps the claim even when recording it fails.
	release := true
	defer func() {
		if !release {
			return
		}
		if _, err := u.statementRepo.TransitionStatusByID(context.WithoutCancel(ctx), statementID, entities.StatementStatusProcessing, entities.StatementStatusIssued); err != nil {
			log.Error("failed releasing statement", zap.Error(err))
		}
	}()

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)

	if mockMode {
		log.Info("mock mode enabled; skipping external payment gateway")
		providerPaymentID, providerStatus, providerResp, err = u.mockPayment(statementID, st.AmountOwed, mpPayload)
		if err != nil {
			return entities.BillingPayment{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Error("payment gateway failed", zap.Error(err))
			return entities.BillingPayment{}, classifyGatewayError(err)
		}
	}
	log.Info("payment gateway success",
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus))

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("provider response unmarshal failed", zap.Error(err))
	}

	status := paymentStatusFromProvider(providerStatus)
	if status == entities.PaymentStatusApproved {
		release = false
	}

	p := entities.BillingPayment{
		ID:           providerPaymentID,
		StatementID:  statementID,
		Amount:       st.AmountOwed,
		Date:         u.now().UTC(),
		Status:       status,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.BillingPayment{}, err
	}

	if created.Status == entities.PaymentStatusApproved {
		if _, err := u.statementRepo.TransitionStatusByID(ctx, statementID, entities.StatementStatusProcessing, entities.StatementStatusPaid); err != nil {
			log.Error("failed marking statement paid", zap.String("payment_id", created.ID), zap.Error(err))
			return entities.BillingPayment{}, err
		}
	}

	log.Info("create-and-approve success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

func (u *BillingPaymentUseCase) mockPayment(statementID string, amount float64, payload json.RawMessage) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(u.now().UTC().UnixNano(), 10)
	now := u.now().UTC().Format(time.RFC3339Nano)

	resp := map[string]any{}
	if len(payload) > 0 && json.Valid(payload) {
		_ = json.Unmarshal(payload, &resp)
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	if _, ok := resp["external_reference"]; !ok {
		resp["external_reference"] = statementID
	}
	if _, ok := resp["transaction_amount"]; !ok {
		resp["transaction_amount"] = amount
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *BillingPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if u.opts.SandboxToken {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func (u *BillingPaymentUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !u.opts.SandboxToken {
		return
	}

	configuredUserID := strings.TrimSpace(u.opts.TestPayerUserID)
	configuredEmail := strings.TrimSpace(u.opts.TestPayerEmail)
	if configuredUserID == "" || configuredEmail == "" {
		return
	}

	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID == "" || rawID == "<nil>" || rawID != configuredUserID {
		return
	}

	payer["email"] = configuredEmail
	delete(payer, "id")
	u.log.Debug("mapped sandbox payer user_id to payer.email")
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

func (u *BillingPaymentUseCase) ListByStatementID(ctx context.Context, statementID string) ([]entities.BillingPayment, error) {
	statementID = strings.TrimSpace(statementID)
	if statementID == "" {
		return nil, ErrInvalidPaymentStatementID
	}
	return u.repo.ListByStatementID(ctx, statementID)
}
