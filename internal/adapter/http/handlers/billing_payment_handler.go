package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	request "theater_billing/internal/adapter/http/dto/request"
	response "theater_billing/internal/adapter/http/dto/response"
	"theater_billing/internal/usecase"
	"theater_billing/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BillingPaymentHandler handles HTTP requests for statement payments.

type BillingPaymentHandler struct {
	usecase  usecase.IBillingPaymentUseCase
	mockMode bool
	log      *zap.Logger
}

func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase, mockMode bool, log *zap.Logger) *BillingPaymentHandler {
	return &BillingPaymentHandler{usecase: uc, mockMode: mockMode, log: log.Named("payment.handler")}
}

// CreatePaymentByStatementID charges the amount owed on a statement.
//
//	@Summary	Pay a statement
//	@Tags		payments
//	@Accept		json
//	@Produce	json
//	@Param		statement_id	path		string								true	"Statement ID"
//	@Param		body			body		request.BillingPaymentCreateRequest	false	"Mercado Pago payload, bare or wrapped in mp_payload"
//	@Success	200				{object}	response.BillingPaymentResponse
//	@Failure	400				{object}	pkg.HTTPError
//	@Failure	404				{object}	pkg.HTTPError
//	@Failure	409				{object}	pkg.HTTPError
//	@Router		/payments/{statement_id} [post]
func (h *BillingPaymentHandler) CreatePaymentByStatementID(c *gin.Context) {
	statementID := c.Param("statement_id")
	log := h.log.With(zap.String("statement_id", statementID))

	payload, err := readMPPayload(c)
	mpPayload := payload.MPPayload
	if err != nil {
		if !h.mockMode {
			log.Warn("invalid payload", zap.Error(err))
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Debug("payload invalid in mock mode; using empty payload", zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), statementID, mpPayload)
	if err != nil {
		log.Warn("create failed", zap.Error(err))
		appErr := mapBillingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info("payment created", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromBillingPayment(created))
}

// GetPaymentByStatementID returns the latest payment for a statement.
//
//	@Summary	Latest payment of a statement
//	@Tags		payments
//	@Produce	json
//	@Param		statement_id	path		string	true	"Statement ID"
//	@Success	200				{object}	response.BillingPaymentResponse
//	@Failure	404				{object}	pkg.HTTPError
//	@Router		/payments/{statement_id} [get]
func (h *BillingPaymentHandler) GetPaymentByStatementID(c *gin.Context) {
	statementID := c.Param("statement_id")

	payments, err := h.usecase.ListByStatementID(c.Request.Context(), statementID)
	if err != nil {
		appErr := mapBillingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromBillingPayment(latest))
}

// readMPPayload accepts the Mercado Pago payload either bare or wrapped in mp_payload.
func readMPPayload(c *gin.Context) (request.BillingPaymentCreateRequest, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return request.BillingPaymentCreateRequest{}, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return request.BillingPaymentCreateRequest{MPPayload: json.RawMessage("{}")}, nil
	}
	if !json.Valid(raw) {
		return request.BillingPaymentCreateRequest{}, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return request.BillingPaymentCreateRequest{}, errors.New("mp_payload cannot be empty")
			}
			return request.BillingPaymentCreateRequest{MPPayload: wrapped}, nil
		}
	}

	return request.BillingPaymentCreateRequest{MPPayload: json.RawMessage(raw)}, nil
}

func mapBillingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentStatementID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrStatementNotFound):
		return pkg.NewDomainErrorSimple("STATEMENT_NOT_FOUND", "Statement not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStatementAlreadyPaid):
		return pkg.NewDomainErrorSimple("STATEMENT_ALREADY_PAID", "Statement already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrStatementPaymentInProgress):
		return pkg.NewDomainErrorSimple("PAYMENT_IN_PROGRESS", "A payment for this statement is in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillingPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
