package handlers

import (
	"errors"
	"net/http"

	request "theater_billing/internal/adapter/http/dto/request"
	response "theater_billing/internal/adapter/http/dto/response"
	"theater_billing/internal/domain/entities"
	"theater_billing/internal/domain/statement"
	"theater_billing/internal/usecase"
	"theater_billing/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidStatementPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid statement payload", http.StatusBadRequest)
)

// StatementHandler handles HTTP requests for billing statements and the play catalog.

type StatementHandler struct {
	usecase       usecase.IStatementUseCase
	percentFactor int64
	log           *zap.Logger
}

func NewStatementHandler(uc usecase.IStatementUseCase, percentFactor int64, log *zap.Logger) *StatementHandler {
	return &StatementHandler{usecase: uc, percentFactor: percentFactor, log: log.Named("statement.handler")}
}

// CreateStatement prices an invoice and stores the rendered statement.
//
//	@Summary	Generate a statement
//	@Tags		statements
//	@Accept		json
//	@Produce	json
//	@Param		format	query		string						false	"text (default) or html"
//	@Param		body	body		request.StatementRequest	true	"Invoice"
//	@Success	201		{object}	response.StatementResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Failure	422		{object}	pkg.HTTPError
//	@Router		/statements [post]
func (h *StatementHandler) CreateStatement(c *gin.Context) {
	var payload request.StatementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Debug("invalid statement payload", zap.Error(err))
		c.JSON(errInvalidStatementPayload.HTTPStatus, errInvalidStatementPayload.ToHTTPError())
		return
	}

	format := entities.StatementFormat(c.Query("format"))
	st, err := h.usecase.GenerateStatement(c.Request.Context(), payload.ToInvoice(), format)
	if err != nil {
		appErr := mapStatementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromStatement(st, h.percentFactor))
}

// GetStatement returns a stored statement.
//
//	@Summary	Get a statement
//	@Tags		statements
//	@Produce	json
//	@Param		id	path		string	true	"Statement ID"
//	@Success	200	{object}	response.StatementResponse
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/statements/{id} [get]
func (h *StatementHandler) GetStatement(c *gin.Context) {
	st, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapStatementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStatement(st, h.percentFactor))
}

// GetRenderedStatement writes the statement body with its own content type.
//
//	@Summary	Get a rendered statement
//	@Tags		statements
//	@Produce	plain,html
//	@Param		id	path		string	true	"Statement ID"
//	@Success	200	{string}	string
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/statements/{id}/rendered [get]
func (h *StatementHandler) GetRenderedStatement(c *gin.Context) {
	st, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapStatementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	renderer, err := statement.RendererFor(st.Format)
	if err != nil {
		appErr := mapStatementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Data(http.StatusOK, renderer.ContentType(), []byte(st.Body))
}

// ListStatements lists a customer's statements.
//
//	@Summary	List statements of a customer
//	@Tags		statements
//	@Produce	json
//	@Param		customer	query		string	true	"Customer"
//	@Success	200			{array}		response.StatementResponse
//	@Failure	400			{object}	pkg.HTTPError
//	@Router		/statements [get]
func (h *StatementHandler) ListStatements(c *gin.Context) {
	items, err := h.usecase.ListByCustomer(c.Request.Context(), c.Query("customer"))
	if err != nil {
		appErr := mapStatementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStatements(items, h.percentFactor))
}

// ListPlays lists the catalog invoices are priced against.
//
//	@Summary	List plays
//	@Tags		plays
//	@Produce	json
//	@Success	200	{array}	response.PlayResponse
//	@Router		/plays [get]
func (h *StatementHandler) ListPlays(c *gin.Context) {
	plays, err := h.usecase.ListPlays(c.Request.Context())
	if err != nil {
		appErr := mapStatementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalog(plays))
}

func mapStatementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomer),
		errors.Is(err, usecase.ErrEmptyInvoice),
		errors.Is(err, usecase.ErrInvalidFormat),
		errors.Is(err, usecase.ErrInvalidStatementID),
		errors.Is(err, entities.ErrInvalidAudience):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnknownPlayType):
		return pkg.NewDomainError("UNKNOWN_PLAY_TYPE", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrPlayNotFound):
		return pkg.NewDomainError("PLAY_NOT_FOUND", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrAmountOverflow):
		return pkg.NewDomainError("AMOUNT_OVERFLOW", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrStatementNotFound):
		return pkg.NewDomainErrorSimple("STATEMENT_NOT_FOUND", "Statement not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
