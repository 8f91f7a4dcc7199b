package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"theater_billing/internal/domain/entities"
	"theater_billing/internal/domain/statement"
	"theater_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrStatementNotFound  = errors.New("statement not found")
	ErrInvalidStatementID = errors.New("invalid statement id")
	ErrInvalidCustomer    = errors.New("invalid customer")
	ErrEmptyInvoice       = errors.New("invoice has no performances")
	ErrInvalidFormat      = errors.New("invalid statement format")
)

// IStatementUseCase exposes statement operations.
//
//   - GenerateStatement prices an invoice against the play catalog, renders and stores it.
//   - GetByID / ListByCustomer read stored statements back.
//   - ListPlays exposes the catalog invoices are priced against.

type IStatementUseCase interface {
	GenerateStatement(ctx context.Context, invoice entities.Invoice, format entities.StatementFormat) (entities.Statement, error)
	GetByID(ctx context.Context, id string) (entities.Statement, error)
	ListByCustomer(ctx context.Context, customer string) ([]entities.Statement, error)
	ListPlays(ctx context.Context) (entities.PlayCatalog, error)
}

type StatementUseCase struct {
	repo      interfaces.IStatementRepository
	catalog   interfaces.IPlayCatalog
	generator *statement.Generator
	log       *zap.Logger
	now       func() time.Time
}

var _ IStatementUseCase = (*StatementUseCase)(nil)

func NewStatementUseCase(repo interfaces.IStatementRepository, catalog interfaces.IPlayCatalog, generator *statement.Generator, log *zap.Logger) *StatementUseCase {
	return &StatementUseCase{
		repo:      repo,
		catalog:   catalog,
		generator: generator,
		log:       log.Named("statement.usecase"),
		now:       time.Now,
	}
}

func (u *StatementUseCase) GenerateStatement(ctx context.Context, invoice entities.Invoice, format entities.StatementFormat) (entities.Statement, error) {
	invoice.Customer = strings.TrimSpace(invoice.Customer)
	if invoice.Customer == "" {
		return entities.Statement{}, ErrInvalidCustomer
	}
	if len(invoice.Performances) == 0 {
		return entities.Statement{}, ErrEmptyInvoice
	}
	if format == "" {
		format = entities.StatementFormatText
	}
	renderer, err := statement.RendererFor(format)
	if err != nil {
		return entities.Statement{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	plays, err := u.catalog.Plays(ctx)
	if err != nil {
		return entities.Statement{}, err
	}

	summary, body, err := u.generator.Render(invoice, plays, renderer)
	if err != nil {
		u.log.Warn("statement generation rejected",
			zap.String("customer", invoice.Customer),
			zap.Int("performances", len(invoice.Performances)),
			zap.Error(err))
		return entities.Statement{}, err
	}

	now := u.now().UTC()
	s := entities.Statement{
		ID:           uuid.NewString(),
		Customer:     summary.Customer,
		Lines:        summary.Lines,
		TotalAmount:  summary.TotalAmount,
		TotalCredits: summary.TotalCredits,
		AmountOwed:   summary.AmountOwed(),
		Format:       format,
		Body:         body,
		Status:       entities.StatementStatusIssued,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		u.log.Error("statement persist failed", zap.String("statement_id", s.ID), zap.Error(err))
		return entities.Statement{}, err
	}
	u.log.Info("statement generated",
		zap.String("statement_id", created.ID),
		zap.String("customer", created.Customer),
		zap.Int64("total_amount", created.TotalAmount),
		zap.Int("total_credits", created.TotalCredits))
	return created, nil
}

func (u *StatementUseCase) GetByID(ctx context.Context, id string) (entities.Statement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Statement{}, ErrInvalidStatementID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Statement{}, err
	}
	if s.ID == "" {
		return entities.Statement{}, ErrStatementNotFound
	}
	return s, nil
}

func (u *StatementUseCase) ListByCustomer(ctx context.Context, customer string) ([]entities.Statement, error) {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return nil, ErrInvalidCustomer
	}
	return u.repo.ListByCustomer(ctx, customer)
}

func (u *StatementUseCase) ListPlays(ctx context.Context) (entities.PlayCatalog, error) {
	return u.catalog.Plays(ctx)
}
