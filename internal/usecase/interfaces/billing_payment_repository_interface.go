package interfaces

import (
	"context"
	"theater_billing/internal/domain/entities"
)

// IBillingPaymentRepository abstracts DynamoDB persistence for BillingPayment.

type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByStatementID(ctx context.Context, statementID string) ([]entities.BillingPayment, error)
}
