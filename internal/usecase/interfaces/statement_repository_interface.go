package interfaces

import (
	"context"
	"theater_billing/internal/domain/entities"
)

// IStatementRepository abstracts DynamoDB persistence for generated statements.
//
// The billing-service must be able to:
//   - store a statement once it is generated
//   - load a statement by id or list a customer's statements
//   - claim a statement for payment and mark it paid once a payment is approved
//
// TransitionStatusByID only applies when the stored status equals from; otherwise it
// returns an empty Statement and no error.

type IStatementRepository interface {
	Create(ctx context.Context, s entities.Statement) (entities.Statement, error)
	GetByID(ctx context.Context, id string) (entities.Statement, error)
	ListByCustomer(ctx context.Context, customer string) ([]entities.Statement, error)
	TransitionStatusByID(ctx context.Context, id string, from, to entities.StatementStatus) (entities.Statement, error)
}
