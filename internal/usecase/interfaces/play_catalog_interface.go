package interfaces

import (
	"context"
	"theater_billing/internal/domain/entities"
)

// IPlayCatalog provides the preloaded play catalog used to price invoices.

type IPlayCatalog interface {
	Plays(ctx context.Context) (entities.PlayCatalog, error)
}
