package catalog

import (
	"context"

	"theater_billing/internal/domain/entities"
	"theater_billing/internal/usecase/interfaces"
)

// Default is the catalog the service boots with.
func Default() entities.PlayCatalog {
	return entities.PlayCatalog{
		"hamlet":  {Name: "Hamlet", Type: string(entities.GenreTragedy)},
		"as-like": {Name: "As You Like It", Type: string(entities.GenreComedy)},
		"othello": {Name: "Othello", Type: string(entities.GenreTragedy)},
	}
}

// InMemoryCatalog serves a preloaded, read-only play catalog.
type InMemoryCatalog struct {
	plays entities.PlayCatalog
}

var _ interfaces.IPlayCatalog = (*InMemoryCatalog)(nil)

func NewInMemoryCatalog(plays entities.PlayCatalog) *InMemoryCatalog {
	return &InMemoryCatalog{plays: plays.Clone()}
}

// Plays returns a copy of the catalog; callers cannot alter what later requests see.
func (c *InMemoryCatalog) Plays(ctx context.Context) (entities.PlayCatalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.plays.Clone(), nil
}
