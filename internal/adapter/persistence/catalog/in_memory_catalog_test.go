package catalog

import (
	"context"
	"testing"

	"theater_billing/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	plays := Default()
	require.Len(t, plays, 3)
	assert.Equal(t, entities.Play{Name: "Hamlet", Type: "tragedy"}, plays["hamlet"])
	assert.Equal(t, entities.Play{Name: "As You Like It", Type: "comedy"}, plays["as-like"])
	assert.Equal(t, entities.Play{Name: "Othello", Type: "tragedy"}, plays["othello"])
}

func TestInMemoryCatalog_ReturnsCopies(t *testing.T) {
	seed := Default()
	c := NewInMemoryCatalog(seed)
	seed["hamlet"] = entities.Play{Name: "Changed", Type: "history"}

	first, err := c.Plays(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hamlet", first["hamlet"].Name)

	delete(first, "othello")
	second, err := c.Plays(context.Background())
	require.NoError(t, err)
	assert.Contains(t, second, "othello")
}

func TestInMemoryCatalog_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewInMemoryCatalog(Default()).Plays(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
