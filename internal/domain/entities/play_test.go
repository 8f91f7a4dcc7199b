package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGenre(t *testing.T) {
	g, err := ParseGenre("tragedy")
	require.NoError(t, err)
	assert.Equal(t, GenreTragedy, g)

	g, err = ParseGenre("comedy")
	require.NoError(t, err)
	assert.Equal(t, GenreComedy, g)

	for _, raw := range []string{"", "history", "Tragedy", " comedy"} {
		_, err := ParseGenre(raw)
		require.Error(t, err, raw)
		assert.True(t, errors.Is(err, ErrUnknownPlayType))

		var typeErr *UnknownPlayTypeError
		require.True(t, errors.As(err, &typeErr))
		assert.Equal(t, raw, typeErr.Type)
	}
}

func TestPlayGenre(t *testing.T) {
	g, err := Play{Name: "Hamlet", Type: "tragedy"}.Genre()
	require.NoError(t, err)
	assert.Equal(t, GenreTragedy, g)

	_, err = Play{Name: "Henry V", Type: "history"}.Genre()
	assert.EqualError(t, err, "unknown type: history")
}

func TestPlayCatalogLookup(t *testing.T) {
	catalog := PlayCatalog{"hamlet": {Name: "Hamlet", Type: "tragedy"}}

	p, err := catalog.Lookup("hamlet")
	require.NoError(t, err)
	assert.Equal(t, "Hamlet", p.Name)

	_, err = catalog.Lookup("macbeth")
	assert.True(t, errors.Is(err, ErrPlayNotFound))
	assert.EqualError(t, err, "play not found: macbeth")
}

func TestPlayCatalogClone(t *testing.T) {
	catalog := PlayCatalog{"hamlet": {Name: "Hamlet", Type: "tragedy"}}
	clone := catalog.Clone()
	clone["othello"] = Play{Name: "Othello", Type: "tragedy"}

	assert.Len(t, catalog, 1)
	assert.Len(t, clone, 2)
}

func TestGenres(t *testing.T) {
	assert.Equal(t, []Genre{GenreTragedy, GenreComedy}, Genres())
	assert.Equal(t, "comedy", GenreComedy.String())
}
