package services

import (
	"testing"

	"movie-catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteService_Idempotent(t *testing.T) {
	e := newEnv(t)
	movie := e.create(t, validMovieForm())

	favorites := func() []uint {
		list, err := e.movies.ListMovies(e.ctx, models.ListQuery{}, e.stranger)
		require.NoError(t, err)
		return list.Favorites
	}

	require.NoError(t, e.favorites.AddFavorite(e.ctx, e.stranger, movie.ID))
	require.NoError(t, e.favorites.AddFavorite(e.ctx, e.stranger, movie.ID))
	assert.Equal(t, []uint{movie.ID}, favorites())

	require.NoError(t, e.favorites.RemoveFavorite(e.ctx, e.stranger, movie.ID))
	assert.Equal(t, []uint{}, favorites())
	require.NoError(t, e.favorites.RemoveFavorite(e.ctx, e.stranger, movie.ID))
	assert.Equal(t, []uint{}, favorites())
}

func TestFavoriteService_Errors(t *testing.T) {
	e := newEnv(t)
	movie := e.create(t, validMovieForm())

	assert.ErrorIs(t, e.favorites.AddFavorite(e.ctx, nil, movie.ID), ErrUnauthenticated)
	assert.ErrorIs(t, e.favorites.RemoveFavorite(e.ctx, nil, movie.ID), ErrUnauthenticated)
	assert.ErrorIs(t, e.favorites.AddFavorite(e.ctx, e.stranger, 999), ErrMovieNotFound)
	assert.ErrorIs(t, e.favorites.RemoveFavorite(e.ctx, e.stranger, 999), ErrMovieNotFound)
}

func TestFavoriteService_RemovedWithMovie(t *testing.T) {
	e := newEnv(t)
	movie := e.create(t, validMovieForm())
	require.NoError(t, e.favorites.AddFavorite(e.ctx, e.stranger, movie.ID))

	require.NoError(t, e.movies.DeleteMovie(e.ctx, e.owner, movie.ID))

	list, err := e.movies.ListMovies(e.ctx, models.ListQuery{}, e.stranger)
	require.NoError(t, err)
	assert.Empty(t, list.Favorites)
}
