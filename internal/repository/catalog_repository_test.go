package repository

import (
	"sync"
	"testing"

	"movie-catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectorRepository_FindOrCreate(t *testing.T) {
	f := newFixture(t)

	first, err := f.directors.FindOrCreate(f.ctx, "Christopher Nolan")
	require.NoError(t, err)
	second, err := f.directors.FindOrCreate(f.ctx, "Christopher Nolan")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// exact match only
	other, err := f.directors.FindOrCreate(f.ctx, "christopher nolan")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)

	all, err := f.directors.FindAll(f.ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDirectorRepository_UniqueName(t *testing.T) {
	f := newFixture(t)

	var wg sync.WaitGroup
	ids := make([]uint, 8)
	errs := make([]error, len(ids))
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			director, err := f.directors.FindOrCreate(f.ctx, "Nolan")
			errs[i] = err
			if err == nil {
				ids[i] = director.ID
			}
		}(i)
	}
	wg.Wait()

	for i := range ids {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}

	err := f.directors.Create(f.ctx, &models.Director{Name: "Nolan"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	all, err := f.directors.FindAll(f.ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDirectorRepository_DeleteKeepsMovies(t *testing.T) {
	f := newFixture(t)
	director, err := f.directors.FindOrCreate(f.ctx, "Michael Mann")
	require.NoError(t, err)

	m := f.movie(t, "Heat", 1995)
	m.DirectorID = &director.ID
	require.NoError(t, f.movies.Update(f.ctx, m, false))

	require.NoError(t, f.directors.Delete(f.ctx, director.ID))

	found, err := f.movies.FindByID(f.ctx, m.ID)
	require.NoError(t, err)
	assert.Nil(t, found.DirectorID)
	assert.Nil(t, found.Director)

	_, err = f.directors.FindByID(f.ctx, director.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, f.directors.Delete(f.ctx, director.ID), ErrNotFound)
}

func TestGenreRepository_FindOrCreateIsIdempotent(t *testing.T) {
	f := newFixture(t)

	a, err := f.genres.FindOrCreate(f.ctx, "Drama")
	require.NoError(t, err)
	b, err := f.genres.FindOrCreate(f.ctx, "Drama")
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)

	genres, err := f.genres.FindOrCreateAll(f.ctx, []string{"Drama", "Thriller"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Drama", "Thriller"}, models.GenreNames(genres))
	assert.Equal(t, a.ID, genres[0].ID)
}

func TestFavoriteRepository_Idempotent(t *testing.T) {
	f := newFixture(t)
	m := f.movie(t, "Heat", 1995)
	fan := f.user(t, "fan")

	require.NoError(t, f.favorites.Add(f.ctx, m.ID, fan.ID))
	require.NoError(t, f.favorites.Add(f.ctx, m.ID, fan.ID))

	ids, err := f.favorites.MovieIDsByUser(f.ctx, fan.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{m.ID}, ids)

	exists, err := f.favorites.Exists(f.ctx, m.ID, fan.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, f.favorites.Remove(f.ctx, m.ID, fan.ID))
	require.NoError(t, f.favorites.Remove(f.ctx, m.ID, fan.ID))

	exists, err = f.favorites.Exists(f.ctx, m.ID, fan.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	ids, err = f.favorites.MovieIDsByUser(f.ctx, fan.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{}, ids)
}

func TestReviewRepository_NewestFirst(t *testing.T) {
	f := newFixture(t)
	m := f.movie(t, "Heat", 1995)

	for _, rating := range []int{1, 2, 3} {
		require.NoError(t, f.reviews.Create(f.ctx, &models.Review{
			MovieID: m.ID,
			OwnerID: f.owner.ID,
			Text:    "take",
			Rating:  rating,
		}))
	}

	reviews, err := f.reviews.FindByMovie(f.ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	assert.Equal(t, 3, reviews[0].Rating)
	assert.Equal(t, 1, reviews[2].Rating)
	require.NotNil(t, reviews[0].Owner)
	assert.Equal(t, "owner", reviews[0].Owner.Username)

	require.NoError(t, f.reviews.Delete(f.ctx, reviews[0].ID))
	assert.ErrorIs(t, f.reviews.Delete(f.ctx, reviews[0].ID), ErrNotFound)
}

func TestReviewRepository_RatingCheckConstraint(t *testing.T) {
	f := newFixture(t)
	m := f.movie(t, "Heat", 1995)

	err := f.reviews.Create(f.ctx, &models.Review{MovieID: m.ID, OwnerID: f.owner.ID, Text: "x", Rating: 6})
	assert.Error(t, err)
}
