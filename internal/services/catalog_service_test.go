package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_People(t *testing.T) {
	e := newEnv(t)

	director, err := e.catalog.CreateDirector(e.ctx, e.owner, &PersonForm{Name: " Agnès Varda ", Biography: "Cléo de 5 à 7."})
	require.NoError(t, err)
	assert.Equal(t, "Agnès Varda", director.Name)
	require.NotNil(t, director.Biography)

	actor, err := e.catalog.CreateActor(e.ctx, e.owner, &PersonForm{Name: "Corinne Marchand"})
	require.NoError(t, err)
	assert.Nil(t, actor.Biography)

	actors, err := e.catalog.ListActors(e.ctx)
	require.NoError(t, err)
	assert.Len(t, actors, 1)

	_, err = e.catalog.CreateDirector(e.ctx, e.owner, &PersonForm{Name: strings.Repeat("n", 101)})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")

	_, err = e.catalog.CreateDirector(e.ctx, e.owner, &PersonForm{Name: "Agnès Varda"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Director with this name already exists.", verr.Fields["name"])
	directors, err := e.catalog.ListDirectors(e.ctx)
	require.NoError(t, err)
	assert.Len(t, directors, 1)

	_, err = e.catalog.CreateActor(e.ctx, e.owner, &PersonForm{Name: strings.Repeat("n", 150)})
	assert.NoError(t, err)

	_, err = e.catalog.CreateActor(e.ctx, nil, &PersonForm{Name: "Anonymous"})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCatalogService_DeleteDirector(t *testing.T) {
	e := newEnv(t)
	movie := e.create(t, validMovieForm())
	require.NotNil(t, movie.DirectorID)
	directorID := *movie.DirectorID

	assert.ErrorIs(t, e.catalog.DeleteDirector(e.ctx, e.owner, directorID), ErrForbidden)
	assert.ErrorIs(t, e.catalog.DeleteDirector(e.ctx, nil, directorID), ErrUnauthenticated)

	require.NoError(t, e.catalog.DeleteDirector(e.ctx, e.superuser, directorID))
	assert.ErrorIs(t, e.catalog.DeleteDirector(e.ctx, e.superuser, directorID), ErrDirectorNotFound)

	detail, err := e.movies.GetMovieDetail(e.ctx, movie.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, detail.Movie.DirectorID)
	assert.Equal(t, "", detail.Movie.DirectorName())
}
