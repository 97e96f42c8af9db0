package services

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"movie-catalog/internal/auth"
	"movie-catalog/internal/config"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/testutil"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMirror struct {
	puts    int
	deleted []string
	failPut bool
}

func (m *fakeMirror) PutPoster(ctx context.Context, data []byte, contentType string) (string, error) {
	if m.failPut {
		return "", errors.New("bucket unavailable")
	}
	m.puts++
	return "http://cdn.test/posters/" + string(rune('0'+m.puts)) + ".png", nil
}

func (m *fakeMirror) DeletePoster(ctx context.Context, url string) error {
	m.deleted = append(m.deleted, url)
	return nil
}

type env struct {
	ctx       context.Context
	users     repository.UserRepository
	movies    MovieService
	reviews   ReviewService
	favorites FavoriteService
	catalog   CatalogService
	accounts  UserService
	mirror    *fakeMirror

	owner     *models.User
	stranger  *models.User
	superuser *models.User
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := testutil.NewDatabase(t)
	log := quietLogger()

	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	directorRepo := repository.NewDirectorRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	mirror := &fakeMirror{}

	e := &env{
		ctx:   context.Background(),
		users: userRepo,
		movies: NewMovieService(MovieServiceDeps{
			Tx:           db,
			Movies:       movieRepo,
			Directors:    directorRepo,
			Genres:       genreRepo,
			Reviews:      reviewRepo,
			Favorites:    favoriteRepo,
			MaxPicture:   config.DefaultMaxPictureBytes,
			Logger:       log,
			PosterMirror: mirror,
		}),
		reviews:   NewReviewService(reviewRepo, movieRepo, log),
		favorites: NewFavoriteService(favoriteRepo, movieRepo, log),
		catalog:   NewCatalogService(directorRepo, repository.NewActorRepository(db), genreRepo, log),
		accounts:  NewUserService(userRepo, auth.NewTokenManager("test-secret", time.Hour), 4, log),
		mirror:    mirror,
	}
	e.owner = e.user(t, "owner", false)
	e.stranger = e.user(t, "stranger", false)
	e.superuser = e.user(t, "admin", true)
	return e
}

func (e *env) user(t *testing.T, username string, superuser bool) *models.User {
	t.Helper()
	u := &models.User{Username: username, PasswordHash: "x", IsSuperuser: superuser}
	require.NoError(t, e.users.Create(e.ctx, u))
	return u
}

func (e *env) create(t *testing.T, form *MovieForm) *models.Movie {
	t.Helper()
	movie, err := e.movies.CreateMovie(e.ctx, e.owner, form)
	require.NoError(t, err)
	return movie
}

func TestMovieService_CreateSharesDirector(t *testing.T) {
	e := newEnv(t)

	first := validMovieForm()
	first.DirectorName = "Nolan"
	second := validMovieForm()
	second.Title = "Interstellar"
	second.DirectorName = "  Nolan "

	a := e.create(t, first)
	b := e.create(t, second)

	require.NotNil(t, a.DirectorID)
	require.NotNil(t, b.DirectorID)
	assert.Equal(t, *a.DirectorID, *b.DirectorID)

	directors, err := e.catalog.ListDirectors(e.ctx)
	require.NoError(t, err)
	require.Len(t, directors, 1)
	assert.Equal(t, "Nolan", directors[0].Name)

	genres, err := e.catalog.ListGenres(e.ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Action", "Sci-Fi"}, models.GenreNames(genres))
}

func TestMovieService_CreateRequiresUser(t *testing.T) {
	e := newEnv(t)
	_, err := e.movies.CreateMovie(e.ctx, nil, validMovieForm())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestMovieService_CreateValidation(t *testing.T) {
	e := newEnv(t)
	form := validMovieForm()
	form.DirectorName = ""

	_, err := e.movies.CreateMovie(e.ctx, e.owner, form)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "director_name")

	list, err := e.movies.ListMovies(e.ctx, models.ListQuery{}, nil)
	require.NoError(t, err)
	assert.Empty(t, list.Movies)
}

func TestMovieService_Permissions(t *testing.T) {
	e := newEnv(t)

	tests := []struct {
		name    string
		user    func() *models.User
		wantErr error
	}{
		{"anonymous", func() *models.User { return nil }, ErrUnauthenticated},
		{"non-owner", func() *models.User { return e.stranger }, ErrForbidden},
		{"owner", func() *models.User { return e.owner }, nil},
		{"superuser", func() *models.User { return e.superuser }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movie := e.create(t, validMovieForm())

			form := validMovieForm()
			form.Title = "Renamed"
			_, err := e.movies.UpdateMovie(e.ctx, tt.user(), movie.ID, form)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			_, err = e.movies.EditForm(e.ctx, tt.user(), movie.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			err = e.movies.DeleteMovie(e.ctx, tt.user(), movie.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				_, getErr := e.movies.GetMovieDetail(e.ctx, movie.ID, nil)
				assert.NoError(t, getErr, "movie must survive a rejected delete")
			} else {
				assert.NoError(t, err)
				_, getErr := e.movies.GetMovieDetail(e.ctx, movie.ID, nil)
				assert.ErrorIs(t, getErr, ErrMovieNotFound)
			}
		})
	}
}

func TestMovieService_MissingMovie(t *testing.T) {
	e := newEnv(t)

	_, err := e.movies.GetMovieDetail(e.ctx, 999, nil)
	assert.ErrorIs(t, err, ErrMovieNotFound)
	_, err = e.movies.UpdateMovie(e.ctx, e.stranger, 999, validMovieForm())
	assert.ErrorIs(t, err, ErrMovieNotFound)
	assert.ErrorIs(t, e.movies.DeleteMovie(e.ctx, e.owner, 999), ErrMovieNotFound)
	_, _, err = e.movies.GetPicture(e.ctx, 999)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestMovieService_Picture(t *testing.T) {
	e := newEnv(t)

	form := validMovieForm()
	form.Picture = pictureOfSize(4 * 1024 * 1024)
	movie := e.create(t, form)
	assert.Equal(t, "http://cdn.test/posters/1.png", movie.PosterURL)

	data, contentType, err := e.movies.GetPicture(e.ctx, movie.ID)
	require.NoError(t, err)
	assert.Len(t, data, 4*1024*1024)
	assert.Equal(t, "image/png", contentType)

	// an update without a picture keeps the stored one
	update := validMovieForm()
	update.Title = "Inception (2010)"
	_, err = e.movies.UpdateMovie(e.ctx, e.owner, movie.ID, update)
	require.NoError(t, err)

	data, contentType, err = e.movies.GetPicture(e.ctx, movie.ID)
	require.NoError(t, err)
	assert.Len(t, data, 4*1024*1024)
	assert.Equal(t, "image/png", contentType)
	assert.Empty(t, e.mirror.deleted)

	// a new picture replaces the old one and its mirrored copy
	replace := validMovieForm()
	replace.Picture = pictureOfSize(1024)
	replace.Picture.ContentType = "application/octet-stream"
	updated, err := e.movies.UpdateMovie(e.ctx, e.owner, movie.ID, replace)
	require.NoError(t, err)
	assert.Equal(t, "http://cdn.test/posters/2.png", updated.PosterURL)
	assert.Equal(t, []string{"http://cdn.test/posters/1.png"}, e.mirror.deleted)

	data, contentType, err = e.movies.GetPicture(e.ctx, movie.ID)
	require.NoError(t, err)
	assert.Len(t, data, 1024)
	assert.Equal(t, "image/png", contentType)
}

func TestMovieService_PictureRejectedOverLimit(t *testing.T) {
	e := newEnv(t)

	form := validMovieForm()
	form.Picture = &Upload{Filename: "huge.png", ContentType: "image/png", Size: 6 * 1024 * 1024}
	_, err := e.movies.CreateMovie(e.ctx, e.owner, form)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "File must be <= 5.2 MB", verr.Fields["picture"])
	assert.Zero(t, e.mirror.puts)
}

func TestMovieService_PictureMirrorFailureIsNotFatal(t *testing.T) {
	e := newEnv(t)
	e.mirror.failPut = true

	form := validMovieForm()
	form.Picture = pictureOfSize(512)
	movie := e.create(t, form)
	assert.Empty(t, movie.PosterURL)

	_, contentType, err := e.movies.GetPicture(e.ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
}

func TestMovieService_NoPicture(t *testing.T) {
	e := newEnv(t)
	movie := e.create(t, validMovieForm())

	_, _, err := e.movies.GetPicture(e.ctx, movie.ID)
	assert.ErrorIs(t, err, ErrPictureNotFound)
}

func TestMovieService_DetailAndEditForm(t *testing.T) {
	e := newEnv(t)
	movie := e.create(t, validMovieForm())

	_, err := e.reviews.CreateReview(e.ctx, e.stranger, movie.ID, &ReviewForm{Text: "Great", Rating: 5})
	require.NoError(t, err)
	_, err = e.reviews.CreateReview(e.ctx, e.superuser, movie.ID, &ReviewForm{Text: "Fine", Rating: 2})
	require.NoError(t, err)
	require.NoError(t, e.favorites.AddFavorite(e.ctx, e.stranger, movie.ID))

	detail, err := e.movies.GetMovieDetail(e.ctx, movie.ID, e.stranger)
	require.NoError(t, err)
	require.Len(t, detail.Reviews, 2)
	assert.Equal(t, "Fine", detail.Reviews[0].Text)
	require.NotNil(t, detail.AverageRating)
	assert.InDelta(t, 3.5, *detail.AverageRating, 0.0001)
	assert.Equal(t, []string{"Action", "Sci-Fi"}, detail.GenreNames)
	assert.True(t, detail.IsFavorite)

	detail, err = e.movies.GetMovieDetail(e.ctx, movie.ID, e.owner)
	require.NoError(t, err)
	assert.False(t, detail.IsFavorite)

	view, err := e.movies.EditForm(e.ctx, e.owner, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Christopher Nolan", view.Form.DirectorName)
	assert.Equal(t, "Action, Sci-Fi", view.Form.Genres)
	assert.Equal(t, "5.2 MB", view.MaxUploadLimitText)
	assert.Equal(t, config.DefaultMaxPictureBytes, view.MaxUploadLimit)
}

func TestMovieService_ListMovies(t *testing.T) {
	e := newEnv(t)
	movie := e.create(t, validMovieForm())
	require.NoError(t, e.favorites.AddFavorite(e.ctx, e.stranger, movie.ID))

	list, err := e.movies.ListMovies(e.ctx, models.ListQuery{Sort: "nonsense", Filter: "nonsense"}, e.stranger)
	require.NoError(t, err)
	assert.Equal(t, repository.SortTitleAsc, list.Sort)
	assert.Equal(t, repository.FilterAll, list.Filter)
	assert.EqualValues(t, 1, list.Total)
	assert.Equal(t, []uint{movie.ID}, list.Favorites)

	list, err = e.movies.ListMovies(e.ctx, models.ListQuery{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint{}, list.Favorites)
}

func TestMovieService_SearchRecentLimit(t *testing.T) {
	e := newEnv(t)
	for i := 0; i < 11; i++ {
		e.create(t, validMovieForm())
	}

	movies, err := e.movies.SearchRecent(e.ctx, "nolan")
	require.NoError(t, err)
	assert.Len(t, movies, 10)
}

func TestMovieService_UpdateReplacesGenres(t *testing.T) {
	e := newEnv(t)
	movie := e.create(t, validMovieForm())

	form := validMovieForm()
	form.Genres = "Thriller"
	form.DirectorName = "Denis Villeneuve"
	updated, err := e.movies.UpdateMovie(e.ctx, e.owner, movie.ID, form)
	require.NoError(t, err)
	assert.Equal(t, "Denis Villeneuve", updated.DirectorName())

	detail, err := e.movies.GetMovieDetail(e.ctx, movie.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Thriller"}, detail.GenreNames)
	assert.Equal(t, e.owner.ID, detail.Movie.OwnerID)
}
