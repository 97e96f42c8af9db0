package services

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/auth"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

const recentSearchLimit = 10

// Transactor runs fn inside one database transaction.
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type MovieService interface {
	// Listing and reading
	ListMovies(ctx context.Context, query models.ListQuery, viewer *models.User) (*models.MovieList, error)
	SearchRecent(ctx context.Context, text string) ([]models.Movie, error)
	GetMovieDetail(ctx context.Context, id uint, viewer *models.User) (*models.MovieDetail, error)
	GetPicture(ctx context.Context, id uint) ([]byte, string, error)

	// Forms
	NewForm() *MovieFormView
	EditForm(ctx context.Context, user *models.User, id uint) (*MovieFormView, error)

	// Mutations, owner or superuser only for update and delete
	CreateMovie(ctx context.Context, user *models.User, form *MovieForm) (*models.Movie, error)
	UpdateMovie(ctx context.Context, user *models.User, id uint, form *MovieForm) (*models.Movie, error)
	DeleteMovie(ctx context.Context, user *models.User, id uint) error
}

type movieService struct {
	tx           Transactor
	repo         repository.MovieRepository
	directorRepo repository.DirectorRepository
	genreRepo    repository.GenreRepository
	reviewRepo   repository.ReviewRepository
	favoriteRepo repository.FavoriteRepository
	maxPicture   int64
	logger       *logrus.Logger
	mirror       PosterMirror
}

type MovieServiceDeps struct {
	Tx           Transactor
	Movies       repository.MovieRepository
	Directors    repository.DirectorRepository
	Genres       repository.GenreRepository
	Reviews      repository.ReviewRepository
	Favorites    repository.FavoriteRepository
	MaxPicture   int64
	Logger       *logrus.Logger
	PosterMirror PosterMirror
}

func NewMovieService(deps MovieServiceDeps) MovieService {
	return &movieService{
		tx:           deps.Tx,
		repo:         deps.Movies,
		directorRepo: deps.Directors,
		genreRepo:    deps.Genres,
		reviewRepo:   deps.Reviews,
		favoriteRepo: deps.Favorites,
		maxPicture:   deps.MaxPicture,
		logger:       deps.Logger,
		mirror:       deps.PosterMirror,
	}
}

func (s *movieService) ListMovies(ctx context.Context, query models.ListQuery, viewer *models.User) (*models.MovieList, error) {
	query.Sort = repository.NormalizeSort(query.Sort)
	query.Filter = repository.NormalizeFilter(query.Filter)

	movies, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	favorites := []uint{}
	if viewer != nil {
		favorites, err = s.favoriteRepo.MovieIDsByUser(ctx, viewer.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load favorites: %w", err)
		}
	}

	return &models.MovieList{
		Movies:    movies,
		Total:     int64(len(movies)),
		Favorites: favorites,
		ListQuery: query,
	}, nil
}

func (s *movieService) SearchRecent(ctx context.Context, text string) ([]models.Movie, error) {
	movies, err := s.repo.SearchRecent(ctx, text, recentSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}
	return movies, nil
}

func (s *movieService) GetMovieDetail(ctx context.Context, id uint, viewer *models.User) (*models.MovieDetail, error) {
	movie, err := s.findMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByMovie(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}

	detail := &models.MovieDetail{
		Movie:      movie,
		Reviews:    reviews,
		GenreNames: models.GenreNames(movie.Genres),
	}

	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		avg := float64(sum) / float64(len(reviews))
		detail.AverageRating = &avg
		movie.AverageRating = &avg
		movie.ReviewCount = int64(len(reviews))
	}

	if viewer != nil {
		detail.IsFavorite, err = s.favoriteRepo.Exists(ctx, id, viewer.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load favorite state: %w", err)
		}
	}

	return detail, nil
}

func (s *movieService) GetPicture(ctx context.Context, id uint) ([]byte, string, error) {
	data, contentType, err := s.repo.FindPicture(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrMovieNotFound
		}
		return nil, "", err
	}
	if len(data) == 0 {
		return nil, "", ErrPictureNotFound
	}
	return data, contentType, nil
}

func (s *movieService) NewForm() *MovieFormView {
	return s.formView(MovieForm{})
}

// EditForm returns the current values with director name and genres
// flattened back into their text fields.
func (s *movieService) EditForm(ctx context.Context, user *models.User, id uint) (*MovieFormView, error) {
	movie, err := s.findModifiable(ctx, user, id)
	if err != nil {
		return nil, err
	}

	return s.formView(MovieForm{
		Title:        movie.Title,
		ReleaseYear:  movie.ReleaseYear,
		Description:  movie.Description,
		DirectorName: movie.DirectorName(),
		Genres:       FormatTags(models.GenreNames(movie.Genres)),
		Actors:       movie.Actors,
	}), nil
}

func (s *movieService) CreateMovie(ctx context.Context, user *models.User, form *MovieForm) (*models.Movie, error) {
	if user == nil {
		return nil, ErrUnauthenticated
	}
	if err := validateMovieForm(form, s.maxPicture); err != nil {
		return nil, err
	}

	movie := &models.Movie{
		Title:       form.Title,
		ReleaseYear: form.ReleaseYear,
		Description: form.Description,
		Actors:      form.Actors,
		OwnerID:     user.ID,
	}
	if form.Picture != nil {
		s.applyPicture(ctx, movie, form.Picture)
	}

	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		if err := s.resolveDirector(ctx, movie, form.DirectorName); err != nil {
			return err
		}
		genres, err := s.genreRepo.FindOrCreateAll(ctx, ParseTags(form.Genres))
		if err != nil {
			return fmt.Errorf("failed to resolve genres: %w", err)
		}
		movie.Genres = genres
		return s.repo.Create(ctx, movie)
	})
	if err != nil {
		s.discardPoster(ctx, movie.PosterURL)
		s.logger.WithError(err).WithField("title", movie.Title).Error("Failed to create movie")
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"movie_id": movie.ID,
		"owner_id": movie.OwnerID,
	}).Info("Movie created")

	return movie, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, user *models.User, id uint, form *MovieForm) (*models.Movie, error) {
	movie, err := s.findModifiable(ctx, user, id)
	if err != nil {
		return nil, err
	}
	if err := validateMovieForm(form, s.maxPicture); err != nil {
		return nil, err
	}

	oldPosterURL := movie.PosterURL
	withPicture := form.Picture != nil

	movie.Title = form.Title
	movie.ReleaseYear = form.ReleaseYear
	movie.Description = form.Description
	movie.Actors = form.Actors
	if withPicture {
		s.applyPicture(ctx, movie, form.Picture)
	}

	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		if err := s.resolveDirector(ctx, movie, form.DirectorName); err != nil {
			return err
		}
		if err := s.repo.Update(ctx, movie, withPicture); err != nil {
			return err
		}
		genres, err := s.genreRepo.FindOrCreateAll(ctx, ParseTags(form.Genres))
		if err != nil {
			return fmt.Errorf("failed to resolve genres: %w", err)
		}
		return s.repo.ReplaceGenres(ctx, movie, genres)
	})
	if err != nil {
		if withPicture {
			s.discardPoster(ctx, movie.PosterURL)
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		s.logger.WithError(err).WithField("movie_id", id).Error("Failed to update movie")
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	// Replaced poster copies are dropped only once the new row is committed.
	if withPicture && oldPosterURL != "" && oldPosterURL != movie.PosterURL {
		s.discardPoster(ctx, oldPosterURL)
	}

	s.logger.WithFields(logrus.Fields{
		"movie_id":        movie.ID,
		"user_id":         user.ID,
		"picture_updated": withPicture,
	}).Info("Movie updated")

	return movie, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, user *models.User, id uint) error {
	movie, err := s.findModifiable(ctx, user, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMovieNotFound
		}
		s.logger.WithError(err).WithField("movie_id", id).Error("Failed to delete movie")
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	s.discardPoster(ctx, movie.PosterURL)

	s.logger.WithFields(logrus.Fields{
		"movie_id": id,
		"user_id":  user.ID,
	}).Info("Movie deleted")

	return nil
}

func (s *movieService) findMovie(ctx context.Context, id uint) (*models.Movie, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to load movie: %w", err)
	}
	return movie, nil
}

// findModifiable loads the movie and applies the ownership check.
func (s *movieService) findModifiable(ctx context.Context, user *models.User, id uint) (*models.Movie, error) {
	if user == nil {
		return nil, ErrUnauthenticated
	}
	movie, err := s.findMovie(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanModify(user, movie.OwnerID) {
		s.logger.WithFields(logrus.Fields{
			"movie_id": id,
			"user_id":  user.ID,
			"owner_id": movie.OwnerID,
		}).Warn("Rejected movie modification by non-owner")
		return nil, ErrForbidden
	}
	return movie, nil
}

func (s *movieService) resolveDirector(ctx context.Context, movie *models.Movie, name string) error {
	director, err := s.directorRepo.FindOrCreate(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to resolve director: %w", err)
	}
	movie.DirectorID = &director.ID
	movie.Director = director
	return nil
}

func (s *movieService) applyPicture(ctx context.Context, movie *models.Movie, upload *Upload) {
	movie.Picture = upload.Data
	movie.ContentType = pictureContentType(upload)
	movie.PosterURL = ""

	if s.mirror == nil {
		return
	}
	url, err := s.mirror.PutPoster(ctx, movie.Picture, movie.ContentType)
	if err != nil {
		// the database copy is authoritative; serve it without a mirror URL
		s.logger.WithError(err).Warn("Failed to mirror poster")
		return
	}
	movie.PosterURL = url
}

func (s *movieService) discardPoster(ctx context.Context, url string) {
	if s.mirror == nil || url == "" {
		return
	}
	if err := s.mirror.DeletePoster(ctx, url); err != nil {
		s.logger.WithError(err).WithField("poster_url", url).Warn("Failed to delete mirrored poster")
	}
}

func (s *movieService) formView(form MovieForm) *MovieFormView {
	return &MovieFormView{
		Form:               form,
		MaxUploadLimit:     s.maxPicture,
		MaxUploadLimitText: humanize.Bytes(uint64(s.maxPicture)),
	}
}
