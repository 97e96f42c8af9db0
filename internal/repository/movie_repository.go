package repository

import (
	"context"
	"strings"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	SortTitleAsc   = "title-asc"
	SortTitleDesc  = "title-desc"
	SortYearAsc    = "year-asc"
	SortYearDesc   = "year-desc"
	SortRatingAsc  = "rating-asc"
	SortRatingDesc = "rating-desc"

	FilterAll      = "all"
	FilterTopRated = "top_rated"

	TopRatedThreshold = 4
)

// Unrated movies go last in both rating directions.
var movieSortOrders = map[string]string{
	SortTitleAsc:   "movies.title ASC, movies.id ASC",
	SortTitleDesc:  "movies.title DESC, movies.id DESC",
	SortYearAsc:    "movies.release_year ASC, movies.title ASC, movies.id ASC",
	SortYearDesc:   "movies.release_year DESC, movies.title ASC, movies.id ASC",
	SortRatingAsc:  "AVG(reviews.rating) IS NULL, AVG(reviews.rating) ASC, movies.title ASC, movies.id ASC",
	SortRatingDesc: "AVG(reviews.rating) IS NULL, AVG(reviews.rating) DESC, movies.title ASC, movies.id ASC",
}

// Every movie column except the picture blob.
var movieListColumns = []string{
	"movies.id", "movies.title", "movies.release_year", "movies.description",
	"movies.director_id", "movies.actors", "movies.content_type", "movies.poster_url",
	"movies.owner_id", "movies.created_at", "movies.updated_at",
}

// NormalizeSort maps unknown sort keys to the default.
func NormalizeSort(sort string) string {
	if _, ok := movieSortOrders[sort]; ok {
		return sort
	}
	return SortTitleAsc
}

// NormalizeFilter maps unknown filters to FilterAll.
func NormalizeFilter(filter string) string {
	if filter == FilterTopRated {
		return FilterTopRated
	}
	return FilterAll
}

type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	Update(ctx context.Context, movie *models.Movie, withPicture bool) error
	ReplaceGenres(ctx context.Context, movie *models.Movie, genres []models.Genre) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Movie, error)
	FindPicture(ctx context.Context, id uint) ([]byte, string, error)
	List(ctx context.Context, query models.ListQuery) ([]models.Movie, error)
	SearchRecent(ctx context.Context, text string, limit int) ([]models.Movie, error)
}

type movieRepository struct {
	baseRepository
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{baseRepository: newBaseRepository(db)}
}

// Create inserts the movie and links the genres already set on it.
func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return db.Omit("Director", "Owner", "Genres.*").Create(movie).Error
}

// Update writes the editable columns. The owner never changes, and the
// picture columns are only written when withPicture is set.
func (r *movieRepository) Update(ctx context.Context, movie *models.Movie, withPicture bool) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	columns := []string{"title", "release_year", "description", "director_id", "actors", "updated_at"}
	if withPicture {
		columns = append(columns, "picture", "content_type", "poster_url")
	}

	result := db.Model(movie).Select(columns).Omit(clause.Associations).Updates(movie)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *movieRepository) ReplaceGenres(ctx context.Context, movie *models.Movie, genres []models.Genre) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	if err := db.Model(movie).Omit("Genres.*").Association("Genres").Replace(genres); err != nil {
		return err
	}
	movie.Genres = genres
	return nil
}

// Delete removes the movie with its reviews, favorites and genre links.
func (r *movieRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.Transaction(ctx, func(ctx context.Context) error {
		db := r.db.Conn(ctx)

		if err := db.Where("movie_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := db.Where("movie_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		if err := db.Model(&models.Movie{ID: id}).Association("Genres").Clear(); err != nil {
			return err
		}

		result := db.Delete(&models.Movie{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var movie models.Movie
	err := db.Select(movieListColumns).
		Preload("Director").
		Preload("Genres", func(db *gorm.DB) *gorm.DB { return db.Order("genres.name") }).
		Preload("Owner").
		First(&movie, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &movie, nil
}

func (r *movieRepository) FindPicture(ctx context.Context, id uint) ([]byte, string, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var movie models.Movie
	if err := db.Select("id", "picture", "content_type").First(&movie, id).Error; err != nil {
		return nil, "", notFound(err)
	}
	return movie.Picture, movie.ContentType, nil
}

// List builds the catalog listing: optional title/description search,
// optional top-rated filter and one of the sort orders, each movie carrying
// its average rating (nil without reviews) and review count.
func (r *movieRepository) List(ctx context.Context, query models.ListQuery) ([]models.Movie, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	columns := append([]string{}, movieListColumns...)
	columns = append(columns, "AVG(reviews.rating) AS average_rating", "COUNT(reviews.id) AS review_count")

	q := db.Model(&models.Movie{}).
		Select(strings.Join(columns, ", ")).
		Joins("LEFT JOIN reviews ON reviews.movie_id = movies.id").
		Group("movies.id")

	if search := strings.TrimSpace(query.Search); search != "" {
		cond, args := containsAny(db, search, "movies.title", "movies.description")
		q = q.Where(cond, args...)
	}

	if NormalizeFilter(query.Filter) == FilterTopRated {
		q = q.Having("AVG(reviews.rating) >= ?", TopRatedThreshold)
	}

	q = q.Order(movieSortOrders[NormalizeSort(query.Sort)])

	var movies []models.Movie
	err := q.Preload("Director").
		Preload("Genres", func(db *gorm.DB) *gorm.DB { return db.Order("genres.name") }).
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

// SearchRecent matches title, description, director name or the actors text
// and returns the most recently created matches first.
func (r *movieRepository) SearchRecent(ctx context.Context, text string, limit int) ([]models.Movie, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	q := db.Model(&models.Movie{}).
		Select(movieListColumns).
		Joins("LEFT JOIN directors ON directors.id = movies.director_id")

	if text = strings.TrimSpace(text); text != "" {
		cond, args := containsAny(db, text, "movies.title", "movies.description", "directors.name", "movies.actors")
		q = q.Where(cond, args...)
	}

	var movies []models.Movie
	err := q.Order("movies.created_at DESC, movies.id DESC").
		Limit(limit).
		Preload("Director").
		Preload("Genres", func(db *gorm.DB) *gorm.DB { return db.Order("genres.name") }).
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}
