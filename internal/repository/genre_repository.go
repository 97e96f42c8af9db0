package repository

import (
	"context"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm/clause"
)

type GenreRepository interface {
	FindOrCreate(ctx context.Context, name string) (*models.Genre, error)
	FindOrCreateAll(ctx context.Context, names []string) ([]models.Genre, error)
	FindAll(ctx context.Context) ([]models.Genre, error)
}

type genreRepository struct {
	baseRepository
}

func NewGenreRepository(db *database.Database) GenreRepository {
	return &genreRepository{baseRepository: newBaseRepository(db)}
}

// FindOrCreate tolerates a concurrent insert of the same name: the unique
// index turns the losing insert into a no-op and the row is read back.
func (r *genreRepository) FindOrCreate(ctx context.Context, name string) (*models.Genre, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	genre := models.Genre{Name: name}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&genre).Error; err != nil {
		return nil, err
	}

	var stored models.Genre
	if err := db.Where("name = ?", name).First(&stored).Error; err != nil {
		return nil, notFound(err)
	}
	return &stored, nil
}

func (r *genreRepository) FindOrCreateAll(ctx context.Context, names []string) ([]models.Genre, error) {
	genres := make([]models.Genre, 0, len(names))
	for _, name := range names {
		genre, err := r.FindOrCreate(ctx, name)
		if err != nil {
			return nil, err
		}
		genres = append(genres, *genre)
	}
	return genres, nil
}

func (r *genreRepository) FindAll(ctx context.Context) ([]models.Genre, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var genres []models.Genre
	err := db.Order("name").Find(&genres).Error
	return genres, err
}
