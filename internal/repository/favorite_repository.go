package repository

import (
	"context"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm/clause"
)

type FavoriteRepository interface {
	Add(ctx context.Context, movieID, userID uint) error
	Remove(ctx context.Context, movieID, userID uint) error
	Exists(ctx context.Context, movieID, userID uint) (bool, error)
	MovieIDsByUser(ctx context.Context, userID uint) ([]uint, error)
}

type favoriteRepository struct {
	baseRepository
}

func NewFavoriteRepository(db *database.Database) FavoriteRepository {
	return &favoriteRepository{baseRepository: newBaseRepository(db)}
}

// Add relies on the (movie_id, user_id) unique index; a duplicate is a no-op.
func (r *favoriteRepository) Add(ctx context.Context, movieID, userID uint) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "movie_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(&models.Favorite{MovieID: movieID, UserID: userID}).Error
}

// Remove succeeds whether or not the row exists.
func (r *favoriteRepository) Remove(ctx context.Context, movieID, userID uint) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return db.Where("movie_id = ? AND user_id = ?", movieID, userID).
		Delete(&models.Favorite{}).Error
}

func (r *favoriteRepository) Exists(ctx context.Context, movieID, userID uint) (bool, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var count int64
	err := db.Model(&models.Favorite{}).
		Where("movie_id = ? AND user_id = ?", movieID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *favoriteRepository) MovieIDsByUser(ctx context.Context, userID uint) ([]uint, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	ids := []uint{}
	err := db.Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Order("movie_id").
		Pluck("movie_id", &ids).Error
	return ids, err
}
