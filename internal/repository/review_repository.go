package repository

import (
	"context"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	FindByID(ctx context.Context, id uint) (*models.Review, error)
	FindByMovie(ctx context.Context, movieID uint) ([]models.Review, error)
	Delete(ctx context.Context, id uint) error
}

type reviewRepository struct {
	baseRepository
}

func NewReviewRepository(db *database.Database) ReviewRepository {
	return &reviewRepository{baseRepository: newBaseRepository(db)}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return db.Omit("Owner").Create(review).Error
}

func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*models.Review, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var review models.Review
	if err := db.First(&review, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &review, nil
}

// FindByMovie returns the reviews newest first.
func (r *reviewRepository) FindByMovie(ctx context.Context, movieID uint) ([]models.Review, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var reviews []models.Review
	err := db.Preload("Owner").
		Where("movie_id = ?", movieID).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	result := db.Delete(&models.Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
