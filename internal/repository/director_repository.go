package repository

import (
	"context"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm/clause"
)

type DirectorRepository interface {
	Create(ctx context.Context, director *models.Director) error
	FindByID(ctx context.Context, id uint) (*models.Director, error)
	FindOrCreate(ctx context.Context, name string) (*models.Director, error)
	FindAll(ctx context.Context) ([]models.Director, error)
	Delete(ctx context.Context, id uint) error
}

type directorRepository struct {
	baseRepository
}

func NewDirectorRepository(db *database.Database) DirectorRepository {
	return &directorRepository{baseRepository: newBaseRepository(db)}
}

// Create returns ErrAlreadyExists when the name is taken.
func (r *directorRepository) Create(ctx context.Context, director *models.Director) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(director)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlreadyExists
	}
	return nil
}

func (r *directorRepository) FindByID(ctx context.Context, id uint) (*models.Director, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var director models.Director
	if err := db.First(&director, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &director, nil
}

// FindOrCreate matches the name exactly, without case folding. A concurrent
// insert of the same name loses on the unique index and reads the winner.
func (r *directorRepository) FindOrCreate(ctx context.Context, name string) (*models.Director, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&models.Director{Name: name}).Error; err != nil {
		return nil, err
	}

	var director models.Director
	if err := db.Where("name = ?", name).First(&director).Error; err != nil {
		return nil, notFound(err)
	}
	return &director, nil
}

func (r *directorRepository) FindAll(ctx context.Context) ([]models.Director, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var directors []models.Director
	err := db.Order("name, id").Find(&directors).Error
	return directors, err
}

// Delete detaches the director from its movies before removing it.
func (r *directorRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.Transaction(ctx, func(ctx context.Context) error {
		db := r.db.Conn(ctx)
		if err := db.Model(&models.Movie{}).
			Where("director_id = ?", id).
			UpdateColumn("director_id", nil).Error; err != nil {
			return err
		}
		result := db.Delete(&models.Director{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
