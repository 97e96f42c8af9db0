package repository

import (
	"context"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"
)

type ActorRepository interface {
	Create(ctx context.Context, actor *models.Actor) error
	FindAll(ctx context.Context) ([]models.Actor, error)
}

type actorRepository struct {
	baseRepository
}

func NewActorRepository(db *database.Database) ActorRepository {
	return &actorRepository{baseRepository: newBaseRepository(db)}
}

func (r *actorRepository) Create(ctx context.Context, actor *models.Actor) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return db.Create(actor).Error
}

func (r *actorRepository) FindAll(ctx context.Context) ([]models.Actor, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var actors []models.Actor
	err := db.Order("name, id").Find(&actors).Error
	return actors, err
}
