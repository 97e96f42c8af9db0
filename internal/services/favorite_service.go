package services

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

// FavoriteService toggles the requesting user's own favorites. Both
// directions are idempotent.
type FavoriteService interface {
	AddFavorite(ctx context.Context, user *models.User, movieID uint) error
	RemoveFavorite(ctx context.Context, user *models.User, movieID uint) error
}

type favoriteService struct {
	repo      repository.FavoriteRepository
	movieRepo repository.MovieRepository
	logger    *logrus.Logger
}

func NewFavoriteService(repo repository.FavoriteRepository, movieRepo repository.MovieRepository, logger *logrus.Logger) FavoriteService {
	return &favoriteService{
		repo:      repo,
		movieRepo: movieRepo,
		logger:    logger,
	}
}

func (s *favoriteService) AddFavorite(ctx context.Context, user *models.User, movieID uint) error {
	if err := s.check(ctx, user, movieID); err != nil {
		return err
	}
	if err := s.repo.Add(ctx, movieID, user.ID); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	s.logger.WithFields(logrus.Fields{"movie_id": movieID, "user_id": user.ID}).Debug("Favorite added")
	return nil
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, user *models.User, movieID uint) error {
	if err := s.check(ctx, user, movieID); err != nil {
		return err
	}
	if err := s.repo.Remove(ctx, movieID, user.ID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	s.logger.WithFields(logrus.Fields{"movie_id": movieID, "user_id": user.ID}).Debug("Favorite removed")
	return nil
}

func (s *favoriteService) check(ctx context.Context, user *models.User, movieID uint) error {
	if user == nil {
		return ErrUnauthenticated
	}
	if _, err := s.movieRepo.FindByID(ctx, movieID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMovieNotFound
		}
		return fmt.Errorf("failed to load movie: %w", err)
	}
	return nil
}
