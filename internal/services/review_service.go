package services

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/auth"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type ReviewService interface {
	CreateReview(ctx context.Context, user *models.User, movieID uint, form *ReviewForm) (*models.Review, error)
	// DeleteReview returns the id of the movie the review belonged to.
	DeleteReview(ctx context.Context, user *models.User, reviewID uint) (uint, error)
}

type reviewService struct {
	repo      repository.ReviewRepository
	movieRepo repository.MovieRepository
	logger    *logrus.Logger
}

func NewReviewService(repo repository.ReviewRepository, movieRepo repository.MovieRepository, logger *logrus.Logger) ReviewService {
	return &reviewService{
		repo:      repo,
		movieRepo: movieRepo,
		logger:    logger,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, user *models.User, movieID uint, form *ReviewForm) (*models.Review, error) {
	if user == nil {
		return nil, ErrUnauthenticated
	}
	if _, err := s.movieRepo.FindByID(ctx, movieID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to load movie: %w", err)
	}
	if err := validateReviewForm(form); err != nil {
		return nil, err
	}

	review := &models.Review{
		MovieID: movieID,
		OwnerID: user.ID,
		Text:    form.Text,
		Rating:  form.Rating,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		s.logger.WithError(err).WithField("movie_id", movieID).Error("Failed to create review")
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	review.Owner = user

	s.logger.WithFields(logrus.Fields{
		"review_id": review.ID,
		"movie_id":  movieID,
		"rating":    review.Rating,
	}).Info("Review posted")

	return review, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, user *models.User, reviewID uint) (uint, error) {
	if user == nil {
		return 0, ErrUnauthenticated
	}
	review, err := s.repo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrReviewNotFound
		}
		return 0, fmt.Errorf("failed to load review: %w", err)
	}
	if !auth.CanModify(user, review.OwnerID) {
		return 0, ErrForbidden
	}

	if err := s.repo.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrReviewNotFound
		}
		return 0, fmt.Errorf("failed to delete review: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"review_id": reviewID,
		"user_id":   user.ID,
	}).Info("Review deleted")

	return review.MovieID, nil
}
