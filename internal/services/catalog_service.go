package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

// PersonForm creates a director or an actor.
type PersonForm struct {
	Name      string `json:"name" form:"name" validate:"required,max=200" example:"Christopher Nolan"`
	Biography string `json:"biography" form:"biography" example:"British-American filmmaker."`
}

type CatalogService interface {
	ListDirectors(ctx context.Context) ([]models.Director, error)
	CreateDirector(ctx context.Context, user *models.User, form *PersonForm) (*models.Director, error)
	DeleteDirector(ctx context.Context, user *models.User, id uint) error
	ListActors(ctx context.Context) ([]models.Actor, error)
	CreateActor(ctx context.Context, user *models.User, form *PersonForm) (*models.Actor, error)
	ListGenres(ctx context.Context) ([]models.Genre, error)
}

type catalogService struct {
	directorRepo repository.DirectorRepository
	actorRepo    repository.ActorRepository
	genreRepo    repository.GenreRepository
	logger       *logrus.Logger
}

func NewCatalogService(directorRepo repository.DirectorRepository, actorRepo repository.ActorRepository, genreRepo repository.GenreRepository, logger *logrus.Logger) CatalogService {
	return &catalogService{
		directorRepo: directorRepo,
		actorRepo:    actorRepo,
		genreRepo:    genreRepo,
		logger:       logger,
	}
}

func (s *catalogService) ListDirectors(ctx context.Context) ([]models.Director, error) {
	return s.directorRepo.FindAll(ctx)
}

func (s *catalogService) CreateDirector(ctx context.Context, user *models.User, form *PersonForm) (*models.Director, error) {
	if user == nil {
		return nil, ErrUnauthenticated
	}
	// director names are stored in a narrower column than actor names
	if err := validatePersonForm(form, 100); err != nil {
		return nil, err
	}

	director := &models.Director{Name: form.Name, Biography: optional(form.Biography)}
	if err := s.directorRepo.Create(ctx, director); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, &ValidationError{Fields: map[string]string{"name": "Director with this name already exists."}}
		}
		return nil, fmt.Errorf("failed to create director: %w", err)
	}
	return director, nil
}

// DeleteDirector is reserved to superusers. Movies keep existing with no
// director.
func (s *catalogService) DeleteDirector(ctx context.Context, user *models.User, id uint) error {
	if user == nil {
		return ErrUnauthenticated
	}
	if !user.IsSuperuser {
		return ErrForbidden
	}
	if err := s.directorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDirectorNotFound
		}
		return fmt.Errorf("failed to delete director: %w", err)
	}
	s.logger.WithFields(logrus.Fields{"director_id": id, "user_id": user.ID}).Info("Director deleted")
	return nil
}

func (s *catalogService) ListActors(ctx context.Context) ([]models.Actor, error) {
	return s.actorRepo.FindAll(ctx)
}

func (s *catalogService) CreateActor(ctx context.Context, user *models.User, form *PersonForm) (*models.Actor, error) {
	if user == nil {
		return nil, ErrUnauthenticated
	}
	if err := validatePersonForm(form, 200); err != nil {
		return nil, err
	}

	actor := &models.Actor{Name: form.Name, Biography: optional(form.Biography)}
	if err := s.actorRepo.Create(ctx, actor); err != nil {
		return nil, fmt.Errorf("failed to create actor: %w", err)
	}
	return actor, nil
}

func (s *catalogService) ListGenres(ctx context.Context) ([]models.Genre, error) {
	return s.genreRepo.FindAll(ctx)
}

func validatePersonForm(f *PersonForm, maxName int) error {
	f.Name = strings.TrimSpace(f.Name)
	f.Biography = strings.TrimSpace(f.Biography)

	verr := &ValidationError{}
	if len([]rune(f.Name)) > maxName {
		verr.add("name", fmt.Sprintf("Ensure this value has at most %d characters.", maxName))
	}
	collectFieldErrors(verr, validate.Struct(f))
	return verr.orNil()
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
