package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movie-catalog/internal/auth"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type RegisterForm struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=150" example:"cinephile"`
	Email    string `json:"email" form:"email" validate:"omitempty,email" example:"cinephile@example.com"`
	Password string `json:"password" form:"password" validate:"required,min=8" example:"s3cret-pass"`
}

type LoginForm struct {
	Username string `json:"username" form:"username" validate:"required" example:"cinephile"`
	Password string `json:"password" form:"password" validate:"required" example:"s3cret-pass"`
}

type UserService interface {
	Register(ctx context.Context, form *RegisterForm) (*models.User, error)
	Login(ctx context.Context, form *LoginForm) (string, *models.User, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	EnsureSuperuser(ctx context.Context, username, email, password string) error
}

type userService struct {
	repo       repository.UserRepository
	tokens     *auth.TokenManager
	bcryptCost int
	logger     *logrus.Logger
}

func NewUserService(repo repository.UserRepository, tokens *auth.TokenManager, bcryptCost int, logger *logrus.Logger) UserService {
	return &userService{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *userService) Register(ctx context.Context, form *RegisterForm) (*models.User, error) {
	form.Username = strings.TrimSpace(form.Username)
	form.Email = strings.TrimSpace(form.Email)

	verr := &ValidationError{}
	collectFieldErrors(verr, validate.Struct(form))
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByUsername(ctx, form.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	return s.createUser(ctx, form.Username, form.Email, form.Password, false)
}

func (s *userService) Login(ctx context.Context, form *LoginForm) (string, *models.User, error) {
	verr := &ValidationError{}
	collectFieldErrors(verr, validate.Struct(form))
	if err := verr.orNil(); err != nil {
		return "", nil, err
	}

	user, err := s.repo.FindByUsername(ctx, strings.TrimSpace(form.Username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !auth.CheckPassword(user.PasswordHash, form.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Authenticate resolves a bearer token to the current state of its user.
func (s *userService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// EnsureSuperuser creates the account, or promotes an existing one.
func (s *userService) EnsureSuperuser(ctx context.Context, username, email, password string) error {
	user, err := s.repo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		if user.IsSuperuser {
			return nil
		}
		user.IsSuperuser = true
		if err := s.repo.Update(ctx, user); err != nil {
			return fmt.Errorf("failed to promote %s: %w", username, err)
		}
		s.logger.WithField("username", username).Info("Existing user promoted to superuser")
		return nil
	case errors.Is(err, repository.ErrNotFound):
		if _, err := s.createUser(ctx, username, email, password, true); err != nil {
			return err
		}
		s.logger.WithField("username", username).Info("Superuser created")
		return nil
	default:
		return fmt.Errorf("failed to load user: %w", err)
	}
}

func (s *userService) createUser(ctx context.Context, username, email, password string, superuser bool) (*models.User, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsSuperuser:  superuser,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}
