package handlers

import (
	"time"

	"movie-catalog/internal/middleware"
	"movie-catalog/internal/models"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	service    services.UserService
	cookieName string
	tokenTTL   time.Duration
	logger     *logrus.Logger
}

func NewAuthHandler(service services.UserService, cookieName string, tokenTTL time.Duration, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service:    service,
		cookieName: cookieName,
		tokenTTL:   tokenTTL,
		logger:     logger,
	}
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type" example:"Bearer"`
	ExpiresIn   int64        `json:"expires_in" example:"86400"`
	User        *models.User `json:"user"`
}

// Register godoc
// @Summary Register an account
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param account body services.RegisterForm true "Account"
// @Success 201 {object} utils.StandardResponse{data=models.User} "Account created"
// @Failure 400 {object} utils.StandardResponse{data=utils.ValidationErrors} "Validation failed"
// @Failure 409 {object} utils.StandardResponse "Username already taken"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var form services.RegisterForm
	if err := c.BodyParser(&form); err != nil {
		return respondError(c, h.logger, invalidForm(err), "")
	}

	user, err := h.service.Register(c.Context(), &form)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to register")
	}

	h.logger.WithField("user_id", user.ID).Info("User registered")
	return utils.SuccessResponse(c, fiber.StatusCreated, "Account created", user)
}

// Login godoc
// @Summary Log in
// @Description Issue a JWT. The token is also set as an HTTP-only cookie for browser forms.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param credentials body services.LoginForm true "Credentials"
// @Success 200 {object} utils.StandardResponse{data=LoginResponse} "Logged in"
// @Failure 401 {object} utils.StandardResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var form services.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return respondError(c, h.logger, invalidForm(err), "")
	}

	token, user, err := h.service.Login(c.Context(), &form)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to log in")
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.tokenTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, "Logged in", LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.tokenTTL.Seconds()),
		User:        user,
	})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.StandardResponse{data=models.User} "Current user"
// @Failure 401 {object} utils.StandardResponse "Authentication required"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "Current user", middleware.CurrentUser(c))
}
