package handlers

import (
	"movie-catalog/internal/middleware"
	"movie-catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type FavoriteHandler struct {
	service services.FavoriteService
	logger  *logrus.Logger
}

func NewFavoriteHandler(service services.FavoriteService, logger *logrus.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
		logger:  logger,
	}
}

// AddFavorite godoc
// @Summary Favorite a movie
// @Description Idempotent. Responds 200 with an empty body.
// @Tags favorites
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Success 200 "Marked as favorite"
// @Failure 401 {object} utils.StandardResponse "Authentication required"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movie/{id}/favorite [post]
func (h *FavoriteHandler) AddFavorite(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err, "")
	}

	if err := h.service.AddFavorite(c.Context(), middleware.CurrentUser(c), id); err != nil {
		return respondError(c, h.logger, err, "Failed to add favorite")
	}
	return c.Status(fiber.StatusOK).Send(nil)
}

// RemoveFavorite godoc
// @Summary Unfavorite a movie
// @Description Idempotent. Responds 200 with an empty body.
// @Tags favorites
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Success 200 "Favorite removed"
// @Failure 401 {object} utils.StandardResponse "Authentication required"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movie/{id}/unfavorite [post]
func (h *FavoriteHandler) RemoveFavorite(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err, "")
	}

	if err := h.service.RemoveFavorite(c.Context(), middleware.CurrentUser(c), id); err != nil {
		return respondError(c, h.logger, err, "Failed to remove favorite")
	}
	return c.Status(fiber.StatusOK).Send(nil)
}
