package handlers

import (
	"movie-catalog/internal/middleware"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CatalogHandler struct {
	service services.CatalogService
	logger  *logrus.Logger
}

func NewCatalogHandler(service services.CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger,
	}
}

// ListDirectors godoc
// @Summary List directors
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]models.Director} "Directors"
// @Router /directors/ [get]
func (h *CatalogHandler) ListDirectors(c *fiber.Ctx) error {
	directors, err := h.service.ListDirectors(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve directors")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Directors retrieved successfully", directors)
}

// CreateDirector godoc
// @Summary Create a director
// @Tags catalog
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param director body services.PersonForm true "Director"
// @Success 201 {object} utils.StandardResponse{data=models.Director} "Director created"
// @Failure 400 {object} utils.StandardResponse{data=utils.ValidationErrors} "Validation failed"
// @Router /directors/ [post]
func (h *CatalogHandler) CreateDirector(c *fiber.Ctx) error {
	var form services.PersonForm
	if err := c.BodyParser(&form); err != nil {
		return respondError(c, h.logger, invalidForm(err), "")
	}

	director, err := h.service.CreateDirector(c.Context(), middleware.CurrentUser(c), &form)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create director")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Director created successfully", director)
}

// DeleteDirector godoc
// @Summary Delete a director
// @Description Superuser only. Movies of the director are kept without a director.
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Director ID"
// @Success 200 {object} utils.StandardResponse "Director deleted"
// @Failure 403 {object} utils.StandardResponse "Superuser required"
// @Failure 404 {object} utils.StandardResponse "Director not found"
// @Router /directors/{id}/delete/ [post]
func (h *CatalogHandler) DeleteDirector(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err, "")
	}

	if err := h.service.DeleteDirector(c.Context(), middleware.CurrentUser(c), id); err != nil {
		return respondError(c, h.logger, err, "Failed to delete director")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Director deleted successfully", nil)
}

// ListActors godoc
// @Summary List actors
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]models.Actor} "Actors"
// @Router /actors/ [get]
func (h *CatalogHandler) ListActors(c *fiber.Ctx) error {
	actors, err := h.service.ListActors(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve actors")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Actors retrieved successfully", actors)
}

// CreateActor godoc
// @Summary Create an actor
// @Tags catalog
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param actor body services.PersonForm true "Actor"
// @Success 201 {object} utils.StandardResponse{data=models.Actor} "Actor created"
// @Failure 400 {object} utils.StandardResponse{data=utils.ValidationErrors} "Validation failed"
// @Router /actors/ [post]
func (h *CatalogHandler) CreateActor(c *fiber.Ctx) error {
	var form services.PersonForm
	if err := c.BodyParser(&form); err != nil {
		return respondError(c, h.logger, invalidForm(err), "")
	}

	actor, err := h.service.CreateActor(c.Context(), middleware.CurrentUser(c), &form)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create actor")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Actor created successfully", actor)
}

// ListGenres godoc
// @Summary List genres
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]models.Genre} "Genres"
// @Router /genres/ [get]
func (h *CatalogHandler) ListGenres(c *fiber.Ctx) error {
	genres, err := h.service.ListGenres(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve genres")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Genres retrieved successfully", genres)
}
