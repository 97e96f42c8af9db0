package handlers

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"movie-catalog/internal/middleware"
	"movie-catalog/internal/models"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReviewHandler struct {
	service services.ReviewService
	logger  *logrus.Logger
}

func NewReviewHandler(service services.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger,
	}
}

// CreateReview godoc
// @Summary Review a movie
// @Description Post a review rated 1 to 5. Browser forms are redirected back to the movie page with a flash message.
// @Tags reviews
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Param review body services.ReviewForm true "Review"
// @Success 201 {object} utils.StandardResponse{data=models.Review} "Review posted"
// @Failure 400 {object} utils.StandardResponse{data=utils.ValidationErrors} "Validation failed"
// @Failure 401 {object} utils.StandardResponse "Authentication required"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movie/{id}/review/ [post]
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	ctx := c.Context()

	movieID, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err, "")
	}

	var review *models.Review
	form, err := bindReviewForm(c)
	if err == nil {
		review, err = h.service.CreateReview(ctx, middleware.CurrentUser(c), movieID, form)
	}
	if err != nil {
		var verr *services.ValidationError
		if wantsHTML(c) && errors.As(err, &verr) {
			return redirectWithFlash(c, fmt.Sprintf("/%d/", movieID), "Error: "+flattenErrors(verr))
		}
		return respondError(c, h.logger, err, "Failed to post review")
	}

	if wantsHTML(c) {
		return redirectWithFlash(c, fmt.Sprintf("/%d/", movieID), "Review posted.")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Review posted", review)
}

// DeleteReview godoc
// @Summary Delete a review
// @Description Review author or superuser only
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 200 {object} utils.StandardResponse "Review deleted"
// @Failure 403 {object} utils.StandardResponse "Not the author"
// @Failure 404 {object} utils.StandardResponse "Review not found"
// @Router /review/{id}/delete/ [post]
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err, "")
	}

	movieID, err := h.service.DeleteReview(ctx, middleware.CurrentUser(c), id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to delete review")
	}

	if wantsHTML(c) {
		return redirectWithFlash(c, fmt.Sprintf("/%d/", movieID), "Review deleted.")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Review deleted", fiber.Map{"movie_id": movieID})
}

func flattenErrors(verr *services.ValidationError) string {
	fields := make([]string, 0, len(verr.Fields))
	for field := range verr.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+verr.Fields[field])
	}
	return strings.Join(parts, "; ")
}
