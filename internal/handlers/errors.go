package handlers

import (
	"errors"
	"strconv"

	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var errInvalidID = errors.New("invalid id")

// respondError maps service errors to status codes. Unknown errors are
// logged and answered with the generic fallback message.
func respondError(c *fiber.Ctx, logger *logrus.Logger, err error, fallback string) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return utils.ValidationErrorResponse(c, verr.Fields)
	case errors.Is(err, errInvalidID):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id")
	case errors.Is(err, services.ErrUnauthenticated),
		errors.Is(err, services.ErrInvalidCredentials):
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrForbidden):
		return utils.ErrorResponse(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrMovieNotFound),
		errors.Is(err, services.ErrReviewNotFound),
		errors.Is(err, services.ErrDirectorNotFound),
		errors.Is(err, services.ErrPictureNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrUsernameTaken):
		return utils.ErrorResponse(c, fiber.StatusConflict, err.Error())
	default:
		logger.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).Error(fallback)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, fallback)
	}
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}
