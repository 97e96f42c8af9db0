package handlers

import (
	"fmt"
	"io"
	"mime/multipart"

	"movie-catalog/internal/middleware"
	"movie-catalog/internal/models"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service    services.MovieService
	maxPicture int64
	logger     *logrus.Logger
}

func NewMovieHandler(service services.MovieService, maxPicture int64, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service:    service,
		maxPicture: maxPicture,
		logger:     logger,
	}
}

// ListMovies godoc
// @Summary List movies
// @Description List movies with optional search, sort and rating filter. Each movie carries its average rating (null without reviews; unrated movies sort last).
// @Tags movies
// @Produce json
// @Param search query string false "Case-insensitive match on title or description"
// @Param sort query string false "title-asc, title-desc, year-asc, year-desc, rating-asc, rating-desc" default(title-asc)
// @Param filter query string false "all or top_rated (average >= 4)" default(all)
// @Success 200 {object} utils.StandardResponse{data=MovieListResponse,meta=ListMeta} "List of movies"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router / [get]
// @Router /search/ [get]
func (h *MovieHandler) ListMovies(c *fiber.Ctx) error {
	ctx := c.Context()

	query := models.ListQuery{
		Search: c.Query("search", ""),
		Sort:   c.Query("sort", "title-asc"),
		Filter: c.Query("filter", "all"),
	}

	list, err := h.service.ListMovies(ctx, query, middleware.CurrentUser(c))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve movies")
	}

	meta := ListMeta{
		Search: list.Search,
		Sort:   list.Sort,
		Filter: list.Filter,
		Total:  list.Total,
	}
	data := MovieListResponse{
		Movies:    toMovieResponses(list.Movies),
		Favorites: list.Favorites,
	}
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Movies retrieved successfully", data, meta)
}

// SearchRecent godoc
// @Summary Search recent movies
// @Description Match title, description, director name or actors and return the 10 most recently created matches
// @Tags movies
// @Produce json
// @Param search query string false "Search text"
// @Success 200 {object} utils.StandardResponse{data=[]MovieResponse} "Matching movies"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /search/recent/ [get]
func (h *MovieHandler) SearchRecent(c *fiber.Ctx) error {
	ctx := c.Context()

	movies, err := h.service.SearchRecent(ctx, c.Query("search", ""))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to search movies")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", toMovieResponses(movies))
}

// GetMovie godoc
// @Summary Get movie detail
// @Description Movie with its reviews (newest first), genres and average rating
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse{data=MovieDetailResponse} "Movie details"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /{id}/ [get]
func (h *MovieHandler) GetMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err, "")
	}

	detail, err := h.service.GetMovieDetail(ctx, id, middleware.CurrentUser(c))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve movie")
	}

	resp := MovieDetailResponse{
		Movie:         toMovieResponse(*detail.Movie),
		Reviews:       detail.Reviews,
		Genres:        detail.GenreNames,
		AverageRating: detail.AverageRating,
		IsFavorite:    detail.IsFavorite,
		RatingChoices: ratingChoices(),
		Flash:         popFlash(c),
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", resp)
}

// GetPicture godoc
// @Summary Get movie poster
// @Description Raw poster bytes served with the content type recorded at upload
// @Tags movies
// @Produce octet-stream
// @Param id path int true "Movie ID"
// @Success 200 {file} binary "Poster"
// @Failure 404 {object} utils.StandardResponse "Movie or picture not found"
// @Router /{id}/picture [get]
func (h *MovieHandler) GetPicture(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err, "")
	}

	data, contentType, err := h.service.GetPicture(ctx, id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve picture")
	}

	c.Set(fiber.HeaderContentType, contentType)
	return c.Status(fiber.StatusOK).Send(data)
}

// CreateForm godoc
// @Summary Empty movie form
// @Tags movies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.StandardResponse{data=services.MovieFormView} "Form"
// @Failure 401 {object} utils.StandardResponse "Authentication required"
// @Router /create/ [get]
func (h *MovieHandler) CreateForm(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "Movie form", h.service.NewForm())
}

// CreateMovie godoc
// @Summary Create a movie
// @Description Create a movie owned by the caller. Director and genres are resolved by name and created when missing.
// @Tags movies
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param release_year formData int true "Release year"
// @Param description formData string true "Description"
// @Param director_name formData string true "Director name"
// @Param genres formData string false "Comma separated genres"
// @Param actors formData string false "Actors"
// @Param picture formData file false "Poster (<= 5.2 MB)"
// @Success 201 {object} utils.StandardResponse{data=MovieResponse} "Movie created successfully"
// @Failure 400 {object} utils.StandardResponse{data=utils.ValidationErrors} "Validation failed"
// @Failure 401 {object} utils.StandardResponse "Authentication required"
// @Router /create/ [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	form, err := h.parseMovieForm(c)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to read form")
	}

	movie, err := h.service.CreateMovie(ctx, middleware.CurrentUser(c), form)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create movie")
	}

	if wantsHTML(c) {
		return redirectWithFlash(c, "/", "")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie created successfully", toMovieResponse(*movie))
}

// EditForm godoc
// @Summary Movie edit form
// @Description Current values with director name and comma separated genres filled in
// @Tags movies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse{data=services.MovieFormView} "Form"
// @Failure 403 {object} utils.StandardResponse "Not the owner"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /{id}/update/ [get]
func (h *MovieHandler) EditForm(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err, "")
	}

	view, err := h.service.EditForm(ctx, middleware.CurrentUser(c), id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to load movie form")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie form", view)
}

// UpdateMovie godoc
// @Summary Update a movie
// @Description Owner or superuser only. Without a new picture the stored one is kept.
// @Tags movies
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Param title formData string true "Title"
// @Param release_year formData int true "Release year"
// @Param description formData string true "Description"
// @Param director_name formData string true "Director name"
// @Param genres formData string false "Comma separated genres"
// @Param actors formData string false "Actors"
// @Param picture formData file false "Poster (<= 5.2 MB)"
// @Success 200 {object} utils.StandardResponse{data=MovieResponse} "Movie updated successfully"
// @Failure 400 {object} utils.StandardResponse{data=utils.ValidationErrors} "Validation failed"
// @Failure 403 {object} utils.StandardResponse "Not the owner"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /{id}/update/ [post]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err, "")
	}

	form, err := h.parseMovieForm(c)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to read form")
	}

	movie, err := h.service.UpdateMovie(ctx, middleware.CurrentUser(c), id, form)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update movie")
	}

	if wantsHTML(c) {
		return redirectWithFlash(c, fmt.Sprintf("/%d/", movie.ID), "")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Movie updated successfully", toMovieResponse(*movie))
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Description Owner or superuser only. Reviews and favorites of the movie are deleted with it.
// @Tags movies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Movie deleted successfully"
// @Success 303 "Redirect to the list for browser forms"
// @Failure 403 {object} utils.StandardResponse "Not the owner"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /{id}/delete/ [post]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err, "")
	}

	if err := h.service.DeleteMovie(ctx, middleware.CurrentUser(c), id); err != nil {
		return respondError(c, h.logger, err, "Failed to delete movie")
	}

	if wantsHTML(c) {
		return redirectWithFlash(c, "/", "")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Movie deleted successfully", nil)
}

func (h *MovieHandler) parseMovieForm(c *fiber.Ctx) (*services.MovieForm, error) {
	form, err := bindMovieForm(c)
	if err != nil {
		return nil, err
	}

	// no multipart body or no picture part both mean "keep the picture"
	fh, err := c.FormFile("picture")
	if err != nil {
		return form, nil
	}

	upload, err := readUpload(fh, h.maxPicture)
	if err != nil {
		return nil, err
	}
	form.Picture = upload
	return form, nil
}

// readUpload loads the file into memory unless its declared size is
// already over the limit; validation rejects it from the size alone.
func readUpload(fh *multipart.FileHeader, limit int64) (*services.Upload, error) {
	upload := &services.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
	}
	if fh.Size > limit {
		return upload, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	upload.Data = data
	return upload, nil
}
