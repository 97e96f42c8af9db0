package routes

import (
	"movie-catalog/internal/handlers"
	"movie-catalog/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Movie    *handlers.MovieHandler
	Review   *handlers.ReviewHandler
	Favorite *handlers.FavoriteHandler
	Auth     *handlers.AuthHandler
	Catalog  *handlers.CatalogHandler
}

// Setup registers the catalog routes. authenticate resolves the caller on
// every request; routes that need a user add RequireAuth on top.
func Setup(app *fiber.App, h Handlers, authenticate fiber.Handler) {
	app.Use(authenticate)
	requireAuth := middleware.RequireAuth()

	// Auth routes
	authGroup := app.Group("/auth")
	{
		authGroup.Post("/register", h.Auth.Register)
		authGroup.Post("/login", h.Auth.Login)
		authGroup.Get("/me", requireAuth, h.Auth.Me)
	}

	// Movie routes - browse and search
	app.Get("/", h.Movie.ListMovies)
	app.Get("/search/recent", h.Movie.SearchRecent)
	app.Get("/search", h.Movie.ListMovies)

	// Movie routes - owner scoped CRUD
	app.Get("/create", requireAuth, h.Movie.CreateForm)
	app.Post("/create", requireAuth, h.Movie.CreateMovie)
	app.Get("/:id<int>", h.Movie.GetMovie)
	app.Get("/:id<int>/picture", h.Movie.GetPicture)
	app.Get("/:id<int>/update", requireAuth, h.Movie.EditForm)
	app.Post("/:id<int>/update", requireAuth, h.Movie.UpdateMovie)
	app.Post("/:id<int>/delete", requireAuth, h.Movie.DeleteMovie)

	// Favorite and review routes
	movie := app.Group("/movie")
	{
		movie.Post("/:id<int>/favorite", requireAuth, h.Favorite.AddFavorite)
		movie.Post("/:id<int>/unfavorite", requireAuth, h.Favorite.RemoveFavorite)
		movie.Post("/:id<int>/review", requireAuth, h.Review.CreateReview)
	}
	app.Post("/review/:id<int>/delete", requireAuth, h.Review.DeleteReview)

	// Catalog routes - directors, actors, genres
	app.Get("/directors", h.Catalog.ListDirectors)
	app.Post("/directors", requireAuth, h.Catalog.CreateDirector)
	app.Post("/directors/:id<int>/delete", requireAuth, h.Catalog.DeleteDirector)
	app.Get("/actors", h.Catalog.ListActors)
	app.Post("/actors", requireAuth, h.Catalog.CreateActor)
	app.Get("/genres", h.Catalog.ListGenres)
}
