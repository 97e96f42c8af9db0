package handlers

import (
	"fmt"

	"movie-catalog/internal/models"

	"github.com/dustin/go-humanize"
)

// MovieResponse is a movie as rendered by the list and detail endpoints.
type MovieResponse struct {
	models.Movie
	DirectorName   string   `json:"director_name" example:"Christopher Nolan"`
	GenreNames     []string `json:"genre_names"`
	PictureURL     string   `json:"picture_url,omitempty" example:"/1/picture"`
	NaturalUpdated string   `json:"natural_updated" example:"3 hours ago"`
}

// MovieListResponse is the payload of GET /.
type MovieListResponse struct {
	Movies    []MovieResponse `json:"movies"`
	Favorites []uint          `json:"favorites"`
}

// ListMeta echoes the listing parameters actually applied.
type ListMeta struct {
	Search string `json:"search"`
	Sort   string `json:"sort"`
	Filter string `json:"filter"`
	Total  int64  `json:"total"`
}

// MovieDetailResponse is the payload of GET /:id/.
type MovieDetailResponse struct {
	Movie         MovieResponse   `json:"movie"`
	Reviews       []models.Review `json:"reviews"`
	Genres        []string        `json:"genres"`
	AverageRating *float64        `json:"average_rating"`
	IsFavorite    bool            `json:"is_favorite"`
	RatingChoices []int           `json:"rating_choices"`
	Flash         string          `json:"flash,omitempty"`
}

func toMovieResponse(m models.Movie) MovieResponse {
	resp := MovieResponse{
		Movie:          m,
		DirectorName:   m.DirectorName(),
		GenreNames:     models.GenreNames(m.Genres),
		NaturalUpdated: humanize.Time(m.UpdatedAt),
	}
	if m.HasPicture() {
		resp.PictureURL = fmt.Sprintf("/%d/picture", m.ID)
	}
	return resp
}

func toMovieResponses(movies []models.Movie) []MovieResponse {
	out := make([]MovieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, toMovieResponse(m))
	}
	return out
}

func ratingChoices() []int {
	choices := make([]int, 0, models.MaxRating-models.MinRating+1)
	for r := models.MinRating; r <= models.MaxRating; r++ {
		choices = append(choices, r)
	}
	return choices
}
