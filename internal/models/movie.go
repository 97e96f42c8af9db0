package models

import (
	"time"
)

type Movie struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	Title       string    `gorm:"size:256;not null;index" json:"title" example:"Inception"`
	ReleaseYear int       `gorm:"not null;index" json:"release_year" example:"2010"`
	Description string    `gorm:"type:text;not null" json:"description" example:"A thief who steals corporate secrets..."`
	DirectorID  *uint     `gorm:"index" json:"director_id"`
	Director    *Director `gorm:"foreignKey:DirectorID" json:"director,omitempty"`
	Actors      string    `gorm:"size:256" json:"actors" example:"Leonardo DiCaprio, Elliot Page"`
	Genres      []Genre   `gorm:"many2many:movie_genres;" json:"genres,omitempty"`
	Picture     []byte    `json:"-"`
	ContentType string    `gorm:"size:256" json:"content_type,omitempty" example:"image/jpeg"`
	PosterURL   string    `json:"poster_url,omitempty"`
	OwnerID     uint      `gorm:"index;not null" json:"owner_id" example:"1"`
	Owner       *User     `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `gorm:"index" json:"updated_at"`

	// Filled by listing queries only.
	AverageRating *float64 `gorm:"->;-:migration" json:"average_rating"`
	ReviewCount   int64    `gorm:"->;-:migration" json:"review_count"`
}

func (Movie) TableName() string {
	return "movies"
}

func (m *Movie) HasPicture() bool {
	return m.ContentType != ""
}

func (m *Movie) DirectorName() string {
	if m.Director == nil {
		return ""
	}
	return m.Director.Name
}

// ListQuery carries the listing parameters as received from the client.
type ListQuery struct {
	Search string `json:"search" example:"dream"`
	Sort   string `json:"sort" example:"title-asc"`
	Filter string `json:"filter" example:"all"`
}

// MovieList is the result of a listing query.
type MovieList struct {
	Movies    []Movie `json:"movies"`
	Total     int64   `json:"total"`
	Favorites []uint  `json:"favorites"`
	ListQuery
}

// MovieDetail is a movie with everything the detail page shows.
type MovieDetail struct {
	Movie         *Movie   `json:"movie"`
	Reviews       []Review `json:"reviews"`
	GenreNames    []string `json:"genres"`
	AverageRating *float64 `json:"average_rating"`
	IsFavorite    bool     `json:"is_favorite"`
}
