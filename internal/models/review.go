package models

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	MovieID   uint      `gorm:"index;not null" json:"movie_id" example:"1"`
	OwnerID   uint      `gorm:"index;not null" json:"owner_id" example:"1"`
	Owner     *User     `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Text      string    `gorm:"type:text;not null" json:"text" example:"Great pacing."`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating" example:"4"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}

// Favorite marks a movie as liked by a user. At most one row exists per
// (movie, user).
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MovieID   uint      `gorm:"not null;uniqueIndex:idx_favorites_movie_user" json:"movie_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorites_movie_user;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}
