package models

import "time"

type Director struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name" example:"Christopher Nolan"`
	Biography *string   `gorm:"type:text" json:"biography,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (Director) TableName() string {
	return "directors"
}

// Actor is catalog information only; movies keep their cast as free text.
type Actor struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	Name      string    `gorm:"size:200;not null;index" json:"name" example:"Cillian Murphy"`
	Biography *string   `gorm:"type:text" json:"biography,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (Actor) TableName() string {
	return "actors"
}
