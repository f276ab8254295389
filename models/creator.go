package models

import (
	"time"
)

type Creator struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"uniqueIndex;not null" json:"name"` // join key referenced by Series.Creator
	Handle   string `gorm:"size:64" json:"handle"`
	ImageURL string `json:"image_url"`
	Bio      string `gorm:"type:text" json:"bio"`

	// Sparse platform -> URL mapping; keys are optional.
	Socials map[string]string `gorm:"serializer:json" json:"socials"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Creator) TableName() string {
	return "creators"
}
