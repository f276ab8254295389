package models

import (
	"time"
)

type Series struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Creator  string `gorm:"not null;index" json:"creator"` // creator display name, joins to Creator.Name
	Genre    string `gorm:"not null;index" json:"genre"`
	Synopsis string `gorm:"type:text" json:"synopsis"`
	ImageURL string `json:"image_url"`
	Featured bool   `gorm:"default:false" json:"featured"`

	// Cast is stored as a JSON array, order matters for display.
	Cast []string `gorm:"serializer:json" json:"cast"`

	// Episodes in presentation order.
	Episodes []Episode `gorm:"foreignKey:SeriesID" json:"episodes"`

	// Seed aggregate: ratings collected before any session-local vote is folded in.
	AverageRating float64 `gorm:"default:0" json:"average_rating,omitempty"`
	RatingCount   int     `gorm:"default:0" json:"rating_count,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Series) TableName() string {
	return "series"
}

type Episode struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	SeriesID int64  `gorm:"not null;index" json:"series_id"`
	Position int    `gorm:"not null" json:"position"`
	Title    string `gorm:"size:255;not null" json:"title"`
	Duration string `gorm:"size:32" json:"duration"` // display string, e.g. "4 min"
}

func (Episode) TableName() string {
	return "episodes"
}
