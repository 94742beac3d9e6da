package models

import "time"

// Video references a clip hosted on an external platform (e.g. YouTube).
type Video struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"size:200;not null" json:"title" validate:"required,max=200"`
	VideoID      string     `gorm:"size:100;not null" json:"video_id" validate:"required,max=100"`
	ThumbnailURL string     `gorm:"size:500" json:"thumbnail_url"`
	Views        *int64     `json:"views"`
	PublishedAt  *time.Time `json:"published_at"`
	Featured     bool       `gorm:"default:false;index" json:"featured"`
	SortOrder    int        `gorm:"column:sort_order;default:0" json:"order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Video) TableName() string { return "videos" }
