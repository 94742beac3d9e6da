package models

import "time"

// Blog represents a post. Unpublished posts are only visible to admins.
type Blog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:200;not null" json:"title" validate:"required,max=200"`
	Slug       string    `gorm:"uniqueIndex;size:220;not null" json:"slug" validate:"required,slugfmt,max=220"`
	Content    string    `gorm:"type:text;not null" json:"content" validate:"required"`
	Excerpt    string    `gorm:"size:500" json:"excerpt" validate:"max=500"`
	ImageURL   string    `gorm:"size:500" json:"image_url"`
	CategoryID *uint     `json:"category_id"`
	AuthorID   *uint     `json:"author_id"`
	Published  bool      `gorm:"default:false;index" json:"published"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Blog) TableName() string { return "blogs" }
