package models

import "time"

// Category groups blog posts. Name and slug are both unique.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100;not null" json:"name" validate:"required,max=100"`
	Slug      string    `gorm:"uniqueIndex;size:120;not null" json:"slug" validate:"required,slugfmt,max=120"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Category) TableName() string { return "categories" }
