package models

import "time"

// Project represents a portfolio project shown on the public site.
type Project struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"size:200;not null" json:"title" validate:"required,max=200"`
	Description  string     `gorm:"type:text;not null" json:"description" validate:"required"`
	ImageURL     string     `gorm:"size:500;not null" json:"image_url" validate:"required"`
	Technologies StringList `gorm:"type:text" json:"technologies"`
	ProjectURL   string     `gorm:"size:500" json:"project_url" validate:"omitempty,url"`
	GithubURL    string     `gorm:"size:500" json:"github_url" validate:"omitempty,url"`
	Featured     bool       `gorm:"default:false;index" json:"featured"`
	AuthorID     *uint      `json:"author_id"`
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Project) TableName() string { return "projects" }
