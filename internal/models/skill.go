package models

import "time"

// SkillCategories is the fixed set of valid skill groupings.
var SkillCategories = []string{"frontend", "backend", "database", "tools", "cloud"}

// Skill represents a single skill bar with a proficiency percentage.
type Skill struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Percentage int       `gorm:"not null" json:"percentage" validate:"min=0,max=100"`
	Category   string    `gorm:"size:50;not null;index" json:"category" validate:"required,oneof=frontend backend database tools cloud"`
	SortOrder  int       `gorm:"column:sort_order;default:0" json:"order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Skill) TableName() string { return "skills" }
