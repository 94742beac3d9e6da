package models

import "time"

// User represents an account that can sign in to the back-office.
type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Username  string     `gorm:"uniqueIndex;size:100;not null" json:"username" validate:"required,min=3,max=100"`
	Password  string     `gorm:"size:255" json:"-"` // bcrypt hash
	Name      string     `gorm:"size:100" json:"name"`
	Email     string     `gorm:"size:255" json:"email" validate:"omitempty,email"`
	Role      string     `gorm:"size:50;default:user" json:"role" validate:"required,oneof=user admin"`
	IsActive  bool       `gorm:"default:true" json:"is_active"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u.Role == "admin" }
