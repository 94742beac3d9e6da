package models

import "time"

// Contact is a message submitted through the public contact form.
// Records are append-only from the public side; only the read flag is
// mutated afterwards, and only by an admin.
type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Email     string    `gorm:"size:255;not null" json:"email" validate:"required,email"`
	Subject   string    `gorm:"size:200;not null" json:"subject" validate:"required,max=200"`
	Message   string    `gorm:"type:text;not null" json:"message" validate:"required,min=10"`
	Read      bool      `gorm:"default:false;index" json:"read"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Contact) TableName() string { return "contacts" }
