// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account. The ID is the opaque identity string
// recorded on posts and comments as CreatedBy.
type User struct {
	ID        string    `gorm:"primaryKey;size:450" json:"id"`
	Username  string    `gorm:"unique;not null;size:30" json:"username"`
	Email     string    `gorm:"unique;not null;size:254" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID identity when none was provided.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
