package models

import "time"

// Forum is a top-level discussion area grouping posts.
type Forum struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"unique;not null;size:200" json:"name"`
	Description string     `gorm:"size:1000" json:"description"`
	Posts       []Post     `gorm:"foreignKey:ForumID;constraint:OnDelete:RESTRICT" json:"posts,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`
}
