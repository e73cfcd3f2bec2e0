package models

import "time"

// Comment is a reply on a post. Deletion is soft: IsDeleted flips to true and
// every read path filters it out.
type Comment struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Content   string     `gorm:"not null;size:1000" json:"content"`
	PostID    uint       `gorm:"not null;index" json:"post_id"`
	Post      *Post      `gorm:"foreignKey:PostID" json:"post,omitempty"`
	CreatedBy string     `gorm:"not null;size:450" json:"created_by"`
	IsDeleted bool       `gorm:"not null;default:false;index" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`
}
