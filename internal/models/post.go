package models

import "time"

// Post is an entry in a forum. Rows are never hard-deleted; IsDeleted hides
// them from every read path.
type Post struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Title     string     `gorm:"not null;size:500" json:"title"`
	Content   string     `gorm:"type:text;not null;size:4000" json:"content"`
	ForumID   uint       `gorm:"not null;index" json:"forum_id"`
	Forum     *Forum     `gorm:"foreignKey:ForumID" json:"forum,omitempty"`
	CreatedBy string     `gorm:"not null;index;size:450" json:"created_by"`
	Comments  []Comment  `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	IsDeleted bool       `gorm:"not null;default:false;index" json:"-"`
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`
}
