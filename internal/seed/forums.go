package seed

import (
	"fmt"

	"forumapp/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BuiltInForum is a permanent forum present in every environment.
type BuiltInForum struct {
	Name        string
	Description string
}

// BuiltInForums defines the permanent forums.
var BuiltInForums = []BuiltInForum{
	{Name: "General Discussion", Description: "Talk about anything."},
	{Name: "Tech Talk", Description: "Discuss technology and programming."},
	{Name: "Off Topic", Description: "Casual conversations and fun."},
}

// Forums seeds the permanent forums. Reruns are safe: an existing forum is
// updated in place, keyed by its unique name.
func Forums(db *gorm.DB) error {
	for _, item := range BuiltInForums {
		forum := models.Forum{
			Name:        item.Name,
			Description: item.Description,
		}

		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"description"}),
		}).Create(&forum).Error
		if err != nil {
			return fmt.Errorf("seed built-in forum %q: %w", item.Name, err)
		}
	}

	return nil
}
