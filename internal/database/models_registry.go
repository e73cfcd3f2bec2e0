package database

import "forumapp/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Forum{},
		&models.Post{},
		&models.Comment{},
	}
}
