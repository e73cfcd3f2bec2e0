package seed

import (
	"testing"

	"forumapp/internal/database"
	"forumapp/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	return db
}

func TestForums_Idempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Forums(db))
	require.NoError(t, Forums(db))

	var count int64
	require.NoError(t, db.Model(&models.Forum{}).Count(&count).Error)
	assert.Equal(t, int64(len(BuiltInForums)), count)

	var general models.Forum
	require.NoError(t, db.Where("name = ?", "General Discussion").First(&general).Error)
	assert.Equal(t, "Talk about anything.", general.Description)
}

func TestSeed_CreatesContent(t *testing.T) {
	db := newTestDB(t)

	err := Seed(db, Options{
		NumUsers:           3,
		NumPosts:           5,
		MaxCommentsPerPost: 2,
	})
	require.NoError(t, err)

	var users, forums, posts, comments int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Forum{}).Count(&forums).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	require.NoError(t, db.Model(&models.Comment{}).Count(&comments).Error)

	assert.Equal(t, int64(3), users)
	assert.Equal(t, int64(len(BuiltInForums)), forums)
	assert.Equal(t, int64(5), posts)
	assert.LessOrEqual(t, comments, int64(10))

	// Every post references a seeded user.
	var stray int64
	require.NoError(t, db.Model(&models.Post{}).
		Where("created_by NOT IN (?)", db.Model(&models.User{}).Select("id")).
		Count(&stray).Error)
	assert.Zero(t, stray)
}

func TestFactory_BuildUser(t *testing.T) {
	db := newTestDB(t)
	factory := NewFactory(db)

	user := factory.BuildUser()
	assert.NotEmpty(t, user.Username)
	assert.Contains(t, user.Email, "@example.com")
	assert.NotEqual(t, "SeedPassword1!", user.Password, "password must be stored hashed")
}

func TestFactory_CreateComment_DatedAfterPost(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Forums(db))
	factory := NewFactory(db)

	user, err := factory.CreateUser()
	require.NoError(t, err)

	var forum models.Forum
	require.NoError(t, db.First(&forum).Error)

	post, err := factory.CreatePost(user, &forum)
	require.NoError(t, err)

	comment, err := factory.CreateComment(user, post)
	require.NoError(t, err)
	assert.True(t, comment.CreatedAt.After(post.CreatedAt))
}
