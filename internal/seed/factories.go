// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"forumapp/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by Seed and by tests.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Factory{db: db, rand: r}
}

// BuildUser constructs an unsaved user with a bcrypt-hashed password.
func (f *Factory) BuildUser(overrides ...func(*models.User)) *models.User {
	first := gofakeit.FirstName()
	last := gofakeit.LastName()
	username := strings.ToLower(fmt.Sprintf("%s%s%d", first, last, f.rand.Intn(1000)))

	hashed, _ := bcrypt.GenerateFromPassword([]byte("SeedPassword1!"), bcrypt.MinCost)
	user := &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: string(hashed),
	}

	for _, override := range overrides {
		override(user)
	}
	return user
}

// CreateUser builds and persists a user.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := f.BuildUser(overrides...)
	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create seed user: %w", err)
	}
	return user, nil
}

// BuildPost constructs an unsaved post by the given user in the given forum,
// with a realistic created_at spread over the past 90 days.
func (f *Factory) BuildPost(user *models.User, forum *models.Forum, overrides ...func(*models.Post)) *models.Post {
	post := &models.Post{
		Title:     gofakeit.Sentence(5),
		Content:   gofakeit.Paragraph(1, 3, 5, "\n"),
		ForumID:   forum.ID,
		CreatedBy: user.ID,
	}

	daysBack := f.rand.Intn(90)
	hoursBack := f.rand.Intn(24)
	minsBack := f.rand.Intn(60)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePost builds and persists a post.
func (f *Factory) CreatePost(user *models.User, forum *models.Forum, overrides ...func(*models.Post)) (*models.Post, error) {
	post := f.BuildPost(user, forum, overrides...)
	if err := f.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("create seed post: %w", err)
	}
	return post, nil
}

// CreateComment persists a comment by the given user on the given post. The
// comment is dated after the post so listings read naturally.
func (f *Factory) CreateComment(user *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Content:   gofakeit.Sentence(8),
		PostID:    post.ID,
		CreatedBy: user.ID,
	}
	comment.CreatedAt = post.CreatedAt.Add(time.Duration(1+f.rand.Intn(72)) * time.Hour)
	if comment.CreatedAt.After(time.Now()) {
		comment.CreatedAt = time.Now()
	}

	for _, override := range overrides {
		override(comment)
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, fmt.Errorf("create seed comment: %w", err)
	}
	return comment, nil
}
