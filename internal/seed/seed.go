package seed

import (
	"fmt"
	"log"

	"forumapp/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers           int
	NumPosts           int
	MaxCommentsPerPost int
	ShouldClean        bool
}

// Seed populates the database with the built-in forums plus generated users,
// posts, and comments.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	if err := Forums(db); err != nil {
		return fmt.Errorf("failed to seed forums: %w", err)
	}

	var forums []models.Forum
	if err := db.Find(&forums).Error; err != nil {
		return fmt.Errorf("failed to load forums: %w", err)
	}
	log.Printf("%d forums available", len(forums))

	factory := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create users: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("%d test users created", len(users))

	if len(users) == 0 || len(forums) == 0 {
		log.Println("Database seeding completed (no post content requested)")
		return nil
	}

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		user := users[factory.rand.Intn(len(users))]
		forum := &forums[factory.rand.Intn(len(forums))]
		post, err := factory.CreatePost(user, forum)
		if err != nil {
			return fmt.Errorf("failed to create posts: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("%d posts created", len(posts))

	maxComments := opts.MaxCommentsPerPost
	if maxComments < 0 {
		maxComments = 0
	}
	commentCount := 0
	for _, post := range posts {
		for i := 0; i < factory.rand.Intn(maxComments+1); i++ {
			commenter := users[factory.rand.Intn(len(users))]
			if _, err := factory.CreateComment(commenter, post); err != nil {
				return fmt.Errorf("failed to create comments: %w", err)
			}
			commentCount++
		}
	}
	log.Printf("%d comments created", commentCount)

	log.Println("Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE comments, posts, forums, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}
