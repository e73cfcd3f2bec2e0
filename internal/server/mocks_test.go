package server

import (
	"context"

	"forumapp/internal/cache"
	"forumapp/internal/config"
	"forumapp/internal/models"
	"forumapp/internal/repository"
	"forumapp/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockForumRepository is a mock of the ForumRepository interface
type MockForumRepository struct {
	mock.Mock
}

func (m *MockForumRepository) List(ctx context.Context) ([]models.Forum, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Forum), args.Error(1)
}

func (m *MockForumRepository) GetByID(ctx context.Context, id uint) (*models.Forum, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Forum), args.Error(1)
}

func (m *MockForumRepository) GetByName(ctx context.Context, name string) (*models.Forum, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Forum), args.Error(1)
}

func (m *MockForumRepository) Create(ctx context.Context, forum *models.Forum) error {
	args := m.Called(ctx, forum)
	return args.Error(0)
}

// MockPostRepository is a mock of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) ListByForum(ctx context.Context, forumID uint, limit, offset int) ([]models.Post, error) {
	args := m.Called(ctx, forumID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) Recent(ctx context.Context, count int) ([]models.Post, error) {
	args := m.Called(ctx, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

// MockCommentRepository is a mock of the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// newTestServer wires a Server with the given repository mocks and a fresh
// recent-posts cache.
func newTestServer(
	userRepo repository.UserRepository,
	forumRepo repository.ForumRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
) *Server {
	recent := cache.NewRecentPosts()
	s := &Server{
		config:      &config.Config{JWTSecret: "test_secret"},
		userRepo:    userRepo,
		forumRepo:   forumRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		recentCache: recent,
	}
	if forumRepo != nil {
		s.forumService = service.NewForumService(forumRepo)
	}
	if postRepo != nil {
		s.postService = service.NewPostService(postRepo, forumRepo, recent)
	}
	if commentRepo != nil {
		s.commentService = service.NewCommentService(commentRepo, postRepo)
	}
	return s
}

// asUser injects an authenticated identity the way AuthRequired does.
func asUser(userID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	}
}
