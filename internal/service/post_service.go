package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"forumapp/internal/cache"
	"forumapp/internal/models"
	"forumapp/internal/observability"
	"forumapp/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// PostService implements post browsing, creation, and editing, with a
// process-local cache in front of the recent-posts listing.
type PostService struct {
	postRepo  repository.PostRepository
	forumRepo repository.ForumRepository
	recent    *cache.RecentPosts
}

type CreatePostInput struct {
	UserID  string
	ForumID uint
	Title   string
	Content string
}

type UpdatePostInput struct {
	UserID  string
	PostID  uint
	Title   string
	Content string
}

func NewPostService(
	postRepo repository.PostRepository,
	forumRepo repository.ForumRepository,
	recent *cache.RecentPosts,
) *PostService {
	return &PostService{
		postRepo:  postRepo,
		forumRepo: forumRepo,
		recent:    recent,
	}
}

// Bounds are character counts, not byte lengths, so multibyte text is not
// rejected short of the limit.
func validatePostFields(title, content string) error {
	if title == "" {
		return models.NewValidationError("Title is required")
	}
	if utf8.RuneCountInString(title) > 500 {
		return models.NewValidationError("Title too long (max 500 characters)")
	}
	if content == "" {
		return models.NewValidationError("Content is required")
	}
	if utf8.RuneCountInString(content) > 4000 {
		return models.NewValidationError("Content too long (max 4000 characters)")
	}
	return nil
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// ListByForum returns a newest-first page of a forum's posts. The forum must
// exist; an absent forum is reported as nil slice with a NotFound error left
// to the caller via GetForum, so here absence of posts is just an empty page.
func (s *PostService) ListByForum(ctx context.Context, forumID uint, limit, offset int) ([]models.Post, error) {
	return s.postRepo.ListByForum(ctx, forumID, limit, offset)
}

// Recent serves the newest posts through the in-process cache. A miss falls
// through to storage and repopulates the slot for that count.
func (s *PostService) Recent(ctx context.Context, count int) ([]models.Post, error) {
	if count <= 0 {
		count = cache.DefaultRecentCount
	}

	ctx, span := observability.GetTraceLayer().TraceCacheLookup(ctx, count)
	defer span.End()

	if posts, ok := s.recent.Get(count); ok {
		return posts, nil
	}

	posts, err := s.postRepo.Recent(ctx, count)
	if err != nil {
		return nil, err
	}
	s.recent.Set(count, posts)
	return posts, nil
}

// CreatePost stores a new post after checking the target forum exists, then
// drops the default recent-posts slot so the next default read is fresh.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	span, ctx := observability.NewSpan(ctx, "post_service.create")
	defer span.End()

	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if err := validatePostFields(title, content); err != nil {
		return nil, err
	}

	forum, err := s.forumRepo.GetByID(ctx, in.ForumID)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	if forum == nil {
		return nil, models.NewValidationError("Forum does not exist")
	}

	post := &models.Post{
		Title:     title,
		Content:   content,
		ForumID:   in.ForumID,
		CreatedBy: in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		span.SetError(err)
		return nil, err
	}
	span.AddAttributes(
		attribute.Int("post.id", int(post.ID)),
		attribute.Int("forum.id", int(post.ForumID)),
	)

	s.recent.Invalidate(cache.DefaultRecentCount)
	return post, nil
}

// UpdatePost edits a post's title and content. Only the creator may edit.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) error {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if err := validatePostFields(title, content); err != nil {
		return err
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}
	if post == nil {
		return models.NewNotFoundError("Post", in.PostID)
	}
	if post.CreatedBy != in.UserID {
		return models.NewForbiddenError("You can only edit your own posts")
	}

	post.Title = title
	post.Content = content
	if err := s.postRepo.Update(ctx, post); err != nil {
		return err
	}

	s.recent.Invalidate(cache.DefaultRecentCount)
	return nil
}

// IsOwner reports whether the post exists and was created by userID. An
// absent post is simply not owned; no error is raised.
func (s *PostService) IsOwner(ctx context.Context, postID uint, userID string) (bool, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return false, err
	}
	return post != nil && post.CreatedBy == userID, nil
}
