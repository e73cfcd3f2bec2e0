// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	"forumapp/internal/models"
	"forumapp/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	ListByForum(ctx context.Context, forumID uint, limit, offset int) ([]models.Post, error)
	Recent(ctx context.Context, count int) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
}

// postRepository implements PostRepository
type postRepository struct {
	db  *gorm.DB
	log *observability.RepoLogger
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db, log: observability.NewRepoLogger("posts")}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		r.log.LogError(ctx, err, "create")
		return models.NewInternalError(err)
	}
	r.log.LogCreate(ctx, map[string]interface{}{"post_id": post.ID, "forum_id": post.ForumID})
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	ctx, span := observability.GetTraceLayer().TraceRepositoryMethod(ctx, "GetByID", "posts")
	defer span.End()

	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Forum").
		Preload("Comments", "is_deleted = ?", false).
		Where("is_deleted = ?", false).
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) ListByForum(ctx context.Context, forumID uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("Comments", "is_deleted = ?", false).
		Where("forum_id = ? AND is_deleted = ?", forumID, false).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) Recent(ctx context.Context, count int) ([]models.Post, error) {
	ctx, span := observability.GetTraceLayer().TraceRepositoryMethod(ctx, "Recent", "posts")
	defer span.End()

	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("Forum").
		Preload("Comments", "is_deleted = ?", false).
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Limit(count).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// Update persists title and content changes and stamps UpdatedAt. The stamp is
// set here so every write path records modification time the same way.
func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	now := time.Now().UTC()
	post.UpdatedAt = &now
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", post.ID).
		Updates(map[string]interface{}{
			"title":      post.Title,
			"content":    post.Content,
			"updated_at": now,
		}).Error
	if err != nil {
		r.log.LogError(ctx, err, "update")
		return models.NewInternalError(err)
	}
	r.log.LogUpdate(ctx, map[string]interface{}{"post_id": post.ID})
	return nil
}
