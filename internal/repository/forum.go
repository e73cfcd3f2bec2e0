// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"forumapp/internal/models"
	"forumapp/internal/observability"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ForumRepository defines persistence operations for forums.
type ForumRepository interface {
	List(ctx context.Context) ([]models.Forum, error)
	GetByID(ctx context.Context, id uint) (*models.Forum, error)
	GetByName(ctx context.Context, name string) (*models.Forum, error)
	Create(ctx context.Context, forum *models.Forum) error
}

type forumRepository struct {
	db      *gorm.DB
	log     *observability.RepoLogger
	metrics *observability.DatabaseMetrics
}

// NewForumRepository returns a new ForumRepository implementation.
func NewForumRepository(db *gorm.DB) ForumRepository {
	return &forumRepository{
		db:      db,
		log:     observability.NewRepoLogger("forums"),
		metrics: observability.NewDatabaseMetrics(db),
	}
}

func (r *forumRepository) List(ctx context.Context) ([]models.Forum, error) {
	defer r.metrics.TrackQuery("select", "forums")()

	var forums []models.Forum
	err := r.db.WithContext(ctx).
		Preload("Posts", "is_deleted = ?", false).
		Find(&forums).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return forums, nil
}

func (r *forumRepository) GetByID(ctx context.Context, id uint) (*models.Forum, error) {
	defer r.metrics.TrackQuery("select", "forums")()

	var forum models.Forum
	err := r.db.WithContext(ctx).First(&forum, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &forum, nil
}

func (r *forumRepository) GetByName(ctx context.Context, name string) (*models.Forum, error) {
	var forum models.Forum
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&forum).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &forum, nil
}

func (r *forumRepository) Create(ctx context.Context, forum *models.Forum) error {
	defer r.metrics.TrackQuery("insert", "forums")()

	if err := r.db.WithContext(ctx).Create(forum).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Forum name already exists")
		}
		r.log.LogError(ctx, err, "create")
		return models.NewInternalError(err)
	}
	r.log.LogCreate(ctx, map[string]interface{}{"forum_id": forum.ID})
	return nil
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	// PostgreSQL unique violation SQLSTATE 23505
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Fallback for drivers that do not expose a structured code (sqlite in tests)
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint")
}
