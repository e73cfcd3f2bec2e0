package service

import (
	"context"
	"testing"

	"forumapp/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn      func(context.Context, *models.Post) error
	getByIDFn     func(context.Context, uint) (*models.Post, error)
	listByForumFn func(context.Context, uint, int, int) ([]models.Post, error)
	recentFn      func(context.Context, int) ([]models.Post, error)
	updateFn      func(context.Context, *models.Post) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) ListByForum(ctx context.Context, forumID uint, limit, offset int) ([]models.Post, error) {
	return s.listByForumFn(ctx, forumID, limit, offset)
}
func (s *postRepoStub) Recent(ctx context.Context, count int) ([]models.Post, error) {
	return s.recentFn(ctx, count)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:  func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		listByForumFn: func(_ context.Context, _ uint, _, _ int) ([]models.Post, error) {
			return nil, nil
		},
		recentFn: func(_ context.Context, _ int) ([]models.Post, error) { return nil, nil },
		updateFn: func(_ context.Context, _ *models.Post) error { return nil },
	}
}

// forumRepoStub is a stub for repository.ForumRepository.
type forumRepoStub struct {
	listFn      func(context.Context) ([]models.Forum, error)
	getByIDFn   func(context.Context, uint) (*models.Forum, error)
	getByNameFn func(context.Context, string) (*models.Forum, error)
	createFn    func(context.Context, *models.Forum) error
}

func (s *forumRepoStub) List(ctx context.Context) ([]models.Forum, error) {
	return s.listFn(ctx)
}
func (s *forumRepoStub) GetByID(ctx context.Context, id uint) (*models.Forum, error) {
	return s.getByIDFn(ctx, id)
}
func (s *forumRepoStub) GetByName(ctx context.Context, name string) (*models.Forum, error) {
	return s.getByNameFn(ctx, name)
}
func (s *forumRepoStub) Create(ctx context.Context, forum *models.Forum) error {
	return s.createFn(ctx, forum)
}

func noopForumRepo() *forumRepoStub {
	return &forumRepoStub{
		listFn:      func(_ context.Context) ([]models.Forum, error) { return nil, nil },
		getByIDFn:   func(_ context.Context, _ uint) (*models.Forum, error) { return &models.Forum{}, nil },
		getByNameFn: func(_ context.Context, _ string) (*models.Forum, error) { return nil, nil },
		createFn:    func(_ context.Context, _ *models.Forum) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint) ([]models.Comment, error)
	deleteFn     func(context.Context, uint) (bool, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) (bool, error) {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:    func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listByPostFn: func(_ context.Context, _ uint) ([]models.Comment, error) { return nil, nil },
		deleteFn:     func(_ context.Context, _ uint) (bool, error) { return true, nil },
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}
