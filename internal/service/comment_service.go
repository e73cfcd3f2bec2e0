package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"forumapp/internal/models"
	"forumapp/internal/observability"
	"forumapp/internal/repository"
)

// CommentService implements commenting and the post-owner deletion rule.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	UserID  string
	PostID  uint
	Content string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *CommentService) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}

// CreateComment stores a comment after checking the parent post exists.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if utf8.RuneCountInString(content) > 1000 {
		return nil, models.NewValidationError("Content too long (max 1000 characters)")
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, models.NewValidationError("Post does not exist")
	}

	comment := &models.Comment{
		Content:   content,
		PostID:    in.PostID,
		CreatedBy: in.UserID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// CanDelete reports whether userID may delete the comment: the comment must
// exist, its parent post must exist, and the post must have been created by
// userID. Commenting on someone's post cedes deletion rights to the post
// owner, not the comment author.
func (s *CommentService) CanDelete(ctx context.Context, commentID uint, userID string) (bool, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return false, err
	}
	if comment == nil {
		return false, nil
	}

	post, err := s.postRepo.GetByID(ctx, comment.PostID)
	if err != nil {
		return false, err
	}
	return post != nil && post.CreatedBy == userID, nil
}

// DeleteComment soft-deletes the comment when the ownership check passes.
// Absence of the comment or its parent post and a failed ownership check are
// reported as distinct typed errors so the API can tell them apart.
func (s *CommentService) DeleteComment(ctx context.Context, commentID uint, userID string) error {
	ctx, span := observability.GetTraceLayer().TraceServiceMethod(ctx, "comment_service", "Delete")
	defer span.End()

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return models.NewNotFoundError("Comment", commentID)
	}

	post, err := s.postRepo.GetByID(ctx, comment.PostID)
	if err != nil {
		return err
	}
	if post == nil {
		return models.NewNotFoundError("Post", comment.PostID)
	}
	if post.CreatedBy != userID {
		return models.NewForbiddenError("Only the post owner can delete comments on it")
	}

	deleted, err := s.commentRepo.Delete(ctx, commentID)
	if err != nil {
		observability.RecordErrorInContext(ctx, err)
		return err
	}
	if !deleted {
		return models.NewNotFoundError("Comment", commentID)
	}
	return nil
}
