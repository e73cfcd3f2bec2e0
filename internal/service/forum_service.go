package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"forumapp/internal/models"
	"forumapp/internal/repository"
)

// ForumService exposes forum listing and creation on top of the repository.
type ForumService struct {
	forumRepo repository.ForumRepository
}

type CreateForumInput struct {
	Name        string
	Description string
}

func NewForumService(forumRepo repository.ForumRepository) *ForumService {
	return &ForumService{forumRepo: forumRepo}
}

func (s *ForumService) ListForums(ctx context.Context) ([]models.Forum, error) {
	return s.forumRepo.List(ctx)
}

func (s *ForumService) GetForum(ctx context.Context, id uint) (*models.Forum, error) {
	return s.forumRepo.GetByID(ctx, id)
}

func (s *ForumService) CreateForum(ctx context.Context, in CreateForumInput) (*models.Forum, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	if utf8.RuneCountInString(name) > 200 {
		return nil, models.NewValidationError("Name too long (max 200 characters)")
	}
	if utf8.RuneCountInString(in.Description) > 1000 {
		return nil, models.NewValidationError("Description too long (max 1000 characters)")
	}

	existing, err := s.forumRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Forum name already exists")
	}

	forum := &models.Forum{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
	}
	// A concurrent create for the same name still surfaces as a conflict from
	// the unique constraint.
	if err := s.forumRepo.Create(ctx, forum); err != nil {
		return nil, err
	}
	return forum, nil
}
