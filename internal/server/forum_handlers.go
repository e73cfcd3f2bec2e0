package server

import (
	"fmt"

	"forumapp/internal/models"
	"forumapp/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetForums handles GET /api/forums
func (s *Server) GetForums(c *fiber.Ctx) error {
	forums, err := s.forumService.ListForums(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(forums)
}

// GetForum handles GET /api/forums/:id
func (s *Server) GetForum(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	forum, err := s.forumService.GetForum(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if forum == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Forum", id))
	}

	return c.JSON(forum)
}

// GetForumPosts handles GET /api/forums/:id/posts with take/skip pagination
func (s *Server) GetForumPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	forum, err := s.forumService.GetForum(ctx, id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if forum == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Forum", id))
	}

	page := parsePagination(c, defaultPageSize)
	posts, err := s.postService.ListByForum(ctx, id, page.Take, page.Skip)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(posts)
}

// CreateForum handles POST /api/forums (protected)
func (s *Server) CreateForum(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	forum, err := s.forumService.CreateForum(c.UserContext(), service.CreateForumInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	c.Set("Location", fmt.Sprintf("/api/forums/%d", forum.ID))
	return c.Status(fiber.StatusCreated).JSON(forum)
}
