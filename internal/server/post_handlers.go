package server

import (
	"fmt"

	"forumapp/internal/models"
	"forumapp/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetRecentPosts handles GET /api/posts/recent. The optional count query
// parameter sets how many posts to return; results are served through the
// in-process recent-posts cache.
func (s *Server) GetRecentPosts(c *fiber.Ctx) error {
	count := c.QueryInt("count", 0)

	posts, err := s.postService.Recent(c.UserContext(), count)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if post == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post", id))
	}

	return c.JSON(post)
}

// CreatePost handles POST /api/posts (protected)
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := callerID(c)

	var req struct {
		ForumID uint   `json:"forum_id"`
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:  userID,
		ForumID: req.ForumID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	c.Set("Location", fmt.Sprintf("/api/posts/%d", post.ID))
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/posts/:id (protected). Only the post's
// creator may edit it.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := callerID(c)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		UserID:  userID,
		PostID:  id,
		Title:   req.Title,
		Content: req.Content,
	}); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
