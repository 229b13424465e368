package server

import (
	"foodcourt/internal/middleware"
	"foodcourt/internal/models"
	"foodcourt/internal/service"

	"github.com/gofiber/fiber/v2"
)

type reviewRequest struct {
	Approve  bool   `json:"approve"`
	Feedback string `json:"feedback"`
}

type roleRequest struct {
	Role models.Role `json:"role"`
}

// AdminGetPendingPosts lists the review queue.
func (s *Server) AdminGetPendingPosts(c *fiber.Ctx) error {
	page, err := s.moderationService.ListPendingPosts(c.Context(), middleware.UserID(c), parsePage(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(page)
}

// AdminGetPosts lists posts in any status, optionally filtered.
func (s *Server) AdminGetPosts(c *fiber.Ctx) error {
	status := models.PostStatus(c.Query("status"))
	page, err := s.moderationService.ListPosts(c.Context(), middleware.UserID(c), status, parsePage(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(page)
}

// AdminReviewPost approves or rejects a pending post.
func (s *Server) AdminReviewPost(c *fiber.Ctx) error {
	var req reviewRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	result, err := s.moderationService.ReviewPost(c.Context(), service.ReviewPostInput{
		ActorID:  middleware.UserID(c),
		PostID:   c.Params("id"),
		Approve:  req.Approve,
		Feedback: req.Feedback,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(result)
}

// AdminDeletePost removes a post in any status.
func (s *Server) AdminDeletePost(c *fiber.Ctx) error {
	if err := s.moderationService.DeletePost(c.Context(), middleware.UserID(c), c.Params("id")); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AdminGetUsers lists accounts for the admin console.
func (s *Server) AdminGetUsers(c *fiber.Ctx) error {
	page, err := s.moderationService.ListUsers(c.Context(), middleware.UserID(c), parsePage(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(page)
}

// AdminUpdateUserRole changes an account's role (super_admin only).
func (s *Server) AdminUpdateUserRole(c *fiber.Ctx) error {
	var req roleRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	user, err := s.moderationService.UpdateUserRole(c.Context(), middleware.UserID(c), c.Params("id"), req.Role)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(user)
}
