package server

import (
	"foodcourt/internal/middleware"
	"foodcourt/internal/models"
	"foodcourt/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUser returns a profile with the viewer-scoped is_following flag.
func (s *Server) GetUser(c *fiber.Ctx) error {
	user, err := s.userService.GetUser(c.Context(), c.Params("id"), middleware.UserID(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(user)
}

// UpdateUser edits profile fields; users may only edit themselves.
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	var fields models.UpdateUserInput
	if err := c.BodyParser(&fields); err != nil {
		return respondBadBody(c)
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:   middleware.UserID(c),
		TargetID: c.Params("id"),
		Fields:   fields,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(user)
}

func (s *Server) FollowUser(c *fiber.Ctx) error {
	return s.respondToggle(c, true, s.engagementService.SetFollowing)
}

func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	return s.respondToggle(c, false, s.engagementService.SetFollowing)
}

func (s *Server) GetFollowers(c *fiber.Ctx) error {
	page, err := s.userService.ListFollowers(c.Context(), c.Params("id"), parsePage(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(page)
}

func (s *Server) GetFollowing(c *fiber.Ctx) error {
	page, err := s.userService.ListFollowing(c.Context(), c.Params("id"), parsePage(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(page)
}
