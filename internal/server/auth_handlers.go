package server

import (
	"foodcourt/internal/middleware"
	"foodcourt/internal/models"
	"foodcourt/internal/service"

	"github.com/gofiber/fiber/v2"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register creates an account.
func (s *Server) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	user, err := s.userService.Register(c.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login verifies credentials and returns a bearer token plus the user.
func (s *Server) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	_, user, err := s.userService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		// Failed logins come back as 401, not 403: the caller is not
		// authenticated at all yet.
		if models.CodeOf(err) == models.CodeUnauthorized {
			return models.RespondWithError(c, fiber.StatusUnauthorized, err)
		}
		return respondErr(c, err)
	}

	// The store's opaque token is replaced with a signed JWT so the auth
	// middleware can resolve the user without store lookups.
	token, err := middleware.GenerateToken(user.ID, tokenTTL)
	if err != nil {
		return respondErr(c, models.NewInternalError(err))
	}
	return c.Status(fiber.StatusOK).JSON(loginResponse{Token: token, User: user})
}

// Logout always succeeds; tokens are stateless so there is nothing to revoke.
func (s *Server) Logout(c *fiber.Ctx) error {
	if err := s.userService.Logout(c.Context()); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
