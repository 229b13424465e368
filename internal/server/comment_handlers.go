package server

import (
	"foodcourt/internal/middleware"
	"foodcourt/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createCommentRequest struct {
	ParentID       *string  `json:"parent_id"`
	ReplyToUserID  string   `json:"reply_to_user_id"`
	MentionedUsers []string `json:"mentioned_users"`
	Content        string   `json:"content"`
}

// GetComments lists a post's top-level comments with replies nested.
func (s *Server) GetComments(c *fiber.Ctx) error {
	page, err := s.commentService.ListComments(c.Context(), c.Params("id"), parsePage(c), middleware.UserID(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(page)
}

// GetComment returns a single comment.
func (s *Server) GetComment(c *fiber.Ctx) error {
	comment, err := s.commentService.GetComment(c.Context(), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(comment)
}

// CreateComment adds a comment or reply to the post in the route.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		UserID:         middleware.UserID(c),
		PostID:         c.Params("id"),
		ParentID:       req.ParentID,
		ReplyToUserID:  req.ReplyToUserID,
		MentionedUsers: req.MentionedUsers,
		Content:        req.Content,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// DeleteComment removes a comment (author or admin); deleting a top-level
// comment cascades to its replies.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	err := s.commentService.DeleteComment(c.Context(), service.DeleteCommentInput{
		UserID:    middleware.UserID(c),
		CommentID: c.Params("id"),
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) LikeComment(c *fiber.Ctx) error {
	return s.respondToggle(c, true, s.engagementService.SetCommentLiked)
}

func (s *Server) UnlikeComment(c *fiber.Ctx) error {
	return s.respondToggle(c, false, s.engagementService.SetCommentLiked)
}
