package server

import (
	"foodcourt/internal/middleware"
	"foodcourt/internal/models"
	"foodcourt/internal/repository"
	"foodcourt/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts lists posts with the query-string filters composed AND-wise.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	filter := repository.PostFilter{
		Keyword:  c.Query("keyword"),
		Category: models.PostCategory(c.Query("category")),
		Canteen:  c.Query("canteen"),
		PostType: models.PostType(c.Query("post_type")),
		Status:   models.PostStatus(c.Query("status")),
		AuthorID: c.Query("author_id"),
		Tags:     parseTags(c),
	}

	page, err := s.postService.ListPosts(c.Context(), service.ListPostsInput{
		Filter:   filter,
		Page:     parsePage(c),
		ViewerID: middleware.UserID(c),
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(page)
}

// GetFavorites lists the authenticated viewer's favorited posts.
func (s *Server) GetFavorites(c *fiber.Ctx) error {
	page, err := s.postService.ListFavorites(c.Context(), middleware.UserID(c), parsePage(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(page)
}

// GetPost returns one post and counts the view.
func (s *Server) GetPost(c *fiber.Ctx) error {
	post, err := s.postService.GetPost(c.Context(), c.Params("id"), middleware.UserID(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(post)
}

// CreatePost submits a new post; it enters review as pending.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var post models.Post
	if err := c.BodyParser(&post); err != nil {
		return respondBadBody(c)
	}

	result, err := s.postService.CreatePost(c.Context(), middleware.UserID(c), &post)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// UpdatePost edits a post; a successful edit resubmits it for review.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	var post models.Post
	if err := c.BodyParser(&post); err != nil {
		return respondBadBody(c)
	}
	post.ID = c.Params("id")

	result, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID: middleware.UserID(c),
		Post:   &post,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(result)
}

// DeletePost removes a post (author or admin).
func (s *Server) DeletePost(c *fiber.Ctx) error {
	err := s.postService.DeletePost(c.Context(), service.DeletePostInput{
		UserID: middleware.UserID(c),
		PostID: c.Params("id"),
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) LikePost(c *fiber.Ctx) error {
	return s.respondToggle(c, true, s.engagementService.SetPostLiked)
}

func (s *Server) UnlikePost(c *fiber.Ctx) error {
	return s.respondToggle(c, false, s.engagementService.SetPostLiked)
}

func (s *Server) FavoritePost(c *fiber.Ctx) error {
	return s.respondToggle(c, true, s.engagementService.SetPostFavorited)
}

func (s *Server) UnfavoritePost(c *fiber.Ctx) error {
	return s.respondToggle(c, false, s.engagementService.SetPostFavorited)
}
