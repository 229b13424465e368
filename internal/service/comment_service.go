package service

import (
	"context"
	"strings"

	"foodcourt/internal/models"
	"foodcourt/internal/pagination"
	"foodcourt/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	isAdmin     func(ctx context.Context, userID string) (bool, error)
}

type CreateCommentInput struct {
	UserID         string
	PostID         string
	ParentID       *string
	ReplyToUserID  string
	MentionedUsers []string
	Content        string
}

type DeleteCommentInput struct {
	UserID    string
	CommentID string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	isAdmin func(ctx context.Context, userID string) (bool, error),
) *CommentService {
	return &CommentService{commentRepo: commentRepo, isAdmin: isAdmin}
}

func (s *CommentService) ListComments(ctx context.Context, postID string, page pagination.Params, viewerID string) (*repository.CommentPage, error) {
	if postID == "" {
		return nil, models.NewValidationError("post id is required")
	}
	return s.commentRepo.ListByPost(ctx, postID, page, viewerID)
}

func (s *CommentService) GetComment(ctx context.Context, id string) (*models.Comment, error) {
	if id == "" {
		return nil, models.NewValidationError("comment id is required")
	}
	return s.commentRepo.Get(ctx, id)
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.UserID == "" {
		return nil, models.NewUnauthorizedError("login required")
	}

	const maxContentLen = 1000

	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewValidationError("comment content is required")
	}
	if len(content) > maxContentLen {
		return nil, models.NewValidationError("comment too long (max 1000 characters)")
	}

	comment := &models.Comment{
		PostID:         in.PostID,
		ParentID:       in.ParentID,
		AuthorID:       in.UserID,
		Content:        content,
		ReplyToUserID:  in.ReplyToUserID,
		MentionedUsers: in.MentionedUsers,
	}
	return s.commentRepo.Create(ctx, comment)
}

func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	comment, err := s.commentRepo.Get(ctx, in.CommentID)
	if err != nil {
		return err
	}

	if comment.AuthorID != in.UserID {
		if s.isAdmin == nil {
			return models.NewUnauthorizedError("you can only delete your own comments")
		}
		admin, err := s.isAdmin(ctx, in.UserID)
		if err != nil {
			return err
		}
		if !admin {
			return models.NewUnauthorizedError("you can only delete your own comments")
		}
	}

	return s.commentRepo.Delete(ctx, in.CommentID)
}
