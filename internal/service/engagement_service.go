package service

import (
	"context"

	"foodcourt/internal/models"
	"foodcourt/internal/repository"
)

// EngagementService fronts the like/favorite/follow toggles. Every toggle is
// idempotent at the repository level; the service only checks that a viewer
// is present and routes engage/disengage to the right call.
type EngagementService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
}

func NewEngagementService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
) *EngagementService {
	return &EngagementService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
	}
}

func (s *EngagementService) requireViewer(viewerID string) error {
	if viewerID == "" {
		return models.NewUnauthorizedError("login required")
	}
	return nil
}

// SetPostLiked engages or disengages the viewer's like on a post and returns
// the resulting state and count.
func (s *EngagementService) SetPostLiked(ctx context.Context, viewerID, postID string, liked bool) (*models.ToggleResult, error) {
	if err := s.requireViewer(viewerID); err != nil {
		return nil, err
	}
	if liked {
		return s.postRepo.Like(ctx, viewerID, postID)
	}
	return s.postRepo.Unlike(ctx, viewerID, postID)
}

// SetPostFavorited engages or disengages the viewer's favorite on a post.
func (s *EngagementService) SetPostFavorited(ctx context.Context, viewerID, postID string, favorited bool) (*models.ToggleResult, error) {
	if err := s.requireViewer(viewerID); err != nil {
		return nil, err
	}
	if favorited {
		return s.postRepo.Favorite(ctx, viewerID, postID)
	}
	return s.postRepo.Unfavorite(ctx, viewerID, postID)
}

// SetCommentLiked engages or disengages the viewer's like on a comment.
func (s *EngagementService) SetCommentLiked(ctx context.Context, viewerID, commentID string, liked bool) (*models.ToggleResult, error) {
	if err := s.requireViewer(viewerID); err != nil {
		return nil, err
	}
	if liked {
		return s.commentRepo.Like(ctx, viewerID, commentID)
	}
	return s.commentRepo.Unlike(ctx, viewerID, commentID)
}

// SetFollowing engages or disengages the viewer's follow of another user.
// Self-follow is rejected by the repository.
func (s *EngagementService) SetFollowing(ctx context.Context, viewerID, targetID string, following bool) (*models.ToggleResult, error) {
	if err := s.requireViewer(viewerID); err != nil {
		return nil, err
	}
	if following {
		return s.userRepo.Follow(ctx, viewerID, targetID)
	}
	return s.userRepo.Unfollow(ctx, viewerID, targetID)
}
