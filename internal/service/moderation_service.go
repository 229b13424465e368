package service

import (
	"context"

	"foodcourt/internal/models"
	"foodcourt/internal/pagination"
	"foodcourt/internal/repository"
)

// ModerationService is the only path to the admin repository. It enforces
// the role gate client-side so unauthorized calls never reach the backend:
// admin for review and listings, super_admin for role changes.
type ModerationService struct {
	adminRepo repository.AdminRepository
	roleOf    func(ctx context.Context, userID string) (models.Role, error)
}

type ReviewPostInput struct {
	ActorID  string
	PostID   string
	Approve  bool
	Feedback string
}

func NewModerationService(
	adminRepo repository.AdminRepository,
	roleOf func(ctx context.Context, userID string) (models.Role, error),
) *ModerationService {
	return &ModerationService{adminRepo: adminRepo, roleOf: roleOf}
}

func (s *ModerationService) requireRole(ctx context.Context, actorID string, required models.Role) error {
	if actorID == "" {
		return models.NewUnauthorizedError("login required")
	}
	role, err := s.roleOf(ctx, actorID)
	if err != nil {
		return err
	}
	if !role.AtLeast(required) {
		return models.NewUnauthorizedError("insufficient role for this operation")
	}
	return nil
}

func (s *ModerationService) ListPendingPosts(ctx context.Context, actorID string, page pagination.Params) (*repository.PostPage, error) {
	if err := s.requireRole(ctx, actorID, models.RoleAdmin); err != nil {
		return nil, err
	}
	return s.adminRepo.ListPendingPosts(ctx, page)
}

func (s *ModerationService) ListPosts(ctx context.Context, actorID string, status models.PostStatus, page pagination.Params) (*repository.PostPage, error) {
	if err := s.requireRole(ctx, actorID, models.RoleAdmin); err != nil {
		return nil, err
	}
	switch status {
	case "", models.PostStatusPending, models.PostStatusApproved, models.PostStatusRejected:
	default:
		return nil, models.NewValidationError("invalid status filter")
	}
	return s.adminRepo.ListPosts(ctx, status, page)
}

func (s *ModerationService) ReviewPost(ctx context.Context, in ReviewPostInput) (*repository.UpdatePostResult, error) {
	if err := s.requireRole(ctx, in.ActorID, models.RoleAdmin); err != nil {
		return nil, err
	}
	return s.adminRepo.ReviewPost(ctx, in.PostID, in.Approve, in.Feedback)
}

func (s *ModerationService) DeletePost(ctx context.Context, actorID, postID string) error {
	if err := s.requireRole(ctx, actorID, models.RoleAdmin); err != nil {
		return err
	}
	return s.adminRepo.DeletePost(ctx, postID)
}

func (s *ModerationService) ListUsers(ctx context.Context, actorID string, page pagination.Params) (*repository.UserPage, error) {
	if err := s.requireRole(ctx, actorID, models.RoleAdmin); err != nil {
		return nil, err
	}
	return s.adminRepo.ListUsers(ctx, page)
}

func (s *ModerationService) UpdateUserRole(ctx context.Context, actorID, targetID string, role models.Role) (*models.User, error) {
	if err := s.requireRole(ctx, actorID, models.RoleSuperAdmin); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, models.NewValidationError("invalid role")
	}
	return s.adminRepo.UpdateUserRole(ctx, targetID, role)
}
