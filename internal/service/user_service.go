package service

import (
	"context"
	"strings"

	"foodcourt/internal/models"
	"foodcourt/internal/observability"
	"foodcourt/internal/pagination"
	"foodcourt/internal/repository"
)

// TokenStore persists the session token across restarts. The session store
// satisfies it.
type TokenStore interface {
	SaveToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

type UserService struct {
	userRepo repository.UserRepository
	tokens   TokenStore
	log      *observability.Logger
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type UpdateProfileInput struct {
	UserID   string
	TargetID string
	Fields   models.UpdateUserInput
}

func NewUserService(userRepo repository.UserRepository, tokens TokenStore) *UserService {
	return &UserService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      observability.GlobalLogger,
	}
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	const maxUsernameLen = 30

	username := strings.TrimSpace(in.Username)
	if len(username) < 3 {
		return nil, models.NewValidationError("username must be at least 3 characters")
	}
	if len(username) > maxUsernameLen {
		return nil, models.NewValidationError("username too long (max 30 characters)")
	}
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if !strings.Contains(email, "@") {
		return nil, models.NewValidationError("a valid email is required")
	}
	if len(in.Password) < 8 {
		return nil, models.NewValidationError("password must be at least 8 characters")
	}

	return s.userRepo.Register(ctx, username, email, in.Password)
}

// Login authenticates and persists the returned token so later requests and
// restarts pick it up.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", nil, models.NewValidationError("email and password are required")
	}

	token, user, err := s.userRepo.Login(ctx, email, password)
	if err != nil {
		return "", nil, err
	}
	if s.tokens != nil {
		if err := s.tokens.SaveToken(ctx, token); err != nil {
			s.log.Warn("failed to persist session token", "error", err)
		}
	}
	return token, user, nil
}

// Logout tears down the session. It always reports success: the local token
// is cleared regardless of whether the backend call went through.
func (s *UserService) Logout(ctx context.Context) error {
	if err := s.userRepo.Logout(ctx); err != nil {
		s.log.Warn("logout call failed", "error", err)
	}
	if s.tokens != nil {
		if err := s.tokens.ClearToken(ctx); err != nil {
			s.log.Warn("failed to clear session token", "error", err)
		}
	}
	return nil
}

func (s *UserService) GetUser(ctx context.Context, id, viewerID string) (*models.User, error) {
	return s.userRepo.Get(ctx, id, viewerID)
}

// UpdateProfile edits profile fields. Users may only edit themselves.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	if in.UserID == "" {
		return nil, models.NewUnauthorizedError("login required")
	}
	if in.UserID != in.TargetID {
		return nil, models.NewUnauthorizedError("you can only update your own profile")
	}

	const maxBioLen = 500
	const maxUsernameLen = 30

	if in.Fields.Username != nil {
		name := strings.TrimSpace(*in.Fields.Username)
		if len(name) < 3 {
			return nil, models.NewValidationError("username must be at least 3 characters")
		}
		if len(name) > maxUsernameLen {
			return nil, models.NewValidationError("username too long (max 30 characters)")
		}
		in.Fields.Username = &name
	}
	if in.Fields.Bio != nil && len(*in.Fields.Bio) > maxBioLen {
		return nil, models.NewValidationError("bio too long (max 500 characters)")
	}

	return s.userRepo.Update(ctx, in.TargetID, in.Fields)
}

func (s *UserService) ListFollowers(ctx context.Context, userID string, page pagination.Params) (*repository.UserPage, error) {
	return s.userRepo.ListFollowers(ctx, userID, page)
}

func (s *UserService) ListFollowing(ctx context.Context, userID string, page pagination.Params) (*repository.UserPage, error) {
	return s.userRepo.ListFollowing(ctx, userID, page)
}
