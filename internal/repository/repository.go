// Package repository defines the capability interfaces of the data layer, one
// per aggregate. Two implementations conform to each: the network-backed
// client in remote and the deterministic in-memory substitute in memory.
// The active implementation is selected once at process start and never mixed
// at runtime.
package repository

import (
	"context"

	"foodcourt/internal/models"
	"foodcourt/internal/pagination"
)

// PostFilter narrows a post listing. Zero values are ignored, never treated
// as "match nothing"; populated fields compose with AND semantics.
type PostFilter struct {
	Keyword  string
	Category models.PostCategory
	Canteen  string
	PostType models.PostType
	Status   models.PostStatus
	AuthorID string
	Tags     []string
}

// IsZero reports whether the filter narrows nothing.
func (f PostFilter) IsZero() bool {
	return f.Keyword == "" && f.Category == "" && f.Canteen == "" &&
		f.PostType == "" && f.Status == "" && f.AuthorID == "" && len(f.Tags) == 0
}

// PostPage is one page of posts plus its envelope.
type PostPage struct {
	Items      []*models.Post      `json:"items"`
	Pagination pagination.Envelope `json:"pagination"`
}

// CommentPage is one page of top-level comments (replies nested) plus its
// envelope.
type CommentPage struct {
	Items      []*models.Comment   `json:"items"`
	Pagination pagination.Envelope `json:"pagination"`
}

// UserPage is one page of users plus its envelope.
type UserPage struct {
	Items      []*models.User      `json:"items"`
	Pagination pagination.Envelope `json:"pagination"`
}

// CreatePostResult is the minimal state returned after creating a post.
type CreatePostResult struct {
	ID       string            `json:"id"`
	PostType models.PostType   `json:"post_type"`
	Status   models.PostStatus `json:"status"`
}

// UpdatePostResult is the minimal state returned after updating or reviewing
// a post.
type UpdatePostResult struct {
	ID     string            `json:"id"`
	Status models.PostStatus `json:"status"`
}

// PostRepository provides post reads, writes and engagement toggles.
type PostRepository interface {
	List(ctx context.Context, filter PostFilter, page pagination.Params, viewerID string) (*PostPage, error)
	ListFavorites(ctx context.Context, viewerID string, page pagination.Params) (*PostPage, error)
	Get(ctx context.Context, id, viewerID string) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) (*CreatePostResult, error)
	Update(ctx context.Context, post *models.Post) (*UpdatePostResult, error)
	Delete(ctx context.Context, id string) error

	Like(ctx context.Context, viewerID, postID string) (*models.ToggleResult, error)
	Unlike(ctx context.Context, viewerID, postID string) (*models.ToggleResult, error)
	Favorite(ctx context.Context, viewerID, postID string) (*models.ToggleResult, error)
	Unfavorite(ctx context.Context, viewerID, postID string) (*models.ToggleResult, error)
}

// CommentRepository provides comment threads for posts.
type CommentRepository interface {
	ListByPost(ctx context.Context, postID string, page pagination.Params, viewerID string) (*CommentPage, error)
	Get(ctx context.Context, id string) (*models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	Delete(ctx context.Context, id string) error

	Like(ctx context.Context, viewerID, commentID string) (*models.ToggleResult, error)
	Unlike(ctx context.Context, viewerID, commentID string) (*models.ToggleResult, error)
}

// UserRepository provides accounts, profiles and the social graph.
type UserRepository interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (token string, user *models.User, err error)
	// Logout is best-effort session teardown: it always reports success to
	// the caller regardless of the underlying call's outcome.
	Logout(ctx context.Context) error

	Get(ctx context.Context, id, viewerID string) (*models.User, error)
	Update(ctx context.Context, id string, in models.UpdateUserInput) (*models.User, error)

	Follow(ctx context.Context, followerID, followeeID string) (*models.ToggleResult, error)
	Unfollow(ctx context.Context, followerID, followeeID string) (*models.ToggleResult, error)
	ListFollowers(ctx context.Context, userID string, page pagination.Params) (*UserPage, error)
	ListFollowing(ctx context.Context, userID string, page pagination.Params) (*UserPage, error)
}

// AdminRepository provides the moderation read and write paths. Role gating
// happens above it, in the moderation service; implementations only move
// data.
type AdminRepository interface {
	// ListPendingPosts is the convenience read path fixed to status=pending.
	ListPendingPosts(ctx context.Context, page pagination.Params) (*PostPage, error)
	// ListPosts lists all posts with an optional status filter; the zero
	// status means no filter.
	ListPosts(ctx context.Context, status models.PostStatus, page pagination.Params) (*PostPage, error)
	ReviewPost(ctx context.Context, postID string, approve bool, feedback string) (*UpdatePostResult, error)
	DeletePost(ctx context.Context, postID string) error

	ListUsers(ctx context.Context, page pagination.Params) (*UserPage, error)
	UpdateUserRole(ctx context.Context, userID string, role models.Role) (*models.User, error)
}
