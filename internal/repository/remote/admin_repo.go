package remote

import (
	"context"

	"foodcourt/internal/models"
	"foodcourt/internal/pagination"
	"foodcourt/internal/repository"
)

// adminRepository implements repository.AdminRepository against the HTTP
// API. The backend enforces its own role gate; the client-side moderation
// service gates too so unauthorized calls fail before going on the wire.
type adminRepository struct {
	client *Client
}

// NewAdminRepository creates the network-backed admin repository.
func NewAdminRepository(client *Client) repository.AdminRepository {
	return &adminRepository{client: client}
}

func (r *adminRepository) ListPendingPosts(ctx context.Context, page pagination.Params) (*repository.PostPage, error) {
	var out repository.PostPage
	if err := r.client.get(ctx, "/api/admin/posts/pending", pageQuery(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *adminRepository) ListPosts(ctx context.Context, status models.PostStatus, page pagination.Params) (*repository.PostPage, error) {
	q := pageQuery(page)
	setParam(q, "status", string(status))

	var out repository.PostPage
	if err := r.client.get(ctx, "/api/admin/posts", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type reviewRequest struct {
	Approve  bool   `json:"approve"`
	Feedback string `json:"feedback,omitempty"`
}

func (r *adminRepository) ReviewPost(ctx context.Context, postID string, approve bool, feedback string) (*repository.UpdatePostResult, error) {
	var out repository.UpdatePostResult
	body := reviewRequest{Approve: approve, Feedback: feedback}
	if err := r.client.post(ctx, "/api/admin/posts/"+pathID(postID)+"/review", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *adminRepository) DeletePost(ctx context.Context, postID string) error {
	return r.client.delete(ctx, "/api/admin/posts/"+pathID(postID), nil)
}

func (r *adminRepository) ListUsers(ctx context.Context, page pagination.Params) (*repository.UserPage, error) {
	var out repository.UserPage
	if err := r.client.get(ctx, "/api/admin/users", pageQuery(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type roleRequest struct {
	Role models.Role `json:"role"`
}

func (r *adminRepository) UpdateUserRole(ctx context.Context, userID string, role models.Role) (*models.User, error) {
	var out models.User
	if err := r.client.put(ctx, "/api/admin/users/"+pathID(userID)+"/role", roleRequest{Role: role}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
