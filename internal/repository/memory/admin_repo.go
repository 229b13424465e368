package memory

import (
	"context"

	"foodcourt/internal/models"
	"foodcourt/internal/pagination"
	"foodcourt/internal/repository"
)

// adminRepository implements repository.AdminRepository over a Store. It
// carries no authorization of its own; the moderation service gates callers
// before any of these methods run.
type adminRepository struct {
	store *Store
}

// NewAdminRepository creates the in-memory admin repository.
func NewAdminRepository(store *Store) repository.AdminRepository {
	return &adminRepository{store: store}
}

func (r *adminRepository) ListPendingPosts(ctx context.Context, page pagination.Params) (*repository.PostPage, error) {
	return r.ListPosts(ctx, models.PostStatusPending, page)
}

func (r *adminRepository) ListPosts(ctx context.Context, status models.PostStatus, page pagination.Params) (*repository.PostPage, error) {
	page = pagination.Normalize(page.Page, page.Limit)
	if err := r.store.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.store.release()

	var all []*models.Post
	for _, p := range r.store.postsNewestFirst() {
		if status != "" && p.Status != status {
			continue
		}
		all = append(all, p)
	}

	items := pagination.SlicePage(all, page)
	out := make([]*models.Post, len(items))
	for i, p := range items {
		out[i] = r.store.viewPost(p, "")
	}
	return &repository.PostPage{
		Items:      out,
		Pagination: pagination.NewEnvelope(page, len(all)),
	}, nil
}

func (r *adminRepository) ReviewPost(ctx context.Context, postID string, approve bool, feedback string) (*repository.UpdatePostResult, error) {
	if err := r.store.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.store.release()

	p, ok := r.store.posts[postID]
	if !ok {
		return nil, models.NewNotFoundError("Post", postID)
	}
	// approved and rejected are terminal for the review machine; the only
	// way back to pending is an author edit.
	if p.Status != models.PostStatusPending {
		return nil, models.NewValidationError("post is not pending review")
	}

	if approve {
		p.Status = models.PostStatusApproved
	} else {
		p.Status = models.PostStatusRejected
	}
	reviewed := r.store.now()
	p.ReviewedAt = &reviewed
	p.ReviewNote = feedback
	p.UpdatedAt = reviewed

	return &repository.UpdatePostResult{ID: p.ID, Status: p.Status}, nil
}

func (r *adminRepository) DeletePost(ctx context.Context, postID string) error {
	if err := r.store.acquire(ctx); err != nil {
		return err
	}
	defer r.store.release()
	return r.store.deletePostLocked(postID)
}

func (r *adminRepository) ListUsers(ctx context.Context, page pagination.Params) (*repository.UserPage, error) {
	page = pagination.Normalize(page.Page, page.Limit)
	if err := r.store.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.store.release()

	all := make([]*models.User, 0, len(r.store.userOrder))
	for _, id := range r.store.userOrder {
		if u, ok := r.store.users[id]; ok {
			all = append(all, u)
		}
	}

	items := pagination.SlicePage(all, page)
	out := make([]*models.User, len(items))
	for i, u := range items {
		out[i] = r.store.viewUser(u, "")
	}
	return &repository.UserPage{
		Items:      out,
		Pagination: pagination.NewEnvelope(page, len(all)),
	}, nil
}

func (r *adminRepository) UpdateUserRole(ctx context.Context, userID string, role models.Role) (*models.User, error) {
	if err := r.store.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.store.release()

	if !role.Valid() {
		return nil, models.NewValidationError("invalid role")
	}
	u, ok := r.store.users[userID]
	if !ok {
		return nil, models.NewNotFoundError("User", userID)
	}
	u.Role = role
	u.UpdatedAt = r.store.now()

	return r.store.viewUser(u, ""), nil
}
