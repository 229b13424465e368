package remote

import (
	"context"

	"foodcourt/internal/models"
	"foodcourt/internal/pagination"
	"foodcourt/internal/repository"
)

// postRepository implements repository.PostRepository against the HTTP API.
// The viewer is identified by the bearer token, so viewerID parameters are
// not sent on the wire.
type postRepository struct {
	client *Client
}

// NewPostRepository creates the network-backed post repository.
func NewPostRepository(client *Client) repository.PostRepository {
	return &postRepository{client: client}
}

func (r *postRepository) List(ctx context.Context, filter repository.PostFilter, page pagination.Params, _ string) (*repository.PostPage, error) {
	q := pageQuery(page)
	setParam(q, "keyword", filter.Keyword)
	setParam(q, "category", string(filter.Category))
	setParam(q, "canteen", filter.Canteen)
	setParam(q, "post_type", string(filter.PostType))
	setParam(q, "status", string(filter.Status))
	setParam(q, "author_id", filter.AuthorID)
	setList(q, "tags", filter.Tags)

	var out repository.PostPage
	if err := r.client.get(ctx, "/api/posts", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postRepository) ListFavorites(ctx context.Context, _ string, page pagination.Params) (*repository.PostPage, error) {
	var out repository.PostPage
	if err := r.client.get(ctx, "/api/posts/favorites", pageQuery(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postRepository) Get(ctx context.Context, id, _ string) (*models.Post, error) {
	var out models.Post
	if err := r.client.get(ctx, "/api/posts/"+pathID(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) (*repository.CreatePostResult, error) {
	var out repository.CreatePostResult
	if err := r.client.post(ctx, "/api/posts", post, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) (*repository.UpdatePostResult, error) {
	var out repository.UpdatePostResult
	if err := r.client.put(ctx, "/api/posts/"+pathID(post.ID), post, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	return r.client.delete(ctx, "/api/posts/"+pathID(id), nil)
}

// Engagement toggles: POST engages, DELETE disengages; both return the
// reconciled flag and counter.

func (r *postRepository) Like(ctx context.Context, _, postID string) (*models.ToggleResult, error) {
	var out models.ToggleResult
	if err := r.client.post(ctx, "/api/posts/"+pathID(postID)+"/like", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postRepository) Unlike(ctx context.Context, _, postID string) (*models.ToggleResult, error) {
	var out models.ToggleResult
	if err := r.client.delete(ctx, "/api/posts/"+pathID(postID)+"/like", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postRepository) Favorite(ctx context.Context, _, postID string) (*models.ToggleResult, error) {
	var out models.ToggleResult
	if err := r.client.post(ctx, "/api/posts/"+pathID(postID)+"/favorite", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postRepository) Unfavorite(ctx context.Context, _, postID string) (*models.ToggleResult, error) {
	var out models.ToggleResult
	if err := r.client.delete(ctx, "/api/posts/"+pathID(postID)+"/favorite", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
