package remote

import (
	"context"

	"foodcourt/internal/models"
	"foodcourt/internal/pagination"
	"foodcourt/internal/repository"
)

// commentRepository implements repository.CommentRepository against the
// HTTP API.
type commentRepository struct {
	client *Client
}

// NewCommentRepository creates the network-backed comment repository.
func NewCommentRepository(client *Client) repository.CommentRepository {
	return &commentRepository{client: client}
}

func (r *commentRepository) ListByPost(ctx context.Context, postID string, page pagination.Params, _ string) (*repository.CommentPage, error) {
	var out repository.CommentPage
	if err := r.client.get(ctx, "/api/posts/"+pathID(postID)+"/comments", pageQuery(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *commentRepository) Get(ctx context.Context, id string) (*models.Comment, error) {
	var out models.Comment
	if err := r.client.get(ctx, "/api/comments/"+pathID(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	var out models.Comment
	if err := r.client.post(ctx, "/api/posts/"+pathID(comment.PostID)+"/comments", comment, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	return r.client.delete(ctx, "/api/comments/"+pathID(id), nil)
}

func (r *commentRepository) Like(ctx context.Context, _, commentID string) (*models.ToggleResult, error) {
	var out models.ToggleResult
	if err := r.client.post(ctx, "/api/comments/"+pathID(commentID)+"/like", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *commentRepository) Unlike(ctx context.Context, _, commentID string) (*models.ToggleResult, error) {
	var out models.ToggleResult
	if err := r.client.delete(ctx, "/api/comments/"+pathID(commentID)+"/like", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
