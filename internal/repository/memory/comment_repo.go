package memory

import (
	"context"

	"foodcourt/internal/models"
	"foodcourt/internal/pagination"
	"foodcourt/internal/repository"
)

// commentRepository implements repository.CommentRepository over a Store.
type commentRepository struct {
	store *Store
}

// NewCommentRepository creates the in-memory comment repository.
func NewCommentRepository(store *Store) repository.CommentRepository {
	return &commentRepository{store: store}
}

func (r *commentRepository) ListByPost(ctx context.Context, postID string, page pagination.Params, viewerID string) (*repository.CommentPage, error) {
	page = pagination.Normalize(page.Page, page.Limit)
	if err := r.store.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.store.release()

	post, ok := r.store.posts[postID]
	if !ok {
		return nil, models.NewNotFoundError("Post", postID)
	}

	// Top-level comments in insertion order; replies nested under each.
	var topLevel []*models.Comment
	repliesByParent := make(map[string][]*models.Comment)
	for _, id := range r.store.commentOrder {
		c, ok := r.store.comments[id]
		if !ok || c.PostID != postID {
			continue
		}
		if c.ParentID == nil {
			topLevel = append(topLevel, c)
		} else {
			repliesByParent[*c.ParentID] = append(repliesByParent[*c.ParentID], c)
		}
	}

	pageItems := pagination.SlicePage(topLevel, page)
	out := make([]*models.Comment, len(pageItems))
	for i, c := range pageItems {
		view := r.store.viewComment(c, viewerID, post.AuthorID)
		for _, reply := range repliesByParent[c.ID] {
			view.Replies = append(view.Replies, r.store.viewComment(reply, viewerID, post.AuthorID))
		}
		view.ReplyCount = len(view.Replies)
		out[i] = view
	}

	return &repository.CommentPage{
		Items:      out,
		Pagination: pagination.NewEnvelope(page, len(topLevel)),
	}, nil
}

func (r *commentRepository) Get(ctx context.Context, id string) (*models.Comment, error) {
	if err := r.store.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.store.release()

	c, ok := r.store.comments[id]
	if !ok {
		return nil, models.NewNotFoundError("Comment", id)
	}
	post, ok := r.store.posts[c.PostID]
	authorID := ""
	if ok {
		authorID = post.AuthorID
	}
	return r.store.viewComment(c, "", authorID), nil
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	if err := r.store.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.store.release()

	post, ok := r.store.posts[comment.PostID]
	if !ok {
		return nil, models.NewNotFoundError("Post", comment.PostID)
	}
	if _, ok := r.store.users[comment.AuthorID]; !ok {
		return nil, models.NewNotFoundError("User", comment.AuthorID)
	}

	if comment.ParentID != nil {
		parent, ok := r.store.comments[*comment.ParentID]
		if !ok {
			return nil, models.NewNotFoundError("Comment", *comment.ParentID)
		}
		if parent.PostID != comment.PostID {
			return nil, models.NewValidationError("parent comment belongs to a different post")
		}
		// Thread depth is capped at 2: replies to replies are rejected.
		if parent.ParentID != nil {
			return nil, models.NewValidationError("replies cannot be nested further")
		}
		parent.ReplyCount++
	}

	stored := *comment
	stored.ID = r.store.newID()
	stored.LikeCount = 0
	stored.ReplyCount = 0
	stored.Replies = nil
	stored.Author = nil
	stored.CreatedAt = r.store.now()

	r.store.comments[stored.ID] = &stored
	r.store.commentOrder = append(r.store.commentOrder, stored.ID)
	post.CommentCount++

	return r.store.viewComment(&stored, comment.AuthorID, post.AuthorID), nil
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.acquire(ctx); err != nil {
		return err
	}
	defer r.store.release()

	c, ok := r.store.comments[id]
	if !ok {
		return models.NewNotFoundError("Comment", id)
	}
	post := r.store.posts[c.PostID]

	removed := 1
	if c.ParentID == nil {
		// Deleting a top-level comment removes it and all its replies.
		for rid, reply := range r.store.comments {
			if reply.ParentID != nil && *reply.ParentID == id {
				delete(r.store.comments, rid)
				delete(r.store.commentLikes, rid)
				removed++
			}
		}
	} else if parent, ok := r.store.comments[*c.ParentID]; ok {
		parent.ReplyCount = models.ClampCount(parent.ReplyCount - 1)
	}

	delete(r.store.comments, id)
	delete(r.store.commentLikes, id)
	if post != nil {
		post.CommentCount = models.ClampCount(post.CommentCount - removed)
	}
	return nil
}

func (r *commentRepository) Like(ctx context.Context, viewerID, commentID string) (*models.ToggleResult, error) {
	return r.toggleLike(ctx, viewerID, commentID, true)
}

func (r *commentRepository) Unlike(ctx context.Context, viewerID, commentID string) (*models.ToggleResult, error) {
	return r.toggleLike(ctx, viewerID, commentID, false)
}

func (r *commentRepository) toggleLike(ctx context.Context, viewerID, commentID string, engage bool) (*models.ToggleResult, error) {
	if err := r.store.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.store.release()

	c, ok := r.store.comments[commentID]
	if !ok {
		return nil, models.NewNotFoundError("Comment", commentID)
	}

	current := has(r.store.commentLikes, commentID, viewerID)
	next, delta := models.ResolveToggle(current, engage)
	if next {
		members(r.store.commentLikes, commentID)[viewerID] = struct{}{}
	} else {
		delete(r.store.commentLikes[commentID], viewerID)
	}
	c.LikeCount = models.ClampCount(c.LikeCount + delta)

	return &models.ToggleResult{Active: next, Count: c.LikeCount}, nil
}
