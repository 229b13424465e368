package memory

import (
	"context"
	"strings"

	"foodcourt/internal/models"
	"foodcourt/internal/pagination"
	"foodcourt/internal/repository"
)

// postRepository implements repository.PostRepository over a Store.
type postRepository struct {
	store *Store
}

// NewPostRepository creates the in-memory post repository.
func NewPostRepository(store *Store) repository.PostRepository {
	return &postRepository{store: store}
}

// matches applies AND-composed filters; zero values are ignored.
func matches(p *models.Post, f repository.PostFilter) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Canteen != "" && p.Canteen != f.Canteen {
		return false
	}
	if f.PostType != "" && p.PostType != f.PostType {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.AuthorID != "" && p.AuthorID != f.AuthorID {
		return false
	}
	if f.Keyword != "" {
		kw := strings.ToLower(f.Keyword)
		if !strings.Contains(strings.ToLower(p.Title), kw) &&
			!strings.Contains(strings.ToLower(p.Content), kw) {
			return false
		}
	}
	for _, want := range f.Tags {
		if want == "" {
			continue
		}
		found := false
		for _, tag := range p.Tags {
			if tag == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (r *postRepository) List(ctx context.Context, filter repository.PostFilter, page pagination.Params, viewerID string) (*repository.PostPage, error) {
	page = pagination.Normalize(page.Page, page.Limit)
	if err := r.store.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.store.release()

	var all []*models.Post
	for _, p := range r.store.postsNewestFirst() {
		if matches(p, filter) {
			all = append(all, p)
		}
	}

	items := pagination.SlicePage(all, page)
	out := make([]*models.Post, len(items))
	for i, p := range items {
		out[i] = r.store.viewPost(p, viewerID)
	}
	return &repository.PostPage{
		Items:      out,
		Pagination: pagination.NewEnvelope(page, len(all)),
	}, nil
}

func (r *postRepository) ListFavorites(ctx context.Context, viewerID string, page pagination.Params) (*repository.PostPage, error) {
	page = pagination.Normalize(page.Page, page.Limit)
	if err := r.store.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.store.release()

	var all []*models.Post
	for _, p := range r.store.postsNewestFirst() {
		if has(r.store.postFavorites, p.ID, viewerID) {
			all = append(all, p)
		}
	}

	items := pagination.SlicePage(all, page)
	out := make([]*models.Post, len(items))
	for i, p := range items {
		out[i] = r.store.viewPost(p, viewerID)
	}
	return &repository.PostPage{
		Items:      out,
		Pagination: pagination.NewEnvelope(page, len(all)),
	}, nil
}

func (r *postRepository) Get(ctx context.Context, id, viewerID string) (*models.Post, error) {
	if err := r.store.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.store.release()

	p, ok := r.store.posts[id]
	if !ok {
		return nil, models.NewNotFoundError("Post", id)
	}
	p.ViewCount++
	return r.store.viewPost(p, viewerID), nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) (*repository.CreatePostResult, error) {
	if err := r.store.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.store.release()

	if _, ok := r.store.users[post.AuthorID]; !ok {
		return nil, models.NewNotFoundError("User", post.AuthorID)
	}

	stored := *post
	stored.ID = r.store.newID()
	// Every creation lands in pending; only the moderation workflow moves it.
	stored.Status = models.PostStatusPending
	stored.LikeCount, stored.FavoriteCount, stored.CommentCount, stored.ViewCount = 0, 0, 0, 0
	stored.ReviewedAt = nil
	stored.ReviewNote = ""
	stored.CreatedAt = r.store.now()
	stored.UpdatedAt = stored.CreatedAt
	stored.Author = nil

	r.store.posts[stored.ID] = &stored
	r.store.postOrder = append(r.store.postOrder, stored.ID)

	return &repository.CreatePostResult{
		ID:       stored.ID,
		PostType: stored.PostType,
		Status:   stored.Status,
	}, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) (*repository.UpdatePostResult, error) {
	if err := r.store.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.store.release()

	existing, ok := r.store.posts[post.ID]
	if !ok {
		return nil, models.NewNotFoundError("Post", post.ID)
	}

	existing.Title = post.Title
	existing.Content = post.Content
	existing.Category = post.Category
	existing.Canteen = post.Canteen
	existing.Tags = post.Tags
	existing.Images = post.Images
	existing.Share = post.Share
	existing.Seeking = post.Seeking
	existing.Companion = post.Companion
	// An edit resubmits the post: status resets to pending and any prior
	// review outcome is cleared.
	existing.Status = models.PostStatusPending
	existing.ReviewedAt = nil
	existing.ReviewNote = ""
	existing.UpdatedAt = r.store.now()

	return &repository.UpdatePostResult{ID: existing.ID, Status: existing.Status}, nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.acquire(ctx); err != nil {
		return err
	}
	defer r.store.release()
	return r.store.deletePostLocked(id)
}

// deletePostLocked removes a post and everything hanging off it. Callers
// must hold the store lock.
func (s *Store) deletePostLocked(id string) error {
	if _, ok := s.posts[id]; !ok {
		return models.NewNotFoundError("Post", id)
	}
	delete(s.posts, id)
	delete(s.postLikes, id)
	delete(s.postFavorites, id)
	for cid, c := range s.comments {
		if c.PostID == id {
			delete(s.comments, cid)
			delete(s.commentLikes, cid)
		}
	}
	return nil
}

func (r *postRepository) Like(ctx context.Context, viewerID, postID string) (*models.ToggleResult, error) {
	return r.togglePostSet(ctx, r.store.postLikes, viewerID, postID, true, likeCounter)
}

func (r *postRepository) Unlike(ctx context.Context, viewerID, postID string) (*models.ToggleResult, error) {
	return r.togglePostSet(ctx, r.store.postLikes, viewerID, postID, false, likeCounter)
}

func (r *postRepository) Favorite(ctx context.Context, viewerID, postID string) (*models.ToggleResult, error) {
	return r.togglePostSet(ctx, r.store.postFavorites, viewerID, postID, true, favoriteCounter)
}

func (r *postRepository) Unfavorite(ctx context.Context, viewerID, postID string) (*models.ToggleResult, error) {
	return r.togglePostSet(ctx, r.store.postFavorites, viewerID, postID, false, favoriteCounter)
}

func likeCounter(p *models.Post) *int     { return &p.LikeCount }
func favoriteCounter(p *models.Post) *int { return &p.FavoriteCount }

// togglePostSet flips membership of viewerID in the given engagement set and
// moves the matching counter in the same critical section, so the flag and
// the counter are never observed out of step.
func (r *postRepository) togglePostSet(
	ctx context.Context,
	set map[string]map[string]struct{},
	viewerID, postID string,
	engage bool,
	counter func(*models.Post) *int,
) (*models.ToggleResult, error) {
	if err := r.store.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.store.release()

	p, ok := r.store.posts[postID]
	if !ok {
		return nil, models.NewNotFoundError("Post", postID)
	}

	current := has(set, postID, viewerID)
	next, delta := models.ResolveToggle(current, engage)
	if next {
		members(set, postID)[viewerID] = struct{}{}
	} else {
		delete(set[postID], viewerID)
	}

	n := counter(p)
	*n = models.ClampCount(*n + delta)

	return &models.ToggleResult{Active: next, Count: *n}, nil
}
