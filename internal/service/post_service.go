package service

import (
	"context"
	"strings"

	"foodcourt/internal/models"
	"foodcourt/internal/pagination"
	"foodcourt/internal/repository"
)

// FeedCache stores a snapshot of the main feed so it can still render when
// the backend is unreachable. The session store satisfies it.
type FeedCache interface {
	CachePosts(ctx context.Context, posts []*models.Post) error
	CachedPosts(ctx context.Context) ([]*models.Post, error)
}

type PostService struct {
	postRepo  repository.PostRepository
	feedCache FeedCache
	isAdmin   func(ctx context.Context, userID string) (bool, error)
}

type ListPostsInput struct {
	Filter   repository.PostFilter
	Page     pagination.Params
	ViewerID string
}

type UpdatePostInput struct {
	UserID string
	Post   *models.Post
}

type DeletePostInput struct {
	UserID string
	PostID string
}

func NewPostService(
	postRepo repository.PostRepository,
	feedCache FeedCache,
	isAdmin func(ctx context.Context, userID string) (bool, error),
) *PostService {
	return &PostService{
		postRepo:  postRepo,
		feedCache: feedCache,
		isAdmin:   isAdmin,
	}
}

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) (*repository.PostPage, error) {
	page, err := s.postRepo.List(ctx, in.Filter, in.Page, in.ViewerID)

	// The unfiltered first page is the feed the client shows offline. Cache
	// it on success, fall back to it when the backend is unreachable.
	cacheable := s.feedCache != nil && in.Filter.IsZero() && in.Page.Page <= 1
	if err != nil {
		if cacheable && models.CodeOf(err) == models.CodeRemote {
			if cached, cacheErr := s.feedCache.CachedPosts(ctx); cacheErr == nil && cached != nil {
				p := pagination.Normalize(in.Page.Page, in.Page.Limit)
				return &repository.PostPage{
					Items:      cached,
					Pagination: pagination.NewEnvelope(p, len(cached)),
				}, nil
			}
		}
		return nil, err
	}

	if cacheable {
		// Best-effort; a failed cache write never fails the listing.
		_ = s.feedCache.CachePosts(ctx, page.Items)
	}
	return page, nil
}

func (s *PostService) SearchPosts(ctx context.Context, query string, page pagination.Params, viewerID string) (*repository.PostPage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, models.NewValidationError("search query is required")
	}
	return s.postRepo.List(ctx, repository.PostFilter{Keyword: query}, page, viewerID)
}

func (s *PostService) ListFavorites(ctx context.Context, viewerID string, page pagination.Params) (*repository.PostPage, error) {
	if viewerID == "" {
		return nil, models.NewUnauthorizedError("login required")
	}
	return s.postRepo.ListFavorites(ctx, viewerID, page)
}

func (s *PostService) GetPost(ctx context.Context, id, viewerID string) (*models.Post, error) {
	return s.postRepo.Get(ctx, id, viewerID)
}

// CreatePost normalizes and validates the post, stamps the author and hands
// it to the repository. The repository forces the initial status to pending.
func (s *PostService) CreatePost(ctx context.Context, authorID string, post *models.Post) (*repository.CreatePostResult, error) {
	if authorID == "" {
		return nil, models.NewUnauthorizedError("login required")
	}
	post.AuthorID = authorID
	post.Normalize()
	if err := post.Validate(); err != nil {
		return nil, err
	}
	return s.postRepo.Create(ctx, post)
}

// UpdatePost replaces the editable fields of an existing post. Only the
// author may edit; a successful edit sends the post back through review.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*repository.UpdatePostResult, error) {
	existing, err := s.postRepo.Get(ctx, in.Post.ID, in.UserID)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != in.UserID {
		return nil, models.NewUnauthorizedError("you can only update your own posts")
	}

	in.Post.AuthorID = existing.AuthorID
	in.Post.Normalize()
	if err := in.Post.Validate(); err != nil {
		return nil, err
	}
	return s.postRepo.Update(ctx, in.Post)
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.Get(ctx, in.PostID, in.UserID)
	if err != nil {
		return err
	}

	if post.AuthorID != in.UserID {
		if s.isAdmin == nil {
			return models.NewUnauthorizedError("you can only delete your own posts")
		}
		admin, err := s.isAdmin(ctx, in.UserID)
		if err != nil {
			return err
		}
		if !admin {
			return models.NewUnauthorizedError("you can only delete your own posts")
		}
	}

	return s.postRepo.Delete(ctx, in.PostID)
}
