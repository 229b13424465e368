package service

import (
	"context"
	"errors"
	"testing"

	"foodcourt/internal/models"
	"foodcourt/internal/pagination"
	"foodcourt/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sharePostInput() *models.Post {
	return &models.Post{
		PostType: models.PostTypeShare,
		Title:    "Spicy noodles at the west canteen",
		Content:  "Worth the queue",
		Category: models.CategoryFood,
		Images:   []string{"noodles.jpg"},
		Share:    &models.ShareDetails{ShareType: models.ShareRecommend, Price: 15},
	}
}

func TestPostService_CreatePost_RequiresLogin(t *testing.T) {
	svc := NewPostService(noopPostRepo(), nil, nil)

	_, err := svc.CreatePost(context.Background(), "", sharePostInput())
	require.Error(t, err)
	assert.Equal(t, models.CodeUnauthorized, models.CodeOf(err))
}

func TestPostService_CreatePost_StampsAuthorAndNormalizes(t *testing.T) {
	repo := noopPostRepo()
	var created *models.Post
	repo.createFn = func(_ context.Context, p *models.Post) (*repository.CreatePostResult, error) {
		created = p
		return &repository.CreatePostResult{ID: "p1", PostType: p.PostType, Status: models.PostStatusPending}, nil
	}
	svc := NewPostService(repo, nil, nil)

	in := sharePostInput()
	in.AuthorID = "spoofed"
	// Cross-variant payload must be dropped, not rejected.
	in.Seeking = &models.SeekingDetails{BudgetMax: 50}
	in.Tags = []string{"spicy", "spicy", "noodles"}

	res, err := svc.CreatePost(context.Background(), "u1", in)
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusPending, res.Status)

	require.NotNil(t, created)
	assert.Equal(t, "u1", created.AuthorID)
	assert.Nil(t, created.Seeking)
	assert.Equal(t, []string{"spicy", "noodles"}, created.Tags)
}

func TestPostService_CreatePost_RejectsInvalidVariant(t *testing.T) {
	svc := NewPostService(noopPostRepo(), nil, nil)

	in := sharePostInput()
	in.Images = nil // share posts need at least one image

	_, err := svc.CreatePost(context.Background(), "u1", in)
	require.Error(t, err)
	assert.Equal(t, models.CodeValidation, models.CodeOf(err))
}

func TestPostService_UpdatePost_AuthorOnly(t *testing.T) {
	repo := noopPostRepo()
	repo.getFn = func(_ context.Context, id, _ string) (*models.Post, error) {
		p := sharePostInput()
		p.ID = id
		p.AuthorID = "owner"
		return p, nil
	}
	svc := NewPostService(repo, nil, nil)

	edited := sharePostInput()
	edited.ID = "p1"

	_, err := svc.UpdatePost(context.Background(), UpdatePostInput{UserID: "someone-else", Post: edited})
	require.Error(t, err)
	assert.Equal(t, models.CodeUnauthorized, models.CodeOf(err))

	_, err = svc.UpdatePost(context.Background(), UpdatePostInput{UserID: "owner", Post: edited})
	require.NoError(t, err)
}

func TestPostService_DeletePost_AuthorOrAdmin(t *testing.T) {
	repo := noopPostRepo()
	repo.getFn = func(_ context.Context, id, _ string) (*models.Post, error) {
		return &models.Post{ID: id, AuthorID: "owner"}, nil
	}

	svc := NewPostService(repo, nil, alwaysAdmin(false))
	err := svc.DeletePost(context.Background(), DeletePostInput{UserID: "stranger", PostID: "p1"})
	require.Error(t, err)
	assert.Equal(t, models.CodeUnauthorized, models.CodeOf(err))

	require.NoError(t, svc.DeletePost(context.Background(), DeletePostInput{UserID: "owner", PostID: "p1"}))

	svc = NewPostService(repo, nil, alwaysAdmin(true))
	require.NoError(t, svc.DeletePost(context.Background(), DeletePostInput{UserID: "moderator", PostID: "p1"}))
}

func TestPostService_SearchPosts(t *testing.T) {
	repo := noopPostRepo()
	var gotFilter repository.PostFilter
	repo.listFn = func(_ context.Context, f repository.PostFilter, _ pagination.Params, _ string) (*repository.PostPage, error) {
		gotFilter = f
		return emptyPostPage(), nil
	}
	svc := NewPostService(repo, nil, nil)

	_, err := svc.SearchPosts(context.Background(), "  ", pagination.Params{}, "")
	require.Error(t, err)
	assert.Equal(t, models.CodeValidation, models.CodeOf(err))

	_, err = svc.SearchPosts(context.Background(), "dumplings", pagination.Params{}, "")
	require.NoError(t, err)
	assert.Equal(t, "dumplings", gotFilter.Keyword)
}

func TestPostService_ListPosts_CachesFirstPage(t *testing.T) {
	repo := noopPostRepo()
	feed := []*models.Post{{ID: "p1"}, {ID: "p2"}}
	repo.listFn = func(_ context.Context, _ repository.PostFilter, p pagination.Params, _ string) (*repository.PostPage, error) {
		return &repository.PostPage{Items: feed, Pagination: pagination.NewEnvelope(pagination.Normalize(p.Page, p.Limit), len(feed))}, nil
	}

	var cached []*models.Post
	cache := &feedCacheStub{
		cachePostsFn:  func(_ context.Context, posts []*models.Post) error { cached = posts; return nil },
		cachedPostsFn: func(_ context.Context) ([]*models.Post, error) { return nil, nil },
	}
	svc := NewPostService(repo, cache, nil)

	_, err := svc.ListPosts(context.Background(), ListPostsInput{Page: pagination.Params{Page: 1, Limit: 20}})
	require.NoError(t, err)
	assert.Len(t, cached, 2)

	// A filtered listing must not overwrite the feed snapshot.
	cached = nil
	_, err = svc.ListPosts(context.Background(), ListPostsInput{
		Filter: repository.PostFilter{Canteen: "west"},
		Page:   pagination.Params{Page: 1, Limit: 20},
	})
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestPostService_ListPosts_FallsBackToCacheOnRemoteError(t *testing.T) {
	repo := noopPostRepo()
	repo.listFn = func(_ context.Context, _ repository.PostFilter, _ pagination.Params, _ string) (*repository.PostPage, error) {
		return nil, models.NewRemoteError(errors.New("connection refused"))
	}
	snapshot := []*models.Post{{ID: "p1"}}
	cache := &feedCacheStub{
		cachePostsFn:  func(_ context.Context, _ []*models.Post) error { return nil },
		cachedPostsFn: func(_ context.Context) ([]*models.Post, error) { return snapshot, nil },
	}
	svc := NewPostService(repo, cache, nil)

	page, err := svc.ListPosts(context.Background(), ListPostsInput{Page: pagination.Params{Page: 1, Limit: 20}})
	require.NoError(t, err)
	assert.Equal(t, snapshot, page.Items)

	// Later pages never come from the snapshot.
	_, err = svc.ListPosts(context.Background(), ListPostsInput{Page: pagination.Params{Page: 2, Limit: 20}})
	require.Error(t, err)
	assert.Equal(t, models.CodeRemote, models.CodeOf(err))
}

func TestPostService_ListFavorites_RequiresLogin(t *testing.T) {
	svc := NewPostService(noopPostRepo(), nil, nil)

	_, err := svc.ListFavorites(context.Background(), "", pagination.Params{})
	require.Error(t, err)
	assert.Equal(t, models.CodeUnauthorized, models.CodeOf(err))
}
