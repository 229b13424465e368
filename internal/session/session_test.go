package session

import (
	"context"
	"testing"
	"time"

	"foodcourt/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	return New(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestStore_TokenRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, s.SaveToken(ctx, "bearer-xyz"))

	token, err = s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bearer-xyz", token)

	require.NoError(t, s.ClearToken(ctx))
	token, err = s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestStore_CachedPostsRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	got, err := s.CachedPosts(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	posts := []*models.Post{
		{
			ID:       "p1",
			PostType: models.PostTypeShare,
			Title:    "Great dumplings",
			Status:   models.PostStatusApproved,
			Share:    &models.ShareDetails{ShareType: models.ShareRecommend, Price: 12},
			CreatedAt: time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC),
		},
		{ID: "p2", PostType: models.PostTypeSeeking, Title: "Lunch ideas?"},
	}
	require.NoError(t, s.CachePosts(ctx, posts))

	got, err = s.CachedPosts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, models.PostTypeShare, got[0].PostType)
	require.NotNil(t, got[0].Share)
	assert.Equal(t, 12.0, got[0].Share.Price)
}

func TestStore_NilClientDegrades(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	require.NoError(t, s.SaveToken(ctx, "x"))
	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	got, err := s.CachedPosts(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}
