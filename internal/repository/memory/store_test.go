package memory

import (
	"context"
	"testing"
	"time"

	"foodcourt/internal/models"

	"github.com/stretchr/testify/require"
)

func testStore() *Store {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	return NewStore(
		WithLatency(0),
		WithClock(func() time.Time { return now }),
	)
}

func mustRegister(t *testing.T, s *Store, username string) *models.User {
	t.Helper()
	u, err := NewUserRepository(s).Register(context.Background(), username, username+"@campus.test", "secret123")
	require.NoError(t, err)
	return u
}

func promote(s *Store, userID string, role models.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID].Role = role
}

func sharePost(authorID string) *models.Post {
	p := &models.Post{
		PostType: models.PostTypeShare,
		Title:    "Hand-pulled noodles",
		Content:  "The lamian window at the north canteen is worth the queue.",
		Category: models.CategoryFood,
		Canteen:  "North Canteen",
		Tags:     []string{"noodles", "spicy"},
		Images:   []string{"img/noodles.jpg"},
		AuthorID: authorID,
		Share: &models.ShareDetails{
			ShareType: models.ShareRecommend,
			Cuisine:   "noodles",
			Price:     18,
		},
	}
	p.Normalize()
	return p
}

func mustCreatePost(t *testing.T, s *Store, authorID string) string {
	t.Helper()
	res, err := NewPostRepository(s).Create(context.Background(), sharePost(authorID))
	require.NoError(t, err)
	return res.ID
}

func TestSeed_Deterministic(t *testing.T) {
	t.Parallel()

	a, b := testStore(), testStore()
	Seed(a, 42)
	Seed(b, 42)

	require.Equal(t, len(a.posts), len(b.posts))
	require.Equal(t, a.postOrder, b.postOrder)
	require.Equal(t, a.userOrder, b.userOrder)
	for id, p := range a.posts {
		require.Equal(t, p.Title, b.posts[id].Title)
		require.Equal(t, p.LikeCount, b.posts[id].LikeCount)
	}
}
