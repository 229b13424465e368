package memory

import (
	"context"
	"testing"

	"foodcourt/internal/models"
	"foodcourt/internal/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRepository_ReviewApprove(t *testing.T) {
	t.Parallel()

	s := testStore()
	author := mustRegister(t, s, "alice")
	posts := NewPostRepository(s)
	admin := NewAdminRepository(s)
	ctx := context.Background()
	id := mustCreatePost(t, s, author.ID)

	res, err := admin.ReviewPost(ctx, id, true, "looks great")
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusApproved, res.Status)

	got, err := posts.Get(ctx, id, "")
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusApproved, got.Status)
	require.NotNil(t, got.ReviewedAt)
	assert.Equal(t, "looks great", got.ReviewNote)
}

func TestAdminRepository_ReviewIsTerminal(t *testing.T) {
	t.Parallel()

	s := testStore()
	author := mustRegister(t, s, "alice")
	admin := NewAdminRepository(s)
	ctx := context.Background()
	id := mustCreatePost(t, s, author.ID)

	_, err := admin.ReviewPost(ctx, id, false, "not food related")
	require.NoError(t, err)

	// No re-review path: a second review of a decided post fails.
	_, err = admin.ReviewPost(ctx, id, true, "")
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestAdminRepository_PendingListIsStatusFilter(t *testing.T) {
	t.Parallel()

	s := testStore()
	author := mustRegister(t, s, "alice")
	admin := NewAdminRepository(s)
	ctx := context.Background()

	first := mustCreatePost(t, s, author.ID)
	second := mustCreatePost(t, s, author.ID)
	_, err := admin.ReviewPost(ctx, first, true, "")
	require.NoError(t, err)

	page := pagination.Normalize(1, 20)

	pending, err := admin.ListPendingPosts(ctx, page)
	require.NoError(t, err)
	require.Len(t, pending.Items, 1)
	assert.Equal(t, second, pending.Items[0].ID)

	// Same data through the unfiltered read path.
	all, err := admin.ListPosts(ctx, "", page)
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)

	approved, err := admin.ListPosts(ctx, models.PostStatusApproved, page)
	require.NoError(t, err)
	require.Len(t, approved.Items, 1)
	assert.Equal(t, first, approved.Items[0].ID)
}

func TestAdminRepository_UpdateUserRole(t *testing.T) {
	t.Parallel()

	s := testStore()
	admin := NewAdminRepository(s)
	ctx := context.Background()
	alice := mustRegister(t, s, "alice")

	got, err := admin.UpdateUserRole(ctx, alice.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, got.Role)

	_, err = admin.UpdateUserRole(ctx, alice.ID, models.Role("czar"))
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)

	_, err = admin.UpdateUserRole(ctx, "missing", models.RoleAdmin)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestAdminRepository_DeletePostAnyState(t *testing.T) {
	t.Parallel()

	s := testStore()
	author := mustRegister(t, s, "alice")
	posts := NewPostRepository(s)
	admin := NewAdminRepository(s)
	ctx := context.Background()

	id := mustCreatePost(t, s, author.ID)
	_, err := admin.ReviewPost(ctx, id, true, "")
	require.NoError(t, err)

	require.NoError(t, admin.DeletePost(ctx, id))
	_, err = posts.Get(ctx, id, "")
	require.Error(t, err)
}
