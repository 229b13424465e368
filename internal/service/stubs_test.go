package service

import (
	"context"

	"foodcourt/internal/models"
	"foodcourt/internal/pagination"
	"foodcourt/internal/repository"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	listFn          func(context.Context, repository.PostFilter, pagination.Params, string) (*repository.PostPage, error)
	listFavoritesFn func(context.Context, string, pagination.Params) (*repository.PostPage, error)
	getFn           func(context.Context, string, string) (*models.Post, error)
	createFn        func(context.Context, *models.Post) (*repository.CreatePostResult, error)
	updateFn        func(context.Context, *models.Post) (*repository.UpdatePostResult, error)
	deleteFn        func(context.Context, string) error
	likeFn          func(context.Context, string, string) (*models.ToggleResult, error)
	unlikeFn        func(context.Context, string, string) (*models.ToggleResult, error)
	favoriteFn      func(context.Context, string, string) (*models.ToggleResult, error)
	unfavoriteFn    func(context.Context, string, string) (*models.ToggleResult, error)
}

func (s *postRepoStub) List(ctx context.Context, filter repository.PostFilter, page pagination.Params, viewerID string) (*repository.PostPage, error) {
	return s.listFn(ctx, filter, page, viewerID)
}
func (s *postRepoStub) ListFavorites(ctx context.Context, viewerID string, page pagination.Params) (*repository.PostPage, error) {
	return s.listFavoritesFn(ctx, viewerID, page)
}
func (s *postRepoStub) Get(ctx context.Context, id, viewerID string) (*models.Post, error) {
	return s.getFn(ctx, id, viewerID)
}
func (s *postRepoStub) Create(ctx context.Context, post *models.Post) (*repository.CreatePostResult, error) {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) (*repository.UpdatePostResult, error) {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) Like(ctx context.Context, viewerID, postID string) (*models.ToggleResult, error) {
	return s.likeFn(ctx, viewerID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, viewerID, postID string) (*models.ToggleResult, error) {
	return s.unlikeFn(ctx, viewerID, postID)
}
func (s *postRepoStub) Favorite(ctx context.Context, viewerID, postID string) (*models.ToggleResult, error) {
	return s.favoriteFn(ctx, viewerID, postID)
}
func (s *postRepoStub) Unfavorite(ctx context.Context, viewerID, postID string) (*models.ToggleResult, error) {
	return s.unfavoriteFn(ctx, viewerID, postID)
}

func emptyPostPage() *repository.PostPage {
	return &repository.PostPage{Pagination: pagination.NewEnvelope(pagination.Normalize(0, 0), 0)}
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		listFn: func(_ context.Context, _ repository.PostFilter, _ pagination.Params, _ string) (*repository.PostPage, error) {
			return emptyPostPage(), nil
		},
		listFavoritesFn: func(_ context.Context, _ string, _ pagination.Params) (*repository.PostPage, error) {
			return emptyPostPage(), nil
		},
		getFn: func(_ context.Context, _, _ string) (*models.Post, error) { return &models.Post{}, nil },
		createFn: func(_ context.Context, _ *models.Post) (*repository.CreatePostResult, error) {
			return &repository.CreatePostResult{}, nil
		},
		updateFn: func(_ context.Context, _ *models.Post) (*repository.UpdatePostResult, error) {
			return &repository.UpdatePostResult{}, nil
		},
		deleteFn: func(_ context.Context, _ string) error { return nil },
		likeFn: func(_ context.Context, _, _ string) (*models.ToggleResult, error) {
			return &models.ToggleResult{}, nil
		},
		unlikeFn: func(_ context.Context, _, _ string) (*models.ToggleResult, error) {
			return &models.ToggleResult{}, nil
		},
		favoriteFn: func(_ context.Context, _, _ string) (*models.ToggleResult, error) {
			return &models.ToggleResult{}, nil
		},
		unfavoriteFn: func(_ context.Context, _, _ string) (*models.ToggleResult, error) {
			return &models.ToggleResult{}, nil
		},
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	listByPostFn func(context.Context, string, pagination.Params, string) (*repository.CommentPage, error)
	getFn        func(context.Context, string) (*models.Comment, error)
	createFn     func(context.Context, *models.Comment) (*models.Comment, error)
	deleteFn     func(context.Context, string) error
	likeFn       func(context.Context, string, string) (*models.ToggleResult, error)
	unlikeFn     func(context.Context, string, string) (*models.ToggleResult, error)
}

func (s *commentRepoStub) ListByPost(ctx context.Context, postID string, page pagination.Params, viewerID string) (*repository.CommentPage, error) {
	return s.listByPostFn(ctx, postID, page, viewerID)
}
func (s *commentRepoStub) Get(ctx context.Context, id string) (*models.Comment, error) {
	return s.getFn(ctx, id)
}
func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *commentRepoStub) Like(ctx context.Context, viewerID, commentID string) (*models.ToggleResult, error) {
	return s.likeFn(ctx, viewerID, commentID)
}
func (s *commentRepoStub) Unlike(ctx context.Context, viewerID, commentID string) (*models.ToggleResult, error) {
	return s.unlikeFn(ctx, viewerID, commentID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		listByPostFn: func(_ context.Context, _ string, _ pagination.Params, _ string) (*repository.CommentPage, error) {
			return &repository.CommentPage{}, nil
		},
		getFn:    func(_ context.Context, _ string) (*models.Comment, error) { return &models.Comment{}, nil },
		createFn: func(_ context.Context, c *models.Comment) (*models.Comment, error) { return c, nil },
		deleteFn: func(_ context.Context, _ string) error { return nil },
		likeFn: func(_ context.Context, _, _ string) (*models.ToggleResult, error) {
			return &models.ToggleResult{}, nil
		},
		unlikeFn: func(_ context.Context, _, _ string) (*models.ToggleResult, error) {
			return &models.ToggleResult{}, nil
		},
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	registerFn      func(context.Context, string, string, string) (*models.User, error)
	loginFn         func(context.Context, string, string) (string, *models.User, error)
	logoutFn        func(context.Context) error
	getFn           func(context.Context, string, string) (*models.User, error)
	updateFn        func(context.Context, string, models.UpdateUserInput) (*models.User, error)
	followFn        func(context.Context, string, string) (*models.ToggleResult, error)
	unfollowFn      func(context.Context, string, string) (*models.ToggleResult, error)
	listFollowersFn func(context.Context, string, pagination.Params) (*repository.UserPage, error)
	listFollowingFn func(context.Context, string, pagination.Params) (*repository.UserPage, error)
}

func (s *userRepoStub) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	return s.registerFn(ctx, username, email, password)
}
func (s *userRepoStub) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	return s.loginFn(ctx, email, password)
}
func (s *userRepoStub) Logout(ctx context.Context) error {
	return s.logoutFn(ctx)
}
func (s *userRepoStub) Get(ctx context.Context, id, viewerID string) (*models.User, error) {
	return s.getFn(ctx, id, viewerID)
}
func (s *userRepoStub) Update(ctx context.Context, id string, in models.UpdateUserInput) (*models.User, error) {
	return s.updateFn(ctx, id, in)
}
func (s *userRepoStub) Follow(ctx context.Context, followerID, followeeID string) (*models.ToggleResult, error) {
	return s.followFn(ctx, followerID, followeeID)
}
func (s *userRepoStub) Unfollow(ctx context.Context, followerID, followeeID string) (*models.ToggleResult, error) {
	return s.unfollowFn(ctx, followerID, followeeID)
}
func (s *userRepoStub) ListFollowers(ctx context.Context, userID string, page pagination.Params) (*repository.UserPage, error) {
	return s.listFollowersFn(ctx, userID, page)
}
func (s *userRepoStub) ListFollowing(ctx context.Context, userID string, page pagination.Params) (*repository.UserPage, error) {
	return s.listFollowingFn(ctx, userID, page)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		registerFn: func(_ context.Context, _, _, _ string) (*models.User, error) { return &models.User{}, nil },
		loginFn: func(_ context.Context, _, _ string) (string, *models.User, error) {
			return "token", &models.User{}, nil
		},
		logoutFn: func(_ context.Context) error { return nil },
		getFn:    func(_ context.Context, _, _ string) (*models.User, error) { return &models.User{}, nil },
		updateFn: func(_ context.Context, _ string, _ models.UpdateUserInput) (*models.User, error) {
			return &models.User{}, nil
		},
		followFn: func(_ context.Context, _, _ string) (*models.ToggleResult, error) {
			return &models.ToggleResult{}, nil
		},
		unfollowFn: func(_ context.Context, _, _ string) (*models.ToggleResult, error) {
			return &models.ToggleResult{}, nil
		},
		listFollowersFn: func(_ context.Context, _ string, _ pagination.Params) (*repository.UserPage, error) {
			return &repository.UserPage{}, nil
		},
		listFollowingFn: func(_ context.Context, _ string, _ pagination.Params) (*repository.UserPage, error) {
			return &repository.UserPage{}, nil
		},
	}
}

// adminRepoStub is a stub for repository.AdminRepository.
type adminRepoStub struct {
	listPendingPostsFn func(context.Context, pagination.Params) (*repository.PostPage, error)
	listPostsFn        func(context.Context, models.PostStatus, pagination.Params) (*repository.PostPage, error)
	reviewPostFn       func(context.Context, string, bool, string) (*repository.UpdatePostResult, error)
	deletePostFn       func(context.Context, string) error
	listUsersFn        func(context.Context, pagination.Params) (*repository.UserPage, error)
	updateUserRoleFn   func(context.Context, string, models.Role) (*models.User, error)
}

func (s *adminRepoStub) ListPendingPosts(ctx context.Context, page pagination.Params) (*repository.PostPage, error) {
	return s.listPendingPostsFn(ctx, page)
}
func (s *adminRepoStub) ListPosts(ctx context.Context, status models.PostStatus, page pagination.Params) (*repository.PostPage, error) {
	return s.listPostsFn(ctx, status, page)
}
func (s *adminRepoStub) ReviewPost(ctx context.Context, postID string, approve bool, feedback string) (*repository.UpdatePostResult, error) {
	return s.reviewPostFn(ctx, postID, approve, feedback)
}
func (s *adminRepoStub) DeletePost(ctx context.Context, postID string) error {
	return s.deletePostFn(ctx, postID)
}
func (s *adminRepoStub) ListUsers(ctx context.Context, page pagination.Params) (*repository.UserPage, error) {
	return s.listUsersFn(ctx, page)
}
func (s *adminRepoStub) UpdateUserRole(ctx context.Context, userID string, role models.Role) (*models.User, error) {
	return s.updateUserRoleFn(ctx, userID, role)
}

func noopAdminRepo() *adminRepoStub {
	return &adminRepoStub{
		listPendingPostsFn: func(_ context.Context, _ pagination.Params) (*repository.PostPage, error) {
			return emptyPostPage(), nil
		},
		listPostsFn: func(_ context.Context, _ models.PostStatus, _ pagination.Params) (*repository.PostPage, error) {
			return emptyPostPage(), nil
		},
		reviewPostFn: func(_ context.Context, _ string, _ bool, _ string) (*repository.UpdatePostResult, error) {
			return &repository.UpdatePostResult{}, nil
		},
		deletePostFn: func(_ context.Context, _ string) error { return nil },
		listUsersFn: func(_ context.Context, _ pagination.Params) (*repository.UserPage, error) {
			return &repository.UserPage{}, nil
		},
		updateUserRoleFn: func(_ context.Context, _ string, _ models.Role) (*models.User, error) {
			return &models.User{}, nil
		},
	}
}

// feedCacheStub is a stub for FeedCache.
type feedCacheStub struct {
	cachePostsFn  func(context.Context, []*models.Post) error
	cachedPostsFn func(context.Context) ([]*models.Post, error)
}

func (s *feedCacheStub) CachePosts(ctx context.Context, posts []*models.Post) error {
	return s.cachePostsFn(ctx, posts)
}
func (s *feedCacheStub) CachedPosts(ctx context.Context) ([]*models.Post, error) {
	return s.cachedPostsFn(ctx)
}

// tokenStoreStub is a stub for TokenStore.
type tokenStoreStub struct {
	saveTokenFn  func(context.Context, string) error
	clearTokenFn func(context.Context) error
}

func (s *tokenStoreStub) SaveToken(ctx context.Context, token string) error {
	return s.saveTokenFn(ctx, token)
}
func (s *tokenStoreStub) ClearToken(ctx context.Context) error {
	return s.clearTokenFn(ctx)
}

func alwaysRole(role models.Role) func(context.Context, string) (models.Role, error) {
	return func(_ context.Context, _ string) (models.Role, error) { return role, nil }
}

func alwaysAdmin(admin bool) func(context.Context, string) (bool, error) {
	return func(_ context.Context, _ string) (bool, error) { return admin, nil }
}
