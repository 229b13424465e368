package memory

import (
	"context"
	"strings"

	"foodcourt/internal/models"
	"foodcourt/internal/pagination"
	"foodcourt/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// userRepository implements repository.UserRepository over a Store.
type userRepository struct {
	store *Store
}

// NewUserRepository creates the in-memory user repository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if err := r.store.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.store.release()

	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || password == "" {
		return nil, models.NewValidationError("username, email and password are required")
	}
	for _, u := range r.store.users {
		if strings.EqualFold(u.Email, email) {
			return nil, models.NewValidationError("email is already registered")
		}
		if u.Username == username {
			return nil, models.NewValidationError("username is already taken")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	now := r.store.now()
	user := &models.User{
		ID:        r.store.newID(),
		Username:  username,
		Email:     email,
		Password:  string(hash),
		Role:      models.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.store.users[user.ID] = user
	r.store.userOrder = append(r.store.userOrder, user.ID)

	return r.store.viewUser(user, ""), nil
}

func (r *userRepository) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	if err := r.store.acquire(ctx); err != nil {
		return "", nil, err
	}
	defer r.store.release()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range r.store.users {
		if !strings.EqualFold(u.Email, email) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
			break
		}
		// The token is an opaque session handle; the caller persists it in
		// the session store.
		return r.store.newID(), r.store.viewUser(u, ""), nil
	}
	return "", nil, models.NewValidationError("invalid email or password")
}

// Logout is best-effort: the token may already be gone, the caller still
// gets success.
func (r *userRepository) Logout(ctx context.Context) error {
	return nil
}

func (r *userRepository) Get(ctx context.Context, id, viewerID string) (*models.User, error) {
	if err := r.store.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.store.release()

	u, ok := r.store.users[id]
	if !ok {
		return nil, models.NewNotFoundError("User", id)
	}
	return r.store.viewUser(u, viewerID), nil
}

func (r *userRepository) Update(ctx context.Context, id string, in models.UpdateUserInput) (*models.User, error) {
	if err := r.store.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.store.release()

	u, ok := r.store.users[id]
	if !ok {
		return nil, models.NewNotFoundError("User", id)
	}

	if in.Username != nil {
		name := strings.TrimSpace(*in.Username)
		if name == "" {
			return nil, models.NewValidationError("username must not be empty")
		}
		for _, other := range r.store.users {
			if other.ID != id && other.Username == name {
				return nil, models.NewValidationError("username is already taken")
			}
		}
		u.Username = name
	}
	if in.Avatar != nil {
		u.Avatar = *in.Avatar
	}
	if in.Hometown != nil {
		u.Hometown = *in.Hometown
	}
	if in.Bio != nil {
		u.Bio = *in.Bio
	}
	u.UpdatedAt = r.store.now()

	return r.store.viewUser(u, ""), nil
}

func (r *userRepository) Follow(ctx context.Context, followerID, followeeID string) (*models.ToggleResult, error) {
	return r.toggleFollow(ctx, followerID, followeeID, true)
}

func (r *userRepository) Unfollow(ctx context.Context, followerID, followeeID string) (*models.ToggleResult, error) {
	return r.toggleFollow(ctx, followerID, followeeID, false)
}

// toggleFollow moves the edge and both counters in one critical section so
// follower_count and following_count never diverge from the edge set.
func (r *userRepository) toggleFollow(ctx context.Context, followerID, followeeID string, engage bool) (*models.ToggleResult, error) {
	if err := r.store.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.store.release()

	if followerID == followeeID {
		return nil, models.NewValidationError("cannot follow yourself")
	}
	follower, ok := r.store.users[followerID]
	if !ok {
		return nil, models.NewNotFoundError("User", followerID)
	}
	followee, ok := r.store.users[followeeID]
	if !ok {
		return nil, models.NewNotFoundError("User", followeeID)
	}

	current := has(r.store.follows, followerID, followeeID)
	next, delta := models.ResolveToggle(current, engage)
	if next {
		members(r.store.follows, followerID)[followeeID] = struct{}{}
	} else {
		delete(r.store.follows[followerID], followeeID)
	}
	follower.FollowingCount = models.ClampCount(follower.FollowingCount + delta)
	followee.FollowerCount = models.ClampCount(followee.FollowerCount + delta)

	return &models.ToggleResult{Active: next, Count: followee.FollowerCount}, nil
}

// ListFollowers returns the users following userID, in registration order.
func (r *userRepository) ListFollowers(ctx context.Context, userID string, page pagination.Params) (*repository.UserPage, error) {
	return r.listEdges(ctx, userID, page, func(candidateID string) bool {
		return has(r.store.follows, candidateID, userID)
	})
}

// ListFollowing returns the users userID follows, in registration order.
func (r *userRepository) ListFollowing(ctx context.Context, userID string, page pagination.Params) (*repository.UserPage, error) {
	return r.listEdges(ctx, userID, page, func(candidateID string) bool {
		return has(r.store.follows, userID, candidateID)
	})
}

func (r *userRepository) listEdges(ctx context.Context, userID string, page pagination.Params, include func(candidateID string) bool) (*repository.UserPage, error) {
	page = pagination.Normalize(page.Page, page.Limit)
	if err := r.store.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.store.release()

	if _, ok := r.store.users[userID]; !ok {
		return nil, models.NewNotFoundError("User", userID)
	}

	var all []*models.User
	for _, candidateID := range r.store.userOrder {
		if candidateID == userID || !include(candidateID) {
			continue
		}
		if u, ok := r.store.users[candidateID]; ok {
			all = append(all, u)
		}
	}

	items := pagination.SlicePage(all, page)
	out := make([]*models.User, len(items))
	for i, u := range items {
		out[i] = r.store.viewUser(u, userID)
	}
	return &repository.UserPage{
		Items:      out,
		Pagination: pagination.NewEnvelope(page, len(all)),
	}, nil
}
