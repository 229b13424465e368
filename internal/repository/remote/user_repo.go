package remote

import (
	"context"

	"foodcourt/internal/models"
	"foodcourt/internal/pagination"
	"foodcourt/internal/repository"
)

// userRepository implements repository.UserRepository against the HTTP API.
type userRepository struct {
	client *Client
}

// NewUserRepository creates the network-backed user repository.
func NewUserRepository(client *Client) repository.UserRepository {
	return &userRepository{client: client}
}

type credentials struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (r *userRepository) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	var out models.User
	body := credentials{Username: username, Email: email, Password: password}
	if err := r.client.post(ctx, "/api/auth/register", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *userRepository) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	var out loginResponse
	if err := r.client.post(ctx, "/api/auth/login", credentials{Email: email, Password: password}, &out); err != nil {
		return "", nil, err
	}
	return out.Token, out.User, nil
}

// Logout tears the session down best-effort: the backend call may fail, the
// caller still gets success so local state can be cleared.
func (r *userRepository) Logout(ctx context.Context) error {
	if err := r.client.post(ctx, "/api/auth/logout", nil, nil); err != nil {
		r.client.log.Warn("logout call failed, reporting success anyway", "error", err)
	}
	return nil
}

func (r *userRepository) Get(ctx context.Context, id, _ string) (*models.User, error) {
	var out models.User
	if err := r.client.get(ctx, "/api/users/"+pathID(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *userRepository) Update(ctx context.Context, id string, in models.UpdateUserInput) (*models.User, error) {
	var out models.User
	if err := r.client.put(ctx, "/api/users/"+pathID(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *userRepository) Follow(ctx context.Context, _, followeeID string) (*models.ToggleResult, error) {
	var out models.ToggleResult
	if err := r.client.post(ctx, "/api/users/"+pathID(followeeID)+"/follow", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *userRepository) Unfollow(ctx context.Context, _, followeeID string) (*models.ToggleResult, error) {
	var out models.ToggleResult
	if err := r.client.delete(ctx, "/api/users/"+pathID(followeeID)+"/follow", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *userRepository) ListFollowers(ctx context.Context, userID string, page pagination.Params) (*repository.UserPage, error) {
	var out repository.UserPage
	if err := r.client.get(ctx, "/api/users/"+pathID(userID)+"/followers", pageQuery(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *userRepository) ListFollowing(ctx context.Context, userID string, page pagination.Params) (*repository.UserPage, error) {
	var out repository.UserPage
	if err := r.client.get(ctx, "/api/users/"+pathID(userID)+"/following", pageQuery(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
