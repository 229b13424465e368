// Package bootstrap wires the configured repository backend together with the
// session store so callers get one fully initialized runtime.
package bootstrap

import (
	"time"

	"foodcourt/internal/config"
	"foodcourt/internal/repository"
	"foodcourt/internal/repository/memory"
	"foodcourt/internal/repository/remote"
	"foodcourt/internal/session"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedBuiltIns bool
}

// Runtime holds the wired dependencies for the application. All four
// repositories share the same backend; mixing mock and network repositories
// is not supported.
type Runtime struct {
	Config   *config.Config
	Posts    repository.PostRepository
	Comments repository.CommentRepository
	Users    repository.UserRepository
	Admin    repository.AdminRepository
	Sessions *session.Store

	// Store is the in-memory backend, non-nil only when USE_MOCK_API is
	// enabled. The dev server uses it to mint tokens against known users.
	Store *memory.Store
}

// InitRuntime connects Redis and builds the repository set selected by
// cfg.UseMockAPI, optionally seeding the in-memory backend.
func InitRuntime(cfg *config.Config, opts Options) (*Runtime, error) {
	// May be nil if Redis is unreachable; the session store degrades to a
	// no-op rather than failing startup.
	sessions := session.New(session.Connect(cfg.RedisURL))

	rt := &Runtime{Config: cfg, Sessions: sessions}

	if cfg.UseMockAPI {
		store := memory.NewStore(
			memory.WithLatency(time.Duration(cfg.MockLatencyMS) * time.Millisecond),
		)
		if opts.SeedBuiltIns {
			memory.Seed(store, cfg.SeedValue)
		}
		rt.Store = store
		rt.Posts = memory.NewPostRepository(store)
		rt.Comments = memory.NewCommentRepository(store)
		rt.Users = memory.NewUserRepository(store)
		rt.Admin = memory.NewAdminRepository(store)
		return rt, nil
	}

	client := remote.NewClient(cfg.APIBaseURL, remote.WithTokenSource(sessions))
	rt.Posts = remote.NewPostRepository(client)
	rt.Comments = remote.NewCommentRepository(client)
	rt.Users = remote.NewUserRepository(client)
	rt.Admin = remote.NewAdminRepository(client)
	return rt, nil
}
