// Package memory implements the repository interfaces over deterministic
// in-memory collections. It stands in for the remote backend during
// development and testing: same suspension-point shape (an artificial delay
// before every operation), strictly ordered mutations, no shared storage
// between aggregates outside this store.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"foodcourt/internal/models"

	"github.com/google/uuid"
)

// DefaultLatency models backend round-trip time so callers exercise the same
// await boundaries against the double as against the network client.
const DefaultLatency = 25 * time.Millisecond

// Store owns every collection of the in-memory backend. It is constructed
// explicitly and passed into each repository; there is no package-level
// state, so tests can instantiate isolated stores per case.
type Store struct {
	mu      sync.Mutex // mutations strictly ordered by lock acquisition
	latency time.Duration
	now     func() time.Time

	users     map[string]*models.User
	userOrder []string

	posts     map[string]*models.Post
	postOrder []string

	comments     map[string]*models.Comment
	commentOrder []string

	postLikes     map[string]map[string]struct{} // postID -> viewer set
	postFavorites map[string]map[string]struct{}
	commentLikes  map[string]map[string]struct{}
	follows       map[string]map[string]struct{} // followerID -> followee set
}

// Option configures a Store.
type Option func(*Store)

// WithLatency overrides the artificial per-operation delay. Tests pass 0.
func WithLatency(d time.Duration) Option {
	return func(s *Store) { s.latency = d }
}

// WithClock overrides the store's time source for deterministic timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore constructs an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		latency:       DefaultLatency,
		now:           time.Now,
		users:         make(map[string]*models.User),
		posts:         make(map[string]*models.Post),
		comments:      make(map[string]*models.Comment),
		postLikes:     make(map[string]map[string]struct{}),
		postFavorites: make(map[string]map[string]struct{}),
		commentLikes:  make(map[string]map[string]struct{}),
		follows:       make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// acquire sleeps the artificial latency and then takes the store lock.
// Operations are not cancellable mid-flight; the context only short-circuits
// callers that gave up before the call started.
func (s *Store) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return models.NewRemoteError(err)
	}
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
	s.mu.Lock()
	return nil
}

func (s *Store) release() {
	s.mu.Unlock()
}

func (s *Store) newID() string {
	return uuid.NewString()
}

// members returns the set under key in m, creating it when absent.
func members(m map[string]map[string]struct{}, key string) map[string]struct{} {
	set, ok := m[key]
	if !ok {
		set = make(map[string]struct{})
		m[key] = set
	}
	return set
}

func has(m map[string]map[string]struct{}, key, member string) bool {
	_, ok := m[key][member]
	return ok
}

// viewUser clones u with viewer-scoped fields resolved. Callers must hold
// the store semaphore.
func (s *Store) viewUser(u *models.User, viewerID string) *models.User {
	out := *u
	out.Password = ""
	out.IsFollowing = viewerID != "" && has(s.follows, viewerID, u.ID)
	return &out
}

// viewPost clones p with viewer-scoped flags and the author attached.
// Callers must hold the store semaphore.
func (s *Store) viewPost(p *models.Post, viewerID string) *models.Post {
	out := *p
	out.IsLiked = viewerID != "" && has(s.postLikes, p.ID, viewerID)
	out.IsFavorited = viewerID != "" && has(s.postFavorites, p.ID, viewerID)
	if author, ok := s.users[p.AuthorID]; ok {
		out.Author = s.viewUser(author, "")
	}
	return &out
}

// viewComment clones c with viewer-scoped flags resolved against the post's
// author. Replies are not attached here. Callers must hold the semaphore.
func (s *Store) viewComment(c *models.Comment, viewerID, postAuthorID string) *models.Comment {
	out := *c
	out.IsLiked = viewerID != "" && has(s.commentLikes, c.ID, viewerID)
	out.IsAuthor = c.AuthorID == postAuthorID
	out.Replies = nil
	if author, ok := s.users[c.AuthorID]; ok {
		out.Author = s.viewUser(author, "")
	}
	return &out
}

// postsNewestFirst returns all posts ordered by creation time descending,
// ties broken by insertion order, so pagination is stable.
func (s *Store) postsNewestFirst() []*models.Post {
	out := make([]*models.Post, 0, len(s.postOrder))
	for i := len(s.postOrder) - 1; i >= 0; i-- {
		if p, ok := s.posts[s.postOrder[i]]; ok {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
