// Package navigation carries the frozen registration snapshot from the form
// view to the success view. Each snapshot is kept under a random token, can be
// taken exactly once and expires after a TTL. It is not a queryable store.
package navigation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/goliatone/go-regform/pkg/registration"
)

// DefaultTTL bounds how long an untaken snapshot is kept.
const DefaultTTL = 5 * time.Minute

// ErrEmptyToken is returned by Take when no token was supplied.
var ErrEmptyToken = errors.New("navigation: empty token")

// Handoff is the navigation collaborator contract used by the HTTP router.
type Handoff interface {
	Put(ctx context.Context, fields registration.Fields) (string, error)
	Take(ctx context.Context, token string) (registration.Fields, bool)
}

// Option configures a Store.
type Option func(*Store)

// WithTTL overrides DefaultTTL. Non-positive values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithTokenFunc replaces the uuid token generator.
func WithTokenFunc(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newToken = fn
		}
	}
}

// Store is an in-memory Handoff backed by go-cache.
type Store struct {
	mu       sync.Mutex
	items    *gocache.Cache
	ttl      time.Duration
	newToken func() string
}

var _ Handoff = (*Store)(nil)

// New constructs a Store.
func New(opts ...Option) *Store {
	s := &Store{
		ttl:      DefaultTTL,
		newToken: uuid.NewString,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}
	s.items = gocache.New(s.ttl, 2*s.ttl)
	return s
}

// Put stores a copy of fields and returns the token that retrieves it.
func (s *Store) Put(ctx context.Context, fields registration.Fields) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	token := s.newToken()
	s.items.Set(token, fields, s.ttl)
	return token, nil
}

// Take returns the snapshot stored under token and removes it. Missing,
// expired and already taken tokens report false.
func (s *Store) Take(ctx context.Context, token string) (registration.Fields, bool) {
	if token == "" || ctx.Err() != nil {
		return registration.Fields{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.items.Get(token)
	if !ok {
		return registration.Fields{}, false
	}
	s.items.Delete(token)

	fields, ok := raw.(registration.Fields)
	return fields, ok
}

// Len reports how many snapshots are waiting to be taken.
func (s *Store) Len() int {
	return s.items.ItemCount()
}
