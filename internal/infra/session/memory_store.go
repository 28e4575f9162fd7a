// Package session keeps per-customer delivery sessions.
package session

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// memoryStore keeps sessions in process. Sessions expire after ttl of inactivity.
type memoryStore struct {
	mu    sync.Mutex
	cache *cache.Cache
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryStore creates an in-process store that purges expired sessions every 10 minutes.
func NewMemoryStore(ttl time.Duration) repository.SessionStore {
	return &memoryStore{
		cache: cache.New(ttl, 10*time.Minute),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *memoryStore) Get(_ context.Context, userID uuid.UUID) (*entity.DeliverySession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(userID), nil
}

func (s *memoryStore) Update(_ context.Context, userID uuid.UUID, fn func(*entity.DeliverySession) error) (*entity.DeliverySession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.load(userID)
	if err := fn(session); err != nil {
		return nil, err
	}
	session.UserID = userID
	session.UpdatedAt = s.now()

	s.cache.Set(userID.String(), session.Clone(), s.ttl)

	return session, nil
}

func (s *memoryStore) Delete(_ context.Context, userID uuid.UUID) error {
	s.cache.Delete(userID.String())

	return nil
}

// load returns a private copy so callers never mutate the stored value. Caller holds mu.
func (s *memoryStore) load(userID uuid.UUID) *entity.DeliverySession {
	if x, found := s.cache.Get(userID.String()); found {
		return x.(*entity.DeliverySession).Clone()
	}

	return entity.NewDeliverySession(userID)
}
