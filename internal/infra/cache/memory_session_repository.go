package cache

import (
	"context"
	"sync"
	"time"

	"editorradar/internal/domain/entity"
	"editorradar/internal/domain/repository"

	"github.com/google/uuid"
)

type memoryEntry struct {
	session   entity.DiscoverySession
	expiresAt time.Time
}

// memorySessionRepository keeps sessions in process. Suitable for a single instance.
type memorySessionRepository struct {
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[uuid.UUID]memoryEntry
}

// NewMemorySessionRepository creates an in-process session store with a sliding TTL.
func NewMemorySessionRepository(ttl time.Duration) repository.SessionRepository {
	return newMemorySessionRepository(ttl, time.Now)
}

func newMemorySessionRepository(ttl time.Duration, now func() time.Time) *memorySessionRepository {
	return &memorySessionRepository{
		ttl:      ttl,
		now:      now,
		sessions: make(map[uuid.UUID]memoryEntry),
	}
}

func (r *memorySessionRepository) Get(_ context.Context, userID uuid.UUID) (*entity.DiscoverySession, error) {
	r.mu.RLock()
	entry, ok := r.sessions[userID]
	r.mu.RUnlock()

	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	if r.expired(entry) {
		r.mu.Lock()
		delete(r.sessions, userID)
		r.mu.Unlock()

		return nil, repository.ErrSessionNotFound
	}

	return cloneSession(&entry.session), nil
}

func (r *memorySessionRepository) Save(_ context.Context, session *entity.DiscoverySession) error {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweep(now)
	entry := memoryEntry{session: *cloneSession(session)}
	if r.ttl > 0 {
		entry.expiresAt = now.Add(r.ttl)
	}
	r.sessions[session.UserID] = entry

	return nil
}

func (r *memorySessionRepository) Delete(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	delete(r.sessions, userID)
	r.mu.Unlock()

	return nil
}

func (r *memorySessionRepository) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && r.now().After(entry.expiresAt)
}

// sweep drops expired entries. Caller holds the write lock.
func (r *memorySessionRepository) sweep(now time.Time) {
	for id, entry := range r.sessions {
		if !entry.expiresAt.IsZero() && now.After(entry.expiresAt) {
			delete(r.sessions, id)
		}
	}
}

func cloneSession(session *entity.DiscoverySession) *entity.DiscoverySession {
	cloned := *session
	if session.Center != nil {
		center := *session.Center
		cloned.Center = &center
	}

	return &cloned
}
