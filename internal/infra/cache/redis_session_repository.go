package cache

import (
	"context"
	"encoding/json"
	"time"

	"editorradar/internal/domain/entity"
	domainerrors "editorradar/internal/domain/errors"
	"editorradar/internal/domain/repository"
	"editorradar/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "discovery:session:"

// storedSession carries the salt, which the entity hides from JSON responses.
type storedSession struct {
	UserID        uuid.UUID           `json:"user_id"`
	State         entity.SessionState `json:"state"`
	Center        *entity.GeoPoint    `json:"center,omitempty"`
	UsingFallback bool                `json:"using_fallback"`
	Salt          string              `json:"salt"`
	StartedAt     time.Time           `json:"started_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

type redisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionRepository stores sessions as JSON with a sliding TTL refreshed on every save.
func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) repository.SessionRepository {
	return &redisSessionRepository{client: client, ttl: ttl}
}

func sessionKey(userID uuid.UUID) string {
	return sessionKeyPrefix + userID.String()
}

func (r *redisSessionRepository) Get(ctx context.Context, userID uuid.UUID) (*entity.DiscoverySession, error) {
	raw, err := r.client.Get(ctx, sessionKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load discovery session")
	}

	var stored storedSession
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, errors.Wrap(err, "failed to decode discovery session")
	}

	return &entity.DiscoverySession{
		UserID:        stored.UserID,
		State:         stored.State,
		Center:        stored.Center,
		UsingFallback: stored.UsingFallback,
		Salt:          stored.Salt,
		StartedAt:     stored.StartedAt,
		UpdatedAt:     stored.UpdatedAt,
	}, nil
}

func (r *redisSessionRepository) Save(ctx context.Context, session *entity.DiscoverySession) error {
	raw, err := json.Marshal(storedSession{
		UserID:        session.UserID,
		State:         session.State,
		Center:        session.Center,
		UsingFallback: session.UsingFallback,
		Salt:          session.Salt,
		StartedAt:     session.StartedAt,
		UpdatedAt:     session.UpdatedAt,
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode discovery session")
	}

	if err := r.client.Set(ctx, sessionKey(session.UserID), raw, r.ttl).Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save discovery session")
	}

	return nil
}

func (r *redisSessionRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := r.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete discovery session")
	}

	return nil
}
