package cache

import (
	"context"
	"testing"
	"time"

	"editorradar/internal/domain/entity"
	"editorradar/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func sampleSession() *entity.DiscoverySession {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	session := entity.NewDiscoverySession(uuid.New(), "per-session-salt", now)
	_ = session.RequestConsent(now)
	_ = session.Grant(entity.GeoPoint{Lat: 19.076, Lng: 72.877}, now)

	return session
}

func TestRedisSessionRepository_RoundTripKeepsSalt(t *testing.T) {
	mr, client := newTestRedis(t)
	repo := NewRedisSessionRepository(client, 30*time.Minute)
	ctx := context.Background()

	session := sampleSession()
	require.NoError(t, repo.Save(ctx, session))

	got, err := repo.Get(ctx, session.UserID)
	require.NoError(t, err)
	assert.Equal(t, session, got)
	assert.Equal(t, "per-session-salt", got.Salt)
	assert.Equal(t, 30*time.Minute, mr.TTL(sessionKey(session.UserID)))

	mr.FastForward(31 * time.Minute)
	_, err = repo.Get(ctx, session.UserID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestRedisSessionRepository_Delete(t *testing.T) {
	_, client := newTestRedis(t)
	repo := NewRedisSessionRepository(client, time.Minute)
	ctx := context.Background()

	session := sampleSession()
	require.NoError(t, repo.Save(ctx, session))
	require.NoError(t, repo.Delete(ctx, session.UserID))

	_, err := repo.Get(ctx, session.UserID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestRedisSessionRepository_StoreDown(t *testing.T) {
	mr, client := newTestRedis(t)
	repo := NewRedisSessionRepository(client, time.Minute)
	mr.Close()

	_, err := repo.Get(context.Background(), uuid.New())
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestMemorySessionRepository(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := now
	repo := newMemorySessionRepository(10*time.Minute, func() time.Time { return clock })
	ctx := context.Background()

	session := sampleSession()
	require.NoError(t, repo.Save(ctx, session))

	got, err := repo.Get(ctx, session.UserID)
	require.NoError(t, err)
	assert.Equal(t, session, got)

	// Mutating the returned copy leaves the stored session untouched.
	got.Center.Lat = 0
	again, err := repo.Get(ctx, session.UserID)
	require.NoError(t, err)
	assert.InDelta(t, 19.076, again.Center.Lat, 1e-9)

	clock = now.Add(11 * time.Minute)
	_, err = repo.Get(ctx, session.UserID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	_, err = repo.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestRedisQueryGuard(t *testing.T) {
	_, client := newTestRedis(t)
	guard := NewRedisQueryGuard(client, 2, time.Hour, 5).(*redisQueryGuard)

	clock := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	guard.now = func() time.Time { return clock }

	ctx := context.Background()
	userID := uuid.New()
	mumbai := entity.GeoPoint{Lat: 19.076, Lng: 72.877}
	pune := entity.GeoPoint{Lat: 18.520, Lng: 73.856}
	delhi := entity.GeoPoint{Lat: 28.613, Lng: 77.209}

	allowed, err := guard.Allow(ctx, userID, mumbai)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = guard.Allow(ctx, userID, pune)
	require.NoError(t, err)
	assert.True(t, allowed)

	// A third distinct cell exceeds the limit.
	allowed, err = guard.Allow(ctx, userID, delhi)
	require.NoError(t, err)
	assert.False(t, allowed)

	// Re-using a known cell stays allowed.
	allowed, err = guard.Allow(ctx, userID, entity.GeoPoint{Lat: 19.0761, Lng: 72.8771})
	require.NoError(t, err)
	assert.True(t, allowed)

	// Other seekers have their own budget.
	allowed, err = guard.Allow(ctx, uuid.New(), delhi)
	require.NoError(t, err)
	assert.True(t, allowed)

	// Once the window passes, old cells are forgotten.
	clock = clock.Add(2 * time.Hour)
	allowed, err = guard.Allow(ctx, userID, delhi)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestNoopQueryGuard(t *testing.T) {
	t.Parallel()

	allowed, err := NewNoopQueryGuard().Allow(context.Background(), uuid.New(), entity.GeoPoint{})
	require.NoError(t, err)
	assert.True(t, allowed)
}
