package cache

import (
	"context"
	"strconv"
	"time"

	"editorradar/internal/domain/entity"
	domainerrors "editorradar/internal/domain/errors"
	"editorradar/internal/domain/service"
	"editorradar/internal/errors"

	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"
	"github.com/redis/go-redis/v9"
)

const (
	queryGuardKeyPrefix       = "discovery:centers:"
	defaultMaxDistinctCenters = 20
	defaultGuardWindow        = time.Hour
	// Precision 5 cells are roughly 4.9 km x 4.9 km.
	defaultGeohashPrecision uint = 5
)

// redisQueryGuard bounds how many distinct search centers a seeker may use within a
// sliding window. Repeating a known center is always allowed and refreshes its score.
type redisQueryGuard struct {
	client      *redis.Client
	maxDistinct int64
	window      time.Duration
	precision   uint
	now         func() time.Time
}

// NewRedisQueryGuard creates a distinct-center guard backed by one sorted set per seeker.
func NewRedisQueryGuard(client *redis.Client, maxDistinct int, window time.Duration, precision uint) service.QueryGuard {
	if maxDistinct <= 0 {
		maxDistinct = defaultMaxDistinctCenters
	}
	if window <= 0 {
		window = defaultGuardWindow
	}
	if precision == 0 || precision > 12 {
		precision = defaultGeohashPrecision
	}

	return &redisQueryGuard{
		client:      client,
		maxDistinct: int64(maxDistinct),
		window:      window,
		precision:   precision,
		now:         time.Now,
	}
}

func (g *redisQueryGuard) Allow(ctx context.Context, userID uuid.UUID, center entity.GeoPoint) (bool, error) {
	key := queryGuardKeyPrefix + userID.String()
	cell := geohash.EncodeWithPrecision(center.Lat, center.Lng, g.precision)
	now := g.now()
	windowStart := now.Add(-g.window).UnixMilli()

	pipe := g.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(windowStart, 10))
	known := pipe.ZScore(ctx, key, cell)
	count := pipe.ZCard(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check query guard")
	}

	isKnown := known.Err() == nil
	if !isKnown && count.Val() >= g.maxDistinct {
		return false, nil
	}

	pipe = g.client.TxPipeline()
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixMilli()), Member: cell})
	pipe.Expire(ctx, key, g.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to record search center")
	}

	return true, nil
}

type noopQueryGuard struct{}

// NewNoopQueryGuard allows every query.
func NewNoopQueryGuard() service.QueryGuard {
	return noopQueryGuard{}
}

func (noopQueryGuard) Allow(context.Context, uuid.UUID, entity.GeoPoint) (bool, error) {
	return true, nil
}
