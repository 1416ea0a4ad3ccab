package service

import (
	"context"

	"editorradar/internal/domain/entity"

	"github.com/google/uuid"
)

// QueryGuard limits how many distinct search centers a seeker may use in a window,
// which bounds trilateration from repeated distance readings.
type QueryGuard interface {
	// Allow records the center and reports whether the query may proceed.
	Allow(ctx context.Context, userID uuid.UUID, center entity.GeoPoint) (bool, error)
}
