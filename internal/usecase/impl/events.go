package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "editorradar/internal/delivery/context"
	"editorradar/internal/domain/service"

	"github.com/google/uuid"
)

// publishLocationEvent stamps the event and publishes it. Failures are logged only;
// downstream consumers must never block a user-visible operation.
func publishLocationEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.LocationEvent, now time.Time) {
	if publisher == nil {
		return
	}

	event.EventID = uuid.NewString()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = now

	if err := publisher.PublishLocationEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish location event",
			slog.String("event_type", event.Type),
			slog.String("subject_id", event.SubjectID),
			slog.Any("error", err),
		)
	}
}
