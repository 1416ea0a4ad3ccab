package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"editorradar/internal/domain/service"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

const (
	defaultNatsSubject = "editorradar"
	natsMaxReconnects  = 10
	natsReconnectWait  = 2 * time.Second
	natsConnectTimeout = 5 * time.Second
	natsFlushTimeout   = 2 * time.Second
)

// natsPublisher implements EventPublisher on core NATS. Events go to "<prefix>.<event type>".
type natsPublisher struct {
	conn    *nats.Conn
	subject string
	logger  *slog.Logger
}

// NewNATSPublisher connects to the NATS server with reconnect handling
func NewNATSPublisher(url, subjectPrefix string, logger *slog.Logger) (service.EventPublisher, error) {
	if subjectPrefix == "" {
		subjectPrefix = defaultNatsSubject
	}

	conn, err := nats.Connect(url,
		nats.Name("editorradar"),
		nats.MaxReconnects(natsMaxReconnects),
		nats.ReconnectWait(natsReconnectWait),
		nats.Timeout(natsConnectTimeout),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("[NATS] Disconnected", slog.Any("error", err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("[NATS] Reconnected", slog.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to NATS")
	}

	return &natsPublisher{conn: conn, subject: subjectPrefix, logger: logger}, nil
}

// PublishLocationEvent publishes the event with its attributes as message headers
func (p *natsPublisher) PublishLocationEvent(ctx context.Context, event *service.LocationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := nats.NewMsg(p.subject + "." + event.Type)
	msg.Data = data
	for k, v := range event.Attributes() {
		msg.Header.Set(k, v)
	}

	if err := p.conn.PublishMsg(msg); err != nil {
		return errors.Wrap(err, "failed to publish NATS message")
	}

	flushCtx, cancel := context.WithTimeout(ctx, natsFlushTimeout)
	defer cancel()
	if err := p.conn.FlushWithContext(flushCtx); err != nil {
		return errors.Wrap(err, "failed to flush NATS connection")
	}

	p.logger.Debug("[NATS] Event published",
		slog.String("subject", msg.Subject),
		slog.String("event_id", event.EventID),
	)

	return nil
}

// Close drains pending messages and closes the connection
func (p *natsPublisher) Close() error {
	if p.conn == nil {
		return nil
	}

	return errors.WithStack(p.conn.Drain())
}
