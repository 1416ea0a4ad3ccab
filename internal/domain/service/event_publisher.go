package service

import (
	"context"
	"time"
)

// Location event types
const (
	EventLocationSettingsUpdated = "location.settings_updated"
	EventLocationConsentRecorded = "location.consent_recorded"
)

// LocationEvent announces a change to discovery data. It never carries coordinates.
type LocationEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	SubjectID  string    `json:"subject_id"`           // Editor ID or seeker ID
	OccurredAt time.Time `json:"occurred_at"`

	// Settings updates
	VisibilityEnabled *bool  `json:"visibility_enabled,omitempty"`
	VisibilityLevel   string `json:"visibility_level,omitempty"`
	City              string `json:"city,omitempty"`
	Country           string `json:"country,omitempty"`
	CountryCode       string `json:"country_code,omitempty"`
	Created           bool   `json:"created,omitempty"`

	// Consent
	ConsentGiven *bool `json:"consent_given,omitempty"`
}

// Attributes returns the message attributes used for routing and filtering.
func (e *LocationEvent) Attributes() map[string]string {
	attrs := map[string]string{
		"event_id":   e.EventID,
		"event_type": e.Type,
		"subject_id": e.SubjectID,
	}
	if e.RequestID != "" {
		attrs["request_id"] = e.RequestID
	}

	return attrs
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLocationEvent publishes a location event for downstream consumers
	PublishLocationEvent(ctx context.Context, event *LocationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
