package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SessionState is a step of the seeker's discovery flow.
type SessionState string

const (
	SessionNoConsent        SessionState = "no_consent"
	SessionConsentRequested SessionState = "consent_requested"
	SessionConsentGranted   SessionState = "consent_granted"
	SessionConsentSkipped   SessionState = "consent_skipped"
	SessionSearching        SessionState = "searching"
	SessionResultsReady     SessionState = "results_ready"
)

// ErrInvalidSessionTransition is returned when an event is not allowed in the current state.
var ErrInvalidSessionTransition = errors.New("invalid discovery session transition")

var sessionTransitions = map[SessionState][]SessionState{
	SessionNoConsent:        {SessionConsentRequested, SessionSearching},
	SessionConsentRequested: {SessionConsentRequested, SessionConsentGranted, SessionConsentSkipped},
	SessionConsentGranted:   {SessionConsentRequested, SessionSearching},
	SessionConsentSkipped:   {SessionConsentRequested, SessionSearching},
	SessionSearching:        {SessionConsentRequested, SessionSearching, SessionResultsReady},
	SessionResultsReady:     {SessionConsentRequested, SessionSearching},
}

// DiscoverySession is the server-side state of one seeker's discovery flow.
type DiscoverySession struct {
	UserID uuid.UUID    `json:"user_id"`
	State  SessionState `json:"state"`
	// Center is the search center chosen at consent time: the device location or the fallback.
	Center        *GeoPoint `json:"center,omitempty"`
	UsingFallback bool      `json:"using_fallback"`
	// CenterCountryCode caches the reverse-geocoded country of Center.
	CenterCountryCode string `json:"center_country_code,omitempty"`
	// Salt feeds the display position seed and is never returned to clients.
	Salt      string    `json:"-"`
	StartedAt time.Time `json:"started_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDiscoverySession starts a session in the no_consent state.
func NewDiscoverySession(userID uuid.UUID, salt string, now time.Time) *DiscoverySession {
	return &DiscoverySession{
		UserID:    userID,
		State:     SessionNoConsent,
		Salt:      salt,
		StartedAt: now,
		UpdatedAt: now,
	}
}

// CanTransition reports whether moving to next is allowed.
func (s *DiscoverySession) CanTransition(next SessionState) bool {
	for _, allowed := range sessionTransitions[s.State] {
		if allowed == next {
			return true
		}
	}

	return false
}

func (s *DiscoverySession) transition(next SessionState, now time.Time) error {
	if !s.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidSessionTransition, s.State, next)
	}
	s.State = next
	s.UpdatedAt = now

	return nil
}

// RequestConsent asks the seeker for location access.
func (s *DiscoverySession) RequestConsent(now time.Time) error {
	return s.transition(SessionConsentRequested, now)
}

// ResumeWithConsent skips the prompt for a seeker who granted consent earlier.
func (s *DiscoverySession) ResumeWithConsent(now time.Time) error {
	return s.transition(SessionSearching, now)
}

// Grant records that the seeker shared their location.
func (s *DiscoverySession) Grant(center GeoPoint, now time.Time) error {
	if err := s.transition(SessionConsentGranted, now); err != nil {
		return err
	}
	s.Center = &center
	s.UsingFallback = false
	s.CenterCountryCode = ""

	return nil
}

// Skip records that the seeker declined; searches use the fallback center.
func (s *DiscoverySession) Skip(fallback GeoPoint, now time.Time) error {
	if err := s.transition(SessionConsentSkipped, now); err != nil {
		return err
	}
	s.Center = &fallback
	s.UsingFallback = true
	s.CenterCountryCode = ""

	return nil
}

// BeginSearch moves the session into searching.
func (s *DiscoverySession) BeginSearch(now time.Time) error {
	return s.transition(SessionSearching, now)
}

// CompleteSearch marks results as delivered.
func (s *DiscoverySession) CompleteSearch(now time.Time) error {
	return s.transition(SessionResultsReady, now)
}

// AwaitingConsent is true while the seeker has not answered the consent prompt.
func (s *DiscoverySession) AwaitingConsent() bool {
	return s.State == SessionNoConsent || s.State == SessionConsentRequested
}
