package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event is an immutable fact about something that happened to one team.
//
// Events are append-only: after creation the only permitted state change
// is stamping ProcessedAt, and that exactly once (later calls are no-ops).
type Event struct {
	ID          uuid.UUID
	TeamID      uuid.UUID
	Type        EventType
	Payload     json.RawMessage
	Metadata    EventMetadata
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// EventMetadata carries optional replay/delay/ordering markers.
type EventMetadata struct {
	CorrelationID *string    `json:"correlationId,omitempty"`
	CausationID   *string    `json:"causationId,omitempty"`
	ReplayOf      *uuid.UUID `json:"replayOf,omitempty"`
	DelayedUntil  *time.Time `json:"delayedUntil,omitempty"`
	OutOfOrder    bool       `json:"outOfOrder,omitempty"`
}

// IsZero reports whether no metadata field is set.
func (m EventMetadata) IsZero() bool {
	return m.CorrelationID == nil && m.CausationID == nil &&
		m.ReplayOf == nil && m.DelayedUntil == nil && !m.OutOfOrder
}

// IsDue reports whether a delayed event has become actionable: its
// DelayedUntil is set and not after now, and it has not been processed.
// Events without DelayedUntil are never "due" in this sense; they are
// visible immediately through the ordinary query path.
func (e *Event) IsDue(now time.Time) bool {
	if e.Metadata.DelayedUntil == nil || e.ProcessedAt != nil {
		return false
	}
	return !e.Metadata.DelayedUntil.After(now)
}
