package eventlog

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/marketstage/backend/internal/domain"
)

// CreateEventInput holds the parameters for appending an event.
// ID may be caller-supplied for idempotent retries; a nil ID gets a fresh
// one assigned.
type CreateEventInput struct {
	ID       uuid.UUID
	TeamID   uuid.UUID
	Type     domain.EventType
	Payload  json.RawMessage
	Metadata domain.EventMetadata
}

// Validate checks all fields and collects all errors. Payload shape
// validation for known event types happens here too.
func (i *CreateEventInput) Validate() error {
	var errs []domain.FieldError

	if i.Type == "" {
		errs = append(errs, domain.FieldError{Field: "type", Message: "required"})
	}
	if i.Metadata.DelayedUntil != nil && i.Metadata.DelayedUntil.IsZero() {
		errs = append(errs, domain.FieldError{Field: "metadata.delayedUntil", Message: "must be a valid timestamp"})
	}

	errs = append(errs, payloadFieldErrors(i.Type, i.Payload)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GetEventsInput holds the query filters for listing a team's events.
type GetEventsInput struct {
	TeamID uuid.UUID
	Type   *domain.EventType
	Since  *time.Time
	Limit  int
}

// Validate checks all fields and collects all errors.
func (i *GetEventsInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if i.Type != nil && *i.Type == "" {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must not be empty when set"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReplayEventInput holds the parameters for replaying an existing event.
type ReplayEventInput struct {
	EventID    uuid.UUID
	DelayUntil *time.Time
}

// Validate checks all fields and collects all errors.
func (i *ReplayEventInput) Validate() error {
	var errs []domain.FieldError

	if i.EventID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "event_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
