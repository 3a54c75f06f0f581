package chaos

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/marketstage/backend/internal/config"
	"github.com/marketstage/backend/internal/domain"
)

// EventDraft is one event to inject. ID may be pre-assigned by the caller
// for idempotent retries.
type EventDraft struct {
	ID      uuid.UUID
	Type    domain.EventType
	Payload json.RawMessage
}

// SendOutOfOrderInput holds the parameters for shuffled event creation.
type SendOutOfOrderInput struct {
	TeamID uuid.UUID
	Events []EventDraft
}

// Validate checks the batch against the configured bounds.
func (i *SendOutOfOrderInput) Validate(cfg config.ChaosConfig) error {
	return validateBatch(i.TeamID, i.Events, cfg)
}

// SendDelayedInput holds the parameters for delayed event creation.
type SendDelayedInput struct {
	TeamID  uuid.UUID
	Events  []EventDraft
	DelayMs int
}

// Validate checks the batch and the delay against the configured bounds.
func (i *SendDelayedInput) Validate(cfg config.ChaosConfig) error {
	if err := validateBatch(i.TeamID, i.Events, cfg); err != nil {
		return err
	}

	var errs []domain.FieldError
	if i.DelayMs <= 0 {
		errs = append(errs, domain.FieldError{Field: "delay_ms", Message: "must be positive"})
	}
	if delay := time.Duration(i.DelayMs) * time.Millisecond; delay > cfg.MaxDelay {
		errs = append(errs, domain.FieldError{
			Field:   "delay_ms",
			Message: fmt.Sprintf("max %d", cfg.MaxDelay.Milliseconds()),
		})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateBatch(teamID uuid.UUID, events []EventDraft, cfg config.ChaosConfig) error {
	var errs []domain.FieldError

	if teamID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "team_id", Message: "required"})
	}
	if len(events) == 0 {
		errs = append(errs, domain.FieldError{Field: "events", Message: "required (at least 1)"})
	} else if len(events) > cfg.MaxBatchSize {
		errs = append(errs, domain.FieldError{
			Field:   "events",
			Message: fmt.Sprintf("too many (max %d)", cfg.MaxBatchSize),
		})
	}
	for idx, draft := range events {
		if draft.Type == "" {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("events[%d].type", idx),
				Message: "required",
			})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
