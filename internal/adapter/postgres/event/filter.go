package event

import (
	"time"

	"github.com/marketstage/backend/internal/domain"
)

// Filter defines parameters for querying a team's events.
type Filter struct {
	// Type restricts results to one event type. nil means no type filter.
	Type *domain.EventType

	// Since is exclusive: only events with created_at strictly greater
	// are returned. nil means no lower bound.
	Since *time.Time

	// Limit caps the result size. Zero or negative means the default.
	// Queries are always bounded; "unbounded" is not representable.
	Limit int
}

const (
	defaultLimit = 50
	maxLimit     = 200
)

// normalize applies defaults and clamps values.
func (f *Filter) normalize() {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
}
