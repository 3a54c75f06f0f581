package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	teamIDKey    ctxKey = "team_id"
	staffKey     ctxKey = "staff"
	requestIDKey ctxKey = "request_id"
)

// WithTeamID stores the resolved team ID in the context.
func WithTeamID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, teamIDKey, id)
}

// TeamIDFromCtx extracts the team ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
// Staff callers carry no team ID.
func TeamIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(teamIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithStaff marks the context as belonging to a staff caller.
func WithStaff(ctx context.Context) context.Context {
	return context.WithValue(ctx, staffKey, true)
}

// IsStaff reports whether the caller was resolved as staff.
func IsStaff(ctx context.Context) bool {
	staff, _ := ctx.Value(staffKey).(bool)
	return staff
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
