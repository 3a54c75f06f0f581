package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/marketstage/backend/internal/domain"
	"github.com/marketstage/backend/internal/service/eventlog"
)

// eventLogService defines the minimal interface needed by EventHandler.
type eventLogService interface {
	CreateEvent(ctx context.Context, input eventlog.CreateEventInput) (domain.Event, bool, error)
	GetEvents(ctx context.Context, input eventlog.GetEventsInput) ([]domain.Event, error)
	GetEventByID(ctx context.Context, id uuid.UUID) (domain.Event, error)
	ReplayEvent(ctx context.Context, input eventlog.ReplayEventInput) (domain.Event, error)
	GetDueEvents(ctx context.Context) ([]domain.Event, error)
	MarkProcessed(ctx context.Context, id uuid.UUID) error
}

// EventHandler serves event log REST endpoints.
type EventHandler struct {
	svc eventLogService
	log *slog.Logger
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(svc eventLogService, logger *slog.Logger) *EventHandler {
	return &EventHandler{svc: svc, log: logger.With("handler", "events")}
}

type createEventRequest struct {
	ID       string               `json:"id"`
	TeamID   string               `json:"teamId"`
	Type     string               `json:"type"`
	Payload  json.RawMessage      `json:"payload"`
	Metadata domain.EventMetadata `json:"metadata"`
}

type replayEventRequest struct {
	DelayUntil *time.Time `json:"delayUntil"`
}

type eventResponse struct {
	ID          string                `json:"id"`
	TeamID      string                `json:"teamId"`
	Type        string                `json:"type"`
	Payload     json.RawMessage       `json:"payload"`
	Metadata    *domain.EventMetadata `json:"metadata,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
	ProcessedAt *time.Time            `json:"processedAt,omitempty"`
}

func toEventResponse(ev domain.Event) eventResponse {
	resp := eventResponse{
		ID:          ev.ID.String(),
		TeamID:      ev.TeamID.String(),
		Type:        ev.Type.String(),
		Payload:     ev.Payload,
		CreatedAt:   ev.CreatedAt,
		ProcessedAt: ev.ProcessedAt,
	}
	if !ev.Metadata.IsZero() {
		meta := ev.Metadata
		resp.Metadata = &meta
	}
	return resp
}

func toEventResponses(events []domain.Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, toEventResponse(ev))
	}
	return out
}

// Create handles POST /api/v1/events.
// Responds 201 for a new event and 200 when the id was already taken and
// the original event is returned unchanged.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, ok := parseOptionalUUID(w, req.ID, "id")
	if !ok {
		return
	}
	teamID, ok := parseOptionalUUID(w, req.TeamID, "teamId")
	if !ok {
		return
	}

	ev, created, err := h.svc.CreateEvent(r.Context(), eventlog.CreateEventInput{
		ID:       id,
		TeamID:   teamID,
		Type:     domain.EventType(req.Type),
		Payload:  req.Payload,
		Metadata: req.Metadata,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, toEventResponse(ev))
}

// List handles GET /api/v1/events?team_id=&type=&since=&limit=.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	teamID, ok := parseOptionalUUID(w, query.Get("team_id"), "team_id")
	if !ok {
		return
	}

	input := eventlog.GetEventsInput{TeamID: teamID}

	if v := query.Get("type"); v != "" {
		eventType := domain.EventType(v)
		input.Type = &eventType
	}
	if v := query.Get("since"); v != "" {
		since, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "since must be an RFC3339 timestamp")
			return
		}
		input.Since = &since
	}
	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		input.Limit = limit
	}

	events, err := h.svc.GetEvents(r.Context(), input)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEventResponses(events))
}

// Get handles GET /api/v1/events/{id}.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathUUID(w, r, "id")
	if !ok {
		return
	}

	ev, err := h.svc.GetEventByID(r.Context(), id)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(ev))
}

// Replay handles POST /api/v1/events/{id}/replay.
// The body is optional; {"delayUntil": ...} schedules the copy.
func (h *EventHandler) Replay(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req replayEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ev, err := h.svc.ReplayEvent(r.Context(), eventlog.ReplayEventInput{
		EventID:    id,
		DelayUntil: req.DelayUntil,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEventResponse(ev))
}

// Due handles GET /api/v1/events/due.
func (h *EventHandler) Due(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.GetDueEvents(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEventResponses(events))
}

// MarkProcessed handles POST /api/v1/events/{id}/processed.
func (h *EventHandler) MarkProcessed(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.MarkProcessed(r.Context(), id); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseOptionalUUID parses a UUID string that may be empty. An empty string
// yields uuid.Nil. Writes a 400 and returns false on a malformed value.
func parseOptionalUUID(w http.ResponseWriter, s, field string) (uuid.UUID, bool) {
	if s == "" {
		return uuid.Nil, true
	}
	id, err := uuid.Parse(s)
	if err != nil {
		writeError(w, http.StatusBadRequest, field+" must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

// parsePathUUID parses a required UUID path segment.
func parsePathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, name+" must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}
