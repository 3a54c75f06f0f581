package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/marketstage/backend/internal/domain"
	"github.com/marketstage/backend/internal/service/chaos"
)

// chaosService defines the minimal interface needed by ChaosHandler.
type chaosService interface {
	SendDuplicate(ctx context.Context, eventID uuid.UUID) (domain.Event, error)
	SendOutOfOrder(ctx context.Context, input chaos.SendOutOfOrderInput) ([]domain.Event, error)
	SendDelayed(ctx context.Context, input chaos.SendDelayedInput) ([]domain.Event, error)
}

// ChaosHandler serves chaos injection endpoints. Staff only; the service
// enforces that, the handler just shapes requests and responses.
type ChaosHandler struct {
	svc chaosService
	log *slog.Logger
}

// NewChaosHandler creates a ChaosHandler.
func NewChaosHandler(svc chaosService, logger *slog.Logger) *ChaosHandler {
	return &ChaosHandler{svc: svc, log: logger.With("handler", "chaos")}
}

type eventDraftRequest struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type duplicateRequest struct {
	EventID string `json:"eventId"`
}

type outOfOrderRequest struct {
	TeamID string              `json:"teamId"`
	Events []eventDraftRequest `json:"events"`
}

type delayedRequest struct {
	TeamID  string              `json:"teamId"`
	Events  []eventDraftRequest `json:"events"`
	DelayMs int                 `json:"delayMs"`
}

func toEventDrafts(w http.ResponseWriter, reqs []eventDraftRequest) ([]chaos.EventDraft, bool) {
	drafts := make([]chaos.EventDraft, 0, len(reqs))
	for _, r := range reqs {
		id, ok := parseOptionalUUID(w, r.ID, "events[].id")
		if !ok {
			return nil, false
		}
		drafts = append(drafts, chaos.EventDraft{
			ID:      id,
			Type:    domain.EventType(r.Type),
			Payload: r.Payload,
		})
	}
	return drafts, true
}

// Duplicate handles POST /api/v1/chaos/duplicate.
// Returns the existing event verbatim; nothing new is created.
func (h *ChaosHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	var req duplicateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "eventId must be a UUID")
		return
	}

	ev, err := h.svc.SendDuplicate(r.Context(), eventID)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(ev))
}

// OutOfOrder handles POST /api/v1/chaos/out-of-order.
// The response lists the events in actual creation order.
func (h *ChaosHandler) OutOfOrder(w http.ResponseWriter, r *http.Request) {
	var req outOfOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	teamID, ok := parseOptionalUUID(w, req.TeamID, "teamId")
	if !ok {
		return
	}
	drafts, ok := toEventDrafts(w, req.Events)
	if !ok {
		return
	}

	events, err := h.svc.SendOutOfOrder(r.Context(), chaos.SendOutOfOrderInput{
		TeamID: teamID,
		Events: drafts,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEventResponses(events))
}

// Delayed handles POST /api/v1/chaos/delayed.
func (h *ChaosHandler) Delayed(w http.ResponseWriter, r *http.Request) {
	var req delayedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	teamID, ok := parseOptionalUUID(w, req.TeamID, "teamId")
	if !ok {
		return
	}
	drafts, ok := toEventDrafts(w, req.Events)
	if !ok {
		return
	}

	events, err := h.svc.SendDelayed(r.Context(), chaos.SendDelayedInput{
		TeamID:  teamID,
		Events:  drafts,
		DelayMs: req.DelayMs,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEventResponses(events))
}
