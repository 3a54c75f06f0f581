package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/marketstage/backend/internal/service/inventory"
)

// teamInitializer defines the minimal interface needed by TeamHandler.
type teamInitializer interface {
	InitializeTeam(ctx context.Context, input inventory.InitializeTeamInput) error
}

// tokenIssuer mints the API token handed to a freshly registered team.
type tokenIssuer interface {
	GenerateTeamToken(teamID uuid.UUID) (string, error)
}

// TeamHandler serves team registration endpoints. Staff only.
type TeamHandler struct {
	svc    teamInitializer
	tokens tokenIssuer
	log    *slog.Logger
}

// NewTeamHandler creates a TeamHandler.
func NewTeamHandler(svc teamInitializer, tokens tokenIssuer, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{svc: svc, tokens: tokens, log: logger.With("handler", "teams")}
}

type initTeamRequest struct {
	TeamID string `json:"teamId"`
	Name   string `json:"name"`
}

type initTeamResponse struct {
	TeamID string `json:"teamId"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}

// Initialize handles POST /api/v1/teams.
// Registers the team, seeds one inventory row per catalog entry, and
// returns the team's API token. Idempotent: re-posting the same team
// mints a fresh token without duplicating rows.
func (h *TeamHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	var req initTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	teamID, ok := parseOptionalUUID(w, req.TeamID, "teamId")
	if !ok {
		return
	}
	if teamID == uuid.Nil {
		teamID = uuid.New()
	}

	if err := h.svc.InitializeTeam(r.Context(), inventory.InitializeTeamInput{
		TeamID: teamID,
		Name:   req.Name,
	}); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	token, err := h.tokens.GenerateTeamToken(teamID)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, initTeamResponse{
		TeamID: teamID.String(),
		Name:   req.Name,
		Token:  token,
	})
}
