package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/marketstage/backend/internal/domain"
	"github.com/marketstage/backend/internal/service/inventory"
)

// inventoryService defines the minimal interface needed by InventoryHandler.
type inventoryService interface {
	Restock(ctx context.Context, input inventory.RestockInput) (domain.InventoryRecord, error)
	Reserve(ctx context.Context, input inventory.ReserveInput) (bool, error)
	Release(ctx context.Context, input inventory.ReleaseInput) (bool, error)
	Adjust(ctx context.Context, input inventory.AdjustInput) (domain.InventoryRecord, error)
	GetInventory(ctx context.Context, teamID uuid.UUID) ([]domain.InventoryRecord, error)
	GetInventoryItem(ctx context.Context, teamID uuid.UUID, sku string) (domain.InventoryRecord, error)
	GetItemHistory(ctx context.Context, input inventory.GetItemHistoryInput) ([]domain.InventoryAuditEntry, error)
}

// InventoryHandler serves inventory ledger REST endpoints.
type InventoryHandler struct {
	svc inventoryService
	log *slog.Logger
}

// NewInventoryHandler creates an InventoryHandler.
func NewInventoryHandler(svc inventoryService, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{svc: svc, log: logger.With("handler", "inventory")}
}

type restockRequest struct {
	TeamID   string `json:"teamId"`
	Quantity int    `json:"quantity"`
	By       string `json:"by"`
}

type reservationRequest struct {
	TeamID   string `json:"teamId"`
	Quantity int    `json:"quantity"`
	OrderID  string `json:"orderId"`
	By       string `json:"by"`
}

type adjustRequest struct {
	TeamID string `json:"teamId"`
	Delta  int    `json:"delta"`
	Reason string `json:"reason"`
}

type inventoryResponse struct {
	TeamID    string    `json:"teamId"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name,omitempty"`
	Stock     int       `json:"stock"`
	Reserved  int       `json:"reserved"`
	Available int       `json:"available"`
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type auditEntryResponse struct {
	ID            string    `json:"id"`
	TeamID        string    `json:"teamId"`
	SKU           string    `json:"sku"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	PreviousStock int       `json:"previousStock"`
	NewStock      int       `json:"newStock"`
	By            string    `json:"by"`
	Reason        *string   `json:"reason,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toInventoryResponse(rec domain.InventoryRecord) inventoryResponse {
	return inventoryResponse{
		TeamID:    rec.TeamID.String(),
		SKU:       rec.SKU,
		Name:      rec.Name,
		Stock:     rec.Stock,
		Reserved:  rec.Reserved,
		Available: rec.Available(),
		Version:   rec.Version,
		UpdatedAt: rec.UpdatedAt,
	}
}

func toAuditEntryResponse(e domain.InventoryAuditEntry) auditEntryResponse {
	return auditEntryResponse{
		ID:            e.ID.String(),
		TeamID:        e.TeamID.String(),
		SKU:           e.SKU,
		Type:          e.Type.String(),
		Quantity:      e.Quantity,
		PreviousStock: e.PreviousStock,
		NewStock:      e.NewStock,
		By:            e.By.String(),
		Reason:        e.Reason,
		CreatedAt:     e.CreatedAt,
	}
}

// actorOrDefault maps the wire "by" field onto an Actor, defaulting to
// system for callers that do not say who they are.
func actorOrDefault(by string) domain.Actor {
	if by == "" {
		return domain.ActorSystem
	}
	return domain.Actor(by)
}

// List handles GET /api/v1/inventory?team_id=.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	teamID, ok := parseOptionalUUID(w, r.URL.Query().Get("team_id"), "team_id")
	if !ok {
		return
	}

	records, err := h.svc.GetInventory(r.Context(), teamID)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	out := make([]inventoryResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toInventoryResponse(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/v1/inventory/{sku}?team_id=.
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	teamID, ok := parseOptionalUUID(w, r.URL.Query().Get("team_id"), "team_id")
	if !ok {
		return
	}

	rec, err := h.svc.GetInventoryItem(r.Context(), teamID, r.PathValue("sku"))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toInventoryResponse(rec))
}

// History handles GET /api/v1/inventory/{sku}/history?team_id=&limit=.
func (h *InventoryHandler) History(w http.ResponseWriter, r *http.Request) {
	teamID, ok := parseOptionalUUID(w, r.URL.Query().Get("team_id"), "team_id")
	if !ok {
		return
	}

	input := inventory.GetItemHistoryInput{
		TeamID: teamID,
		SKU:    r.PathValue("sku"),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		input.Limit = limit
	}

	entries, err := h.svc.GetItemHistory(r.Context(), input)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	out := make([]auditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toAuditEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

// Restock handles POST /api/v1/inventory/{sku}/restock.
func (h *InventoryHandler) Restock(w http.ResponseWriter, r *http.Request) {
	var req restockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	teamID, ok := parseOptionalUUID(w, req.TeamID, "teamId")
	if !ok {
		return
	}

	rec, err := h.svc.Restock(r.Context(), inventory.RestockInput{
		TeamID:   teamID,
		SKU:      r.PathValue("sku"),
		Quantity: req.Quantity,
		By:       actorOrDefault(req.By),
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toInventoryResponse(rec))
}

// Reserve handles POST /api/v1/inventory/{sku}/reserve.
// Insufficient stock is a normal negative outcome: 200 with reserved=false.
func (h *InventoryHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	var req reservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	teamID, ok := parseOptionalUUID(w, req.TeamID, "teamId")
	if !ok {
		return
	}

	reserved, err := h.svc.Reserve(r.Context(), inventory.ReserveInput{
		TeamID:   teamID,
		SKU:      r.PathValue("sku"),
		Quantity: req.Quantity,
		OrderID:  req.OrderID,
		By:       actorOrDefault(req.By),
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"reserved": reserved})
}

// Release handles POST /api/v1/inventory/{sku}/release.
// A missing record responds 200 with released=false.
func (h *InventoryHandler) Release(w http.ResponseWriter, r *http.Request) {
	var req reservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	teamID, ok := parseOptionalUUID(w, req.TeamID, "teamId")
	if !ok {
		return
	}

	released, err := h.svc.Release(r.Context(), inventory.ReleaseInput{
		TeamID:   teamID,
		SKU:      r.PathValue("sku"),
		Quantity: req.Quantity,
		OrderID:  req.OrderID,
		By:       actorOrDefault(req.By),
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"released": released})
}

// Adjust handles POST /api/v1/inventory/{sku}/adjust. Staff only.
func (h *InventoryHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req adjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	teamID, ok := parseOptionalUUID(w, req.TeamID, "teamId")
	if !ok {
		return
	}

	rec, err := h.svc.Adjust(r.Context(), inventory.AdjustInput{
		TeamID: teamID,
		SKU:    r.PathValue("sku"),
		Delta:  req.Delta,
		Reason: req.Reason,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toInventoryResponse(rec))
}
