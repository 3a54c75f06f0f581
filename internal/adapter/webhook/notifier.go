// Package webhook delivers created events to an external automation sink.
// Delivery is best-effort: the caller fires it after the event is already
// stored, and a failed POST is logged, never propagated.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/marketstage/backend/internal/config"
	"github.com/marketstage/backend/internal/domain"
)

// Notifier POSTs event JSON to a configured URL.
type Notifier struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Notifier. Returns nil when no URL is configured; callers
// treat a nil notifier as "no sink".
func New(cfg config.WebhookConfig, logger *slog.Logger) *Notifier {
	if cfg.URL == "" {
		return nil
	}
	return &Notifier{
		url:        cfg.URL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "webhook"),
	}
}

// eventDocument is the delivery wire format.
type eventDocument struct {
	ID          string                `json:"id"`
	TeamID      string                `json:"teamId"`
	Type        string                `json:"type"`
	Payload     json.RawMessage       `json:"payload"`
	Metadata    *domain.EventMetadata `json:"metadata,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
	ProcessedAt *time.Time            `json:"processedAt,omitempty"`
}

// Notify POSTs the event's JSON representation to the sink.
func (n *Notifier) Notify(ctx context.Context, ev domain.Event) error {
	doc := eventDocument{
		ID:          ev.ID.String(),
		TeamID:      ev.TeamID.String(),
		Type:        ev.Type.String(),
		Payload:     ev.Payload,
		CreatedAt:   ev.CreatedAt,
		ProcessedAt: ev.ProcessedAt,
	}
	if !ev.Metadata.IsZero() {
		meta := ev.Metadata
		doc.Metadata = &meta
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("webhook: marshal event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook: unexpected status %d", resp.StatusCode)
	}

	n.log.DebugContext(ctx, "event delivered",
		slog.String("event_id", ev.ID.String()),
		slog.Int("status", resp.StatusCode),
	)
	return nil
}
