package webhook

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/marketstage/backend/internal/config"
	"github.com/marketstage/backend/internal/domain"
)

func TestNotifier_Notify(t *testing.T) {
	t.Parallel()

	var received []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method: got %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type: got %q", ct)
		}
		received, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := New(config.WebhookConfig{URL: srv.URL, Timeout: 2 * time.Second}, slog.Default())
	if n == nil {
		t.Fatal("expected a notifier for a configured URL")
	}

	corr := "corr-1"
	ev := domain.Event{
		ID:        uuid.New(),
		TeamID:    uuid.New(),
		Type:      domain.EventOrderCreated,
		Payload:   json.RawMessage(`{"orderId":"O1","items":[]}`),
		Metadata:  domain.EventMetadata{CorrelationID: &corr},
		CreatedAt: time.Now().UTC(),
	}

	if err := n.Notify(context.Background(), ev); err != nil {
		t.Fatalf("Notify: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(received, &doc); err != nil {
		t.Fatalf("unmarshal delivered body: %v", err)
	}
	if doc["id"] != ev.ID.String() {
		t.Errorf("delivered id: got %v, want %v", doc["id"], ev.ID)
	}
	if doc["type"] != "order.created" {
		t.Errorf("delivered type: got %v", doc["type"])
	}
	if doc["metadata"] == nil {
		t.Error("expected metadata in delivery")
	}
}

func TestNotifier_Notify_Non2xxIsError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := New(config.WebhookConfig{URL: srv.URL, Timeout: 2 * time.Second}, slog.Default())

	err := n.Notify(context.Background(), domain.Event{ID: uuid.New()})
	if err == nil {
		t.Fatal("expected an error for a non-2xx response")
	}
}

func TestNew_NoURLDisablesSink(t *testing.T) {
	t.Parallel()

	if n := New(config.WebhookConfig{}, slog.Default()); n != nil {
		t.Error("expected nil notifier when no URL is configured")
	}
}
