package event_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marketstage/backend/internal/adapter/postgres/event"
	"github.com/marketstage/backend/internal/adapter/postgres/testhelper"
	"github.com/marketstage/backend/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*event.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return event.New(pool), pool
}

// buildEvent creates a domain.Event for testing.
func buildEvent(teamID uuid.UUID, evType domain.EventType, payload string) domain.Event {
	return domain.Event{
		ID:        uuid.New(),
		TeamID:    teamID,
		Type:      evType,
		Payload:   []byte(payload),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	team := testhelper.SeedTeam(t, pool)

	input := buildEvent(team.ID, domain.EventOrderCancelled, `{"orderId":"O-1"}`)

	got, created, err := repo.Create(ctx, input)
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if !created {
		t.Error("created should be true for a fresh id")
	}
	if got.ID != input.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, input.ID)
	}
	if got.Type != domain.EventOrderCancelled {
		t.Errorf("Type mismatch: got %s", got.Type)
	}
	if got.ProcessedAt != nil {
		t.Error("ProcessedAt should be nil on creation")
	}
}

func TestRepo_Create_SameIDTwice(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	team := testhelper.SeedTeam(t, pool)

	input := buildEvent(team.ID, domain.EventOrderCreated, `{"orderId":"O-1","items":[{"sku":"IT-001","qty":2}]}`)

	first, created, err := repo.Create(ctx, input)
	if err != nil {
		t.Fatalf("Create first: %v", err)
	}
	if !created {
		t.Fatal("first call should create")
	}

	// Retry with the same id and a different payload: the stored event wins.
	retry := input
	retry.Payload = []byte(`{"orderId":"O-2","items":[]}`)

	second, created, err := repo.Create(ctx, retry)
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}
	if created {
		t.Error("second call must not create")
	}
	if second.ID != first.ID {
		t.Errorf("ID mismatch: got %s, want %s", second.ID, first.ID)
	}
	if string(second.Payload) != string(first.Payload) {
		t.Errorf("payload changed on retry: got %s, want %s", second.Payload, first.Payload)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("CreatedAt changed on retry: got %s, want %s", second.CreatedAt, first.CreatedAt)
	}

	// Exactly one row stored.
	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM events WHERE id = $1`, input.ID).Scan(&count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("stored rows: got %d, want 1", count)
	}
}

func TestRepo_Create_MetadataRoundTrip(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	team := testhelper.SeedTeam(t, pool)

	source := uuid.New()
	corr := "corr-42"
	delayed := time.Now().UTC().Add(time.Hour).Truncate(time.Microsecond)

	input := buildEvent(team.ID, domain.EventDelayed, `{}`)
	input.Metadata = domain.EventMetadata{
		CorrelationID: &corr,
		ReplayOf:      &source,
		DelayedUntil:  &delayed,
		OutOfOrder:    true,
	}

	got, _, err := repo.Create(ctx, input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if got.Metadata.CorrelationID == nil || *got.Metadata.CorrelationID != corr {
		t.Errorf("CorrelationID: got %v, want %q", got.Metadata.CorrelationID, corr)
	}
	if got.Metadata.ReplayOf == nil || *got.Metadata.ReplayOf != source {
		t.Errorf("ReplayOf: got %v, want %s", got.Metadata.ReplayOf, source)
	}
	if got.Metadata.DelayedUntil == nil || !got.Metadata.DelayedUntil.Equal(delayed) {
		t.Errorf("DelayedUntil: got %v, want %s", got.Metadata.DelayedUntil, delayed)
	}
	if !got.Metadata.OutOfOrder {
		t.Error("OutOfOrder marker lost")
	}
}

func TestRepo_Create_UnknownTeam(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	input := buildEvent(uuid.New(), domain.EventOrderPaid, `{}`)

	_, _, err := repo.Create(ctx, input)
	assertIsDomainError(t, err, domain.ErrNotFound) // FK violation -> ErrNotFound
}

// ---------------------------------------------------------------------------
// GetByID tests
// ---------------------------------------------------------------------------

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assertIsDomainError(t, err, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// List tests
// ---------------------------------------------------------------------------

func TestRepo_List_OrderAndFilters(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	team := testhelper.SeedTeam(t, pool)

	base := time.Now().UTC().Truncate(time.Microsecond)
	types := []domain.EventType{domain.EventOrderCreated, domain.EventOrderPaid, domain.EventOrderCreated}
	for i, evType := range types {
		ev := buildEvent(team.ID, evType, `{"orderId":"O-1","items":[]}`)
		ev.CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
		if _, _, err := repo.Create(ctx, ev); err != nil {
			t.Fatalf("Create[%d]: %v", i, err)
		}
	}

	// All events, DESC order.
	events, err := repo.List(ctx, team.ID, event.Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events count: got %d, want 3", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].CreatedAt.After(events[i-1].CreatedAt) {
			t.Errorf("not in DESC order at %d", i)
		}
	}

	// Type filter.
	paid := domain.EventOrderPaid
	events, err = repo.List(ctx, team.ID, event.Filter{Type: &paid})
	if err != nil {
		t.Fatalf("List by type: %v", err)
	}
	if len(events) != 1 || events[0].Type != domain.EventOrderPaid {
		t.Errorf("type filter: got %d events", len(events))
	}

	// Since is exclusive: events strictly after base.
	events, err = repo.List(ctx, team.ID, event.Filter{Since: &base})
	if err != nil {
		t.Fatalf("List since: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("since filter: got %d events, want 2", len(events))
	}

	// Limit.
	events, err = repo.List(ctx, team.ID, event.Filter{Limit: 1})
	if err != nil {
		t.Fatalf("List limit: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("limit: got %d events, want 1", len(events))
	}
}

func TestRepo_List_TeamIsolation(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	team1 := testhelper.SeedTeam(t, pool)
	team2 := testhelper.SeedTeam(t, pool)
	testhelper.SeedEvent(t, pool, team1.ID, domain.EventOrderCancelled, `{"orderId":"O-1"}`)

	events, err := repo.List(ctx, team2.ID, event.Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("team2 should see no events, got %d", len(events))
	}
}

// ---------------------------------------------------------------------------
// Due polling tests
// ---------------------------------------------------------------------------

func TestRepo_ListDue(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	team := testhelper.SeedTeam(t, pool)
	now := time.Now().UTC().Truncate(time.Microsecond)

	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	due := buildEvent(team.ID, domain.EventDelayed, `{}`)
	due.Metadata.DelayedUntil = &past
	if _, _, err := repo.Create(ctx, due); err != nil {
		t.Fatalf("Create due: %v", err)
	}

	notYet := buildEvent(team.ID, domain.EventDelayed, `{}`)
	notYet.Metadata.DelayedUntil = &future
	if _, _, err := repo.Create(ctx, notYet); err != nil {
		t.Fatalf("Create notYet: %v", err)
	}

	undelayed := buildEvent(team.ID, domain.EventOrderPaid, `{"orderId":"O-1"}`)
	if _, _, err := repo.Create(ctx, undelayed); err != nil {
		t.Fatalf("Create undelayed: %v", err)
	}

	got, err := repo.ListDue(ctx, now)
	if err != nil {
		t.Fatalf("ListDue: %v", err)
	}

	if !containsID(got, due.ID) {
		t.Error("due event missing from ListDue")
	}
	if containsID(got, notYet.ID) {
		t.Error("future-delayed event must not be due")
	}
	if containsID(got, undelayed.ID) {
		t.Error("event without delay must not be due")
	}

	// Once processed, the event drops out of the due set.
	if err := repo.MarkProcessed(ctx, due.ID, now); err != nil {
		t.Fatalf("MarkProcessed: %v", err)
	}
	got, err = repo.ListDue(ctx, now)
	if err != nil {
		t.Fatalf("ListDue after MarkProcessed: %v", err)
	}
	if containsID(got, due.ID) {
		t.Error("processed event must not be due")
	}
}

// ---------------------------------------------------------------------------
// MarkProcessed tests
// ---------------------------------------------------------------------------

func TestRepo_MarkProcessed_Idempotent(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	team := testhelper.SeedTeam(t, pool)

	ev := testhelper.SeedEvent(t, pool, team.ID, domain.EventOrderPaid, `{"orderId":"O-1"}`)

	first := time.Now().UTC().Truncate(time.Microsecond)
	if err := repo.MarkProcessed(ctx, ev.ID, first); err != nil {
		t.Fatalf("MarkProcessed first: %v", err)
	}

	got, err := repo.GetByID(ctx, ev.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ProcessedAt == nil || !got.ProcessedAt.Equal(first) {
		t.Fatalf("ProcessedAt: got %v, want %s", got.ProcessedAt, first)
	}

	// Second call keeps the original stamp.
	if err := repo.MarkProcessed(ctx, ev.ID, first.Add(time.Hour)); err != nil {
		t.Fatalf("MarkProcessed second: %v", err)
	}
	got, err = repo.GetByID(ctx, ev.ID)
	if err != nil {
		t.Fatalf("GetByID after second: %v", err)
	}
	if !got.ProcessedAt.Equal(first) {
		t.Errorf("ProcessedAt changed on second call: got %v, want %s", got.ProcessedAt, first)
	}
}

func TestRepo_MarkProcessed_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	err := repo.MarkProcessed(context.Background(), uuid.New(), time.Now().UTC())
	assertIsDomainError(t, err, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

func containsID(events []domain.Event, id uuid.UUID) bool {
	for _, ev := range events {
		if ev.ID == id {
			return true
		}
	}
	return false
}

func assertIsDomainError(t *testing.T, err error, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error wrapping %v, got nil", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("expected error wrapping %v, got: %v", target, err)
	}
}
