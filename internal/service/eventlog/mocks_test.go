package eventlog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/marketstage/backend/internal/adapter/postgres/event"
	"github.com/marketstage/backend/internal/domain"
)

var (
	_ eventRepo = &eventRepoMock{}
	_ notifier  = &notifierMock{}
)

type eventRepoMock struct {
	CreateFunc        func(ctx context.Context, ev domain.Event) (domain.Event, bool, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (domain.Event, error)
	ListFunc          func(ctx context.Context, teamID uuid.UUID, filter event.Filter) ([]domain.Event, error)
	ListDueFunc       func(ctx context.Context, now time.Time) ([]domain.Event, error)
	MarkProcessedFunc func(ctx context.Context, id uuid.UUID, at time.Time) error

	calls struct {
		Create []struct {
			Event domain.Event
		}
		GetByID []struct {
			ID uuid.UUID
		}
		List []struct {
			TeamID uuid.UUID
			Filter event.Filter
		}
		ListDue []struct {
			Now time.Time
		}
		MarkProcessed []struct {
			ID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *eventRepoMock) Create(ctx context.Context, ev domain.Event) (domain.Event, bool, error) {
	if mock.CreateFunc == nil {
		panic("eventRepoMock.CreateFunc: method is nil but eventRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Event domain.Event
	}{ev})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, ev)
}

func (mock *eventRepoMock) CreateCalls() []struct {
	Event domain.Event
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *eventRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	if mock.GetByIDFunc == nil {
		panic("eventRepoMock.GetByIDFunc: method is nil but eventRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *eventRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *eventRepoMock) List(ctx context.Context, teamID uuid.UUID, filter event.Filter) ([]domain.Event, error) {
	if mock.ListFunc == nil {
		panic("eventRepoMock.ListFunc: method is nil but eventRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		TeamID uuid.UUID
		Filter event.Filter
	}{teamID, filter})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, teamID, filter)
}

func (mock *eventRepoMock) ListCalls() []struct {
	TeamID uuid.UUID
	Filter event.Filter
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *eventRepoMock) ListDue(ctx context.Context, now time.Time) ([]domain.Event, error) {
	if mock.ListDueFunc == nil {
		panic("eventRepoMock.ListDueFunc: method is nil but eventRepo.ListDue was just called")
	}
	mock.lock.Lock()
	mock.calls.ListDue = append(mock.calls.ListDue, struct{ Now time.Time }{now})
	mock.lock.Unlock()
	return mock.ListDueFunc(ctx, now)
}

func (mock *eventRepoMock) ListDueCalls() []struct{ Now time.Time } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListDue
}

func (mock *eventRepoMock) MarkProcessed(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.MarkProcessedFunc == nil {
		panic("eventRepoMock.MarkProcessedFunc: method is nil but eventRepo.MarkProcessed was just called")
	}
	mock.lock.Lock()
	mock.calls.MarkProcessed = append(mock.calls.MarkProcessed, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.MarkProcessedFunc(ctx, id, at)
}

func (mock *eventRepoMock) MarkProcessedCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.MarkProcessed
}

type notifierMock struct {
	NotifyFunc func(ctx context.Context, ev domain.Event) error

	calls struct {
		Notify []struct {
			Event domain.Event
		}
	}
	lock sync.RWMutex
}

func (mock *notifierMock) Notify(ctx context.Context, ev domain.Event) error {
	if mock.NotifyFunc == nil {
		panic("notifierMock.NotifyFunc: method is nil but notifier.Notify was just called")
	}
	mock.lock.Lock()
	mock.calls.Notify = append(mock.calls.Notify, struct {
		Event domain.Event
	}{ev})
	mock.lock.Unlock()
	return mock.NotifyFunc(ctx, ev)
}

func (mock *notifierMock) NotifyCalls() []struct {
	Event domain.Event
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Notify
}
