package chaos

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/marketstage/backend/internal/domain"
	"github.com/marketstage/backend/internal/service/eventlog"
)

var _ eventLog = &eventLogMock{}

type eventLogMock struct {
	CreateEventFunc  func(ctx context.Context, input eventlog.CreateEventInput) (domain.Event, bool, error)
	GetEventByIDFunc func(ctx context.Context, id uuid.UUID) (domain.Event, error)

	calls struct {
		CreateEvent []struct {
			Input eventlog.CreateEventInput
		}
		GetEventByID []struct {
			ID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *eventLogMock) CreateEvent(ctx context.Context, input eventlog.CreateEventInput) (domain.Event, bool, error) {
	if mock.CreateEventFunc == nil {
		panic("eventLogMock.CreateEventFunc: method is nil but eventLog.CreateEvent was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateEvent = append(mock.calls.CreateEvent, struct {
		Input eventlog.CreateEventInput
	}{input})
	mock.lock.Unlock()
	return mock.CreateEventFunc(ctx, input)
}

func (mock *eventLogMock) CreateEventCalls() []struct {
	Input eventlog.CreateEventInput
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateEvent
}

func (mock *eventLogMock) GetEventByID(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	if mock.GetEventByIDFunc == nil {
		panic("eventLogMock.GetEventByIDFunc: method is nil but eventLog.GetEventByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetEventByID = append(mock.calls.GetEventByID, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.GetEventByIDFunc(ctx, id)
}

func (mock *eventLogMock) GetEventByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetEventByID
}
