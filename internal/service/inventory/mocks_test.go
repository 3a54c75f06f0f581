package inventory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/marketstage/backend/internal/domain"
)

var (
	_ inventoryRepo = &inventoryRepoMock{}
	_ auditRepo     = &auditRepoMock{}
	_ catalogRepo   = &catalogRepoMock{}
	_ teamRepo      = &teamRepoMock{}
	_ txManager     = &txManagerMock{}
)

type inventoryRepoMock struct {
	CreateIfAbsentFunc func(ctx context.Context, teamID uuid.UUID, sku string, stock int, at time.Time) (bool, error)
	UpdateGuardedFunc  func(ctx context.Context, teamID uuid.UUID, sku string, expectedVersion int64, stock, reserved int, at time.Time) error
	GetFunc            func(ctx context.Context, teamID uuid.UUID, sku string) (domain.InventoryRecord, error)
	ListFunc           func(ctx context.Context, teamID uuid.UUID) ([]domain.InventoryRecord, error)

	calls struct {
		CreateIfAbsent []struct {
			TeamID uuid.UUID
			SKU    string
			Stock  int
		}
		UpdateGuarded []struct {
			TeamID          uuid.UUID
			SKU             string
			ExpectedVersion int64
			Stock           int
			Reserved        int
		}
		Get []struct {
			TeamID uuid.UUID
			SKU    string
		}
		List []struct {
			TeamID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *inventoryRepoMock) CreateIfAbsent(ctx context.Context, teamID uuid.UUID, sku string, stock int, at time.Time) (bool, error) {
	if mock.CreateIfAbsentFunc == nil {
		panic("inventoryRepoMock.CreateIfAbsentFunc: method is nil but inventoryRepo.CreateIfAbsent was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateIfAbsent = append(mock.calls.CreateIfAbsent, struct {
		TeamID uuid.UUID
		SKU    string
		Stock  int
	}{teamID, sku, stock})
	mock.lock.Unlock()
	return mock.CreateIfAbsentFunc(ctx, teamID, sku, stock, at)
}

func (mock *inventoryRepoMock) CreateIfAbsentCalls() []struct {
	TeamID uuid.UUID
	SKU    string
	Stock  int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateIfAbsent
}

func (mock *inventoryRepoMock) UpdateGuarded(ctx context.Context, teamID uuid.UUID, sku string, expectedVersion int64, stock, reserved int, at time.Time) error {
	if mock.UpdateGuardedFunc == nil {
		panic("inventoryRepoMock.UpdateGuardedFunc: method is nil but inventoryRepo.UpdateGuarded was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateGuarded = append(mock.calls.UpdateGuarded, struct {
		TeamID          uuid.UUID
		SKU             string
		ExpectedVersion int64
		Stock           int
		Reserved        int
	}{teamID, sku, expectedVersion, stock, reserved})
	mock.lock.Unlock()
	return mock.UpdateGuardedFunc(ctx, teamID, sku, expectedVersion, stock, reserved, at)
}

func (mock *inventoryRepoMock) UpdateGuardedCalls() []struct {
	TeamID          uuid.UUID
	SKU             string
	ExpectedVersion int64
	Stock           int
	Reserved        int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateGuarded
}

func (mock *inventoryRepoMock) Get(ctx context.Context, teamID uuid.UUID, sku string) (domain.InventoryRecord, error) {
	if mock.GetFunc == nil {
		panic("inventoryRepoMock.GetFunc: method is nil but inventoryRepo.Get was just called")
	}
	mock.lock.Lock()
	mock.calls.Get = append(mock.calls.Get, struct {
		TeamID uuid.UUID
		SKU    string
	}{teamID, sku})
	mock.lock.Unlock()
	return mock.GetFunc(ctx, teamID, sku)
}

func (mock *inventoryRepoMock) GetCalls() []struct {
	TeamID uuid.UUID
	SKU    string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Get
}

func (mock *inventoryRepoMock) List(ctx context.Context, teamID uuid.UUID) ([]domain.InventoryRecord, error) {
	if mock.ListFunc == nil {
		panic("inventoryRepoMock.ListFunc: method is nil but inventoryRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{ TeamID uuid.UUID }{teamID})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, teamID)
}

func (mock *inventoryRepoMock) ListCalls() []struct{ TeamID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

type auditRepoMock struct {
	CreateFunc     func(ctx context.Context, entry domain.InventoryAuditEntry) error
	ListByItemFunc func(ctx context.Context, teamID uuid.UUID, sku string, limit int) ([]domain.InventoryAuditEntry, error)

	calls struct {
		Create []struct {
			Entry domain.InventoryAuditEntry
		}
		ListByItem []struct {
			TeamID uuid.UUID
			SKU    string
			Limit  int
		}
	}
	lock sync.RWMutex
}

func (mock *auditRepoMock) Create(ctx context.Context, entry domain.InventoryAuditEntry) error {
	if mock.CreateFunc == nil {
		panic("auditRepoMock.CreateFunc: method is nil but auditRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Entry domain.InventoryAuditEntry
	}{entry})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, entry)
}

func (mock *auditRepoMock) CreateCalls() []struct {
	Entry domain.InventoryAuditEntry
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *auditRepoMock) ListByItem(ctx context.Context, teamID uuid.UUID, sku string, limit int) ([]domain.InventoryAuditEntry, error) {
	if mock.ListByItemFunc == nil {
		panic("auditRepoMock.ListByItemFunc: method is nil but auditRepo.ListByItem was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByItem = append(mock.calls.ListByItem, struct {
		TeamID uuid.UUID
		SKU    string
		Limit  int
	}{teamID, sku, limit})
	mock.lock.Unlock()
	return mock.ListByItemFunc(ctx, teamID, sku, limit)
}

func (mock *auditRepoMock) ListByItemCalls() []struct {
	TeamID uuid.UUID
	SKU    string
	Limit  int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByItem
}

type catalogRepoMock struct {
	ListFunc func(ctx context.Context) ([]domain.CatalogEntry, error)

	calls struct {
		List []struct{}
	}
	lock sync.RWMutex
}

func (mock *catalogRepoMock) List(ctx context.Context) ([]domain.CatalogEntry, error) {
	if mock.ListFunc == nil {
		panic("catalogRepoMock.ListFunc: method is nil but catalogRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lock.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *catalogRepoMock) ListCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

type teamRepoMock struct {
	CreateIfAbsentFunc func(ctx context.Context, t domain.Team) error
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (domain.Team, error)

	calls struct {
		CreateIfAbsent []struct {
			Team domain.Team
		}
		GetByID []struct {
			ID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *teamRepoMock) CreateIfAbsent(ctx context.Context, t domain.Team) error {
	if mock.CreateIfAbsentFunc == nil {
		panic("teamRepoMock.CreateIfAbsentFunc: method is nil but teamRepo.CreateIfAbsent was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateIfAbsent = append(mock.calls.CreateIfAbsent, struct {
		Team domain.Team
	}{t})
	mock.lock.Unlock()
	return mock.CreateIfAbsentFunc(ctx, t)
}

func (mock *teamRepoMock) CreateIfAbsentCalls() []struct {
	Team domain.Team
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateIfAbsent
}

func (mock *teamRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Team, error) {
	if mock.GetByIDFunc == nil {
		panic("teamRepoMock.GetByIDFunc: method is nil but teamRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *teamRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lock.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lock.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RunInTx
}

// passthroughTx runs the transaction body directly.
func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}
