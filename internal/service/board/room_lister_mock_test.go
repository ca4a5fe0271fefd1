
package board

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

var _ roomLister = &roomListerMock{}

type roomListerMock struct {
	ListFunc func(ctx context.Context, tenantID uuid.UUID) ([]domain.RoomRow, error)

	calls struct {
		List []struct {
			Ctx      context.Context
			TenantID uuid.UUID
		}
	}
	lockList sync.RWMutex
}

func (mock *roomListerMock) List(ctx context.Context, tenantID uuid.UUID) ([]domain.RoomRow, error) {
	if mock.ListFunc == nil {
		panic("roomListerMock.ListFunc: method is nil but roomLister.List was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
	}{
		Ctx:      ctx,
		TenantID: tenantID,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, tenantID)
}

func (mock *roomListerMock) ListCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
