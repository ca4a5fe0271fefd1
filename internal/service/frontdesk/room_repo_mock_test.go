
package frontdesk

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

var _ roomRepo = &roomRepoMock{}

type roomRepoMock struct {
	GetFunc          func(ctx context.Context, tenantID uuid.UUID, roomID uuid.UUID) (domain.RoomRow, error)
	UpdateStatusFunc func(ctx context.Context, tenantID uuid.UUID, roomID uuid.UUID, status string) error

	calls struct {
		Get []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			RoomID   uuid.UUID
		}
		UpdateStatus []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			RoomID   uuid.UUID
			Status   string
		}
	}
	lockGet          sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

func (mock *roomRepoMock) Get(ctx context.Context, tenantID uuid.UUID, roomID uuid.UUID) (domain.RoomRow, error) {
	if mock.GetFunc == nil {
		panic("roomRepoMock.GetFunc: method is nil but roomRepo.Get was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		RoomID   uuid.UUID
	}{
		Ctx:      ctx,
		TenantID: tenantID,
		RoomID:   roomID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, tenantID, roomID)
}

func (mock *roomRepoMock) GetCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	RoomID   uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
		RoomID   uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *roomRepoMock) UpdateStatus(ctx context.Context, tenantID uuid.UUID, roomID uuid.UUID, status string) error {
	if mock.UpdateStatusFunc == nil {
		panic("roomRepoMock.UpdateStatusFunc: method is nil but roomRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		RoomID   uuid.UUID
		Status   string
	}{
		Ctx:      ctx,
		TenantID: tenantID,
		RoomID:   roomID,
		Status:   status,
	}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, tenantID, roomID, status)
}

func (mock *roomRepoMock) UpdateStatusCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	RoomID   uuid.UUID
	Status   string
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
		RoomID   uuid.UUID
		Status   string
	}
	mock.lockUpdateStatus.RLock()
	calls = mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
