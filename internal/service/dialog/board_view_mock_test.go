
package dialog

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/board"
)

var _ boardView = &boardViewMock{}

type boardViewMock struct {
	AfterMutationFunc func(ctx context.Context, tenantID uuid.UUID) error
	ApplyPendingFunc  func(tenantID uuid.UUID, action domain.ActionKind, rooms ...domain.Room)
	TenantRoomsFunc   func(ctx context.Context, tenantID uuid.UUID) ([]board.RoomState, error)

	calls struct {
		AfterMutation []struct {
			Ctx      context.Context
			TenantID uuid.UUID
		}
		ApplyPending []struct {
			TenantID uuid.UUID
			Action   domain.ActionKind
			Rooms    []domain.Room
		}
		TenantRooms []struct {
			Ctx      context.Context
			TenantID uuid.UUID
		}
	}
	lockAfterMutation sync.RWMutex
	lockApplyPending  sync.RWMutex
	lockTenantRooms   sync.RWMutex
}

func (mock *boardViewMock) AfterMutation(ctx context.Context, tenantID uuid.UUID) error {
	if mock.AfterMutationFunc == nil {
		panic("boardViewMock.AfterMutationFunc: method is nil but boardView.AfterMutation was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
	}{
		Ctx:      ctx,
		TenantID: tenantID,
	}
	mock.lockAfterMutation.Lock()
	mock.calls.AfterMutation = append(mock.calls.AfterMutation, callInfo)
	mock.lockAfterMutation.Unlock()
	return mock.AfterMutationFunc(ctx, tenantID)
}

func (mock *boardViewMock) AfterMutationCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
	}
	mock.lockAfterMutation.RLock()
	calls = mock.calls.AfterMutation
	mock.lockAfterMutation.RUnlock()
	return calls
}

func (mock *boardViewMock) ApplyPending(tenantID uuid.UUID, action domain.ActionKind, rooms ...domain.Room) {
	if mock.ApplyPendingFunc == nil {
		panic("boardViewMock.ApplyPendingFunc: method is nil but boardView.ApplyPending was just called")
	}
	callInfo := struct {
		TenantID uuid.UUID
		Action   domain.ActionKind
		Rooms    []domain.Room
	}{
		TenantID: tenantID,
		Action:   action,
		Rooms:    rooms,
	}
	mock.lockApplyPending.Lock()
	mock.calls.ApplyPending = append(mock.calls.ApplyPending, callInfo)
	mock.lockApplyPending.Unlock()
	mock.ApplyPendingFunc(tenantID, action, rooms...)
}

func (mock *boardViewMock) ApplyPendingCalls() []struct {
	TenantID uuid.UUID
	Action   domain.ActionKind
	Rooms    []domain.Room
} {
	var calls []struct {
		TenantID uuid.UUID
		Action   domain.ActionKind
		Rooms    []domain.Room
	}
	mock.lockApplyPending.RLock()
	calls = mock.calls.ApplyPending
	mock.lockApplyPending.RUnlock()
	return calls
}

func (mock *boardViewMock) TenantRooms(ctx context.Context, tenantID uuid.UUID) ([]board.RoomState, error) {
	if mock.TenantRoomsFunc == nil {
		panic("boardViewMock.TenantRoomsFunc: method is nil but boardView.TenantRooms was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
	}{
		Ctx:      ctx,
		TenantID: tenantID,
	}
	mock.lockTenantRooms.Lock()
	mock.calls.TenantRooms = append(mock.calls.TenantRooms, callInfo)
	mock.lockTenantRooms.Unlock()
	return mock.TenantRoomsFunc(ctx, tenantID)
}

func (mock *boardViewMock) TenantRoomsCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
	}
	mock.lockTenantRooms.RLock()
	calls = mock.calls.TenantRooms
	mock.lockTenantRooms.RUnlock()
	return calls
}
