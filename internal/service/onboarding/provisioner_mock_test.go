
package onboarding

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

var _ provisioner = &provisionerMock{}

type provisionerMock struct {
	AddMemberFunc       func(ctx context.Context, tenantID uuid.UUID, userID uuid.UUID, role domain.UserRole) error
	CreateRoomTypesFunc func(ctx context.Context, types []domain.RoomType) error
	CreateRoomsFunc     func(ctx context.Context, rooms []domain.RoomSeed) error
	CreateTenantFunc    func(ctx context.Context, t domain.Tenant) error

	calls struct {
		AddMember []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			UserID   uuid.UUID
			Role     domain.UserRole
		}
		CreateRoomTypes []struct {
			Ctx   context.Context
			Types []domain.RoomType
		}
		CreateRooms []struct {
			Ctx   context.Context
			Rooms []domain.RoomSeed
		}
		CreateTenant []struct {
			Ctx context.Context
			T   domain.Tenant
		}
	}
	lockAddMember       sync.RWMutex
	lockCreateRoomTypes sync.RWMutex
	lockCreateRooms     sync.RWMutex
	lockCreateTenant    sync.RWMutex
}

func (mock *provisionerMock) AddMember(ctx context.Context, tenantID uuid.UUID, userID uuid.UUID, role domain.UserRole) error {
	if mock.AddMemberFunc == nil {
		panic("provisionerMock.AddMemberFunc: method is nil but provisioner.AddMember was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		UserID   uuid.UUID
		Role     domain.UserRole
	}{
		Ctx:      ctx,
		TenantID: tenantID,
		UserID:   userID,
		Role:     role,
	}
	mock.lockAddMember.Lock()
	mock.calls.AddMember = append(mock.calls.AddMember, callInfo)
	mock.lockAddMember.Unlock()
	return mock.AddMemberFunc(ctx, tenantID, userID, role)
}

func (mock *provisionerMock) AddMemberCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	UserID   uuid.UUID
	Role     domain.UserRole
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
		UserID   uuid.UUID
		Role     domain.UserRole
	}
	mock.lockAddMember.RLock()
	calls = mock.calls.AddMember
	mock.lockAddMember.RUnlock()
	return calls
}

func (mock *provisionerMock) CreateRoomTypes(ctx context.Context, types []domain.RoomType) error {
	if mock.CreateRoomTypesFunc == nil {
		panic("provisionerMock.CreateRoomTypesFunc: method is nil but provisioner.CreateRoomTypes was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Types []domain.RoomType
	}{
		Ctx:   ctx,
		Types: types,
	}
	mock.lockCreateRoomTypes.Lock()
	mock.calls.CreateRoomTypes = append(mock.calls.CreateRoomTypes, callInfo)
	mock.lockCreateRoomTypes.Unlock()
	return mock.CreateRoomTypesFunc(ctx, types)
}

func (mock *provisionerMock) CreateRoomTypesCalls() []struct {
	Ctx   context.Context
	Types []domain.RoomType
} {
	var calls []struct {
		Ctx   context.Context
		Types []domain.RoomType
	}
	mock.lockCreateRoomTypes.RLock()
	calls = mock.calls.CreateRoomTypes
	mock.lockCreateRoomTypes.RUnlock()
	return calls
}

func (mock *provisionerMock) CreateRooms(ctx context.Context, rooms []domain.RoomSeed) error {
	if mock.CreateRoomsFunc == nil {
		panic("provisionerMock.CreateRoomsFunc: method is nil but provisioner.CreateRooms was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Rooms []domain.RoomSeed
	}{
		Ctx:   ctx,
		Rooms: rooms,
	}
	mock.lockCreateRooms.Lock()
	mock.calls.CreateRooms = append(mock.calls.CreateRooms, callInfo)
	mock.lockCreateRooms.Unlock()
	return mock.CreateRoomsFunc(ctx, rooms)
}

func (mock *provisionerMock) CreateRoomsCalls() []struct {
	Ctx   context.Context
	Rooms []domain.RoomSeed
} {
	var calls []struct {
		Ctx   context.Context
		Rooms []domain.RoomSeed
	}
	mock.lockCreateRooms.RLock()
	calls = mock.calls.CreateRooms
	mock.lockCreateRooms.RUnlock()
	return calls
}

func (mock *provisionerMock) CreateTenant(ctx context.Context, t domain.Tenant) error {
	if mock.CreateTenantFunc == nil {
		panic("provisionerMock.CreateTenantFunc: method is nil but provisioner.CreateTenant was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.Tenant
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockCreateTenant.Lock()
	mock.calls.CreateTenant = append(mock.calls.CreateTenant, callInfo)
	mock.lockCreateTenant.Unlock()
	return mock.CreateTenantFunc(ctx, t)
}

func (mock *provisionerMock) CreateTenantCalls() []struct {
	Ctx context.Context
	T   domain.Tenant
} {
	var calls []struct {
		Ctx context.Context
		T   domain.Tenant
	}
	mock.lockCreateTenant.RLock()
	calls = mock.calls.CreateTenant
	mock.lockCreateTenant.RUnlock()
	return calls
}
