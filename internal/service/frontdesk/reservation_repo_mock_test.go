
package frontdesk

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

var _ reservationRepo = &reservationRepoMock{}

type reservationRepoMock struct {
	AssignRoomFunc    func(ctx context.Context, tenantID uuid.UUID, id uuid.UUID, roomID *uuid.UUID) error
	CreateFunc        func(ctx context.Context, r domain.ReservationRow) error
	DeleteFunc        func(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) error
	GetFunc           func(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (domain.ReservationRow, error)
	UpdateDetailsFunc func(ctx context.Context, tenantID uuid.UUID, id uuid.UUID, changes domain.ReservationChanges) error
	UpdateStatusFunc  func(ctx context.Context, tenantID uuid.UUID, id uuid.UUID, status domain.ReservationStatus) error
	UpdateStayFunc    func(ctx context.Context, tenantID uuid.UUID, id uuid.UUID, checkOut time.Time, total decimal.Decimal) error

	calls struct {
		AssignRoom []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			Id       uuid.UUID
			RoomID   *uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			R   domain.ReservationRow
		}
		Delete []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			Id       uuid.UUID
		}
		Get []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			Id       uuid.UUID
		}
		UpdateDetails []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			Id       uuid.UUID
			Changes  domain.ReservationChanges
		}
		UpdateStatus []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			Id       uuid.UUID
			Status   domain.ReservationStatus
		}
		UpdateStay []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			Id       uuid.UUID
			CheckOut time.Time
			Total    decimal.Decimal
		}
	}
	lockAssignRoom    sync.RWMutex
	lockCreate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockGet           sync.RWMutex
	lockUpdateDetails sync.RWMutex
	lockUpdateStatus  sync.RWMutex
	lockUpdateStay    sync.RWMutex
}

func (mock *reservationRepoMock) AssignRoom(ctx context.Context, tenantID uuid.UUID, id uuid.UUID, roomID *uuid.UUID) error {
	if mock.AssignRoomFunc == nil {
		panic("reservationRepoMock.AssignRoomFunc: method is nil but reservationRepo.AssignRoom was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Id       uuid.UUID
		RoomID   *uuid.UUID
	}{
		Ctx:      ctx,
		TenantID: tenantID,
		Id:       id,
		RoomID:   roomID,
	}
	mock.lockAssignRoom.Lock()
	mock.calls.AssignRoom = append(mock.calls.AssignRoom, callInfo)
	mock.lockAssignRoom.Unlock()
	return mock.AssignRoomFunc(ctx, tenantID, id, roomID)
}

func (mock *reservationRepoMock) AssignRoomCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	Id       uuid.UUID
	RoomID   *uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Id       uuid.UUID
		RoomID   *uuid.UUID
	}
	mock.lockAssignRoom.RLock()
	calls = mock.calls.AssignRoom
	mock.lockAssignRoom.RUnlock()
	return calls
}

func (mock *reservationRepoMock) Create(ctx context.Context, r domain.ReservationRow) error {
	if mock.CreateFunc == nil {
		panic("reservationRepoMock.CreateFunc: method is nil but reservationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   domain.ReservationRow
	}{
		Ctx: ctx,
		R:   r,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, r)
}

func (mock *reservationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	R   domain.ReservationRow
} {
	var calls []struct {
		Ctx context.Context
		R   domain.ReservationRow
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reservationRepoMock) Delete(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("reservationRepoMock.DeleteFunc: method is nil but reservationRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Id       uuid.UUID
	}{
		Ctx:      ctx,
		TenantID: tenantID,
		Id:       id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, tenantID, id)
}

func (mock *reservationRepoMock) DeleteCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	Id       uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Id       uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *reservationRepoMock) Get(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (domain.ReservationRow, error) {
	if mock.GetFunc == nil {
		panic("reservationRepoMock.GetFunc: method is nil but reservationRepo.Get was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Id       uuid.UUID
	}{
		Ctx:      ctx,
		TenantID: tenantID,
		Id:       id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, tenantID, id)
}

func (mock *reservationRepoMock) GetCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	Id       uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Id       uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *reservationRepoMock) UpdateDetails(ctx context.Context, tenantID uuid.UUID, id uuid.UUID, changes domain.ReservationChanges) error {
	if mock.UpdateDetailsFunc == nil {
		panic("reservationRepoMock.UpdateDetailsFunc: method is nil but reservationRepo.UpdateDetails was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Id       uuid.UUID
		Changes  domain.ReservationChanges
	}{
		Ctx:      ctx,
		TenantID: tenantID,
		Id:       id,
		Changes:  changes,
	}
	mock.lockUpdateDetails.Lock()
	mock.calls.UpdateDetails = append(mock.calls.UpdateDetails, callInfo)
	mock.lockUpdateDetails.Unlock()
	return mock.UpdateDetailsFunc(ctx, tenantID, id, changes)
}

func (mock *reservationRepoMock) UpdateDetailsCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	Id       uuid.UUID
	Changes  domain.ReservationChanges
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Id       uuid.UUID
		Changes  domain.ReservationChanges
	}
	mock.lockUpdateDetails.RLock()
	calls = mock.calls.UpdateDetails
	mock.lockUpdateDetails.RUnlock()
	return calls
}

func (mock *reservationRepoMock) UpdateStatus(ctx context.Context, tenantID uuid.UUID, id uuid.UUID, status domain.ReservationStatus) error {
	if mock.UpdateStatusFunc == nil {
		panic("reservationRepoMock.UpdateStatusFunc: method is nil but reservationRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Id       uuid.UUID
		Status   domain.ReservationStatus
	}{
		Ctx:      ctx,
		TenantID: tenantID,
		Id:       id,
		Status:   status,
	}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, tenantID, id, status)
}

func (mock *reservationRepoMock) UpdateStatusCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	Id       uuid.UUID
	Status   domain.ReservationStatus
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Id       uuid.UUID
		Status   domain.ReservationStatus
	}
	mock.lockUpdateStatus.RLock()
	calls = mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *reservationRepoMock) UpdateStay(ctx context.Context, tenantID uuid.UUID, id uuid.UUID, checkOut time.Time, total decimal.Decimal) error {
	if mock.UpdateStayFunc == nil {
		panic("reservationRepoMock.UpdateStayFunc: method is nil but reservationRepo.UpdateStay was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Id       uuid.UUID
		CheckOut time.Time
		Total    decimal.Decimal
	}{
		Ctx:      ctx,
		TenantID: tenantID,
		Id:       id,
		CheckOut: checkOut,
		Total:    total,
	}
	mock.lockUpdateStay.Lock()
	mock.calls.UpdateStay = append(mock.calls.UpdateStay, callInfo)
	mock.lockUpdateStay.Unlock()
	return mock.UpdateStayFunc(ctx, tenantID, id, checkOut, total)
}

func (mock *reservationRepoMock) UpdateStayCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	Id       uuid.UUID
	CheckOut time.Time
	Total    decimal.Decimal
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Id       uuid.UUID
		CheckOut time.Time
		Total    decimal.Decimal
	}
	mock.lockUpdateStay.RLock()
	calls = mock.calls.UpdateStay
	mock.lockUpdateStay.RUnlock()
	return calls
}
