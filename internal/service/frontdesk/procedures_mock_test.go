
package frontdesk

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

var _ procedures = &proceduresMock{}

type proceduresMock struct {
	CancelReservationFunc func(ctx context.Context, req domain.CancelRequest) error
	CheckInFunc           func(ctx context.Context, req domain.CheckInRequest) (uuid.UUID, error)
	ResolveFolioFunc      func(ctx context.Context, tenantID uuid.UUID, reservationID uuid.UUID) (uuid.UUID, error)

	calls struct {
		CancelReservation []struct {
			Ctx context.Context
			Req domain.CancelRequest
		}
		CheckIn []struct {
			Ctx context.Context
			Req domain.CheckInRequest
		}
		ResolveFolio []struct {
			Ctx           context.Context
			TenantID      uuid.UUID
			ReservationID uuid.UUID
		}
	}
	lockCancelReservation sync.RWMutex
	lockCheckIn           sync.RWMutex
	lockResolveFolio      sync.RWMutex
}

func (mock *proceduresMock) CancelReservation(ctx context.Context, req domain.CancelRequest) error {
	if mock.CancelReservationFunc == nil {
		panic("proceduresMock.CancelReservationFunc: method is nil but procedures.CancelReservation was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req domain.CancelRequest
	}{
		Ctx: ctx,
		Req: req,
	}
	mock.lockCancelReservation.Lock()
	mock.calls.CancelReservation = append(mock.calls.CancelReservation, callInfo)
	mock.lockCancelReservation.Unlock()
	return mock.CancelReservationFunc(ctx, req)
}

func (mock *proceduresMock) CancelReservationCalls() []struct {
	Ctx context.Context
	Req domain.CancelRequest
} {
	var calls []struct {
		Ctx context.Context
		Req domain.CancelRequest
	}
	mock.lockCancelReservation.RLock()
	calls = mock.calls.CancelReservation
	mock.lockCancelReservation.RUnlock()
	return calls
}

func (mock *proceduresMock) CheckIn(ctx context.Context, req domain.CheckInRequest) (uuid.UUID, error) {
	if mock.CheckInFunc == nil {
		panic("proceduresMock.CheckInFunc: method is nil but procedures.CheckIn was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req domain.CheckInRequest
	}{
		Ctx: ctx,
		Req: req,
	}
	mock.lockCheckIn.Lock()
	mock.calls.CheckIn = append(mock.calls.CheckIn, callInfo)
	mock.lockCheckIn.Unlock()
	return mock.CheckInFunc(ctx, req)
}

func (mock *proceduresMock) CheckInCalls() []struct {
	Ctx context.Context
	Req domain.CheckInRequest
} {
	var calls []struct {
		Ctx context.Context
		Req domain.CheckInRequest
	}
	mock.lockCheckIn.RLock()
	calls = mock.calls.CheckIn
	mock.lockCheckIn.RUnlock()
	return calls
}

func (mock *proceduresMock) ResolveFolio(ctx context.Context, tenantID uuid.UUID, reservationID uuid.UUID) (uuid.UUID, error) {
	if mock.ResolveFolioFunc == nil {
		panic("proceduresMock.ResolveFolioFunc: method is nil but procedures.ResolveFolio was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		TenantID      uuid.UUID
		ReservationID uuid.UUID
	}{
		Ctx:           ctx,
		TenantID:      tenantID,
		ReservationID: reservationID,
	}
	mock.lockResolveFolio.Lock()
	mock.calls.ResolveFolio = append(mock.calls.ResolveFolio, callInfo)
	mock.lockResolveFolio.Unlock()
	return mock.ResolveFolioFunc(ctx, tenantID, reservationID)
}

func (mock *proceduresMock) ResolveFolioCalls() []struct {
	Ctx           context.Context
	TenantID      uuid.UUID
	ReservationID uuid.UUID
} {
	var calls []struct {
		Ctx           context.Context
		TenantID      uuid.UUID
		ReservationID uuid.UUID
	}
	mock.lockResolveFolio.RLock()
	calls = mock.calls.ResolveFolio
	mock.lockResolveFolio.RUnlock()
	return calls
}
