
package board

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

var _ folioSource = &folioSourceMock{}

type folioSourceMock struct {
	FoliosByReservationFunc func(ctx context.Context, tenantID uuid.UUID, reservationIDs []uuid.UUID) (map[uuid.UUID]domain.FolioRow, error)

	calls struct {
		FoliosByReservation []struct {
			Ctx            context.Context
			TenantID       uuid.UUID
			ReservationIDs []uuid.UUID
		}
	}
	lockFoliosByReservation sync.RWMutex
}

func (mock *folioSourceMock) FoliosByReservation(ctx context.Context, tenantID uuid.UUID, reservationIDs []uuid.UUID) (map[uuid.UUID]domain.FolioRow, error) {
	if mock.FoliosByReservationFunc == nil {
		panic("folioSourceMock.FoliosByReservationFunc: method is nil but folioSource.FoliosByReservation was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		TenantID       uuid.UUID
		ReservationIDs []uuid.UUID
	}{
		Ctx:            ctx,
		TenantID:       tenantID,
		ReservationIDs: reservationIDs,
	}
	mock.lockFoliosByReservation.Lock()
	mock.calls.FoliosByReservation = append(mock.calls.FoliosByReservation, callInfo)
	mock.lockFoliosByReservation.Unlock()
	return mock.FoliosByReservationFunc(ctx, tenantID, reservationIDs)
}

func (mock *folioSourceMock) FoliosByReservationCalls() []struct {
	Ctx            context.Context
	TenantID       uuid.UUID
	ReservationIDs []uuid.UUID
} {
	var calls []struct {
		Ctx            context.Context
		TenantID       uuid.UUID
		ReservationIDs []uuid.UUID
	}
	mock.lockFoliosByReservation.RLock()
	calls = mock.calls.FoliosByReservation
	mock.lockFoliosByReservation.RUnlock()
	return calls
}
