
package board

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

var _ reservationLister = &reservationListerMock{}

type reservationListerMock struct {
	ListWindowFunc func(ctx context.Context, tenantID uuid.UUID, w domain.ReservationWindow) ([]domain.ReservationRow, error)

	calls struct {
		ListWindow []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			W        domain.ReservationWindow
		}
	}
	lockListWindow sync.RWMutex
}

func (mock *reservationListerMock) ListWindow(ctx context.Context, tenantID uuid.UUID, w domain.ReservationWindow) ([]domain.ReservationRow, error) {
	if mock.ListWindowFunc == nil {
		panic("reservationListerMock.ListWindowFunc: method is nil but reservationLister.ListWindow was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		W        domain.ReservationWindow
	}{
		Ctx:      ctx,
		TenantID: tenantID,
		W:        w,
	}
	mock.lockListWindow.Lock()
	mock.calls.ListWindow = append(mock.calls.ListWindow, callInfo)
	mock.lockListWindow.Unlock()
	return mock.ListWindowFunc(ctx, tenantID, w)
}

func (mock *reservationListerMock) ListWindowCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	W        domain.ReservationWindow
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
		W        domain.ReservationWindow
	}
	mock.lockListWindow.RLock()
	calls = mock.calls.ListWindow
	mock.lockListWindow.RUnlock()
	return calls
}
