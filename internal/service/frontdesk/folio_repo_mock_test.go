
package frontdesk

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

var _ folioRepo = &folioRepoMock{}

type folioRepoMock struct {
	GetByReservationFunc func(ctx context.Context, tenantID uuid.UUID, reservationID uuid.UUID) (domain.FolioRow, error)
	PostChargeFunc       func(ctx context.Context, charge domain.FolioCharge) error
	RecordPaymentFunc    func(ctx context.Context, p domain.Payment) error
	VoidChargeFunc       func(ctx context.Context, tenantID uuid.UUID, chargeID uuid.UUID) error

	calls struct {
		GetByReservation []struct {
			Ctx           context.Context
			TenantID      uuid.UUID
			ReservationID uuid.UUID
		}
		PostCharge []struct {
			Ctx    context.Context
			Charge domain.FolioCharge
		}
		RecordPayment []struct {
			Ctx context.Context
			P   domain.Payment
		}
		VoidCharge []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			ChargeID uuid.UUID
		}
	}
	lockGetByReservation sync.RWMutex
	lockPostCharge       sync.RWMutex
	lockRecordPayment    sync.RWMutex
	lockVoidCharge       sync.RWMutex
}

func (mock *folioRepoMock) GetByReservation(ctx context.Context, tenantID uuid.UUID, reservationID uuid.UUID) (domain.FolioRow, error) {
	if mock.GetByReservationFunc == nil {
		panic("folioRepoMock.GetByReservationFunc: method is nil but folioRepo.GetByReservation was just called")
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
	mock.lockGetByReservation.Lock()
	mock.calls.GetByReservation = append(mock.calls.GetByReservation, callInfo)
	mock.lockGetByReservation.Unlock()
	return mock.GetByReservationFunc(ctx, tenantID, reservationID)
}

func (mock *folioRepoMock) GetByReservationCalls() []struct {
	Ctx           context.Context
	TenantID      uuid.UUID
	ReservationID uuid.UUID
} {
	var calls []struct {
		Ctx           context.Context
		TenantID      uuid.UUID
		ReservationID uuid.UUID
	}
	mock.lockGetByReservation.RLock()
	calls = mock.calls.GetByReservation
	mock.lockGetByReservation.RUnlock()
	return calls
}

func (mock *folioRepoMock) PostCharge(ctx context.Context, charge domain.FolioCharge) error {
	if mock.PostChargeFunc == nil {
		panic("folioRepoMock.PostChargeFunc: method is nil but folioRepo.PostCharge was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Charge domain.FolioCharge
	}{
		Ctx:    ctx,
		Charge: charge,
	}
	mock.lockPostCharge.Lock()
	mock.calls.PostCharge = append(mock.calls.PostCharge, callInfo)
	mock.lockPostCharge.Unlock()
	return mock.PostChargeFunc(ctx, charge)
}

func (mock *folioRepoMock) PostChargeCalls() []struct {
	Ctx    context.Context
	Charge domain.FolioCharge
} {
	var calls []struct {
		Ctx    context.Context
		Charge domain.FolioCharge
	}
	mock.lockPostCharge.RLock()
	calls = mock.calls.PostCharge
	mock.lockPostCharge.RUnlock()
	return calls
}

func (mock *folioRepoMock) RecordPayment(ctx context.Context, p domain.Payment) error {
	if mock.RecordPaymentFunc == nil {
		panic("folioRepoMock.RecordPaymentFunc: method is nil but folioRepo.RecordPayment was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Payment
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockRecordPayment.Lock()
	mock.calls.RecordPayment = append(mock.calls.RecordPayment, callInfo)
	mock.lockRecordPayment.Unlock()
	return mock.RecordPaymentFunc(ctx, p)
}

func (mock *folioRepoMock) RecordPaymentCalls() []struct {
	Ctx context.Context
	P   domain.Payment
} {
	var calls []struct {
		Ctx context.Context
		P   domain.Payment
	}
	mock.lockRecordPayment.RLock()
	calls = mock.calls.RecordPayment
	mock.lockRecordPayment.RUnlock()
	return calls
}

func (mock *folioRepoMock) VoidCharge(ctx context.Context, tenantID uuid.UUID, chargeID uuid.UUID) error {
	if mock.VoidChargeFunc == nil {
		panic("folioRepoMock.VoidChargeFunc: method is nil but folioRepo.VoidCharge was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		ChargeID uuid.UUID
	}{
		Ctx:      ctx,
		TenantID: tenantID,
		ChargeID: chargeID,
	}
	mock.lockVoidCharge.Lock()
	mock.calls.VoidCharge = append(mock.calls.VoidCharge, callInfo)
	mock.lockVoidCharge.Unlock()
	return mock.VoidChargeFunc(ctx, tenantID, chargeID)
}

func (mock *folioRepoMock) VoidChargeCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	ChargeID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
		ChargeID uuid.UUID
	}
	mock.lockVoidCharge.RLock()
	calls = mock.calls.VoidCharge
	mock.lockVoidCharge.RUnlock()
	return calls
}
