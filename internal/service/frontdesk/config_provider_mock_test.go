
package frontdesk

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

var _ configProvider = &configProviderMock{}

type configProviderMock struct {
	GetFunc func(ctx context.Context, tenantID uuid.UUID) (domain.HotelConfig, error)

	calls struct {
		Get []struct {
			Ctx      context.Context
			TenantID uuid.UUID
		}
	}
	lockGet sync.RWMutex
}

func (mock *configProviderMock) Get(ctx context.Context, tenantID uuid.UUID) (domain.HotelConfig, error) {
	if mock.GetFunc == nil {
		panic("configProviderMock.GetFunc: method is nil but configProvider.Get was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
	}{
		Ctx:      ctx,
		TenantID: tenantID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, tenantID)
}

func (mock *configProviderMock) GetCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}
