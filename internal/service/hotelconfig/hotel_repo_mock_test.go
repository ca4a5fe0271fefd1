
package hotelconfig

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

var _ hotelRepo = &hotelRepoMock{}

type hotelRepoMock struct {
	GetFunc     func(ctx context.Context, tenantID uuid.UUID) (domain.HotelConfig, error)
	SetLogoFunc func(ctx context.Context, tenantID uuid.UUID, logoURL string) error
	UpsertFunc  func(ctx context.Context, cfg domain.HotelConfig) (domain.HotelConfig, error)

	calls struct {
		Get []struct {
			Ctx      context.Context
			TenantID uuid.UUID
		}
		SetLogo []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			LogoURL  string
		}
		Upsert []struct {
			Ctx context.Context
			Cfg domain.HotelConfig
		}
	}
	lockGet     sync.RWMutex
	lockSetLogo sync.RWMutex
	lockUpsert  sync.RWMutex
}

func (mock *hotelRepoMock) Get(ctx context.Context, tenantID uuid.UUID) (domain.HotelConfig, error) {
	if mock.GetFunc == nil {
		panic("hotelRepoMock.GetFunc: method is nil but hotelRepo.Get was just called")
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

func (mock *hotelRepoMock) GetCalls() []struct {
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

func (mock *hotelRepoMock) SetLogo(ctx context.Context, tenantID uuid.UUID, logoURL string) error {
	if mock.SetLogoFunc == nil {
		panic("hotelRepoMock.SetLogoFunc: method is nil but hotelRepo.SetLogo was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		LogoURL  string
	}{
		Ctx:      ctx,
		TenantID: tenantID,
		LogoURL:  logoURL,
	}
	mock.lockSetLogo.Lock()
	mock.calls.SetLogo = append(mock.calls.SetLogo, callInfo)
	mock.lockSetLogo.Unlock()
	return mock.SetLogoFunc(ctx, tenantID, logoURL)
}

func (mock *hotelRepoMock) SetLogoCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	LogoURL  string
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
		LogoURL  string
	}
	mock.lockSetLogo.RLock()
	calls = mock.calls.SetLogo
	mock.lockSetLogo.RUnlock()
	return calls
}

func (mock *hotelRepoMock) Upsert(ctx context.Context, cfg domain.HotelConfig) (domain.HotelConfig, error) {
	if mock.UpsertFunc == nil {
		panic("hotelRepoMock.UpsertFunc: method is nil but hotelRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Cfg domain.HotelConfig
	}{
		Ctx: ctx,
		Cfg: cfg,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, cfg)
}

func (mock *hotelRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	Cfg domain.HotelConfig
} {
	var calls []struct {
		Ctx context.Context
		Cfg domain.HotelConfig
	}
	mock.lockUpsert.RLock()
	calls = mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
