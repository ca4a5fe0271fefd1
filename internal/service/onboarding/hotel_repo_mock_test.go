
package onboarding

import (
	"context"
	"sync"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

var _ hotelRepo = &hotelRepoMock{}

type hotelRepoMock struct {
	UpsertFunc func(ctx context.Context, cfg domain.HotelConfig) (domain.HotelConfig, error)

	calls struct {
		Upsert []struct {
			Ctx context.Context
			Cfg domain.HotelConfig
		}
	}
	lockUpsert sync.RWMutex
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
