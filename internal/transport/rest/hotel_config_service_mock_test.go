
package rest

import (
	"context"
	"sync"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/hotelconfig"
)

var _ hotelConfigService = &hotelConfigServiceMock{}

type hotelConfigServiceMock struct {
	CurrentFunc    func(ctx context.Context) (domain.HotelConfig, error)
	UpdateFunc     func(ctx context.Context, input hotelconfig.UpdateInput) (domain.HotelConfig, error)
	UploadLogoFunc func(ctx context.Context, input hotelconfig.LogoInput) (string, error)

	calls struct {
		Current []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx   context.Context
			Input hotelconfig.UpdateInput
		}
		UploadLogo []struct {
			Ctx   context.Context
			Input hotelconfig.LogoInput
		}
	}
	lockCurrent    sync.RWMutex
	lockUpdate     sync.RWMutex
	lockUploadLogo sync.RWMutex
}

func (mock *hotelConfigServiceMock) Current(ctx context.Context) (domain.HotelConfig, error) {
	if mock.CurrentFunc == nil {
		panic("hotelConfigServiceMock.CurrentFunc: method is nil but hotelConfigService.Current was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCurrent.Lock()
	mock.calls.Current = append(mock.calls.Current, callInfo)
	mock.lockCurrent.Unlock()
	return mock.CurrentFunc(ctx)
}

func (mock *hotelConfigServiceMock) CurrentCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCurrent.RLock()
	calls = mock.calls.Current
	mock.lockCurrent.RUnlock()
	return calls
}

func (mock *hotelConfigServiceMock) Update(ctx context.Context, input hotelconfig.UpdateInput) (domain.HotelConfig, error) {
	if mock.UpdateFunc == nil {
		panic("hotelConfigServiceMock.UpdateFunc: method is nil but hotelConfigService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input hotelconfig.UpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *hotelConfigServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input hotelconfig.UpdateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input hotelconfig.UpdateInput
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *hotelConfigServiceMock) UploadLogo(ctx context.Context, input hotelconfig.LogoInput) (string, error) {
	if mock.UploadLogoFunc == nil {
		panic("hotelConfigServiceMock.UploadLogoFunc: method is nil but hotelConfigService.UploadLogo was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input hotelconfig.LogoInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUploadLogo.Lock()
	mock.calls.UploadLogo = append(mock.calls.UploadLogo, callInfo)
	mock.lockUploadLogo.Unlock()
	return mock.UploadLogoFunc(ctx, input)
}

func (mock *hotelConfigServiceMock) UploadLogoCalls() []struct {
	Ctx   context.Context
	Input hotelconfig.LogoInput
} {
	var calls []struct {
		Ctx   context.Context
		Input hotelconfig.LogoInput
	}
	mock.lockUploadLogo.RLock()
	calls = mock.calls.UploadLogo
	mock.lockUploadLogo.RUnlock()
	return calls
}
