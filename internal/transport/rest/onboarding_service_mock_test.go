
package rest

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

var _ onboardingService = &onboardingServiceMock{}

type onboardingServiceMock struct {
	GetFunc      func(ctx context.Context) (domain.OnboardingDraft, error)
	SaveStepFunc func(ctx context.Context, step domain.OnboardingStep, payload json.RawMessage) (domain.OnboardingDraft, error)
	BackFunc     func(ctx context.Context) (domain.OnboardingDraft, error)
	CompleteFunc func(ctx context.Context) (domain.Tenant, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
		SaveStep []struct {
			Ctx     context.Context
			Step    domain.OnboardingStep
			Payload json.RawMessage
		}
		Back []struct {
			Ctx context.Context
		}
		Complete []struct {
			Ctx context.Context
		}
	}
	lockGet      sync.RWMutex
	lockSaveStep sync.RWMutex
	lockBack     sync.RWMutex
	lockComplete sync.RWMutex
}

func (mock *onboardingServiceMock) Get(ctx context.Context) (domain.OnboardingDraft, error) {
	if mock.GetFunc == nil {
		panic("onboardingServiceMock.GetFunc: method is nil but onboardingService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *onboardingServiceMock) GetCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *onboardingServiceMock) SaveStep(ctx context.Context, step domain.OnboardingStep, payload json.RawMessage) (domain.OnboardingDraft, error) {
	if mock.SaveStepFunc == nil {
		panic("onboardingServiceMock.SaveStepFunc: method is nil but onboardingService.SaveStep was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Step    domain.OnboardingStep
		Payload json.RawMessage
	}{
		Ctx:     ctx,
		Step:    step,
		Payload: payload,
	}
	mock.lockSaveStep.Lock()
	mock.calls.SaveStep = append(mock.calls.SaveStep, callInfo)
	mock.lockSaveStep.Unlock()
	return mock.SaveStepFunc(ctx, step, payload)
}

func (mock *onboardingServiceMock) SaveStepCalls() []struct {
	Ctx     context.Context
	Step    domain.OnboardingStep
	Payload json.RawMessage
} {
	var calls []struct {
		Ctx     context.Context
		Step    domain.OnboardingStep
		Payload json.RawMessage
	}
	mock.lockSaveStep.RLock()
	calls = mock.calls.SaveStep
	mock.lockSaveStep.RUnlock()
	return calls
}

func (mock *onboardingServiceMock) Back(ctx context.Context) (domain.OnboardingDraft, error) {
	if mock.BackFunc == nil {
		panic("onboardingServiceMock.BackFunc: method is nil but onboardingService.Back was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockBack.Lock()
	mock.calls.Back = append(mock.calls.Back, callInfo)
	mock.lockBack.Unlock()
	return mock.BackFunc(ctx)
}

func (mock *onboardingServiceMock) BackCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockBack.RLock()
	calls = mock.calls.Back
	mock.lockBack.RUnlock()
	return calls
}

func (mock *onboardingServiceMock) Complete(ctx context.Context) (domain.Tenant, error) {
	if mock.CompleteFunc == nil {
		panic("onboardingServiceMock.CompleteFunc: method is nil but onboardingService.Complete was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx)
}

func (mock *onboardingServiceMock) CompleteCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockComplete.RLock()
	calls = mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}
