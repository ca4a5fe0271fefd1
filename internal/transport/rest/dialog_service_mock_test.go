
package rest

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/dialog"
)

var _ dialogService = &dialogServiceMock{}

type dialogServiceMock struct {
	OpenFunc    func(ctx context.Context, roomID uuid.UUID, kind domain.ActionKind) (dialog.View, error)
	GetFunc     func(ctx context.Context, dialogID uuid.UUID) (dialog.View, error)
	CollectFunc func(ctx context.Context, dialogID uuid.UUID, patch json.RawMessage) (dialog.View, error)
	SubmitFunc  func(ctx context.Context, dialogID uuid.UUID) (dialog.Result, error)
	CloseFunc   func(ctx context.Context, dialogID uuid.UUID) error

	calls struct {
		Open []struct {
			Ctx    context.Context
			RoomID uuid.UUID
			Kind   domain.ActionKind
		}
		Get []struct {
			Ctx      context.Context
			DialogID uuid.UUID
		}
		Collect []struct {
			Ctx      context.Context
			DialogID uuid.UUID
			Patch    json.RawMessage
		}
		Submit []struct {
			Ctx      context.Context
			DialogID uuid.UUID
		}
		Close []struct {
			Ctx      context.Context
			DialogID uuid.UUID
		}
	}
	lockOpen    sync.RWMutex
	lockGet     sync.RWMutex
	lockCollect sync.RWMutex
	lockSubmit  sync.RWMutex
	lockClose   sync.RWMutex
}

func (mock *dialogServiceMock) Open(ctx context.Context, roomID uuid.UUID, kind domain.ActionKind) (dialog.View, error) {
	if mock.OpenFunc == nil {
		panic("dialogServiceMock.OpenFunc: method is nil but dialogService.Open was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		RoomID uuid.UUID
		Kind   domain.ActionKind
	}{
		Ctx:    ctx,
		RoomID: roomID,
		Kind:   kind,
	}
	mock.lockOpen.Lock()
	mock.calls.Open = append(mock.calls.Open, callInfo)
	mock.lockOpen.Unlock()
	return mock.OpenFunc(ctx, roomID, kind)
}

func (mock *dialogServiceMock) OpenCalls() []struct {
	Ctx    context.Context
	RoomID uuid.UUID
	Kind   domain.ActionKind
} {
	var calls []struct {
		Ctx    context.Context
		RoomID uuid.UUID
		Kind   domain.ActionKind
	}
	mock.lockOpen.RLock()
	calls = mock.calls.Open
	mock.lockOpen.RUnlock()
	return calls
}

func (mock *dialogServiceMock) Get(ctx context.Context, dialogID uuid.UUID) (dialog.View, error) {
	if mock.GetFunc == nil {
		panic("dialogServiceMock.GetFunc: method is nil but dialogService.Get was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DialogID uuid.UUID
	}{
		Ctx:      ctx,
		DialogID: dialogID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, dialogID)
}

func (mock *dialogServiceMock) GetCalls() []struct {
	Ctx      context.Context
	DialogID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		DialogID uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *dialogServiceMock) Collect(ctx context.Context, dialogID uuid.UUID, patch json.RawMessage) (dialog.View, error) {
	if mock.CollectFunc == nil {
		panic("dialogServiceMock.CollectFunc: method is nil but dialogService.Collect was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DialogID uuid.UUID
		Patch    json.RawMessage
	}{
		Ctx:      ctx,
		DialogID: dialogID,
		Patch:    patch,
	}
	mock.lockCollect.Lock()
	mock.calls.Collect = append(mock.calls.Collect, callInfo)
	mock.lockCollect.Unlock()
	return mock.CollectFunc(ctx, dialogID, patch)
}

func (mock *dialogServiceMock) CollectCalls() []struct {
	Ctx      context.Context
	DialogID uuid.UUID
	Patch    json.RawMessage
} {
	var calls []struct {
		Ctx      context.Context
		DialogID uuid.UUID
		Patch    json.RawMessage
	}
	mock.lockCollect.RLock()
	calls = mock.calls.Collect
	mock.lockCollect.RUnlock()
	return calls
}

func (mock *dialogServiceMock) Submit(ctx context.Context, dialogID uuid.UUID) (dialog.Result, error) {
	if mock.SubmitFunc == nil {
		panic("dialogServiceMock.SubmitFunc: method is nil but dialogService.Submit was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DialogID uuid.UUID
	}{
		Ctx:      ctx,
		DialogID: dialogID,
	}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, dialogID)
}

func (mock *dialogServiceMock) SubmitCalls() []struct {
	Ctx      context.Context
	DialogID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		DialogID uuid.UUID
	}
	mock.lockSubmit.RLock()
	calls = mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

func (mock *dialogServiceMock) Close(ctx context.Context, dialogID uuid.UUID) error {
	if mock.CloseFunc == nil {
		panic("dialogServiceMock.CloseFunc: method is nil but dialogService.Close was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DialogID uuid.UUID
	}{
		Ctx:      ctx,
		DialogID: dialogID,
	}
	mock.lockClose.Lock()
	mock.calls.Close = append(mock.calls.Close, callInfo)
	mock.lockClose.Unlock()
	return mock.CloseFunc(ctx, dialogID)
}

func (mock *dialogServiceMock) CloseCalls() []struct {
	Ctx      context.Context
	DialogID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		DialogID uuid.UUID
	}
	mock.lockClose.RLock()
	calls = mock.calls.Close
	mock.lockClose.RUnlock()
	return calls
}
