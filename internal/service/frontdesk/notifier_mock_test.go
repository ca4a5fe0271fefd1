
package frontdesk

import (
	"context"
	"sync"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	EnqueueFunc func(ctx context.Context, ev domain.NotificationEvent) error

	calls struct {
		Enqueue []struct {
			Ctx context.Context
			Ev  domain.NotificationEvent
		}
	}
	lockEnqueue sync.RWMutex
}

func (mock *notifierMock) Enqueue(ctx context.Context, ev domain.NotificationEvent) error {
	if mock.EnqueueFunc == nil {
		panic("notifierMock.EnqueueFunc: method is nil but notifier.Enqueue was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  domain.NotificationEvent
	}{
		Ctx: ctx,
		Ev:  ev,
	}
	mock.lockEnqueue.Lock()
	mock.calls.Enqueue = append(mock.calls.Enqueue, callInfo)
	mock.lockEnqueue.Unlock()
	return mock.EnqueueFunc(ctx, ev)
}

func (mock *notifierMock) EnqueueCalls() []struct {
	Ctx context.Context
	Ev  domain.NotificationEvent
} {
	var calls []struct {
		Ctx context.Context
		Ev  domain.NotificationEvent
	}
	mock.lockEnqueue.RLock()
	calls = mock.calls.Enqueue
	mock.lockEnqueue.RUnlock()
	return calls
}
