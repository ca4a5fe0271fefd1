
package frontdesk

import (
	"context"
	"sync"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

var _ housekeepingRepo = &housekeepingRepoMock{}

type housekeepingRepoMock struct {
	CreateTaskFunc func(ctx context.Context, task domain.HousekeepingTask) error

	calls struct {
		CreateTask []struct {
			Ctx  context.Context
			Task domain.HousekeepingTask
		}
	}
	lockCreateTask sync.RWMutex
}

func (mock *housekeepingRepoMock) CreateTask(ctx context.Context, task domain.HousekeepingTask) error {
	if mock.CreateTaskFunc == nil {
		panic("housekeepingRepoMock.CreateTaskFunc: method is nil but housekeepingRepo.CreateTask was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Task domain.HousekeepingTask
	}{
		Ctx:  ctx,
		Task: task,
	}
	mock.lockCreateTask.Lock()
	mock.calls.CreateTask = append(mock.calls.CreateTask, callInfo)
	mock.lockCreateTask.Unlock()
	return mock.CreateTaskFunc(ctx, task)
}

func (mock *housekeepingRepoMock) CreateTaskCalls() []struct {
	Ctx  context.Context
	Task domain.HousekeepingTask
} {
	var calls []struct {
		Ctx  context.Context
		Task domain.HousekeepingTask
	}
	mock.lockCreateTask.RLock()
	calls = mock.calls.CreateTask
	mock.lockCreateTask.RUnlock()
	return calls
}
