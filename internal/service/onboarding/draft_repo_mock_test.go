
package onboarding

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

var _ draftRepo = &draftRepoMock{}

type draftRepoMock struct {
	DeleteFunc func(ctx context.Context, userID uuid.UUID) error
	GetFunc    func(ctx context.Context, userID uuid.UUID) (domain.OnboardingDraft, error)
	SaveFunc   func(ctx context.Context, draft domain.OnboardingDraft) error

	calls struct {
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Get []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Save []struct {
			Ctx   context.Context
			Draft domain.OnboardingDraft
		}
	}
	lockDelete sync.RWMutex
	lockGet    sync.RWMutex
	lockSave   sync.RWMutex
}

func (mock *draftRepoMock) Delete(ctx context.Context, userID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("draftRepoMock.DeleteFunc: method is nil but draftRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID)
}

func (mock *draftRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *draftRepoMock) Get(ctx context.Context, userID uuid.UUID) (domain.OnboardingDraft, error) {
	if mock.GetFunc == nil {
		panic("draftRepoMock.GetFunc: method is nil but draftRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID)
}

func (mock *draftRepoMock) GetCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *draftRepoMock) Save(ctx context.Context, draft domain.OnboardingDraft) error {
	if mock.SaveFunc == nil {
		panic("draftRepoMock.SaveFunc: method is nil but draftRepo.Save was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Draft domain.OnboardingDraft
	}{
		Ctx:   ctx,
		Draft: draft,
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, draft)
}

func (mock *draftRepoMock) SaveCalls() []struct {
	Ctx   context.Context
	Draft domain.OnboardingDraft
} {
	var calls []struct {
		Ctx   context.Context
		Draft domain.OnboardingDraft
	}
	mock.lockSave.RLock()
	calls = mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
