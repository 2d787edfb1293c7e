package section

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ autosaveRepo = &autosaveRepoMock{}

type autosaveRepoMock struct {
	DeleteFunc func(ctx context.Context, sectionID uuid.UUID) error

	calls struct {
		Delete []struct {
			Ctx       context.Context
			SectionID uuid.UUID
		}
	}
	lockDelete sync.RWMutex
}

func (mock *autosaveRepoMock) Delete(ctx context.Context, sectionID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("autosaveRepoMock.DeleteFunc: method is nil but autosaveRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SectionID uuid.UUID
	}{
		Ctx:       ctx,
		SectionID: sectionID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, sectionID)
}

func (mock *autosaveRepoMock) DeleteCalls() []struct {
	Ctx       context.Context
	SectionID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
