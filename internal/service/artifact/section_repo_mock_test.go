package artifact

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/dossier-backend/internal/domain"
)

var _ sectionRepo = &sectionRepoMock{}

type sectionRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Section, error)
	GetForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Section, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID      sync.RWMutex
	lockGetForUpdate sync.RWMutex
}

func (mock *sectionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Section, error) {
	if mock.GetByIDFunc == nil {
		panic("sectionRepoMock.GetByIDFunc: method is nil but sectionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *sectionRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *sectionRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Section, error) {
	if mock.GetForUpdateFunc == nil {
		panic("sectionRepoMock.GetForUpdateFunc: method is nil but sectionRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *sectionRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}
