package project

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/dossier-backend/internal/domain"
)

var _ sectionRepo = &sectionRepoMock{}

type sectionRepoMock struct {
	ListByProjectFunc func(ctx context.Context, projectID uuid.UUID) ([]domain.Section, error)

	calls struct {
		ListByProject []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
	}
	lockListByProject sync.RWMutex
}

func (mock *sectionRepoMock) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Section, error) {
	if mock.ListByProjectFunc == nil {
		panic("sectionRepoMock.ListByProjectFunc: method is nil but sectionRepo.ListByProject was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{
		Ctx:       ctx,
		ProjectID: projectID,
	}
	mock.lockListByProject.Lock()
	mock.calls.ListByProject = append(mock.calls.ListByProject, callInfo)
	mock.lockListByProject.Unlock()
	return mock.ListByProjectFunc(ctx, projectID)
}

func (mock *sectionRepoMock) ListByProjectCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	mock.lockListByProject.RLock()
	calls := mock.calls.ListByProject
	mock.lockListByProject.RUnlock()
	return calls
}
