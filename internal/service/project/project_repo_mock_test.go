package project

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/dossier-backend/internal/domain"
)

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	CreateFunc            func(ctx context.Context, p domain.Project) (*domain.Project, error)
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	GetForUpdateFunc      func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	UpdateWorkflowFunc    func(ctx context.Context, p domain.Project) (*domain.Project, error)
	CreateStatusEventFunc func(ctx context.Context, e domain.ProjectStatusEvent) error
	ListStatusEventsFunc  func(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectStatusEvent, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   domain.Project
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateWorkflow []struct {
			Ctx context.Context
			P   domain.Project
		}
		CreateStatusEvent []struct {
			Ctx context.Context
			E   domain.ProjectStatusEvent
		}
		ListStatusEvents []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
	}
	lockCreate            sync.RWMutex
	lockGetByID           sync.RWMutex
	lockGetForUpdate      sync.RWMutex
	lockUpdateWorkflow    sync.RWMutex
	lockCreateStatusEvent sync.RWMutex
	lockListStatusEvents  sync.RWMutex
}

func (mock *projectRepoMock) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	if mock.CreateFunc == nil {
		panic("projectRepoMock.CreateFunc: method is nil but projectRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Project
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *projectRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   domain.Project
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *projectRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if mock.GetByIDFunc == nil {
		panic("projectRepoMock.GetByIDFunc: method is nil but projectRepo.GetByID was just called")
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

func (mock *projectRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *projectRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if mock.GetForUpdateFunc == nil {
		panic("projectRepoMock.GetForUpdateFunc: method is nil but projectRepo.GetForUpdate was just called")
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

func (mock *projectRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *projectRepoMock) UpdateWorkflow(ctx context.Context, p domain.Project) (*domain.Project, error) {
	if mock.UpdateWorkflowFunc == nil {
		panic("projectRepoMock.UpdateWorkflowFunc: method is nil but projectRepo.UpdateWorkflow was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Project
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockUpdateWorkflow.Lock()
	mock.calls.UpdateWorkflow = append(mock.calls.UpdateWorkflow, callInfo)
	mock.lockUpdateWorkflow.Unlock()
	return mock.UpdateWorkflowFunc(ctx, p)
}

func (mock *projectRepoMock) UpdateWorkflowCalls() []struct {
	Ctx context.Context
	P   domain.Project
} {
	mock.lockUpdateWorkflow.RLock()
	calls := mock.calls.UpdateWorkflow
	mock.lockUpdateWorkflow.RUnlock()
	return calls
}

func (mock *projectRepoMock) CreateStatusEvent(ctx context.Context, e domain.ProjectStatusEvent) error {
	if mock.CreateStatusEventFunc == nil {
		panic("projectRepoMock.CreateStatusEventFunc: method is nil but projectRepo.CreateStatusEvent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.ProjectStatusEvent
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockCreateStatusEvent.Lock()
	mock.calls.CreateStatusEvent = append(mock.calls.CreateStatusEvent, callInfo)
	mock.lockCreateStatusEvent.Unlock()
	return mock.CreateStatusEventFunc(ctx, e)
}

func (mock *projectRepoMock) CreateStatusEventCalls() []struct {
	Ctx context.Context
	E   domain.ProjectStatusEvent
} {
	mock.lockCreateStatusEvent.RLock()
	calls := mock.calls.CreateStatusEvent
	mock.lockCreateStatusEvent.RUnlock()
	return calls
}

func (mock *projectRepoMock) ListStatusEvents(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectStatusEvent, error) {
	if mock.ListStatusEventsFunc == nil {
		panic("projectRepoMock.ListStatusEventsFunc: method is nil but projectRepo.ListStatusEvents was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{
		Ctx:       ctx,
		ProjectID: projectID,
	}
	mock.lockListStatusEvents.Lock()
	mock.calls.ListStatusEvents = append(mock.calls.ListStatusEvents, callInfo)
	mock.lockListStatusEvents.Unlock()
	return mock.ListStatusEventsFunc(ctx, projectID)
}

func (mock *projectRepoMock) ListStatusEventsCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	mock.lockListStatusEvents.RLock()
	calls := mock.calls.ListStatusEvents
	mock.lockListStatusEvents.RUnlock()
	return calls
}
