package section

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/dossier-backend/internal/domain"
)

var _ sectionRepo = &sectionRepoMock{}

type sectionRepoMock struct {
	UpsertFunc            func(ctx context.Context, s domain.Section) (*domain.Section, error)
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Section, error)
	GetForUpdateFunc      func(ctx context.Context, id uuid.UUID) (*domain.Section, error)
	ListByProjectFunc     func(ctx context.Context, projectID uuid.UUID) ([]domain.Section, error)
	UpdateStatusFunc      func(ctx context.Context, id uuid.UUID, status domain.SectionStatus) (*domain.Section, error)
	CreateStatusEventFunc func(ctx context.Context, e domain.SectionStatusEvent) error
	ListStatusEventsFunc  func(ctx context.Context, sectionID uuid.UUID) ([]domain.SectionStatusEvent, error)

	calls struct {
		Upsert []struct {
			Ctx context.Context
			S   domain.Section
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByProject []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
		UpdateStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.SectionStatus
		}
		CreateStatusEvent []struct {
			Ctx context.Context
			E   domain.SectionStatusEvent
		}
		ListStatusEvents []struct {
			Ctx       context.Context
			SectionID uuid.UUID
		}
	}
	lockUpsert            sync.RWMutex
	lockGetByID           sync.RWMutex
	lockGetForUpdate      sync.RWMutex
	lockListByProject     sync.RWMutex
	lockUpdateStatus      sync.RWMutex
	lockCreateStatusEvent sync.RWMutex
	lockListStatusEvents  sync.RWMutex
}

func (mock *sectionRepoMock) Upsert(ctx context.Context, s domain.Section) (*domain.Section, error) {
	if mock.UpsertFunc == nil {
		panic("sectionRepoMock.UpsertFunc: method is nil but sectionRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Section
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, s)
}

func (mock *sectionRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	S   domain.Section
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
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

func (mock *sectionRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SectionStatus) (*domain.Section, error) {
	if mock.UpdateStatusFunc == nil {
		panic("sectionRepoMock.UpdateStatusFunc: method is nil but sectionRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.SectionStatus
	}{
		Ctx:    ctx,
		ID:     id,
		Status: status,
	}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *sectionRepoMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.SectionStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *sectionRepoMock) CreateStatusEvent(ctx context.Context, e domain.SectionStatusEvent) error {
	if mock.CreateStatusEventFunc == nil {
		panic("sectionRepoMock.CreateStatusEventFunc: method is nil but sectionRepo.CreateStatusEvent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.SectionStatusEvent
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockCreateStatusEvent.Lock()
	mock.calls.CreateStatusEvent = append(mock.calls.CreateStatusEvent, callInfo)
	mock.lockCreateStatusEvent.Unlock()
	return mock.CreateStatusEventFunc(ctx, e)
}

func (mock *sectionRepoMock) CreateStatusEventCalls() []struct {
	Ctx context.Context
	E   domain.SectionStatusEvent
} {
	mock.lockCreateStatusEvent.RLock()
	calls := mock.calls.CreateStatusEvent
	mock.lockCreateStatusEvent.RUnlock()
	return calls
}

func (mock *sectionRepoMock) ListStatusEvents(ctx context.Context, sectionID uuid.UUID) ([]domain.SectionStatusEvent, error) {
	if mock.ListStatusEventsFunc == nil {
		panic("sectionRepoMock.ListStatusEventsFunc: method is nil but sectionRepo.ListStatusEvents was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SectionID uuid.UUID
	}{
		Ctx:       ctx,
		SectionID: sectionID,
	}
	mock.lockListStatusEvents.Lock()
	mock.calls.ListStatusEvents = append(mock.calls.ListStatusEvents, callInfo)
	mock.lockListStatusEvents.Unlock()
	return mock.ListStatusEventsFunc(ctx, sectionID)
}

func (mock *sectionRepoMock) ListStatusEventsCalls() []struct {
	Ctx       context.Context
	SectionID uuid.UUID
} {
	mock.lockListStatusEvents.RLock()
	calls := mock.calls.ListStatusEvents
	mock.lockListStatusEvents.RUnlock()
	return calls
}
