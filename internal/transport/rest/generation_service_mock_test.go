package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/dossier-backend/internal/service/generation"
)

var _ generationService = &generationServiceMock{}

type generationServiceMock struct {
	GenerateFunc     func(ctx context.Context, projectID uuid.UUID) (*generation.Job, error)
	AnalyzeTrustFunc func(ctx context.Context, projectID uuid.UUID) (*generation.Job, error)

	calls struct {
		Generate []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
		AnalyzeTrust []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
	}
	lockGenerate     sync.RWMutex
	lockAnalyzeTrust sync.RWMutex
}

func (mock *generationServiceMock) Generate(ctx context.Context, projectID uuid.UUID) (*generation.Job, error) {
	if mock.GenerateFunc == nil {
		panic("generationServiceMock.GenerateFunc: method is nil but generationService.Generate was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{
		Ctx:       ctx,
		ProjectID: projectID,
	}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, projectID)
}

func (mock *generationServiceMock) GenerateCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

func (mock *generationServiceMock) AnalyzeTrust(ctx context.Context, projectID uuid.UUID) (*generation.Job, error) {
	if mock.AnalyzeTrustFunc == nil {
		panic("generationServiceMock.AnalyzeTrustFunc: method is nil but generationService.AnalyzeTrust was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{
		Ctx:       ctx,
		ProjectID: projectID,
	}
	mock.lockAnalyzeTrust.Lock()
	mock.calls.AnalyzeTrust = append(mock.calls.AnalyzeTrust, callInfo)
	mock.lockAnalyzeTrust.Unlock()
	return mock.AnalyzeTrustFunc(ctx, projectID)
}

func (mock *generationServiceMock) AnalyzeTrustCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	mock.lockAnalyzeTrust.RLock()
	calls := mock.calls.AnalyzeTrust
	mock.lockAnalyzeTrust.RUnlock()
	return calls
}
