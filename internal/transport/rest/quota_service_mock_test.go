package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/dossier-backend/internal/domain"
)

var _ quotaService = &quotaServiceMock{}

type quotaServiceMock struct {
	UsageFunc func(ctx context.Context, companyID uuid.UUID) (*domain.UsageReport, error)

	calls struct {
		Usage []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
		}
	}
	lockUsage sync.RWMutex
}

func (mock *quotaServiceMock) Usage(ctx context.Context, companyID uuid.UUID) (*domain.UsageReport, error) {
	if mock.UsageFunc == nil {
		panic("quotaServiceMock.UsageFunc: method is nil but quotaService.Usage was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}{
		Ctx:       ctx,
		CompanyID: companyID,
	}
	mock.lockUsage.Lock()
	mock.calls.Usage = append(mock.calls.Usage, callInfo)
	mock.lockUsage.Unlock()
	return mock.UsageFunc(ctx, companyID)
}

func (mock *quotaServiceMock) UsageCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
} {
	mock.lockUsage.RLock()
	calls := mock.calls.Usage
	mock.lockUsage.RUnlock()
	return calls
}
