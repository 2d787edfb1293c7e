package generation

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/dossier-backend/internal/domain"
)

var _ quota = &quotaMock{}

type quotaMock struct {
	CheckAndConsumeFunc func(ctx context.Context, companyID *uuid.UUID, kind domain.QuotaKind, amount int) error

	calls struct {
		CheckAndConsume []struct {
			Ctx       context.Context
			CompanyID *uuid.UUID
			Kind      domain.QuotaKind
			Amount    int
		}
	}
	lockCheckAndConsume sync.RWMutex
}

func (mock *quotaMock) CheckAndConsume(ctx context.Context, companyID *uuid.UUID, kind domain.QuotaKind, amount int) error {
	if mock.CheckAndConsumeFunc == nil {
		panic("quotaMock.CheckAndConsumeFunc: method is nil but quota.CheckAndConsume was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID *uuid.UUID
		Kind      domain.QuotaKind
		Amount    int
	}{
		Ctx:       ctx,
		CompanyID: companyID,
		Kind:      kind,
		Amount:    amount,
	}
	mock.lockCheckAndConsume.Lock()
	mock.calls.CheckAndConsume = append(mock.calls.CheckAndConsume, callInfo)
	mock.lockCheckAndConsume.Unlock()
	return mock.CheckAndConsumeFunc(ctx, companyID, kind, amount)
}

func (mock *quotaMock) CheckAndConsumeCalls() []struct {
	Ctx       context.Context
	CompanyID *uuid.UUID
	Kind      domain.QuotaKind
	Amount    int
} {
	mock.lockCheckAndConsume.RLock()
	calls := mock.calls.CheckAndConsume
	mock.lockCheckAndConsume.RUnlock()
	return calls
}
