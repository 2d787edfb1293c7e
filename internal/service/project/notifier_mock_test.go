package project

import (
	"context"
	"sync"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	ReviewRequestedFunc func(ctx context.Context, req domain.ReviewRequest)

	calls struct {
		ReviewRequested []struct {
			Ctx context.Context
			Req domain.ReviewRequest
		}
	}
	lockReviewRequested sync.RWMutex
}

func (mock *notifierMock) ReviewRequested(ctx context.Context, req domain.ReviewRequest) {
	if mock.ReviewRequestedFunc == nil {
		panic("notifierMock.ReviewRequestedFunc: method is nil but notifier.ReviewRequested was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req domain.ReviewRequest
	}{
		Ctx: ctx,
		Req: req,
	}
	mock.lockReviewRequested.Lock()
	mock.calls.ReviewRequested = append(mock.calls.ReviewRequested, callInfo)
	mock.lockReviewRequested.Unlock()
	mock.ReviewRequestedFunc(ctx, req)
}

func (mock *notifierMock) ReviewRequestedCalls() []struct {
	Ctx context.Context
	Req domain.ReviewRequest
} {
	mock.lockReviewRequested.RLock()
	calls := mock.calls.ReviewRequested
	mock.lockReviewRequested.RUnlock()
	return calls
}
