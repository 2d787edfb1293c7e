package generation

import (
	"context"
	"sync"
)

var _ TrustAnalyzer = &TrustAnalyzerMock{}

type TrustAnalyzerMock struct {
	AnalyzeFunc func(ctx context.Context, job Job) error

	calls struct {
		Analyze []struct {
			Ctx context.Context
			Job Job
		}
	}
	lockAnalyze sync.RWMutex
}

func (mock *TrustAnalyzerMock) Analyze(ctx context.Context, job Job) error {
	if mock.AnalyzeFunc == nil {
		panic("TrustAnalyzerMock.AnalyzeFunc: method is nil but TrustAnalyzer.Analyze was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Job Job
	}{
		Ctx: ctx,
		Job: job,
	}
	mock.lockAnalyze.Lock()
	mock.calls.Analyze = append(mock.calls.Analyze, callInfo)
	mock.lockAnalyze.Unlock()
	return mock.AnalyzeFunc(ctx, job)
}

func (mock *TrustAnalyzerMock) AnalyzeCalls() []struct {
	Ctx context.Context
	Job Job
} {
	mock.lockAnalyze.RLock()
	calls := mock.calls.Analyze
	mock.lockAnalyze.RUnlock()
	return calls
}
