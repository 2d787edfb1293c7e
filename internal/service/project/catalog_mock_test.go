package project

import (
	"sync"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

var _ catalog = &catalogMock{}

type catalogMock struct {
	TrackableFunc func() []domain.SectionTemplate

	calls struct {
		Trackable []struct{}
	}
	lockTrackable sync.RWMutex
}

func (mock *catalogMock) Trackable() []domain.SectionTemplate {
	if mock.TrackableFunc == nil {
		panic("catalogMock.TrackableFunc: method is nil but catalog.Trackable was just called")
	}
	mock.lockTrackable.Lock()
	mock.calls.Trackable = append(mock.calls.Trackable, struct{}{})
	mock.lockTrackable.Unlock()
	return mock.TrackableFunc()
}

func (mock *catalogMock) TrackableCalls() []struct{} {
	mock.lockTrackable.RLock()
	calls := mock.calls.Trackable
	mock.lockTrackable.RUnlock()
	return calls
}
