package artifact

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/dossier-backend/internal/domain"
)

var _ artifactRepo = &artifactRepoMock{}

type artifactRepoMock struct {
	InsertFunc        func(ctx context.Context, a domain.Artifact) (*domain.Artifact, error)
	UpdateReviewFunc  func(ctx context.Context, a domain.Artifact) (*domain.Artifact, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Artifact, error)
	GetHeadFunc       func(ctx context.Context, sectionID uuid.UUID) (*domain.Artifact, error)
	HasNewerFunc      func(ctx context.Context, sectionID uuid.UUID, version int) (bool, error)
	ListBySectionFunc func(ctx context.Context, sectionID uuid.UUID) ([]domain.Artifact, error)
	HeadSummaryFunc   func(ctx context.Context, projectID uuid.UUID) (domain.EvidenceSummary, error)

	calls struct {
		Insert []struct {
			Ctx context.Context
			A   domain.Artifact
		}
		UpdateReview []struct {
			Ctx context.Context
			A   domain.Artifact
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetHead []struct {
			Ctx       context.Context
			SectionID uuid.UUID
		}
		HasNewer []struct {
			Ctx       context.Context
			SectionID uuid.UUID
			Version   int
		}
		ListBySection []struct {
			Ctx       context.Context
			SectionID uuid.UUID
		}
		HeadSummary []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
	}
	lockInsert        sync.RWMutex
	lockUpdateReview  sync.RWMutex
	lockDelete        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockGetHead       sync.RWMutex
	lockHasNewer      sync.RWMutex
	lockListBySection sync.RWMutex
	lockHeadSummary   sync.RWMutex
}

func (mock *artifactRepoMock) Insert(ctx context.Context, a domain.Artifact) (*domain.Artifact, error) {
	if mock.InsertFunc == nil {
		panic("artifactRepoMock.InsertFunc: method is nil but artifactRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.Artifact
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, a)
}

func (mock *artifactRepoMock) InsertCalls() []struct {
	Ctx context.Context
	A   domain.Artifact
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *artifactRepoMock) UpdateReview(ctx context.Context, a domain.Artifact) (*domain.Artifact, error) {
	if mock.UpdateReviewFunc == nil {
		panic("artifactRepoMock.UpdateReviewFunc: method is nil but artifactRepo.UpdateReview was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.Artifact
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockUpdateReview.Lock()
	mock.calls.UpdateReview = append(mock.calls.UpdateReview, callInfo)
	mock.lockUpdateReview.Unlock()
	return mock.UpdateReviewFunc(ctx, a)
}

func (mock *artifactRepoMock) UpdateReviewCalls() []struct {
	Ctx context.Context
	A   domain.Artifact
} {
	mock.lockUpdateReview.RLock()
	calls := mock.calls.UpdateReview
	mock.lockUpdateReview.RUnlock()
	return calls
}

func (mock *artifactRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("artifactRepoMock.DeleteFunc: method is nil but artifactRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *artifactRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *artifactRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Artifact, error) {
	if mock.GetByIDFunc == nil {
		panic("artifactRepoMock.GetByIDFunc: method is nil but artifactRepo.GetByID was just called")
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

func (mock *artifactRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *artifactRepoMock) GetHead(ctx context.Context, sectionID uuid.UUID) (*domain.Artifact, error) {
	if mock.GetHeadFunc == nil {
		panic("artifactRepoMock.GetHeadFunc: method is nil but artifactRepo.GetHead was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SectionID uuid.UUID
	}{
		Ctx:       ctx,
		SectionID: sectionID,
	}
	mock.lockGetHead.Lock()
	mock.calls.GetHead = append(mock.calls.GetHead, callInfo)
	mock.lockGetHead.Unlock()
	return mock.GetHeadFunc(ctx, sectionID)
}

func (mock *artifactRepoMock) GetHeadCalls() []struct {
	Ctx       context.Context
	SectionID uuid.UUID
} {
	mock.lockGetHead.RLock()
	calls := mock.calls.GetHead
	mock.lockGetHead.RUnlock()
	return calls
}

func (mock *artifactRepoMock) HasNewer(ctx context.Context, sectionID uuid.UUID, version int) (bool, error) {
	if mock.HasNewerFunc == nil {
		panic("artifactRepoMock.HasNewerFunc: method is nil but artifactRepo.HasNewer was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SectionID uuid.UUID
		Version   int
	}{
		Ctx:       ctx,
		SectionID: sectionID,
		Version:   version,
	}
	mock.lockHasNewer.Lock()
	mock.calls.HasNewer = append(mock.calls.HasNewer, callInfo)
	mock.lockHasNewer.Unlock()
	return mock.HasNewerFunc(ctx, sectionID, version)
}

func (mock *artifactRepoMock) HasNewerCalls() []struct {
	Ctx       context.Context
	SectionID uuid.UUID
	Version   int
} {
	mock.lockHasNewer.RLock()
	calls := mock.calls.HasNewer
	mock.lockHasNewer.RUnlock()
	return calls
}

func (mock *artifactRepoMock) ListBySection(ctx context.Context, sectionID uuid.UUID) ([]domain.Artifact, error) {
	if mock.ListBySectionFunc == nil {
		panic("artifactRepoMock.ListBySectionFunc: method is nil but artifactRepo.ListBySection was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SectionID uuid.UUID
	}{
		Ctx:       ctx,
		SectionID: sectionID,
	}
	mock.lockListBySection.Lock()
	mock.calls.ListBySection = append(mock.calls.ListBySection, callInfo)
	mock.lockListBySection.Unlock()
	return mock.ListBySectionFunc(ctx, sectionID)
}

func (mock *artifactRepoMock) ListBySectionCalls() []struct {
	Ctx       context.Context
	SectionID uuid.UUID
} {
	mock.lockListBySection.RLock()
	calls := mock.calls.ListBySection
	mock.lockListBySection.RUnlock()
	return calls
}

func (mock *artifactRepoMock) HeadSummary(ctx context.Context, projectID uuid.UUID) (domain.EvidenceSummary, error) {
	if mock.HeadSummaryFunc == nil {
		panic("artifactRepoMock.HeadSummaryFunc: method is nil but artifactRepo.HeadSummary was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{
		Ctx:       ctx,
		ProjectID: projectID,
	}
	mock.lockHeadSummary.Lock()
	mock.calls.HeadSummary = append(mock.calls.HeadSummary, callInfo)
	mock.lockHeadSummary.Unlock()
	return mock.HeadSummaryFunc(ctx, projectID)
}

func (mock *artifactRepoMock) HeadSummaryCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	mock.lockHeadSummary.RLock()
	calls := mock.calls.HeadSummary
	mock.lockHeadSummary.RUnlock()
	return calls
}
