// Package artifact manages the evidence version chain of sections and the
// review status of each version.
package artifact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
	"github.com/heartmarshall/dossier-backend/pkg/ctxutil"
)

type artifactRepo interface {
	Insert(ctx context.Context, a domain.Artifact) (*domain.Artifact, error)
	UpdateReview(ctx context.Context, a domain.Artifact) (*domain.Artifact, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Artifact, error)
	GetHead(ctx context.Context, sectionID uuid.UUID) (*domain.Artifact, error)
	HasNewer(ctx context.Context, sectionID uuid.UUID, version int) (bool, error)
	ListBySection(ctx context.Context, sectionID uuid.UUID) ([]domain.Artifact, error)
	HeadSummary(ctx context.Context, projectID uuid.UUID) (domain.EvidenceSummary, error)
}

type sectionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Section, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Section, error)
}

type projectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type blobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

type catalog interface {
	Code(name string) (string, bool)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides artifact chain and review operations.
type Service struct {
	artifacts artifactRepo
	sections  sectionRepo
	projects  projectRepo
	users     userRepo
	blobs     blobStore
	catalog   catalog
	audit     auditLogger
	tx        txManager
	log       *slog.Logger
	maxSize   int64
	now       func() time.Time
}

// NewService creates a new Artifact service. Uploads larger than maxSize
// bytes are rejected.
func NewService(
	log *slog.Logger,
	artifacts artifactRepo,
	sections sectionRepo,
	projects projectRepo,
	users userRepo,
	blobs blobStore,
	catalog catalog,
	audit auditLogger,
	tx txManager,
	maxSize int64,
) *Service {
	return &Service{
		artifacts: artifacts,
		sections:  sections,
		projects:  projects,
		users:     users,
		blobs:     blobs,
		catalog:   catalog,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "artifact"),
		maxSize:   maxSize,
		now:       time.Now,
	}
}

// access is the resolved caller and project of a request.
type access struct {
	actor   *domain.User
	project *domain.Project
}

func (s *Service) resolve(ctx context.Context, projectID uuid.UUID) (*access, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	actor, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get actor: %w", err)
	}
	return &access{actor: actor, project: project}, nil
}

// authorizeEdit checks that the caller may change evidence of the project.
func (s *Service) authorizeEdit(ctx context.Context, projectID uuid.UUID) (*access, error) {
	a, err := s.resolve(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !a.project.EditableBy(a.actor) {
		return nil, domain.ErrForbidden
	}
	return a, nil
}

func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// removeBlob deletes a blob after the owning transaction is settled.
// Failures leave an orphan blob and are only logged.
func (s *Service) removeBlob(ctx context.Context, key string) {
	if err := s.blobs.Delete(context.WithoutCancel(ctx), key); err != nil {
		s.log.ErrorContext(ctx, "remove evidence blob",
			slog.String("storage_key", key),
			slog.String("error", err.Error()),
		)
	}
}
