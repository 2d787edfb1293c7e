// Package generation hands approved projects to the external document
// generator and trust analyzer, charging the company quota first.
package generation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
	"github.com/heartmarshall/dossier-backend/pkg/ctxutil"
)

type projectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type quota interface {
	CheckAndConsume(ctx context.Context, companyID *uuid.UUID, kind domain.QuotaKind, amount int) error
}

// Job is a unit of work handed to an external collaborator.
type Job struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Kind        domain.QuotaKind
	RequestedBy uuid.UUID
	CreatedAt   time.Time
}

// Generator renders compliance documents for an approved project.
type Generator interface {
	Generate(ctx context.Context, job Job) error
}

// TrustAnalyzer runs a trust analysis of a project.
type TrustAnalyzer interface {
	Analyze(ctx context.Context, job Job) error
}

// Service provides quota-bound generation operations.
type Service struct {
	projects  projectRepo
	users     userRepo
	quota     quota
	generator Generator
	analyzer  TrustAnalyzer
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new Generation service.
func NewService(
	log *slog.Logger,
	projects projectRepo,
	users userRepo,
	quota quota,
	generator Generator,
	analyzer TrustAnalyzer,
) *Service {
	return &Service{
		projects:  projects,
		users:     users,
		quota:     quota,
		generator: generator,
		analyzer:  analyzer,
		log:       log.With("service", "generation"),
		now:       time.Now,
	}
}

func (s *Service) load(ctx context.Context, projectID uuid.UUID) (uuid.UUID, *domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, nil, domain.ErrUnauthorized
	}

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("get project: %w", err)
	}
	actor, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("get actor: %w", err)
	}
	if !project.EditableBy(actor) {
		return uuid.Nil, nil, domain.ErrForbidden
	}
	return userID, project, nil
}

func (s *Service) newJob(project *domain.Project, kind domain.QuotaKind, userID uuid.UUID) Job {
	return Job{
		ID:          uuid.New(),
		ProjectID:   project.ID,
		Kind:        kind,
		RequestedBy: userID,
		CreatedAt:   s.now().UTC(),
	}
}
