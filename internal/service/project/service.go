// Package project implements the project review workflow:
// DRAFT -> IN_REVIEW -> APPROVED, with requested changes sending a project
// back to DRAFT.
package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
	"github.com/heartmarshall/dossier-backend/pkg/ctxutil"
)

type projectRepo interface {
	Create(ctx context.Context, p domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	UpdateWorkflow(ctx context.Context, p domain.Project) (*domain.Project, error)
	CreateStatusEvent(ctx context.Context, e domain.ProjectStatusEvent) error
	ListStatusEvents(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectStatusEvent, error)
}

type sectionRepo interface {
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Section, error)
}

type evidenceRepo interface {
	HeadSummary(ctx context.Context, projectID uuid.UUID) (domain.EvidenceSummary, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type catalog interface {
	Trackable() []domain.SectionTemplate
}

type notifier interface {
	ReviewRequested(ctx context.Context, req domain.ReviewRequest)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Policy holds the configurable workflow rules.
type Policy struct {
	// OwnerCanRequestChanges lets the project owner send an IN_REVIEW or
	// APPROVED project back to DRAFT without reviewer capability.
	OwnerCanRequestChanges bool
	// RequireApprovedEvidence blocks approval while any lineage head
	// artifact is not APPROVED.
	RequireApprovedEvidence bool
}

// Service provides project workflow operations.
type Service struct {
	projects projectRepo
	sections sectionRepo
	evidence evidenceRepo
	users    userRepo
	catalog  catalog
	notifier notifier
	audit    auditLogger
	tx       txManager
	policy   Policy
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new Project service.
func NewService(
	log *slog.Logger,
	projects projectRepo,
	sections sectionRepo,
	evidence evidenceRepo,
	users userRepo,
	catalog catalog,
	notifier notifier,
	audit auditLogger,
	tx txManager,
	policy Policy,
) *Service {
	return &Service{
		projects: projects,
		sections: sections,
		evidence: evidence,
		users:    users,
		catalog:  catalog,
		notifier: notifier,
		audit:    audit,
		tx:       tx,
		policy:   policy,
		log:      log.With("service", "project"),
		now:      time.Now,
	}
}

// CanGenerate reports whether compliance documents may be generated for p.
func (s *Service) CanGenerate(p *domain.Project) bool {
	return p.CanGenerate()
}

func (s *Service) actor(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	actor, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get actor: %w", err)
	}
	return actor, nil
}

// visible loads a project the caller may work on.
func (s *Service) visible(ctx context.Context, projectID uuid.UUID) (*domain.User, *domain.Project, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, nil, err
	}
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("get project: %w", err)
	}
	if !project.EditableBy(actor) && !project.ReviewableBy(actor) {
		return nil, nil, domain.ErrForbidden
	}
	return actor, project, nil
}

func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// transition writes the new workflow state, its status event and an audit
// record. It must run inside a transaction holding the project row lock.
func (s *Service) transition(
	ctx context.Context,
	actorID uuid.UUID,
	from *domain.Project,
	to domain.Project,
	note, signature *string,
) (*domain.Project, error) {
	now := s.timestamp()
	to.UpdatedAt = now

	updated, err := s.projects.UpdateWorkflow(ctx, to)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	err = s.projects.CreateStatusEvent(ctx, domain.ProjectStatusEvent{
		ID:        uuid.New(),
		ProjectID: from.ID,
		Status:    to.Status,
		ActorID:   actorID,
		Note:      note,
		Signature: signature,
		CreatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create status event: %w", err)
	}

	auditErr := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     actorID,
		EntityType: domain.EntityTypeProject,
		EntityID:   &from.ID,
		Action:     domain.AuditActionUpdate,
		Changes: map[string]any{
			"status": map[string]any{"old": from.Status, "new": to.Status},
		},
	})
	if auditErr != nil {
		return nil, fmt.Errorf("audit log: %w", auditErr)
	}

	return updated, nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
