// Package section implements the section workflow: saving content,
// moving sections between review states and reporting completeness.
package section

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

type sectionRepo interface {
	Upsert(ctx context.Context, s domain.Section) (*domain.Section, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Section, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Section, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Section, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SectionStatus) (*domain.Section, error)
	CreateStatusEvent(ctx context.Context, e domain.SectionStatusEvent) error
	ListStatusEvents(ctx context.Context, sectionID uuid.UUID) ([]domain.SectionStatusEvent, error)
}

type projectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type autosaveRepo interface {
	Delete(ctx context.Context, sectionID uuid.UUID) error
}

type catalog interface {
	Has(name string) bool
	RequiredFields(name string) []string
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides section workflow operations.
type Service struct {
	sections sectionRepo
	projects projectRepo
	users    userRepo
	autosave autosaveRepo
	catalog  catalog
	audit    auditLogger
	tx       txManager
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new Section service.
func NewService(
	log *slog.Logger,
	sections sectionRepo,
	projects projectRepo,
	users userRepo,
	autosave autosaveRepo,
	catalog catalog,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		sections: sections,
		projects: projects,
		users:    users,
		autosave: autosave,
		catalog:  catalog,
		audit:    audit,
		tx:       tx,
		log:      log.With("service", "section"),
		now:      time.Now,
	}
}

// Detail is a section together with its missing required fields.
type Detail struct {
	Section       *domain.Section
	MissingFields []string
}

// authorize checks that the caller may edit the given project.
func (s *Service) authorize(ctx context.Context, projectID uuid.UUID) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get project: %w", err)
	}
	actor, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get actor: %w", err)
	}
	if !project.EditableBy(actor) {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}

func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
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
