// Package autosave keeps the unsaved draft of a section for crash recovery.
// Snapshots are never written back to the section.
package autosave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
	"github.com/heartmarshall/dossier-backend/pkg/ctxutil"
)

type snapshotRepo interface {
	Upsert(ctx context.Context, s domain.AutosaveSnapshot) (*domain.AutosaveSnapshot, error)
	Get(ctx context.Context, sectionID uuid.UUID) (*domain.AutosaveSnapshot, error)
	Delete(ctx context.Context, sectionID uuid.UUID) error
}

type sectionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Section, error)
}

type projectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service provides autosave operations.
type Service struct {
	snapshots snapshotRepo
	sections  sectionRepo
	projects  projectRepo
	users     userRepo
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new Autosave service.
func NewService(
	log *slog.Logger,
	snapshots snapshotRepo,
	sections sectionRepo,
	projects projectRepo,
	users userRepo,
) *Service {
	return &Service{
		snapshots: snapshots,
		sections:  sections,
		projects:  projects,
		users:     users,
		log:       log.With("service", "autosave"),
		now:       time.Now,
	}
}

// Recovery tells the editor whether to offer a stored draft.
type Recovery struct {
	Snapshot *domain.AutosaveSnapshot
	Offer    bool
}

// editableSection loads the section and checks that the caller may edit it.
func (s *Service) editableSection(ctx context.Context, sectionID uuid.UUID) (uuid.UUID, *domain.Section, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, nil, domain.ErrUnauthorized
	}

	section, err := s.sections.GetByID(ctx, sectionID)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("get section: %w", err)
	}
	project, err := s.projects.GetByID(ctx, section.ProjectID)
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

	return userID, section, nil
}
