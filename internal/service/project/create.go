package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

// Create starts a new DRAFT project owned by the caller, inside the
// caller's company if they have one.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Project, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	now := s.timestamp()

	var created *domain.Project
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.projects.Create(txCtx, domain.Project{
			ID:        uuid.New(),
			CompanyID: actor.CompanyID,
			OwnerID:   actor.ID,
			Name:      name,
			Status:    domain.ProjectStatusDraft,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if createErr != nil {
			return fmt.Errorf("create project: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.ID,
			EntityType: domain.EntityTypeProject,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name": map[string]any{"new": name},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "project created",
		slog.String("user_id", actor.ID.String()),
		slog.String("project_id", created.ID.String()),
	)

	return created, nil
}

// Get returns a project the caller may work on.
func (s *Service) Get(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	_, project, err := s.visible(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return project, nil
}

// History returns the status events of a project, oldest first.
func (s *Service) History(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectStatusEvent, error) {
	if _, _, err := s.visible(ctx, projectID); err != nil {
		return nil, err
	}

	events, err := s.projects.ListStatusEvents(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list status events: %w", err)
	}
	return events, nil
}
