package section

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

// Save stores the content of the named section of a project, creating the
// section in DRAFT if it does not exist. Only catalog sections may be
// saved. The status is never changed. The autosave draft of the section is
// dropped once the save commits.
func (s *Service) Save(ctx context.Context, input SaveInput) (*domain.Section, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if !s.catalog.Has(strings.TrimSpace(input.Name)) {
		return nil, domain.NewValidationError("name", "unknown section")
	}

	userID, err := s.authorize(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	now := s.timestamp()

	var saved *domain.Section
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var upsertErr error
		saved, upsertErr = s.sections.Upsert(txCtx, domain.Section{
			ID:           uuid.New(),
			ProjectID:    input.ProjectID,
			Name:         name,
			Content:      input.Content,
			Status:       domain.SectionStatusDraft,
			LastEditorID: &userID,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if upsertErr != nil {
			return fmt.Errorf("upsert section: %w", upsertErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeSection,
			EntityID:   &saved.ID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"name":   name,
				"fields": len(input.Content),
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

	if err := s.autosave.Delete(ctx, saved.ID); err != nil {
		s.log.WarnContext(ctx, "clear autosave after save",
			slog.String("section_id", saved.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "section saved",
		slog.String("user_id", userID.String()),
		slog.String("project_id", input.ProjectID.String()),
		slog.String("section_id", saved.ID.String()),
		slog.String("name", name),
	)

	return saved, nil
}
