package section

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
	"github.com/heartmarshall/dossier-backend/pkg/ctxutil"
)

// Transition moves a section to another status and appends the matching
// status event in the same transaction. The only guard is that the status
// actually changes.
func (s *Service) Transition(ctx context.Context, input TransitionInput) (*domain.Section, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.sections.GetByID(ctx, input.SectionID)
	if err != nil {
		return nil, fmt.Errorf("get section: %w", err)
	}
	if _, err := s.authorize(ctx, current.ProjectID); err != nil {
		return nil, err
	}

	var updated *domain.Section
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		locked, err := s.sections.GetForUpdate(txCtx, input.SectionID)
		if err != nil {
			return fmt.Errorf("lock section: %w", err)
		}
		if locked.Status == input.Status {
			return domain.NewConflictError(domain.ConflictInvalidStatus)
		}

		updated, err = s.sections.UpdateStatus(txCtx, locked.ID, input.Status)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		err = s.sections.CreateStatusEvent(txCtx, domain.SectionStatusEvent{
			ID:        uuid.New(),
			SectionID: locked.ID,
			Status:    input.Status,
			ActorID:   userID,
			Note:      trimOrNil(input.Note),
			CreatedAt: s.timestamp(),
		})
		if err != nil {
			return fmt.Errorf("create status event: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeSection,
			EntityID:   &locked.ID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"status": map[string]any{"old": locked.Status, "new": input.Status},
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

	s.log.InfoContext(ctx, "section status changed",
		slog.String("user_id", userID.String()),
		slog.String("section_id", updated.ID.String()),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}
