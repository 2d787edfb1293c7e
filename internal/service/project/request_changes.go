package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

// RequestChanges sends an IN_REVIEW or APPROVED project back to DRAFT.
// Reviewers may always do this; the owner only when the policy allows it.
func (s *Service) RequestChanges(ctx context.Context, input RequestChangesInput) (*domain.Project, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Project
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.projects.GetForUpdate(txCtx, input.ProjectID)
		if err != nil {
			return fmt.Errorf("lock project: %w", err)
		}
		if current.Status != domain.ProjectStatusInReview && current.Status != domain.ProjectStatusApproved {
			return domain.NewConflictError(domain.ConflictInvalidStatus)
		}

		ownerAllowed := s.policy.OwnerCanRequestChanges && current.OwnerID == actor.ID
		if !current.ReviewableBy(actor) && !ownerAllowed {
			return domain.ErrForbidden
		}

		next := *current
		next.Status = domain.ProjectStatusDraft

		updated, err = s.transition(txCtx, actor.ID, current, next, trimOrNil(input.Note), nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "project changes requested",
		slog.String("user_id", actor.ID.String()),
		slog.String("project_id", updated.ID.String()),
	)

	return updated, nil
}
