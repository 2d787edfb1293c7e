package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

// Approve moves an IN_REVIEW project to APPROVED. The actor needs reviewer
// capability in the project's company and must sign with a non-blank name.
// When the evidence gate is enabled, every lineage head must be approved.
func (s *Service) Approve(ctx context.Context, input ApproveInput) (*domain.Project, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	signature := strings.TrimSpace(input.Signature)

	var updated *domain.Project
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.projects.GetForUpdate(txCtx, input.ProjectID)
		if err != nil {
			return fmt.Errorf("lock project: %w", err)
		}
		if current.Status != domain.ProjectStatusInReview {
			return domain.NewConflictError(domain.ConflictInvalidStatus)
		}
		if signature == "" {
			return domain.NewValidationError("signature", "required")
		}
		if !current.ReviewableBy(actor) {
			return domain.ErrForbidden
		}

		if s.policy.RequireApprovedEvidence {
			summary, err := s.evidence.HeadSummary(txCtx, current.ID)
			if err != nil {
				return fmt.Errorf("evidence summary: %w", err)
			}
			if !summary.AllApproved() {
				return domain.NewValidationError("evidence",
					fmt.Sprintf("%d evidence artifacts are not approved", summary.Pending+summary.Rejected))
			}
		}

		next := *current
		next.Status = domain.ProjectStatusApproved

		updated, err = s.transition(txCtx, actor.ID, current, next, trimOrNil(input.Note), &signature)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "project approved",
		slog.String("user_id", actor.ID.String()),
		slog.String("project_id", updated.ID.String()),
	)

	return updated, nil
}
