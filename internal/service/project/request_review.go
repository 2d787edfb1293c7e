package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

// RequestReview moves a DRAFT or CHANGES_REQUESTED project to IN_REVIEW and
// assigns its reviewer and optional approver. Both must be accepted by
// domain.Project.AcceptsReviewer, and every trackable section must be
// complete. The reviewer is notified after the commit.
func (s *Service) RequestReview(ctx context.Context, input RequestReviewInput) (*domain.Project, error) {
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
		if !current.EditableBy(actor) {
			return domain.ErrForbidden
		}
		if current.Status != domain.ProjectStatusDraft && current.Status != domain.ProjectStatusChangesRequested {
			return domain.NewConflictError(domain.ConflictInvalidStatus)
		}

		if err := s.checkReviewer(txCtx, current, "reviewer_id", input.ReviewerID); err != nil {
			return err
		}
		if input.ApproverID != nil {
			if err := s.checkReviewer(txCtx, current, "approver_id", *input.ApproverID); err != nil {
				return err
			}
		}

		sections, err := s.sectionReadiness(txCtx, current.ID)
		if err != nil {
			return err
		}
		if err := incompleteError(sections); err != nil {
			return err
		}

		next := *current
		next.Status = domain.ProjectStatusInReview
		next.ReviewerID = &input.ReviewerID
		next.ApproverID = input.ApproverID

		updated, err = s.transition(txCtx, actor.ID, current, next, trimOrNil(input.Message), nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notifier.ReviewRequested(ctx, domain.ReviewRequest{
		ProjectID:   updated.ID,
		ProjectName: updated.Name,
		RequestedBy: actor.ID,
		ReviewerID:  input.ReviewerID,
		ApproverID:  input.ApproverID,
		Message:     trimOrNil(input.Message),
	})

	s.log.InfoContext(ctx, "project review requested",
		slog.String("user_id", actor.ID.String()),
		slog.String("project_id", updated.ID.String()),
		slog.String("reviewer_id", input.ReviewerID.String()),
	)

	return updated, nil
}

// checkReviewer verifies that the assigned user exists and may review the
// project.
func (s *Service) checkReviewer(ctx context.Context, p *domain.Project, field string, userID uuid.UUID) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get %s: %w", field, err)
	}
	if !p.AcceptsReviewer(u) {
		return fmt.Errorf("%s lacks reviewer capability: %w", field, domain.ErrForbidden)
	}
	return nil
}
