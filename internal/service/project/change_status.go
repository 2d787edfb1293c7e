package project

import (
	"context"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

// ChangeStatus dispatches a status change addressed by target status.
// CHANGES_REQUESTED cannot be targeted: requesting changes moves a project
// to DRAFT.
func (s *Service) ChangeStatus(ctx context.Context, input ChangeStatusInput) (*domain.Project, error) {
	switch input.Status {
	case domain.ProjectStatusInReview:
		reviewerID := input.ReviewerID
		if reviewerID == nil {
			// Resubmission keeps the previous reviewer.
			current, err := s.Get(ctx, input.ProjectID)
			if err != nil {
				return nil, err
			}
			reviewerID = current.ReviewerID
			if input.ApproverID == nil {
				input.ApproverID = current.ApproverID
			}
		}
		if reviewerID == nil {
			return nil, domain.NewValidationError("reviewer_id", "required")
		}
		return s.RequestReview(ctx, RequestReviewInput{
			ProjectID:  input.ProjectID,
			ReviewerID: *reviewerID,
			ApproverID: input.ApproverID,
			Message:    input.Note,
		})

	case domain.ProjectStatusApproved:
		signature := ""
		if input.Signature != nil {
			signature = *input.Signature
		}
		return s.Approve(ctx, ApproveInput{
			ProjectID: input.ProjectID,
			Signature: signature,
			Note:      input.Note,
		})

	case domain.ProjectStatusDraft:
		return s.RequestChanges(ctx, RequestChangesInput{
			ProjectID: input.ProjectID,
			Note:      input.Note,
		})

	case domain.ProjectStatusChangesRequested:
		return nil, domain.NewValidationError("status", "CHANGES_REQUESTED cannot be set directly; request changes with DRAFT")
	}

	return nil, domain.NewValidationError("status", "must be IN_REVIEW, APPROVED or DRAFT")
}
