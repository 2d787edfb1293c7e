package artifact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

// Review records a reviewer decision on one artifact version. Only users
// with reviewer capability in the project's company may review. The
// decision never cascades to sections or projects.
func (s *Service) Review(ctx context.Context, input ReviewInput) (*domain.Artifact, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.artifacts.GetByID(ctx, input.ArtifactID)
	if err != nil {
		return nil, fmt.Errorf("get artifact: %w", err)
	}
	acc, err := s.resolve(ctx, current.ProjectID)
	if err != nil {
		return nil, err
	}
	if !acc.project.ReviewableBy(acc.actor) {
		return nil, domain.ErrForbidden
	}

	reviewedAt := s.timestamp()
	comment := trimOrNil(input.Comment)

	var reviewed *domain.Artifact
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		next := *current
		next.Status = input.Status
		next.ReviewComment = comment
		next.ReviewedByID = &acc.actor.ID
		next.ReviewedAt = &reviewedAt

		var updateErr error
		reviewed, updateErr = s.artifacts.UpdateReview(txCtx, next)
		if updateErr != nil {
			return fmt.Errorf("update review: %w", updateErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     acc.actor.ID,
			EntityType: domain.EntityTypeArtifact,
			EntityID:   &current.ID,
			Action:     domain.AuditActionReview,
			Changes: map[string]any{
				"status": map[string]any{"old": current.Status, "new": input.Status},
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

	s.log.InfoContext(ctx, "artifact reviewed",
		slog.String("user_id", acc.actor.ID.String()),
		slog.String("artifact_id", reviewed.ID.String()),
		slog.String("status", reviewed.Status.String()),
	)

	return reviewed, nil
}
