package artifact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

// Delete removes the head version of a lineage. Deleting any older version
// fails with a ConflictError. Section and project status are not touched.
func (s *Service) Delete(ctx context.Context, artifactID uuid.UUID) error {
	current, err := s.artifacts.GetByID(ctx, artifactID)
	if err != nil {
		return fmt.Errorf("get artifact: %w", err)
	}
	acc, err := s.authorizeEdit(ctx, current.ProjectID)
	if err != nil {
		return err
	}

	var deleted *domain.Artifact
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.sections.GetForUpdate(txCtx, current.SectionID); err != nil {
			return fmt.Errorf("lock section: %w", err)
		}

		// Re-read under the lock: a concurrent delete may have won.
		a, err := s.artifacts.GetByID(txCtx, artifactID)
		if err != nil {
			return fmt.Errorf("get artifact: %w", err)
		}

		newer, err := s.artifacts.HasNewer(txCtx, a.SectionID, a.Version)
		if err != nil {
			return fmt.Errorf("check lineage: %w", err)
		}
		if newer {
			return domain.NewConflictError(domain.ConflictSuperseded)
		}

		if err := s.artifacts.Delete(txCtx, a.ID); err != nil {
			return fmt.Errorf("delete artifact: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     acc.actor.ID,
			EntityType: domain.EntityTypeArtifact,
			EntityID:   &a.ID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"section_id":   a.SectionID.String(),
				"version":      a.Version,
				"citation_key": a.CitationKey,
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		deleted = a
		return nil
	})
	if err != nil {
		return err
	}

	s.removeBlob(ctx, deleted.StorageKey)

	s.log.InfoContext(ctx, "artifact deleted",
		slog.String("user_id", acc.actor.ID.String()),
		slog.String("artifact_id", deleted.ID.String()),
		slog.String("citation_key", deleted.CitationKey),
	)

	return nil
}
