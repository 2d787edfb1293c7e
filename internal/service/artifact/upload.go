package artifact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

// Upload appends a new version to the evidence lineage of a section.
//
// The blob is stored first under a key unique to the new artifact. Version
// assignment then runs with the section row locked, so concurrent uploads
// to one section get consecutive versions. If the transaction fails the
// blob is removed again.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*domain.Artifact, error) {
	if err := input.Validate(s.maxSize); err != nil {
		return nil, err
	}

	section, err := s.sections.GetByID(ctx, input.SectionID)
	if err != nil {
		return nil, fmt.Errorf("get section: %w", err)
	}
	acc, err := s.authorizeEdit(ctx, section.ProjectID)
	if err != nil {
		return nil, err
	}
	code, ok := s.catalog.Code(section.Name)
	if !ok {
		return nil, domain.NewValidationError("section_id", "section is not in the catalog")
	}

	purpose := input.Purpose
	if purpose == "" {
		purpose = domain.ArtifactPurposeGeneric
	}
	mimeType := mimeOrDefault(input.MimeType)

	id := uuid.New()
	key := fmt.Sprintf("%s/%s/%s", section.ProjectID, section.ID, id)
	if err := s.blobs.Put(ctx, key, input.Data, mimeType); err != nil {
		return nil, fmt.Errorf("store blob: %w", err)
	}

	var created *domain.Artifact
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		locked, err := s.sections.GetForUpdate(txCtx, section.ID)
		if err != nil {
			return fmt.Errorf("lock section: %w", err)
		}

		version := 1
		var previous *uuid.UUID
		head, err := s.artifacts.GetHead(txCtx, locked.ID)
		switch {
		case err == nil:
			version = head.Version + 1
			previous = &head.ID
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("get lineage head: %w", err)
		}

		created, err = s.artifacts.Insert(txCtx, domain.Artifact{
			ID:                 id,
			SectionID:          locked.ID,
			ProjectID:          locked.ProjectID,
			Version:            version,
			Checksum:           domain.Checksum(input.Data),
			CitationKey:        domain.CitationKey(code, version),
			OriginalName:       strings.TrimSpace(input.OriginalName),
			Size:               int64(len(input.Data)),
			MimeType:           mimeType,
			Description:        trimOrNil(input.Description),
			Purpose:            purpose,
			StorageKey:         key,
			Status:             domain.ArtifactStatusPending,
			PreviousArtifactID: previous,
			UploadedByID:       acc.actor.ID,
			CreatedAt:          s.timestamp(),
		})
		if err != nil {
			return fmt.Errorf("insert artifact: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     acc.actor.ID,
			EntityType: domain.EntityTypeArtifact,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"section_id":   locked.ID.String(),
				"version":      version,
				"checksum":     created.Checksum,
				"citation_key": created.CitationKey,
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		s.removeBlob(ctx, key)
		return nil, err
	}

	s.log.InfoContext(ctx, "artifact uploaded",
		slog.String("user_id", acc.actor.ID.String()),
		slog.String("section_id", created.SectionID.String()),
		slog.String("artifact_id", created.ID.String()),
		slog.String("citation_key", created.CitationKey),
		slog.Int("version", created.Version),
	)

	return created, nil
}
