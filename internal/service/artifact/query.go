package artifact

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

// List returns the lineage of a section ordered by version.
func (s *Service) List(ctx context.Context, sectionID uuid.UUID) ([]domain.Artifact, error) {
	section, err := s.sections.GetByID(ctx, sectionID)
	if err != nil {
		return nil, fmt.Errorf("get section: %w", err)
	}
	if _, err := s.authorizeEdit(ctx, section.ProjectID); err != nil {
		return nil, err
	}

	artifacts, err := s.artifacts.ListBySection(ctx, sectionID)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	return artifacts, nil
}

// EvidenceStatus counts the lineage heads of a project by review status.
func (s *Service) EvidenceStatus(ctx context.Context, projectID uuid.UUID) (domain.EvidenceSummary, error) {
	if _, err := s.authorizeEdit(ctx, projectID); err != nil {
		return domain.EvidenceSummary{}, err
	}

	summary, err := s.artifacts.HeadSummary(ctx, projectID)
	if err != nil {
		return domain.EvidenceSummary{}, fmt.Errorf("evidence summary: %w", err)
	}
	return summary, nil
}

// Download returns an artifact with its stored bytes.
func (s *Service) Download(ctx context.Context, artifactID uuid.UUID) (*domain.Artifact, []byte, error) {
	a, err := s.artifacts.GetByID(ctx, artifactID)
	if err != nil {
		return nil, nil, fmt.Errorf("get artifact: %w", err)
	}
	if _, err := s.authorizeEdit(ctx, a.ProjectID); err != nil {
		return nil, nil, err
	}

	data, err := s.blobs.Get(ctx, a.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("get blob: %w", err)
	}
	return a, data, nil
}
