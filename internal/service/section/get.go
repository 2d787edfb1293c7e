package section

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

// Get returns a section with its missing required fields.
func (s *Service) Get(ctx context.Context, sectionID uuid.UUID) (*Detail, error) {
	section, err := s.readable(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	return &Detail{
		Section:       section,
		MissingFields: domain.Completeness(section.Content, s.catalog.RequiredFields(section.Name)),
	}, nil
}

// ListByProject returns all sections of a project ordered by name.
func (s *Service) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Section, error) {
	if _, err := s.authorize(ctx, projectID); err != nil {
		return nil, err
	}

	sections, err := s.sections.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	return sections, nil
}

// History returns the status events of a section, oldest first.
func (s *Service) History(ctx context.Context, sectionID uuid.UUID) ([]domain.SectionStatusEvent, error) {
	if _, err := s.readable(ctx, sectionID); err != nil {
		return nil, err
	}

	events, err := s.sections.ListStatusEvents(ctx, sectionID)
	if err != nil {
		return nil, fmt.Errorf("list status events: %w", err)
	}
	return events, nil
}

// Completeness returns the required fields of the section that are still
// missing. Sections without required fields are always complete.
func (s *Service) Completeness(ctx context.Context, sectionID uuid.UUID) ([]string, error) {
	section, err := s.readable(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	return domain.Completeness(section.Content, s.catalog.RequiredFields(section.Name)), nil
}

func (s *Service) readable(ctx context.Context, sectionID uuid.UUID) (*domain.Section, error) {
	section, err := s.sections.GetByID(ctx, sectionID)
	if err != nil {
		return nil, fmt.Errorf("get section: %w", err)
	}
	if _, err := s.authorize(ctx, section.ProjectID); err != nil {
		return nil, err
	}
	return section, nil
}
