package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

// Readiness reports the missing required fields of every trackable section
// and the review state of the project's evidence.
func (s *Service) Readiness(ctx context.Context, projectID uuid.UUID) (*domain.ProjectReadiness, error) {
	_, project, err := s.visible(ctx, projectID)
	if err != nil {
		return nil, err
	}

	sections, err := s.sectionReadiness(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	summary, err := s.evidence.HeadSummary(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("evidence summary: %w", err)
	}

	return &domain.ProjectReadiness{
		ProjectID: project.ID,
		Status:    project.Status,
		Sections:  sections,
		Evidence:  summary,
	}, nil
}

// sectionReadiness evaluates each trackable catalog section against the
// stored content. A trackable section that was never saved misses all of
// its required fields.
func (s *Service) sectionReadiness(ctx context.Context, projectID uuid.UUID) ([]domain.SectionReadiness, error) {
	stored, err := s.sections.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}

	byName := make(map[string]domain.Section, len(stored))
	for _, sec := range stored {
		byName[sec.Name] = sec
	}

	templates := s.catalog.Trackable()
	out := make([]domain.SectionReadiness, 0, len(templates))
	for _, tpl := range templates {
		r := domain.SectionReadiness{Name: tpl.Name}
		if sec, ok := byName[tpl.Name]; ok {
			id := sec.ID
			r.SectionID = &id
			r.MissingFields = domain.Completeness(sec.Content, tpl.RequiredFields)
		} else {
			r.MissingFields = append([]string(nil), tpl.RequiredFields...)
		}
		out = append(out, r)
	}
	return out, nil
}

// incompleteError lists every incomplete section as a field error.
func incompleteError(sections []domain.SectionReadiness) error {
	var errs []domain.FieldError
	for _, sec := range sections {
		if len(sec.MissingFields) > 0 {
			errs = append(errs, domain.FieldError{
				Field:   "sections." + sec.Name,
				Message: "missing: " + strings.Join(sec.MissingFields, ", "),
			})
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(errs)
}
