package section

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

// SaveInput holds the content of a section addressed by project and name.
type SaveInput struct {
	ProjectID uuid.UUID
	Name      string
	Content   domain.Content
}

// Validate checks all fields and collects all errors.
func (i SaveInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	if i.Content == nil {
		errs = append(errs, domain.FieldError{Field: "content", Message: "must be a JSON object"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TransitionInput holds a requested section status change.
type TransitionInput struct {
	SectionID uuid.UUID
	Status    domain.SectionStatus
	Note      *string
}

// Validate checks all fields and collects all errors.
func (i TransitionInput) Validate() error {
	var errs []domain.FieldError

	if i.SectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "section_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be DRAFT, IN_REVIEW or APPROVED"})
	}
	if i.Note != nil && len(strings.TrimSpace(*i.Note)) > 2000 {
		errs = append(errs, domain.FieldError{Field: "note", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
