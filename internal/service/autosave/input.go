package autosave

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

// PutInput holds the draft content of a section.
type PutInput struct {
	SectionID uuid.UUID
	Content   domain.Content
}

// Validate checks all fields and collects all errors.
func (i PutInput) Validate() error {
	var errs []domain.FieldError

	if i.SectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "section_id", Message: "required"})
	}
	if i.Content == nil {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
