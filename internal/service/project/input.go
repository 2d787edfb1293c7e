package project

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

const maxNoteLength = 2000

func checkNote(errs []domain.FieldError, field string, v *string) []domain.FieldError {
	if v != nil && len(strings.TrimSpace(*v)) > maxNoteLength {
		errs = append(errs, domain.FieldError{Field: field, Message: "max 2000 characters"})
	}
	return errs
}

func checkProjectID(errs []domain.FieldError, id uuid.UUID) []domain.FieldError {
	if id == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	return errs
}

func result(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateInput holds the parameters for creating a project.
type CreateInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	return result(errs)
}

// RequestReviewInput sends a project to review.
type RequestReviewInput struct {
	ProjectID  uuid.UUID
	ReviewerID uuid.UUID
	ApproverID *uuid.UUID
	Message    *string
}

// Validate checks all fields and collects all errors.
func (i RequestReviewInput) Validate() error {
	errs := checkProjectID(nil, i.ProjectID)
	if i.ReviewerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "reviewer_id", Message: "required"})
	}
	if i.ApproverID != nil && *i.ApproverID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "approver_id", Message: "invalid"})
	}
	errs = checkNote(errs, "message", i.Message)
	return result(errs)
}

// ApproveInput approves a project under review.
type ApproveInput struct {
	ProjectID uuid.UUID
	Signature string
	Note      *string
}

// Validate checks all fields and collects all errors.
func (i ApproveInput) Validate() error {
	errs := checkProjectID(nil, i.ProjectID)
	if len(strings.TrimSpace(i.Signature)) > 200 {
		errs = append(errs, domain.FieldError{Field: "signature", Message: "max 200 characters"})
	}
	errs = checkNote(errs, "note", i.Note)
	return result(errs)
}

// RequestChangesInput sends a project back to DRAFT.
type RequestChangesInput struct {
	ProjectID uuid.UUID
	Note      *string
}

// Validate checks all fields and collects all errors.
func (i RequestChangesInput) Validate() error {
	errs := checkProjectID(nil, i.ProjectID)
	errs = checkNote(errs, "note", i.Note)
	return result(errs)
}

// ChangeStatusInput is a status change request addressed by target status.
// It is dispatched to RequestReview, Approve or RequestChanges.
type ChangeStatusInput struct {
	ProjectID  uuid.UUID
	Status     domain.ProjectStatus
	Note       *string
	Signature  *string
	ReviewerID *uuid.UUID
	ApproverID *uuid.UUID
}
