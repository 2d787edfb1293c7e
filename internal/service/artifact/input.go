package artifact

import (
	"fmt"
	"mime"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

const defaultMimeType = "application/octet-stream"

// UploadInput holds a new evidence file for a section.
type UploadInput struct {
	SectionID    uuid.UUID
	Data         []byte
	OriginalName string
	MimeType     string
	Description  *string
	Purpose      domain.ArtifactPurpose
}

// Validate checks all fields and collects all errors.
func (i UploadInput) Validate(maxSize int64) error {
	var errs []domain.FieldError

	if i.SectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "section_id", Message: "required"})
	}
	if len(i.Data) == 0 {
		errs = append(errs, domain.FieldError{Field: "file", Message: "must not be empty"})
	}
	if maxSize > 0 && int64(len(i.Data)) > maxSize {
		errs = append(errs, domain.FieldError{Field: "file", Message: fmt.Sprintf("max %d bytes", maxSize)})
	}

	name := strings.TrimSpace(i.OriginalName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "original_name", Message: "required"})
	}
	if len(name) > 255 {
		errs = append(errs, domain.FieldError{Field: "original_name", Message: "max 255 characters"})
	}
	if strings.ContainsAny(name, "/\\\x00") {
		errs = append(errs, domain.FieldError{Field: "original_name", Message: "must not contain path separators"})
	}

	if mt := strings.TrimSpace(i.MimeType); mt != "" {
		if _, _, err := mime.ParseMediaType(mt); err != nil {
			errs = append(errs, domain.FieldError{Field: "mime_type", Message: "invalid media type"})
		}
	}

	if i.Purpose != "" && !i.Purpose.IsValid() {
		errs = append(errs, domain.FieldError{Field: "purpose", Message: "must be GENERIC, DATASET or MODEL"})
	}
	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReviewInput holds a reviewer decision on one artifact version.
type ReviewInput struct {
	ArtifactID uuid.UUID
	Status     domain.ArtifactStatus
	Comment    *string
}

// Validate checks all fields and collects all errors.
func (i ReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.ArtifactID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "artifact_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be PENDING, APPROVED or REJECTED"})
	}
	if i.Comment != nil && len(strings.TrimSpace(*i.Comment)) > 2000 {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// mimeOrDefault normalizes a media type, falling back to octet-stream.
func mimeOrDefault(mt string) string {
	mt = strings.TrimSpace(mt)
	if mt == "" {
		return defaultMimeType
	}
	return strings.ToLower(mt)
}
