package domain

import (
	"time"

	"github.com/google/uuid"
)

// AutosaveSnapshot is the last unsaved draft of a section. It is never
// authoritative; it only backs recovery of in-progress edits.
type AutosaveSnapshot struct {
	SectionID uuid.UUID
	Content   Content
	UpdatedAt time.Time
}

// NewerThan reports whether the snapshot should be offered for recovery
// against a section saved at savedAt.
func (s *AutosaveSnapshot) NewerThan(savedAt time.Time) bool {
	return s.UpdatedAt.After(savedAt)
}
