package domain

import (
	"time"

	"github.com/google/uuid"
)

// Content is the key/value document a section is filled with. Only the UI
// interprets values; the core inspects them for completeness only.
type Content map[string]any

// Clone returns a shallow copy of the content.
func (c Content) Clone() Content {
	if c == nil {
		return nil
	}
	out := make(Content, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Section is one named part of a project dossier.
type Section struct {
	ID           uuid.UUID
	ProjectID    uuid.UUID
	Name         string
	Content      Content
	Status       SectionStatus
	LastEditorID *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SectionStatusEvent is an append-only record of a section status change.
type SectionStatusEvent struct {
	ID        uuid.UUID
	SectionID uuid.UUID
	Status    SectionStatus
	ActorID   uuid.UUID
	Note      *string
	CreatedAt time.Time
}

// SectionTemplate describes a known section: its citation code and the
// fields that must be filled before the project can be sent to review.
type SectionTemplate struct {
	Name           string
	Code           string
	Title          string
	RequiredFields []string
}

// IsTrackable reports whether the template counts toward project completeness.
func (t SectionTemplate) IsTrackable() bool {
	return len(t.RequiredFields) > 0
}
