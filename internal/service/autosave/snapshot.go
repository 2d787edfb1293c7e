package autosave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

// Put stores the draft unconditionally, replacing any previous snapshot,
// and returns the stored snapshot.
func (s *Service) Put(ctx context.Context, input PutInput) (*domain.AutosaveSnapshot, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, _, err := s.editableSection(ctx, input.SectionID); err != nil {
		return nil, err
	}

	snapshot, err := s.snapshots.Upsert(ctx, domain.AutosaveSnapshot{
		SectionID: input.SectionID,
		Content:   input.Content,
		UpdatedAt: s.now().UTC().Truncate(time.Microsecond),
	})
	if err != nil {
		return nil, fmt.Errorf("upsert snapshot: %w", err)
	}

	s.log.DebugContext(ctx, "autosave stored",
		slog.String("section_id", input.SectionID.String()),
	)

	return snapshot, nil
}

// Get returns the stored draft of a section, or nil when there is none.
func (s *Service) Get(ctx context.Context, sectionID uuid.UUID) (*domain.AutosaveSnapshot, error) {
	if _, _, err := s.editableSection(ctx, sectionID); err != nil {
		return nil, err
	}
	return s.get(ctx, sectionID)
}

// Clear removes the stored draft. Clearing a section without a draft succeeds.
func (s *Service) Clear(ctx context.Context, sectionID uuid.UUID) error {
	if _, _, err := s.editableSection(ctx, sectionID); err != nil {
		return err
	}

	if err := s.snapshots.Delete(ctx, sectionID); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}

	s.log.DebugContext(ctx, "autosave cleared",
		slog.String("section_id", sectionID.String()),
	)
	return nil
}

// Recovery returns the stored draft and whether it is newer than the last
// saved content of the section.
func (s *Service) Recovery(ctx context.Context, sectionID uuid.UUID) (*Recovery, error) {
	_, section, err := s.editableSection(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.get(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return &Recovery{}, nil
	}

	return &Recovery{
		Snapshot: snapshot,
		Offer:    snapshot.NewerThan(section.UpdatedAt),
	}, nil
}

func (s *Service) get(ctx context.Context, sectionID uuid.UUID) (*domain.AutosaveSnapshot, error) {
	snapshot, err := s.snapshots.Get(ctx, sectionID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return snapshot, nil
}
