// Package autosave implements the draft snapshot repository using PostgreSQL.
// Snapshots are keyed by section and overwritten on every put.
package autosave

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dossier-backend/internal/domain"
)

type row struct {
	SectionID uuid.UUID `db:"section_id"`
	Content   []byte    `db:"content"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Repo provides autosave snapshot persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new autosave repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Upsert stores the snapshot of a section, replacing any previous one.
func (r *Repo) Upsert(ctx context.Context, s domain.AutosaveSnapshot) (*domain.AutosaveSnapshot, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	content := s.Content
	if content == nil {
		content = domain.Content{}
	}
	data, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("autosave marshal content: %w", err)
	}

	var out row
	err = postgres.Get(ctx, q, &out, postgres.Builder().
		Insert("autosave_snapshots").
		Columns("section_id", "content", "updated_at").
		Values(s.SectionID, data, s.UpdatedAt).
		Suffix(`ON CONFLICT (section_id) DO UPDATE SET
			content = EXCLUDED.content,
			updated_at = EXCLUDED.updated_at
			RETURNING section_id, content, updated_at`))
	if err != nil {
		return nil, postgres.MapError(err, "autosave", s.SectionID)
	}
	return toDomain(out)
}

// Get returns the snapshot of a section or ErrNotFound.
func (r *Repo) Get(ctx context.Context, sectionID uuid.UUID) (*domain.AutosaveSnapshot, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	err := postgres.Get(ctx, q, &out, postgres.Builder().
		Select("section_id", "content", "updated_at").
		From("autosave_snapshots").
		Where(sq.Eq{"section_id": sectionID}))
	if err != nil {
		return nil, postgres.MapError(err, "autosave", sectionID)
	}
	return toDomain(out)
}

// Delete removes the snapshot of a section. Deleting a missing snapshot is not an error.
func (r *Repo) Delete(ctx context.Context, sectionID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("autosave_snapshots").
		Where(sq.Eq{"section_id": sectionID}))
	if err != nil {
		return postgres.MapError(err, "autosave", sectionID)
	}
	return nil
}

// DeleteOlderThan removes snapshots last written before threshold and
// returns how many were removed.
func (r *Repo) DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("autosave_snapshots").
		Where(sq.Lt{"updated_at": threshold}))
	if err != nil {
		return 0, fmt.Errorf("autosave delete older than %s: %w", threshold.Format(time.RFC3339), err)
	}
	return n, nil
}

func toDomain(r row) (*domain.AutosaveSnapshot, error) {
	content := domain.Content{}
	if len(r.Content) > 0 {
		if err := json.Unmarshal(r.Content, &content); err != nil {
			return nil, fmt.Errorf("autosave %s unmarshal content: %w", r.SectionID, err)
		}
	}
	return &domain.AutosaveSnapshot{
		SectionID: r.SectionID,
		Content:   content,
		UpdatedAt: r.UpdatedAt,
	}, nil
}
