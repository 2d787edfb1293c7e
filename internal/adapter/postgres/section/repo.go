// Package section implements the Section repository using PostgreSQL.
// It also owns the append-only section_status_events table.
package section

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dossier-backend/internal/domain"
)

var columns = []string{
	"id", "project_id", "name", "content", "status", "last_editor_id", "created_at", "updated_at",
}

var eventColumns = []string{"id", "section_id", "status", "actor_id", "note", "created_at"}

type row struct {
	ID           uuid.UUID  `db:"id"`
	ProjectID    uuid.UUID  `db:"project_id"`
	Name         string     `db:"name"`
	Content      []byte     `db:"content"`
	Status       string     `db:"status"`
	LastEditorID *uuid.UUID `db:"last_editor_id"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (r row) toDomain() (*domain.Section, error) {
	content := domain.Content{}
	if len(r.Content) > 0 {
		if err := json.Unmarshal(r.Content, &content); err != nil {
			return nil, fmt.Errorf("section %s unmarshal content: %w", r.ID, err)
		}
	}
	return &domain.Section{
		ID:           r.ID,
		ProjectID:    r.ProjectID,
		Name:         r.Name,
		Content:      content,
		Status:       domain.SectionStatus(r.Status),
		LastEditorID: r.LastEditorID,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}, nil
}

type eventRow struct {
	ID        uuid.UUID `db:"id"`
	SectionID uuid.UUID `db:"section_id"`
	Status    string    `db:"status"`
	ActorID   uuid.UUID `db:"actor_id"`
	Note      *string   `db:"note"`
	CreatedAt time.Time `db:"created_at"`
}

// Repo provides section persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new section repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Sections
// ---------------------------------------------------------------------------

// Upsert inserts the section or, when (project_id, name) already exists,
// replaces its content, last editor and updated_at. Status is never touched
// by an update; a new row starts with the status of s.
func (r *Repo) Upsert(ctx context.Context, s domain.Section) (*domain.Section, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	content, err := marshalContent(s.Content)
	if err != nil {
		return nil, err
	}

	var out row
	err = postgres.Get(ctx, q, &out, postgres.Builder().
		Insert("sections").
		Columns(columns...).
		Values(s.ID, s.ProjectID, s.Name, content, string(s.Status), s.LastEditorID, s.CreatedAt, s.UpdatedAt).
		Suffix(`ON CONFLICT (project_id, name) DO UPDATE SET
			content = EXCLUDED.content,
			last_editor_id = EXCLUDED.last_editor_id,
			updated_at = EXCLUDED.updated_at
			RETURNING `+strings.Join(columns, ", ")))
	if err != nil {
		return nil, postgres.MapError(err, "section", s.Name)
	}
	return out.toDomain()
}

// GetByID returns a section by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Section, error) {
	return r.get(ctx, sq.Eq{"id": id}, id, false)
}

// GetForUpdate returns a section and locks its row until the surrounding
// transaction ends. The lock serializes artifact version assignment and
// status transitions of the section.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Section, error) {
	return r.get(ctx, sq.Eq{"id": id}, id, true)
}

// GetByName returns the section of a project with the given name.
func (r *Repo) GetByName(ctx context.Context, projectID uuid.UUID, name string) (*domain.Section, error) {
	return r.get(ctx, sq.Eq{"project_id": projectID, "name": name}, name, false)
}

func (r *Repo) get(ctx context.Context, where sq.Eq, key any, lock bool) (*domain.Section, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Select(columns...).
		From("sections").
		Where(where)
	if lock {
		b = b.Suffix("FOR UPDATE")
	}

	var out row
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		return nil, postgres.MapError(err, "section", key)
	}
	return out.toDomain()
}

// ListByProject returns all sections of a project ordered by name.
func (r *Repo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Section, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []row
	err := postgres.Select(ctx, q, &rows, postgres.Builder().
		Select(columns...).
		From("sections").
		Where(sq.Eq{"project_id": projectID}).
		OrderBy("name ASC"))
	if err != nil {
		return nil, postgres.MapError(err, "sections", projectID)
	}

	sections := make([]domain.Section, 0, len(rows))
	for _, rw := range rows {
		s, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		sections = append(sections, *s)
	}
	return sections, nil
}

// UpdateStatus sets the workflow status of a section.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SectionStatus) (*domain.Section, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	err := postgres.Get(ctx, q, &out, postgres.Builder().
		Update("sections").
		Set("status", string(status)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING "+strings.Join(columns, ", ")))
	if err != nil {
		return nil, postgres.MapError(err, "section", id)
	}
	return out.toDomain()
}

// ---------------------------------------------------------------------------
// Status events
// ---------------------------------------------------------------------------

// CreateStatusEvent appends a section status event.
func (r *Repo) CreateStatusEvent(ctx context.Context, e domain.SectionStatusEvent) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := postgres.Exec(ctx, q, postgres.Builder().
		Insert("section_status_events").
		Columns(eventColumns...).
		Values(e.ID, e.SectionID, string(e.Status), e.ActorID, e.Note, e.CreatedAt))
	if err != nil {
		return postgres.MapError(err, "section_status_event", e.ID)
	}
	return nil
}

// ListStatusEvents returns the status history of a section, oldest first.
func (r *Repo) ListStatusEvents(ctx context.Context, sectionID uuid.UUID) ([]domain.SectionStatusEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []eventRow
	err := postgres.Select(ctx, q, &rows, postgres.Builder().
		Select(eventColumns...).
		From("section_status_events").
		Where(sq.Eq{"section_id": sectionID}).
		OrderBy("created_at ASC", "id ASC"))
	if err != nil {
		return nil, postgres.MapError(err, "section_status_events", sectionID)
	}

	events := make([]domain.SectionStatusEvent, len(rows))
	for i, rw := range rows {
		events[i] = domain.SectionStatusEvent{
			ID:        rw.ID,
			SectionID: rw.SectionID,
			Status:    domain.SectionStatus(rw.Status),
			ActorID:   rw.ActorID,
			Note:      rw.Note,
			CreatedAt: rw.CreatedAt,
		}
	}
	return events, nil
}

func marshalContent(c domain.Content) ([]byte, error) {
	if c == nil {
		c = domain.Content{}
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("section marshal content: %w", err)
	}
	return b, nil
}
