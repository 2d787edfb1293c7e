// Package project implements the Project repository using PostgreSQL.
// It also owns the append-only project_status_events table.
package project

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dossier-backend/internal/domain"
)

var columns = []string{
	"id", "company_id", "owner_id", "name", "reviewer_id", "approver_id",
	"status", "created_at", "updated_at",
}

var eventColumns = []string{"id", "project_id", "status", "actor_id", "note", "signature", "created_at"}

type row struct {
	ID         uuid.UUID  `db:"id"`
	CompanyID  *uuid.UUID `db:"company_id"`
	OwnerID    uuid.UUID  `db:"owner_id"`
	Name       string     `db:"name"`
	ReviewerID *uuid.UUID `db:"reviewer_id"`
	ApproverID *uuid.UUID `db:"approver_id"`
	Status     string     `db:"status"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

func (r row) toDomain() *domain.Project {
	return &domain.Project{
		ID:         r.ID,
		CompanyID:  r.CompanyID,
		OwnerID:    r.OwnerID,
		Name:       r.Name,
		ReviewerID: r.ReviewerID,
		ApproverID: r.ApproverID,
		Status:     domain.ProjectStatus(r.Status),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

type eventRow struct {
	ID        uuid.UUID `db:"id"`
	ProjectID uuid.UUID `db:"project_id"`
	Status    string    `db:"status"`
	ActorID   uuid.UUID `db:"actor_id"`
	Note      *string   `db:"note"`
	Signature *string   `db:"signature"`
	CreatedAt time.Time `db:"created_at"`
}

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new project repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Projects
// ---------------------------------------------------------------------------

// Create inserts a project.
func (r *Repo) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	err := postgres.Get(ctx, q, &out, postgres.Builder().
		Insert("projects").
		Columns(columns...).
		Values(p.ID, p.CompanyID, p.OwnerID, p.Name, p.ReviewerID, p.ApproverID,
			string(p.Status), p.CreatedAt, p.UpdatedAt).
		Suffix("RETURNING "+strings.Join(columns, ", ")))
	if err != nil {
		return nil, postgres.MapError(err, "project", p.ID)
	}
	return out.toDomain(), nil
}

// GetByID returns a project by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate returns a project and locks its row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, lock bool) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Select(columns...).
		From("projects").
		Where(sq.Eq{"id": id})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}

	var out row
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return out.toDomain(), nil
}

// UpdateWorkflow persists status and reviewer/approver assignment.
func (r *Repo) UpdateWorkflow(ctx context.Context, p domain.Project) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	err := postgres.Get(ctx, q, &out, postgres.Builder().
		Update("projects").
		Set("status", string(p.Status)).
		Set("reviewer_id", p.ReviewerID).
		Set("approver_id", p.ApproverID).
		Set("updated_at", p.UpdatedAt).
		Where(sq.Eq{"id": p.ID}).
		Suffix("RETURNING "+strings.Join(columns, ", ")))
	if err != nil {
		return nil, postgres.MapError(err, "project", p.ID)
	}
	return out.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Status events
// ---------------------------------------------------------------------------

// CreateStatusEvent appends a project status event.
func (r *Repo) CreateStatusEvent(ctx context.Context, e domain.ProjectStatusEvent) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := postgres.Exec(ctx, q, postgres.Builder().
		Insert("project_status_events").
		Columns(eventColumns...).
		Values(e.ID, e.ProjectID, string(e.Status), e.ActorID, e.Note, e.Signature, e.CreatedAt))
	if err != nil {
		return postgres.MapError(err, "project_status_event", e.ID)
	}
	return nil
}

// ListStatusEvents returns the status history of a project, oldest first.
func (r *Repo) ListStatusEvents(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectStatusEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []eventRow
	err := postgres.Select(ctx, q, &rows, postgres.Builder().
		Select(eventColumns...).
		From("project_status_events").
		Where(sq.Eq{"project_id": projectID}).
		OrderBy("created_at ASC", "id ASC"))
	if err != nil {
		return nil, postgres.MapError(err, "project_status_events", projectID)
	}

	events := make([]domain.ProjectStatusEvent, len(rows))
	for i, rw := range rows {
		events[i] = domain.ProjectStatusEvent{
			ID:        rw.ID,
			ProjectID: rw.ProjectID,
			Status:    domain.ProjectStatus(rw.Status),
			ActorID:   rw.ActorID,
			Note:      rw.Note,
			Signature: rw.Signature,
			CreatedAt: rw.CreatedAt,
		}
	}
	return events, nil
}
