// Package artifact implements the evidence Artifact repository using PostgreSQL.
package artifact

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dossier-backend/internal/domain"
)

var columns = []string{
	"id", "section_id", "project_id", "version", "checksum", "citation_key",
	"original_name", "size", "mime_type", "description", "purpose", "storage_key",
	"status", "review_comment", "reviewed_by_id", "reviewed_at",
	"previous_artifact_id", "uploaded_by_id", "created_at",
}

type row struct {
	ID                 uuid.UUID  `db:"id"`
	SectionID          uuid.UUID  `db:"section_id"`
	ProjectID          uuid.UUID  `db:"project_id"`
	Version            int        `db:"version"`
	Checksum           string     `db:"checksum"`
	CitationKey        string     `db:"citation_key"`
	OriginalName       string     `db:"original_name"`
	Size               int64      `db:"size"`
	MimeType           string     `db:"mime_type"`
	Description        *string    `db:"description"`
	Purpose            string     `db:"purpose"`
	StorageKey         string     `db:"storage_key"`
	Status             string     `db:"status"`
	ReviewComment      *string    `db:"review_comment"`
	ReviewedByID       *uuid.UUID `db:"reviewed_by_id"`
	ReviewedAt         *time.Time `db:"reviewed_at"`
	PreviousArtifactID *uuid.UUID `db:"previous_artifact_id"`
	UploadedByID       uuid.UUID  `db:"uploaded_by_id"`
	CreatedAt          time.Time  `db:"created_at"`
}

func (r row) toDomain() *domain.Artifact {
	return &domain.Artifact{
		ID:                 r.ID,
		SectionID:          r.SectionID,
		ProjectID:          r.ProjectID,
		Version:            r.Version,
		Checksum:           r.Checksum,
		CitationKey:        r.CitationKey,
		OriginalName:       r.OriginalName,
		Size:               r.Size,
		MimeType:           r.MimeType,
		Description:        r.Description,
		Purpose:            domain.ArtifactPurpose(r.Purpose),
		StorageKey:         r.StorageKey,
		Status:             domain.ArtifactStatus(r.Status),
		ReviewComment:      r.ReviewComment,
		ReviewedByID:       r.ReviewedByID,
		ReviewedAt:         r.ReviewedAt,
		PreviousArtifactID: r.PreviousArtifactID,
		UploadedByID:       r.UploadedByID,
		CreatedAt:          r.CreatedAt,
	}
}

// Repo provides artifact persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new artifact repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert stores a new artifact version. The unique constraint on
// (section_id, version) rejects a duplicate version with ErrAlreadyExists.
func (r *Repo) Insert(ctx context.Context, a domain.Artifact) (*domain.Artifact, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	err := postgres.Get(ctx, q, &out, postgres.Builder().
		Insert("artifacts").
		Columns(columns...).
		Values(
			a.ID, a.SectionID, a.ProjectID, a.Version, a.Checksum, a.CitationKey,
			a.OriginalName, a.Size, a.MimeType, a.Description, string(a.Purpose), a.StorageKey,
			string(a.Status), a.ReviewComment, a.ReviewedByID, a.ReviewedAt,
			a.PreviousArtifactID, a.UploadedByID, a.CreatedAt,
		).
		Suffix("RETURNING "+strings.Join(columns, ", ")))
	if err != nil {
		return nil, postgres.MapError(err, "artifact", a.ID)
	}
	return out.toDomain(), nil
}

// UpdateReview stores the review outcome of an artifact.
func (r *Repo) UpdateReview(ctx context.Context, a domain.Artifact) (*domain.Artifact, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	err := postgres.Get(ctx, q, &out, postgres.Builder().
		Update("artifacts").
		Set("status", string(a.Status)).
		Set("review_comment", a.ReviewComment).
		Set("reviewed_by_id", a.ReviewedByID).
		Set("reviewed_at", a.ReviewedAt).
		Where(sq.Eq{"id": a.ID}).
		Suffix("RETURNING "+strings.Join(columns, ", ")))
	if err != nil {
		return nil, postgres.MapError(err, "artifact", a.ID)
	}
	return out.toDomain(), nil
}

// Delete removes an artifact row.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("artifacts").
		Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "artifact", id)
	}
	if n == 0 {
		return fmt.Errorf("artifact %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an artifact by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Artifact, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	err := postgres.Get(ctx, q, &out, postgres.Builder().
		Select(columns...).
		From("artifacts").
		Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, postgres.MapError(err, "artifact", id)
	}
	return out.toDomain(), nil
}

// GetHead returns the highest version of a section's lineage,
// or ErrNotFound when the section has no artifacts.
func (r *Repo) GetHead(ctx context.Context, sectionID uuid.UUID) (*domain.Artifact, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	err := postgres.Get(ctx, q, &out, postgres.Builder().
		Select(columns...).
		From("artifacts").
		Where(sq.Eq{"section_id": sectionID}).
		OrderBy("version DESC").
		Limit(1))
	if err != nil {
		return nil, postgres.MapError(err, "artifact head of section", sectionID)
	}
	return out.toDomain(), nil
}

// HasNewer reports whether the lineage of a section holds a version
// strictly greater than version.
func (r *Repo) HasNewer(ctx context.Context, sectionID uuid.UUID, version int) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var exists bool
	err := postgres.Get(ctx, q, &exists, postgres.Builder().
		Select().
		Column(sq.Expr("EXISTS (SELECT 1 FROM artifacts WHERE section_id = ? AND version > ?)", sectionID, version)))
	if err != nil {
		return false, postgres.MapError(err, "artifact lineage", sectionID)
	}
	return exists, nil
}

// ListBySection returns the lineage of a section ordered by version.
func (r *Repo) ListBySection(ctx context.Context, sectionID uuid.UUID) ([]domain.Artifact, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []row
	err := postgres.Select(ctx, q, &rows, postgres.Builder().
		Select(columns...).
		From("artifacts").
		Where(sq.Eq{"section_id": sectionID}).
		OrderBy("version ASC"))
	if err != nil {
		return nil, postgres.MapError(err, "artifacts", sectionID)
	}

	out := make([]domain.Artifact, len(rows))
	for i, rw := range rows {
		out[i] = *rw.toDomain()
	}
	return out, nil
}

type statusCount struct {
	Status string `db:"status"`
	N      int    `db:"n"`
}

// HeadSummary counts the lineage heads of all sections of a project by review status.
func (r *Repo) HeadSummary(ctx context.Context, projectID uuid.UUID) (domain.EvidenceSummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	heads := postgres.Builder().
		Select("DISTINCT ON (section_id) status").
		From("artifacts").
		Where(sq.Eq{"project_id": projectID}).
		OrderBy("section_id", "version DESC")

	var counts []statusCount
	err := postgres.Select(ctx, q, &counts, postgres.Builder().
		Select("h.status", "count(*) AS n").
		FromSelect(heads, "h").
		GroupBy("h.status"))
	if err != nil {
		return domain.EvidenceSummary{}, postgres.MapError(err, "artifact summary of project", projectID)
	}

	var summary domain.EvidenceSummary
	for _, c := range counts {
		switch domain.ArtifactStatus(c.Status) {
		case domain.ArtifactStatusPending:
			summary.Pending = c.N
		case domain.ArtifactStatusApproved:
			summary.Approved = c.N
		case domain.ArtifactStatusRejected:
			summary.Rejected = c.N
		}
	}
	return summary, nil
}
