// Package usage implements the monthly CompanyUsage ledger using PostgreSQL.
package usage

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dossier-backend/internal/domain"
)

var columns = []string{"company_id", "month", "docs_generated", "trust_analyses"}

type row struct {
	CompanyID     uuid.UUID `db:"company_id"`
	Month         string    `db:"month"`
	DocsGenerated int       `db:"docs_generated"`
	TrustAnalyses int       `db:"trust_analyses"`
}

func (r row) toDomain() *domain.CompanyUsage {
	return &domain.CompanyUsage{
		CompanyID:     r.CompanyID,
		Month:         r.Month,
		DocsGenerated: r.DocsGenerated,
		TrustAnalyses: r.TrustAnalyses,
	}
}

// Repo provides usage counter persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new usage repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// EnsureRow creates the zeroed usage row of a month if it does not exist yet.
func (r *Repo) EnsureRow(ctx context.Context, companyID uuid.UUID, month string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := postgres.Exec(ctx, q, postgres.Builder().
		Insert("company_usage").
		Columns("company_id", "month").
		Values(companyID, month).
		Suffix("ON CONFLICT (company_id, month) DO NOTHING"))
	if err != nil {
		return postgres.MapError(err, "company_usage", companyID)
	}
	return nil
}

// GetForUpdate returns the usage row and locks it until the surrounding
// transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, companyID uuid.UUID, month string) (*domain.CompanyUsage, error) {
	return r.get(ctx, companyID, month, true)
}

// Get returns the usage row of a month or ErrNotFound when nothing was consumed yet.
func (r *Repo) Get(ctx context.Context, companyID uuid.UUID, month string) (*domain.CompanyUsage, error) {
	return r.get(ctx, companyID, month, false)
}

func (r *Repo) get(ctx context.Context, companyID uuid.UUID, month string, lock bool) (*domain.CompanyUsage, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Select(columns...).
		From("company_usage").
		Where(sq.Eq{"company_id": companyID, "month": month})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}

	var out row
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		return nil, postgres.MapError(err, "company_usage", companyID)
	}
	return out.toDomain(), nil
}

// Increment adds amount to the counter of kind and returns the updated row.
func (r *Repo) Increment(ctx context.Context, companyID uuid.UUID, month string, kind domain.QuotaKind, amount int) (*domain.CompanyUsage, error) {
	col, err := counterColumn(kind)
	if err != nil {
		return nil, err
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	err = postgres.Get(ctx, q, &out, postgres.Builder().
		Update("company_usage").
		Set(col, sq.Expr(col+" + ?", amount)).
		Where(sq.Eq{"company_id": companyID, "month": month}).
		Suffix("RETURNING company_id, month, docs_generated, trust_analyses"))
	if err != nil {
		return nil, postgres.MapError(err, "company_usage", companyID)
	}
	return out.toDomain(), nil
}

func counterColumn(kind domain.QuotaKind) (string, error) {
	switch kind {
	case domain.QuotaKindDocGen:
		return "docs_generated", nil
	case domain.QuotaKindTrust:
		return "trust_analyses", nil
	}
	return "", domain.NewValidationError("kind", "unknown quota kind")
}
