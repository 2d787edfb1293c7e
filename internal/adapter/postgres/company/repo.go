// Package company implements the Company repository using PostgreSQL.
package company

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dossier-backend/internal/domain"
)

var columns = []string{"id", "name", "plan", "created_at", "updated_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Plan      string    `db:"plan"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.Company {
	return &domain.Company{
		ID:        r.ID,
		Name:      r.Name,
		Plan:      domain.Plan(r.Plan),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Repo provides company persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new company repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a company.
func (r *Repo) Create(ctx context.Context, c domain.Company) (*domain.Company, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	err := postgres.Get(ctx, q, &out, postgres.Builder().
		Insert("companies").
		Columns(columns...).
		Values(c.ID, c.Name, string(c.Plan), c.CreatedAt, c.UpdatedAt).
		Suffix("RETURNING "+strings.Join(columns, ", ")))
	if err != nil {
		return nil, postgres.MapError(err, "company", c.ID)
	}
	return out.toDomain(), nil
}

// GetByID returns a company by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	err := postgres.Get(ctx, q, &out, postgres.Builder().
		Select(columns...).
		From("companies").
		Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, postgres.MapError(err, "company", id)
	}
	return out.toDomain(), nil
}
