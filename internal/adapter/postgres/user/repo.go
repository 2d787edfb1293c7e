// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dossier-backend/internal/domain"
)

var columns = []string{"id", "email", "name", "company_id", "role", "created_at", "updated_at"}

type row struct {
	ID        uuid.UUID  `db:"id"`
	Email     string     `db:"email"`
	Name      string     `db:"name"`
	CompanyID *uuid.UUID `db:"company_id"`
	Role      string     `db:"role"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

func (r row) toDomain() *domain.User {
	return &domain.User{
		ID:        r.ID,
		Email:     r.Email,
		Name:      r.Name,
		CompanyID: r.CompanyID,
		Role:      domain.UserRole(r.Role),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a user.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	err := postgres.Get(ctx, q, &out, postgres.Builder().
		Insert("users").
		Columns(columns...).
		Values(u.ID, u.Email, u.Name, u.CompanyID, string(u.Role), u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING "+strings.Join(columns, ", ")))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return out.toDomain(), nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	err := postgres.Get(ctx, q, &out, postgres.Builder().
		Select(columns...).
		From("users").
		Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return out.toDomain(), nil
}

// GetByIDs returns the users with the given ids in no particular order.
// Unknown ids are skipped. Used by the request-scoped user loader.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []row
	err := postgres.Select(ctx, q, &rows, postgres.Builder().
		Select(columns...).
		From("users").
		Where(sq.Eq{"id": ids}))
	if err != nil {
		return nil, postgres.MapError(err, "users", len(ids))
	}

	users := make([]domain.User, len(rows))
	for i, rw := range rows {
		users[i] = *rw.toDomain()
	}
	return users, nil
}
