// Package quota enforces the monthly plan limits of quota-limited actions.
package quota

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

type usageRepo interface {
	EnsureRow(ctx context.Context, companyID uuid.UUID, month string) error
	GetForUpdate(ctx context.Context, companyID uuid.UUID, month string) (*domain.CompanyUsage, error)
	Get(ctx context.Context, companyID uuid.UUID, month string) (*domain.CompanyUsage, error)
	Increment(ctx context.Context, companyID uuid.UUID, month string, kind domain.QuotaKind, amount int) (*domain.CompanyUsage, error)
}

type companyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Plans resolves plan limits. config.QuotaConfig implements it.
type Plans interface {
	Limits(plan domain.Plan) domain.PlanLimits
	Personal() domain.Plan
}

// Service checks and records quota consumption per company and month.
type Service struct {
	usage     usageRepo
	companies companyRepo
	users     userRepo
	plans     Plans
	tx        txManager
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new Quota service.
func NewService(
	log *slog.Logger,
	usage usageRepo,
	companies companyRepo,
	users userRepo,
	plans Plans,
	tx txManager,
) *Service {
	return &Service{
		usage:     usage,
		companies: companies,
		users:     users,
		plans:     plans,
		tx:        tx,
		log:       log.With("service", "quota"),
		now:       time.Now,
	}
}
