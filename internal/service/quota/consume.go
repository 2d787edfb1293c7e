package quota

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

// CheckAndConsume records amount units of kind against the company's
// current month, or fails with a *domain.PaywallError when the plan limit
// would be exceeded. The counter row is locked for the check, so concurrent
// callers never push it past the limit.
//
// A nil companyID is a personal project: the personal plan limit is checked
// but nothing is persisted.
func (s *Service) CheckAndConsume(ctx context.Context, companyID *uuid.UUID, kind domain.QuotaKind, amount int) error {
	if err := validateConsume(kind, amount); err != nil {
		return err
	}

	if companyID == nil {
		return s.checkPersonal(ctx, kind, amount)
	}

	company, err := s.companies.GetByID(ctx, *companyID)
	if err != nil {
		return fmt.Errorf("get company: %w", err)
	}

	limit := s.plans.Limits(company.Plan).Get(kind)
	month := domain.MonthKey(s.now())

	var used *domain.CompanyUsage
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.usage.EnsureRow(txCtx, company.ID, month); err != nil {
			return fmt.Errorf("ensure usage row: %w", err)
		}

		current, err := s.usage.GetForUpdate(txCtx, company.ID, month)
		if err != nil {
			return fmt.Errorf("lock usage row: %w", err)
		}

		if !domain.Allows(limit, current.Get(kind), amount) {
			return &domain.PaywallError{
				Kind:  kind,
				Plan:  company.Plan,
				Limit: limit,
				Usage: current.Get(kind),
			}
		}

		used, err = s.usage.Increment(txCtx, company.ID, month, kind, amount)
		if err != nil {
			return fmt.Errorf("increment usage: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "quota consumed",
		slog.String("company_id", company.ID.String()),
		slog.String("kind", kind.String()),
		slog.String("month", month),
		slog.Int("usage", used.Get(kind)),
		slog.Int("limit", limit),
	)

	return nil
}

func (s *Service) checkPersonal(ctx context.Context, kind domain.QuotaKind, amount int) error {
	plan := s.plans.Personal()
	limit := s.plans.Limits(plan).Get(kind)
	if !domain.Allows(limit, 0, amount) {
		return &domain.PaywallError{Kind: kind, Plan: plan, Limit: limit, Usage: 0}
	}

	s.log.WarnContext(ctx, "quota not tracked for personal project",
		slog.String("kind", kind.String()),
		slog.String("plan", plan.String()),
	)
	return nil
}
