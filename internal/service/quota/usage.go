package quota

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
	"github.com/heartmarshall/dossier-backend/pkg/ctxutil"
)

// Usage returns the current month's counters and limits of a company.
// Only members of the company may read it.
func (s *Service) Usage(ctx context.Context, companyID uuid.UUID) (*domain.UsageReport, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	actor, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get actor: %w", err)
	}
	if !actor.InCompany(&companyID) {
		return nil, domain.ErrForbidden
	}

	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}

	month := domain.MonthKey(s.now())
	row, err := s.usage.Get(ctx, companyID, month)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		row = &domain.CompanyUsage{CompanyID: companyID, Month: month}
	case err != nil:
		return nil, fmt.Errorf("get usage: %w", err)
	}

	limits := s.plans.Limits(company.Plan)
	return &domain.UsageReport{
		CompanyID:     companyID,
		Plan:          company.Plan,
		Month:         month,
		DocsGenerated: row.DocsGenerated,
		DocsLimit:     limits.Docs,
		TrustAnalyses: row.TrustAnalyses,
		TrustLimit:    limits.Trust,
	}, nil
}
