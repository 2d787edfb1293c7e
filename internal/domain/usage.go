package domain

import (
	"time"

	"github.com/google/uuid"
)

// Unlimited marks a quota without an upper bound.
const Unlimited = -1

// MonthFormat is the layout of CompanyUsage.Month.
const MonthFormat = "2006-01"

// MonthKey returns the usage month of t in UTC, e.g. "2026-10".
func MonthKey(t time.Time) string {
	return t.UTC().Format(MonthFormat)
}

// CompanyUsage is the monthly usage ledger row of a company.
type CompanyUsage struct {
	CompanyID     uuid.UUID
	Month         string
	DocsGenerated int
	TrustAnalyses int
}

// Get returns the counter for kind.
func (u CompanyUsage) Get(kind QuotaKind) int {
	switch kind {
	case QuotaKindDocGen:
		return u.DocsGenerated
	case QuotaKindTrust:
		return u.TrustAnalyses
	}
	return 0
}

// PlanLimits holds the monthly limits of one plan. Unlimited means no bound.
type PlanLimits struct {
	Docs  int
	Trust int
}

// Get returns the limit for kind.
func (l PlanLimits) Get(kind QuotaKind) int {
	switch kind {
	case QuotaKindDocGen:
		return l.Docs
	case QuotaKindTrust:
		return l.Trust
	}
	return 0
}

// Allows reports whether consuming amount on top of usage stays within limit.
func Allows(limit, usage, amount int) bool {
	if limit == Unlimited {
		return true
	}
	return usage+amount <= limit
}

// UsageReport is the billing view of a company for the current month.
type UsageReport struct {
	CompanyID     uuid.UUID
	Plan          Plan
	Month         string
	DocsGenerated int
	DocsLimit     int
	TrustAnalyses int
	TrustLimit    int
}
