package domain

import (
	"time"

	"github.com/google/uuid"
)

// Company is a tenant. Usage quotas and reviewer boundaries are per company.
type Company struct {
	ID        uuid.UUID
	Name      string
	Plan      Plan
	CreatedAt time.Time
	UpdatedAt time.Time
}

// User is an account that edits sections or reviews projects.
// CompanyID is nil for personal accounts.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CompanyID *uuid.UUID
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InCompany reports whether the user belongs to the given company.
// A nil company is no company: personal accounts share no membership.
func (u *User) InCompany(companyID *uuid.UUID) bool {
	return sameCompany(u.CompanyID, companyID)
}

// CanReviewIn reports whether the user has reviewer capability for
// resources owned by the given company.
func (u *User) CanReviewIn(companyID *uuid.UUID) bool {
	return u.Role.CanReview() && u.InCompany(companyID)
}

func sameCompany(a, b *uuid.UUID) bool {
	return a != nil && b != nil && *a == *b
}

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
