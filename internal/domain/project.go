package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project is an AI-system dossier moving through the review cycle.
// CompanyID is nil for personal projects.
type Project struct {
	ID         uuid.UUID
	CompanyID  *uuid.UUID
	OwnerID    uuid.UUID
	Name       string
	ReviewerID *uuid.UUID
	ApproverID *uuid.UUID
	Status     ProjectStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CanGenerate reports whether compliance documents may be generated.
func (p *Project) CanGenerate() bool {
	return p.Status == ProjectStatusApproved
}

// EditableBy reports whether u may edit sections and evidence of the project:
// the owner, or any member of the owning company.
func (p *Project) EditableBy(u *User) bool {
	if p.OwnerID == u.ID {
		return true
	}
	return p.CompanyID != nil && u.InCompany(p.CompanyID)
}

// ReviewableBy reports whether u may review the project and its evidence.
// Company projects accept any reviewer-capable member of the company.
// A personal project accepts only its assigned reviewer or approver.
func (p *Project) ReviewableBy(u *User) bool {
	if p.CompanyID != nil {
		return u.CanReviewIn(p.CompanyID)
	}
	return u.Role.CanReview() && p.assigned(u.ID)
}

// AcceptsReviewer reports whether u may be assigned as reviewer or approver.
// The owner of a personal project may invite a reviewer-capable personal
// account; company projects take reviewers from the company only.
func (p *Project) AcceptsReviewer(u *User) bool {
	if !u.Role.CanReview() {
		return false
	}
	if p.CompanyID != nil {
		return u.InCompany(p.CompanyID)
	}
	return u.CompanyID == nil
}

func (p *Project) assigned(userID uuid.UUID) bool {
	return (p.ReviewerID != nil && *p.ReviewerID == userID) ||
		(p.ApproverID != nil && *p.ApproverID == userID)
}

// ProjectStatusEvent is an append-only record of a project status change.
// Signature is set only on the transition into APPROVED.
type ProjectStatusEvent struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Status    ProjectStatus
	ActorID   uuid.UUID
	Note      *string
	Signature *string
	CreatedAt time.Time
}

// SectionReadiness is the completeness of one trackable section.
type SectionReadiness struct {
	Name          string
	SectionID     *uuid.UUID
	MissingFields []string
}

// ProjectReadiness describes what blocks a project from review or approval.
type ProjectReadiness struct {
	ProjectID uuid.UUID
	Status    ProjectStatus
	Sections  []SectionReadiness
	Evidence  EvidenceSummary
}

// Complete reports whether every trackable section has all required fields.
func (r ProjectReadiness) Complete() bool {
	for _, s := range r.Sections {
		if len(s.MissingFields) > 0 {
			return false
		}
	}
	return true
}

// ReviewRequest is handed to the notification collaborator after a project
// enters review.
type ReviewRequest struct {
	ProjectID   uuid.UUID
	ProjectName string
	RequestedBy uuid.UUID
	ReviewerID  uuid.UUID
	ApproverID  *uuid.UUID
	Message     *string
}
