package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
	"github.com/heartmarshall/dossier-backend/internal/service/generation"
)

type sectionResponse struct {
	ID            uuid.UUID      `json:"id"`
	ProjectID     uuid.UUID      `json:"projectId"`
	Name          string         `json:"name"`
	Content       domain.Content `json:"content"`
	Status        string         `json:"status"`
	LastEditorID  *uuid.UUID     `json:"lastEditorId,omitempty"`
	MissingFields []string       `json:"missingFields,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func toSectionResponse(s *domain.Section) sectionResponse {
	return sectionResponse{
		ID:           s.ID,
		ProjectID:    s.ProjectID,
		Name:         s.Name,
		Content:      s.Content,
		Status:       s.Status.String(),
		LastEditorID: s.LastEditorID,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// statusEventResponse is one entry of a section or project history.
type statusEventResponse struct {
	ID        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	ActorID   uuid.UUID `json:"actorId"`
	ActorName string    `json:"actorName,omitempty"`
	Note      *string   `json:"note,omitempty"`
	Signature *string   `json:"signature,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type artifactResponse struct {
	ID                 uuid.UUID  `json:"id"`
	SectionID          uuid.UUID  `json:"sectionId"`
	ProjectID          uuid.UUID  `json:"projectId"`
	Version            int        `json:"version"`
	Checksum           string     `json:"checksum"`
	CitationKey        string     `json:"citationKey"`
	OriginalName       string     `json:"originalName"`
	Size               int64      `json:"size"`
	MimeType           string     `json:"mimeType"`
	Description        *string    `json:"description,omitempty"`
	Purpose            string     `json:"purpose"`
	Status             string     `json:"status"`
	ReviewComment      *string    `json:"reviewComment,omitempty"`
	ReviewedByID       *uuid.UUID `json:"reviewedById,omitempty"`
	ReviewedAt         *time.Time `json:"reviewedAt,omitempty"`
	PreviousArtifactID *uuid.UUID `json:"previousArtifactId,omitempty"`
	UploadedByID       uuid.UUID  `json:"uploadedById"`
	CreatedAt          time.Time  `json:"createdAt"`
}

func toArtifactResponse(a *domain.Artifact) artifactResponse {
	return artifactResponse{
		ID:                 a.ID,
		SectionID:          a.SectionID,
		ProjectID:          a.ProjectID,
		Version:            a.Version,
		Checksum:           a.Checksum,
		CitationKey:        a.CitationKey,
		OriginalName:       a.OriginalName,
		Size:               a.Size,
		MimeType:           a.MimeType,
		Description:        a.Description,
		Purpose:            a.Purpose.String(),
		Status:             a.Status.String(),
		ReviewComment:      a.ReviewComment,
		ReviewedByID:       a.ReviewedByID,
		ReviewedAt:         a.ReviewedAt,
		PreviousArtifactID: a.PreviousArtifactID,
		UploadedByID:       a.UploadedByID,
		CreatedAt:          a.CreatedAt,
	}
}

type projectResponse struct {
	ID         uuid.UUID  `json:"id"`
	CompanyID  *uuid.UUID `json:"companyId,omitempty"`
	OwnerID    uuid.UUID  `json:"ownerId"`
	Name       string     `json:"name"`
	ReviewerID *uuid.UUID `json:"reviewerId,omitempty"`
	ApproverID *uuid.UUID `json:"approverId,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:         p.ID,
		CompanyID:  p.CompanyID,
		OwnerID:    p.OwnerID,
		Name:       p.Name,
		ReviewerID: p.ReviewerID,
		ApproverID: p.ApproverID,
		Status:     p.Status.String(),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

type evidenceResponse struct {
	Pending     int  `json:"pending"`
	Approved    int  `json:"approved"`
	Rejected    int  `json:"rejected"`
	AllApproved bool `json:"allApproved"`
}

type sectionReadinessResponse struct {
	Name          string     `json:"name"`
	SectionID     *uuid.UUID `json:"sectionId,omitempty"`
	MissingFields []string   `json:"missingFields"`
}

type readinessResponse struct {
	ProjectID uuid.UUID                  `json:"projectId"`
	Status    string                     `json:"status"`
	Complete  bool                       `json:"complete"`
	Sections  []sectionReadinessResponse `json:"sections"`
	Evidence  evidenceResponse           `json:"evidence"`
}

func toReadinessResponse(r *domain.ProjectReadiness) readinessResponse {
	sections := make([]sectionReadinessResponse, len(r.Sections))
	for i, s := range r.Sections {
		sections[i] = sectionReadinessResponse{Name: s.Name, SectionID: s.SectionID, MissingFields: s.MissingFields}
	}
	return readinessResponse{
		ProjectID: r.ProjectID,
		Status:    r.Status.String(),
		Complete:  r.Complete(),
		Sections:  sections,
		Evidence: evidenceResponse{
			Pending:     r.Evidence.Pending,
			Approved:    r.Evidence.Approved,
			Rejected:    r.Evidence.Rejected,
			AllApproved: r.Evidence.AllApproved(),
		},
	}
}

type snapshotResponse struct {
	SectionID uuid.UUID      `json:"sectionId"`
	Content   domain.Content `json:"content"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type recoveryResponse struct {
	Snapshot *snapshotResponse `json:"snapshot"`
	Offer    bool              `json:"offer"`
}

func toSnapshotResponse(s *domain.AutosaveSnapshot) *snapshotResponse {
	if s == nil {
		return nil
	}
	return &snapshotResponse{SectionID: s.SectionID, Content: s.Content, UpdatedAt: s.UpdatedAt}
}

type usageResponse struct {
	CompanyID     uuid.UUID `json:"companyId"`
	Plan          string    `json:"plan"`
	Month         string    `json:"month"`
	DocsGenerated int       `json:"docsGenerated"`
	DocsLimit     int       `json:"docsLimit"`
	TrustAnalyses int       `json:"trustAnalyses"`
	TrustLimit    int       `json:"trustLimit"`
}

func toUsageResponse(u *domain.UsageReport) usageResponse {
	return usageResponse{
		CompanyID:     u.CompanyID,
		Plan:          string(u.Plan),
		Month:         u.Month,
		DocsGenerated: u.DocsGenerated,
		DocsLimit:     u.DocsLimit,
		TrustAnalyses: u.TrustAnalyses,
		TrustLimit:    u.TrustLimit,
	}
}

type jobResponse struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"projectId"`
	Kind        string    `json:"kind"`
	RequestedBy uuid.UUID `json:"requestedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toJobResponse(j *generation.Job) jobResponse {
	return jobResponse{
		ID:          j.ID,
		ProjectID:   j.ProjectID,
		Kind:        string(j.Kind),
		RequestedBy: j.RequestedBy,
		CreatedAt:   j.CreatedAt,
	}
}
