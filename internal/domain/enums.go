package domain

// SectionStatus represents the review state of a dossier section.
type SectionStatus string

const (
	SectionStatusDraft    SectionStatus = "DRAFT"
	SectionStatusInReview SectionStatus = "IN_REVIEW"
	SectionStatusApproved SectionStatus = "APPROVED"
)

func (s SectionStatus) String() string { return string(s) }

func (s SectionStatus) IsValid() bool {
	switch s {
	case SectionStatusDraft, SectionStatusInReview, SectionStatusApproved:
		return true
	}
	return false
}

// ProjectStatus represents the review state of a whole project.
type ProjectStatus string

const (
	ProjectStatusDraft            ProjectStatus = "DRAFT"
	ProjectStatusInReview         ProjectStatus = "IN_REVIEW"
	ProjectStatusApproved         ProjectStatus = "APPROVED"
	ProjectStatusChangesRequested ProjectStatus = "CHANGES_REQUESTED"
)

func (s ProjectStatus) String() string { return string(s) }

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusDraft, ProjectStatusInReview, ProjectStatusApproved, ProjectStatusChangesRequested:
		return true
	}
	return false
}

// ArtifactStatus is the per-artifact approval state set by reviewers.
type ArtifactStatus string

const (
	ArtifactStatusPending  ArtifactStatus = "PENDING"
	ArtifactStatusApproved ArtifactStatus = "APPROVED"
	ArtifactStatusRejected ArtifactStatus = "REJECTED"
)

func (s ArtifactStatus) String() string { return string(s) }

func (s ArtifactStatus) IsValid() bool {
	switch s {
	case ArtifactStatusPending, ArtifactStatusApproved, ArtifactStatusRejected:
		return true
	}
	return false
}

// ArtifactPurpose classifies what an evidence file documents.
type ArtifactPurpose string

const (
	ArtifactPurposeGeneric ArtifactPurpose = "GENERIC"
	ArtifactPurposeDataset ArtifactPurpose = "DATASET"
	ArtifactPurposeModel   ArtifactPurpose = "MODEL"
)

func (p ArtifactPurpose) String() string { return string(p) }

func (p ArtifactPurpose) IsValid() bool {
	switch p {
	case ArtifactPurposeGeneric, ArtifactPurposeDataset, ArtifactPurposeModel:
		return true
	}
	return false
}

// Plan is the billing plan of a company.
type Plan string

const (
	PlanFree       Plan = "FREE"
	PlanPro        Plan = "PRO"
	PlanEnterprise Plan = "ENTERPRISE"
)

func (p Plan) String() string { return string(p) }

func (p Plan) IsValid() bool {
	switch p {
	case PlanFree, PlanPro, PlanEnterprise:
		return true
	}
	return false
}

// QuotaKind identifies a plan-limited action.
type QuotaKind string

const (
	QuotaKindDocGen QuotaKind = "docgen"
	QuotaKindTrust  QuotaKind = "trust"
)

func (k QuotaKind) String() string { return string(k) }

func (k QuotaKind) IsValid() bool {
	switch k {
	case QuotaKindDocGen, QuotaKindTrust:
		return true
	}
	return false
}

// UserRole represents the capability level of a user inside a company.
type UserRole string

const (
	UserRoleAdmin    UserRole = "ADMIN"
	UserRoleReviewer UserRole = "REVIEWER"
	UserRoleEditor   UserRole = "EDITOR"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleReviewer, UserRoleEditor:
		return true
	}
	return false
}

// CanReview reports whether the role carries reviewer capability.
func (r UserRole) CanReview() bool {
	return r == UserRoleAdmin || r == UserRoleReviewer
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeProject  EntityType = "PROJECT"
	EntityTypeSection  EntityType = "SECTION"
	EntityTypeArtifact EntityType = "ARTIFACT"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeProject, EntityTypeSection, EntityTypeArtifact:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
	AuditActionReview AuditAction = "REVIEW"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete, AuditActionReview:
		return true
	}
	return false
}
