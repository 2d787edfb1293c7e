package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Artifact is one version of an evidence file attached to a section.
// All artifacts of a section form a single lineage ordered by Version.
type Artifact struct {
	ID                 uuid.UUID
	SectionID          uuid.UUID
	ProjectID          uuid.UUID
	Version            int
	Checksum           string
	CitationKey        string
	OriginalName       string
	Size               int64
	MimeType           string
	Description        *string
	Purpose            ArtifactPurpose
	StorageKey         string
	Status             ArtifactStatus
	ReviewComment      *string
	ReviewedByID       *uuid.UUID
	ReviewedAt         *time.Time
	PreviousArtifactID *uuid.UUID
	UploadedByID       uuid.UUID
	CreatedAt          time.Time
}

// IsRoot reports whether the artifact starts its lineage.
func (a *Artifact) IsRoot() bool {
	return a.PreviousArtifactID == nil
}

// Checksum returns the lowercase hex SHA-256 digest of data.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// CitationKey builds the stable citation identifier of an artifact version,
// e.g. "RISK-A03".
func CitationKey(sectionCode string, version int) string {
	return fmt.Sprintf("%s-A%02d", sectionCode, version)
}

// SectionCode derives a citation code for a catalog section declared
// without one: uppercase, with every run of non-alphanumerics collapsed
// to "_".
func SectionCode(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
			lastUnderscore = false
		case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

// EvidenceSummary counts the lineage heads of a project by review status.
type EvidenceSummary struct {
	Pending  int
	Approved int
	Rejected int
}

// Total returns the number of lineage heads.
func (s EvidenceSummary) Total() int {
	return s.Pending + s.Approved + s.Rejected
}

// AllApproved reports whether every lineage head has been approved.
// A project without evidence is trivially approved.
func (s EvidenceSummary) AllApproved() bool {
	return s.Pending == 0 && s.Rejected == 0
}
