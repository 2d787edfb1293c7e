package generation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

// Generate charges one docgen unit and submits a document job. Only
// APPROVED projects can be generated. Quota spent on a job the generator
// then rejects is not refunded.
func (s *Service) Generate(ctx context.Context, projectID uuid.UUID) (*Job, error) {
	userID, project, err := s.load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !project.CanGenerate() {
		return nil, domain.NewConflictError(domain.ConflictNotApproved)
	}

	if err := s.quota.CheckAndConsume(ctx, project.CompanyID, domain.QuotaKindDocGen, 1); err != nil {
		return nil, err
	}

	job := s.newJob(project, domain.QuotaKindDocGen, userID)
	if err := s.generator.Generate(ctx, job); err != nil {
		return nil, fmt.Errorf("submit generation: %w", err)
	}

	s.log.InfoContext(ctx, "document generation submitted",
		slog.String("user_id", userID.String()),
		slog.String("project_id", project.ID.String()),
		slog.String("job_id", job.ID.String()),
	)

	return &job, nil
}

// AnalyzeTrust charges one trust unit and submits a trust analysis job.
func (s *Service) AnalyzeTrust(ctx context.Context, projectID uuid.UUID) (*Job, error) {
	userID, project, err := s.load(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := s.quota.CheckAndConsume(ctx, project.CompanyID, domain.QuotaKindTrust, 1); err != nil {
		return nil, err
	}

	job := s.newJob(project, domain.QuotaKindTrust, userID)
	if err := s.analyzer.Analyze(ctx, job); err != nil {
		return nil, fmt.Errorf("submit trust analysis: %w", err)
	}

	s.log.InfoContext(ctx, "trust analysis submitted",
		slog.String("user_id", userID.String()),
		slog.String("project_id", project.ID.String()),
		slog.String("job_id", job.ID.String()),
	)

	return &job, nil
}
