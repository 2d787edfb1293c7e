package generation

import (
	"context"
	"log/slog"
)

// LogSubmitter satisfies Generator and TrustAnalyzer by logging each job.
// It stands in until a real rendering backend is configured.
type LogSubmitter struct {
	log *slog.Logger
}

// NewLogSubmitter creates a LogSubmitter.
func NewLogSubmitter(log *slog.Logger) *LogSubmitter {
	return &LogSubmitter{log: log.With("component", "generation_submitter")}
}

// Generate logs a document generation job.
func (s *LogSubmitter) Generate(ctx context.Context, job Job) error {
	s.submit(ctx, job)
	return nil
}

// Analyze logs a trust analysis job.
func (s *LogSubmitter) Analyze(ctx context.Context, job Job) error {
	s.submit(ctx, job)
	return nil
}

func (s *LogSubmitter) submit(ctx context.Context, job Job) {
	s.log.InfoContext(ctx, "job submitted",
		slog.String("job_id", job.ID.String()),
		slog.String("project_id", job.ProjectID.String()),
		slog.String("kind", job.Kind.String()),
	)
}
