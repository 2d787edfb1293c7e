package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
	"github.com/heartmarshall/dossier-backend/internal/service/generation"
)

type quotaService interface {
	Usage(ctx context.Context, companyID uuid.UUID) (*domain.UsageReport, error)
}

type generationService interface {
	Generate(ctx context.Context, projectID uuid.UUID) (*generation.Job, error)
	AnalyzeTrust(ctx context.Context, projectID uuid.UUID) (*generation.Job, error)
}

// BillingHandler serves metered endpoints: usage reporting and the
// quota-charged generation handoffs.
type BillingHandler struct {
	quota quotaService
	gen   generationService
	log   *slog.Logger
}

// NewBillingHandler creates a BillingHandler.
func NewBillingHandler(quota quotaService, gen generationService, logger *slog.Logger) *BillingHandler {
	return &BillingHandler{quota: quota, gen: gen, log: logger.With("handler", "billing")}
}

// Usage handles GET /api/billing/usage/{companyID}.
func (h *BillingHandler) Usage(w http.ResponseWriter, r *http.Request) {
	companyID, err := uuidParam(r, "companyID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	report, err := h.quota.Usage(r.Context(), companyID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUsageResponse(report))
}

// Generate handles POST /api/projects/{projectID}/generate.
func (h *BillingHandler) Generate(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, h.gen.Generate)
}

// AnalyzeTrust handles POST /api/projects/{projectID}/trust-analyses.
func (h *BillingHandler) AnalyzeTrust(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, h.gen.AnalyzeTrust)
}

func (h *BillingHandler) submit(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID) (*generation.Job, error)) {
	projectID, err := uuidParam(r, "projectID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	job, err := fn(r.Context(), projectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, toJobResponse(job))
}
