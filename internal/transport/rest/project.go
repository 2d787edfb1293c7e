package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
	"github.com/heartmarshall/dossier-backend/internal/service/project"
)

type projectService interface {
	Create(ctx context.Context, input project.CreateInput) (*domain.Project, error)
	Get(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	RequestReview(ctx context.Context, input project.RequestReviewInput) (*domain.Project, error)
	ChangeStatus(ctx context.Context, input project.ChangeStatusInput) (*domain.Project, error)
	History(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectStatusEvent, error)
	Readiness(ctx context.Context, projectID uuid.UUID) (*domain.ProjectReadiness, error)
}

// ProjectHandler serves project workflow endpoints.
type ProjectHandler struct {
	svc projectService
	log *slog.Logger
}

func NewProjectHandler(svc projectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: logger.With("handler", "project")}
}

type createProjectRequest struct {
	Name string `json:"name"`
}

type requestReviewRequest struct {
	ReviewerID uuid.UUID  `json:"reviewerId"`
	ApproverID *uuid.UUID `json:"approverId"`
	Message    *string    `json:"message"`
}

type changeStatusRequest struct {
	Status     string     `json:"status"`
	Note       *string    `json:"note"`
	Signature  *string    `json:"signature"`
	ReviewerID *uuid.UUID `json:"reviewerId"`
	ApproverID *uuid.UUID `json:"approverId"`
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := decodeJSON(w, r, smallBodySize, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Create(r.Context(), project.CreateInput{Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProjectResponse(p))
}

// Get handles GET /api/projects/{projectID}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuidParam(r, "projectID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Get(r.Context(), projectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// RequestReview handles POST /api/projects/{projectID}/request-review.
func (h *ProjectHandler) RequestReview(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuidParam(r, "projectID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req requestReviewRequest
	if err := decodeJSON(w, r, smallBodySize, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.RequestReview(r.Context(), project.RequestReviewInput{
		ProjectID:  projectID,
		ReviewerID: req.ReviewerID,
		ApproverID: req.ApproverID,
		Message:    req.Message,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// ChangeStatus handles POST /api/projects/{projectID}/status.
func (h *ProjectHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuidParam(r, "projectID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req changeStatusRequest
	if err := decodeJSON(w, r, smallBodySize, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.ChangeStatus(r.Context(), project.ChangeStatusInput{
		ProjectID:  projectID,
		Status:     domain.ProjectStatus(req.Status),
		Note:       req.Note,
		Signature:  req.Signature,
		ReviewerID: req.ReviewerID,
		ApproverID: req.ApproverID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// History handles GET /api/projects/{projectID}/history.
func (h *ProjectHandler) History(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuidParam(r, "projectID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	events, err := h.svc.History(r.Context(), projectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	actors := make([]uuid.UUID, len(events))
	for i, e := range events {
		actors[i] = e.ActorID
	}
	names := actorNames(r.Context(), h.log, actors)

	resp := make([]statusEventResponse, len(events))
	for i, e := range events {
		resp[i] = statusEventResponse{
			ID:        e.ID,
			Status:    e.Status.String(),
			ActorID:   e.ActorID,
			ActorName: names[e.ActorID],
			Note:      e.Note,
			Signature: e.Signature,
			CreatedAt: e.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Readiness handles GET /api/projects/{projectID}/readiness.
func (h *ProjectHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuidParam(r, "projectID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	readiness, err := h.svc.Readiness(r.Context(), projectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReadinessResponse(readiness))
}
