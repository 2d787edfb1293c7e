package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
	"github.com/heartmarshall/dossier-backend/internal/service/section"
)

type sectionService interface {
	Save(ctx context.Context, input section.SaveInput) (*domain.Section, error)
	Get(ctx context.Context, sectionID uuid.UUID) (*section.Detail, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Section, error)
	Transition(ctx context.Context, input section.TransitionInput) (*domain.Section, error)
	History(ctx context.Context, sectionID uuid.UUID) ([]domain.SectionStatusEvent, error)
}

// SectionHandler serves section endpoints.
type SectionHandler struct {
	svc         sectionService
	log         *slog.Logger
	maxBodySize int64
}

// NewSectionHandler creates a SectionHandler. maxBodySize bounds the JSON
// body of a save request.
func NewSectionHandler(svc sectionService, logger *slog.Logger, maxBodySize int64) *SectionHandler {
	return &SectionHandler{svc: svc, log: logger.With("handler", "section"), maxBodySize: maxBodySize}
}

type saveSectionRequest struct {
	Content domain.Content `json:"content"`
}

type transitionRequest struct {
	Status string  `json:"status"`
	Note   *string `json:"note"`
}

// Save handles PUT /api/projects/{projectID}/sections/{name}.
func (h *SectionHandler) Save(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuidParam(r, "projectID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req saveSectionRequest
	if err := decodeJSON(w, r, h.maxBodySize, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sec, err := h.svc.Save(r.Context(), section.SaveInput{
		ProjectID: projectID,
		Name:      chi.URLParam(r, "name"),
		Content:   req.Content,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSectionResponse(sec))
}

// List handles GET /api/projects/{projectID}/sections.
func (h *SectionHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuidParam(r, "projectID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sections, err := h.svc.ListByProject(r.Context(), projectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]sectionResponse, len(sections))
	for i := range sections {
		resp[i] = toSectionResponse(&sections[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/sections/{sectionID}. The response carries the
// missing required fields of the section.
func (h *SectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sectionID, err := uuidParam(r, "sectionID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	detail, err := h.svc.Get(r.Context(), sectionID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := toSectionResponse(detail.Section)
	resp.MissingFields = detail.MissingFields
	if resp.MissingFields == nil {
		resp.MissingFields = []string{}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Transition handles POST /api/sections/{sectionID}/transition.
func (h *SectionHandler) Transition(w http.ResponseWriter, r *http.Request) {
	sectionID, err := uuidParam(r, "sectionID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req transitionRequest
	if err := decodeJSON(w, r, smallBodySize, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sec, err := h.svc.Transition(r.Context(), section.TransitionInput{
		SectionID: sectionID,
		Status:    domain.SectionStatus(req.Status),
		Note:      req.Note,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSectionResponse(sec))
}

// History handles GET /api/sections/{sectionID}/history.
func (h *SectionHandler) History(w http.ResponseWriter, r *http.Request) {
	sectionID, err := uuidParam(r, "sectionID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	events, err := h.svc.History(r.Context(), sectionID)
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
			CreatedAt: e.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
