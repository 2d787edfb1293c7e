package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
	"github.com/heartmarshall/dossier-backend/internal/service/autosave"
)

type autosaveService interface {
	Put(ctx context.Context, input autosave.PutInput) (*domain.AutosaveSnapshot, error)
	Recovery(ctx context.Context, sectionID uuid.UUID) (*autosave.Recovery, error)
	Clear(ctx context.Context, sectionID uuid.UUID) error
}

// AutosaveHandler serves the per-section draft snapshot endpoints.
type AutosaveHandler struct {
	svc         autosaveService
	log         *slog.Logger
	maxBodySize int64
}

func NewAutosaveHandler(svc autosaveService, logger *slog.Logger, maxBodySize int64) *AutosaveHandler {
	return &AutosaveHandler{svc: svc, log: logger.With("handler", "autosave"), maxBodySize: maxBodySize}
}

type putSnapshotRequest struct {
	Content domain.Content `json:"content"`
}

// Put handles PUT /api/autosave/sections/{sectionID}.
func (h *AutosaveHandler) Put(w http.ResponseWriter, r *http.Request) {
	sectionID, err := uuidParam(r, "sectionID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req putSnapshotRequest
	if err := decodeJSON(w, r, h.maxBodySize, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	snap, err := h.svc.Put(r.Context(), autosave.PutInput{SectionID: sectionID, Content: req.Content})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSnapshotResponse(snap))
}

// Get handles GET /api/autosave/sections/{sectionID}. It answers with the
// snapshot, if any, and whether recovery should be offered to the editor.
func (h *AutosaveHandler) Get(w http.ResponseWriter, r *http.Request) {
	sectionID, err := uuidParam(r, "sectionID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, err := h.svc.Recovery(r.Context(), sectionID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, recoveryResponse{Snapshot: toSnapshotResponse(rec.Snapshot), Offer: rec.Offer})
}

// Delete handles DELETE /api/autosave/sections/{sectionID}.
func (h *AutosaveHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sectionID, err := uuidParam(r, "sectionID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Clear(r.Context(), sectionID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
