package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
	"github.com/heartmarshall/dossier-backend/internal/service/artifact"
)

type artifactService interface {
	Upload(ctx context.Context, input artifact.UploadInput) (*domain.Artifact, error)
	List(ctx context.Context, sectionID uuid.UUID) ([]domain.Artifact, error)
	Review(ctx context.Context, input artifact.ReviewInput) (*domain.Artifact, error)
	Delete(ctx context.Context, artifactID uuid.UUID) error
	Download(ctx context.Context, artifactID uuid.UUID) (*domain.Artifact, []byte, error)
}

// multipartOverhead is the body allowance for form fields and part headers
// on top of the file itself.
const multipartOverhead = 1 << 20

// ArtifactHandler serves evidence artifact endpoints.
type ArtifactHandler struct {
	svc       artifactService
	log       *slog.Logger
	maxUpload int64
}

// NewArtifactHandler creates an ArtifactHandler. maxUpload bounds the size
// of an uploaded file; the request body may exceed it by the multipart
// overhead.
func NewArtifactHandler(svc artifactService, logger *slog.Logger, maxUpload int64) *ArtifactHandler {
	return &ArtifactHandler{svc: svc, log: logger.With("handler", "artifact"), maxUpload: maxUpload}
}

type reviewRequest struct {
	Status  string  `json:"status"`
	Comment *string `json:"comment"`
}

// Upload handles POST /api/sections/{sectionID}/artifacts
// (multipart: file, description?, purpose).
func (h *ArtifactHandler) Upload(w http.ResponseWriter, r *http.Request) {
	sectionID, err := uuidParam(r, "sectionID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+multipartOverhead)
	if err := r.ParseMultipartForm(multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handleError(h.log, w, r, domain.NewValidationError("file", "exceeds max upload size of "+strconv.FormatInt(h.maxUpload, 10)+" bytes"))
			return
		}
		handleError(h.log, w, r, domain.NewValidationError("body", "invalid multipart form"))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("file", "required"))
		return
	}
	defer file.Close()

	// One byte past the limit is enough for the service to reject it.
	data, err := io.ReadAll(io.LimitReader(file, h.maxUpload+1))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" && len(data) > 0 {
		mimeType = http.DetectContentType(data)
	}

	input := artifact.UploadInput{
		SectionID:    sectionID,
		Data:         data,
		OriginalName: header.Filename,
		MimeType:     mimeType,
		Purpose:      domain.ArtifactPurpose(r.FormValue("purpose")),
	}
	if d := r.FormValue("description"); d != "" {
		input.Description = &d
	}

	a, err := h.svc.Upload(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toArtifactResponse(a))
}

// List handles GET /api/sections/{sectionID}/artifacts.
func (h *ArtifactHandler) List(w http.ResponseWriter, r *http.Request) {
	sectionID, err := uuidParam(r, "sectionID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	artifacts, err := h.svc.List(r.Context(), sectionID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]artifactResponse, len(artifacts))
	for i := range artifacts {
		resp[i] = toArtifactResponse(&artifacts[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Review handles PATCH /api/artifacts/{artifactID}/review.
func (h *ArtifactHandler) Review(w http.ResponseWriter, r *http.Request) {
	artifactID, err := uuidParam(r, "artifactID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req reviewRequest
	if err := decodeJSON(w, r, smallBodySize, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	a, err := h.svc.Review(r.Context(), artifact.ReviewInput{
		ArtifactID: artifactID,
		Status:     domain.ArtifactStatus(req.Status),
		Comment:    req.Comment,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toArtifactResponse(a))
}

// Delete handles DELETE /api/artifacts/{artifactID}. Superseded versions
// answer 409.
func (h *ArtifactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	artifactID, err := uuidParam(r, "artifactID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), artifactID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Content handles GET /api/artifacts/{artifactID}/content.
func (h *ArtifactHandler) Content(w http.ResponseWriter, r *http.Request) {
	artifactID, err := uuidParam(r, "artifactID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	a, data, err := h.svc.Download(r.Context(), artifactID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", a.MimeType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": a.OriginalName}))
	w.Header().Set("ETag", strconv.Quote(a.Checksum))
	w.Header().Set("X-Citation-Key", a.CitationKey)
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}
