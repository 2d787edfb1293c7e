package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dossier-backend/internal/domain"
	"github.com/heartmarshall/dossier-backend/pkg/ctxutil"
)

type errorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []fieldErrorPayload `json:"fields,omitempty"`
}

type fieldErrorPayload struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// paywallResponse is the 402 body. Clients match on it field by field.
type paywallResponse struct {
	Code  string      `json:"code"`
	Plan  domain.Plan `json:"plan"`
	Limit int         `json:"limit"`
	Usage int         `json:"usage"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// handleError maps a service error to its HTTP status and body.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve *domain.ValidationError
		ce *domain.ConflictError
		pe *domain.PaywallError
	)

	switch {
	case errors.As(err, &pe):
		writeJSON(w, http.StatusPaymentRequired, paywallResponse{
			Code:  "PAYWALL",
			Plan:  pe.Plan,
			Limit: pe.Limit,
			Usage: pe.Usage,
		})
	case errors.As(err, &ve):
		fields := make([]fieldErrorPayload, len(ve.Errors))
		for i, fe := range ve.Errors {
			fields[i] = fieldErrorPayload{Field: fe.Field, Message: fe.Message}
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Code:    "VALIDATION",
			Message: "validation failed",
			Fields:  fields,
		})
	case errors.As(err, &ce):
		writeError(w, http.StatusConflict, "CONFLICT", ce.Reason)
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "CONFLICT", "conflict")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "not found")
	case errors.Is(err, context.DeadlineExceeded):
		log.WarnContext(r.Context(), "request timed out", requestAttrs(r, err)...)
		writeError(w, http.StatusGatewayTimeout, "TIMEOUT", "request timed out")
	default:
		log.ErrorContext(r.Context(), "internal error", requestAttrs(r, err)...)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}

func requestAttrs(r *http.Request, err error) []any {
	attrs := []any{slog.String("error", err.Error()), slog.String("path", r.URL.Path)}
	for _, a := range ctxutil.LogAttrs(r.Context()) {
		attrs = append(attrs, a)
	}
	return attrs
}
