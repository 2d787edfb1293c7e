package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/dossier-backend/internal/domain"
	"github.com/heartmarshall/dossier-backend/internal/transport/rest/loader"
)

// smallBodySize bounds JSON bodies of commands without document content.
const smallBodySize = 64 << 10

// uuidParam parses a chi URL parameter. Malformed IDs are a validation
// error on the parameter name.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "invalid UUID")
	}
	return id, nil
}

// decodeJSON reads a JSON body of at most maxBytes.
func decodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.NewValidationError("body", fmt.Sprintf("exceeds %d bytes", maxBytes))
		}
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return nil
}

// actorNames resolves display names through the request loaders. Lookup
// failures degrade to ids only.
func actorNames(ctx context.Context, log *slog.Logger, ids []uuid.UUID) map[uuid.UUID]string {
	l := loader.FromContext(ctx)
	if l == nil || len(ids) == 0 {
		return map[uuid.UUID]string{}
	}
	names, err := l.UserNames(ctx, ids)
	if err != nil {
		log.WarnContext(ctx, "resolve actor names", slog.String("error", err.Error()))
		return map[uuid.UUID]string{}
	}
	return names
}
