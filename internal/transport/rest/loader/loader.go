// Package loader provides per-request DataLoaders that batch user lookups
// made while rendering history responses.
package loader

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

// Loaders is created per request; results are cached for its lifetime.
type Loaders struct {
	UserByID *dataloader.Loader[uuid.UUID, *domain.User]
}

// NewLoaders creates the loaders of one request. Lookups issued within a
// short window are batched into a single GetByIDs call.
func NewLoaders(users userRepo) *Loaders {
	return &Loaders{
		UserByID: dataloader.NewBatchedLoader(
			newUsersBatchFn(users),
			dataloader.WithWait[uuid.UUID, *domain.User](wait),
			dataloader.WithBatchCapacity[uuid.UUID, *domain.User](maxBatch),
		),
	}
}

// newUsersBatchFn resolves missing users to nil rather than an error so a
// deleted account does not fail a whole history response.
func newUsersBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[*domain.User], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[*domain.User]{Error: err}
			}
			return results
		}

		byID := make(map[uuid.UUID]*domain.User, len(users))
		for i := range users {
			byID[users[i].ID] = &users[i]
		}

		results := make([]*dataloader.Result[*domain.User], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.User]{Data: byID[key]}
		}
		return results
	}
}

// UserNames loads the display names of ids in one batch. Unknown users are
// absent from the result.
func (l *Loaders) UserNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	users, errs := l.UserByID.LoadMany(ctx, ids)()
	names := make(map[uuid.UUID]string, len(ids))
	for i, u := range users {
		if i < len(errs) && errs[i] != nil {
			return nil, errs[i]
		}
		if u != nil {
			names[u.ID] = u.Name
		}
	}
	return names, nil
}

type contextKey struct{}

func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns nil when the middleware is not installed.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(contextKey{}).(*Loaders)
	return l
}

// Middleware attaches fresh Loaders to every request.
func Middleware(users userRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(users))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
