package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/dossier-backend/internal/transport/middleware"
)

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Section  *SectionHandler
	Artifact *ArtifactHandler
	Project  *ProjectHandler
	Autosave *AutosaveHandler
	Billing  *BillingHandler
}

// RouterConfig holds the cross-cutting settings of the router.
type RouterConfig struct {
	RequestTimeout time.Duration
	// Per-minute budgets per caller for the metered and upload routes.
	UploadPerMinute   int
	GeneratePerMinute int
}

// Deps are the middleware collaborators of the router.
type Deps struct {
	Log         *slog.Logger
	Validator   middleware.TokenValidator
	Limiter     *middleware.RateLimiter
	CORS        func(http.Handler) http.Handler
	UserLoaders func(http.Handler) http.Handler
}

// NewRouter builds the chi router with the full middleware stack.
func NewRouter(cfg RouterConfig, deps Deps, h Handlers) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.ClientIP)
	r.Use(middleware.Logger(deps.Log))
	r.Use(middleware.Recovery(deps.Log))
	if deps.CORS != nil {
		r.Use(deps.CORS)
	}

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/api", func(r chi.Router) {
		if cfg.RequestTimeout > 0 {
			r.Use(chimw.Timeout(cfg.RequestTimeout))
		}
		r.Use(middleware.Auth(deps.Validator))
		r.Use(middleware.RequireAuth)
		if deps.UserLoaders != nil {
			r.Use(deps.UserLoaders)
		}

		uploadLimit := deps.Limiter.Limit("upload", cfg.UploadPerMinute)
		generateLimit := deps.Limiter.Limit("generate", cfg.GeneratePerMinute)

		r.Post("/projects", h.Project.Create)
		r.Route("/projects/{projectID}", func(r chi.Router) {
			r.Get("/", h.Project.Get)
			r.Get("/history", h.Project.History)
			r.Get("/readiness", h.Project.Readiness)
			r.Post("/request-review", h.Project.RequestReview)
			r.Post("/status", h.Project.ChangeStatus)
			r.Get("/sections", h.Section.List)
			r.Put("/sections/{name}", h.Section.Save)
			r.With(generateLimit).Post("/generate", h.Billing.Generate)
			r.With(generateLimit).Post("/trust-analyses", h.Billing.AnalyzeTrust)
		})

		r.Route("/sections/{sectionID}", func(r chi.Router) {
			r.Get("/", h.Section.Get)
			r.Post("/transition", h.Section.Transition)
			r.Get("/history", h.Section.History)
			r.Get("/artifacts", h.Artifact.List)
			r.With(uploadLimit).Post("/artifacts", h.Artifact.Upload)
		})

		r.Route("/artifacts/{artifactID}", func(r chi.Router) {
			r.Patch("/review", h.Artifact.Review)
			r.Delete("/", h.Artifact.Delete)
			r.Get("/content", h.Artifact.Content)
		})

		r.Route("/autosave/sections/{sectionID}", func(r chi.Router) {
			r.Put("/", h.Autosave.Put)
			r.Get("/", h.Autosave.Get)
			r.Delete("/", h.Autosave.Delete)
		})

		r.Get("/billing/usage/{companyID}", h.Billing.Usage)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	return r
}
