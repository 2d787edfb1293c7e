// Package app wires configuration, adapters, services and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/dossier-backend/internal/adapter/notify"
	"github.com/heartmarshall/dossier-backend/internal/adapter/postgres"
	artifactrepo "github.com/heartmarshall/dossier-backend/internal/adapter/postgres/artifact"
	auditrepo "github.com/heartmarshall/dossier-backend/internal/adapter/postgres/audit"
	autosaverepo "github.com/heartmarshall/dossier-backend/internal/adapter/postgres/autosave"
	companyrepo "github.com/heartmarshall/dossier-backend/internal/adapter/postgres/company"
	projectrepo "github.com/heartmarshall/dossier-backend/internal/adapter/postgres/project"
	sectionrepo "github.com/heartmarshall/dossier-backend/internal/adapter/postgres/section"
	usagerepo "github.com/heartmarshall/dossier-backend/internal/adapter/postgres/usage"
	userrepo "github.com/heartmarshall/dossier-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/dossier-backend/internal/auth"
	"github.com/heartmarshall/dossier-backend/internal/catalog"
	"github.com/heartmarshall/dossier-backend/internal/config"
	"github.com/heartmarshall/dossier-backend/internal/service/artifact"
	"github.com/heartmarshall/dossier-backend/internal/service/autosave"
	"github.com/heartmarshall/dossier-backend/internal/service/generation"
	"github.com/heartmarshall/dossier-backend/internal/service/project"
	"github.com/heartmarshall/dossier-backend/internal/service/quota"
	"github.com/heartmarshall/dossier-backend/internal/service/section"
	"github.com/heartmarshall/dossier-backend/internal/transport/middleware"
	"github.com/heartmarshall/dossier-backend/internal/transport/rest"
	"github.com/heartmarshall/dossier-backend/internal/transport/rest/loader"
)

// Run is the application entry point. It blocks until ctx is cancelled,
// then drains the HTTP server and in-flight notifications.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage_driver", cfg.Storage.Driver),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	sections, err := catalog.Load(cfg.Workflow.CatalogPath)
	if err != nil {
		return err
	}

	blobs, err := newBlobStore(cfg.Storage)
	if err != nil {
		return err
	}

	tx := postgres.NewTxManager(pool)
	var (
		artifactRepo  = artifactrepo.New(pool)
		auditRepo     = auditrepo.New(pool)
		autosaveRepo  = autosaverepo.New(pool)
		companyRepo   = companyrepo.New(pool)
		projectRepo   = projectrepo.New(pool)
		sectionRepo   = sectionrepo.New(pool)
		usageRepo     = usagerepo.New(pool)
		userRepo      = userrepo.New(pool)
		notifications = notify.NewDispatcher(logger, notify.NewLogSender(logger), cfg.Notify.Concurrency, cfg.Notify.Timeout)
		submitter     = generation.NewLogSubmitter(logger)
	)

	quotaSvc := quota.NewService(logger, usageRepo, companyRepo, userRepo, cfg.Quota, tx)
	sectionSvc := section.NewService(logger, sectionRepo, projectRepo, userRepo, autosaveRepo, sections, auditRepo, tx)
	artifactSvc := artifact.NewService(logger, artifactRepo, sectionRepo, projectRepo, userRepo, blobs, sections, auditRepo, tx,
		cfg.Workflow.MaxUploadBytes)
	projectSvc := project.NewService(logger, projectRepo, sectionRepo, artifactRepo, userRepo, sections, notifications, auditRepo, tx,
		project.Policy{
			OwnerCanRequestChanges:  cfg.Workflow.OwnerCanRequestChanges,
			RequireApprovedEvidence: cfg.Workflow.RequireApprovedEvidence,
		})
	autosaveSvc := autosave.NewService(logger, autosaveRepo, sectionRepo, projectRepo, userRepo)
	generationSvc := generation.NewService(logger, projectRepo, userRepo, quotaSvc, submitter, submitter)

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	maxContent := int64(cfg.Workflow.MaxContentBytes)
	router := rest.NewRouter(
		rest.RouterConfig{
			RequestTimeout:    cfg.Server.RequestTimeout,
			UploadPerMinute:   cfg.Server.UploadRateLimit,
			GeneratePerMinute: cfg.Server.GenerateRateLimit,
		},
		rest.Deps{
			Log:         logger,
			Validator:   auth.NewValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer),
			Limiter:     limiter,
			CORS:        middleware.CORS(cfg.CORS),
			UserLoaders: loader.Middleware(userRepo),
		},
		rest.Handlers{
			Health: rest.NewHealthHandler(BuildVersion(), map[string]rest.Pinger{
				"database": pool,
				"storage":  blobs,
			}),
			Section:  rest.NewSectionHandler(sectionSvc, logger, maxContent),
			Artifact: rest.NewArtifactHandler(artifactSvc, logger, cfg.Workflow.MaxUploadBytes),
			Project:  rest.NewProjectHandler(projectSvc, logger),
			Autosave: rest.NewAutosaveHandler(autosaveSvc, logger, maxContent),
			Billing:  rest.NewBillingHandler(quotaSvc, generationSvc, logger),
		},
	)

	srv := newHTTPServer(cfg.Server, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		if err := notifications.Wait(shutdownCtx); err != nil {
			logger.Warn("notifications still in flight at shutdown", slog.String("error", err.Error()))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

func newHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}
