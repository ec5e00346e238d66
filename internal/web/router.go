package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jusunglee/kanafy/internal/db"
	"github.com/jusunglee/kanafy/internal/health"
	"github.com/jusunglee/kanafy/internal/pronunciation"
	"github.com/jusunglee/kanafy/internal/web/handlers"
	"github.com/jusunglee/kanafy/internal/web/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultWordQuota allows several full batches per client per minute.
const DefaultWordQuota = 3000

type Config struct {
	// Workers bounds the goroutines used by one batch request.
	Workers int
	// AllowedOrigins restricts CORS; empty allows all.
	AllowedOrigins []string
	// AdminKey protects the miss log. Empty leaves it open.
	AdminKey string
	// WordQuota is the number of words each client may convert per minute
	// through the POST endpoints.
	WordQuota int
}

type Router struct {
	pronouncer *pronunciation.Pronouncer
	repo       db.Repository
	log        *slog.Logger
	cfg        Config
	quota      *middleware.WordQuota
}

// NewRouter builds the HTTP API. repo may be nil.
func NewRouter(p *pronunciation.Pronouncer, repo db.Repository, log *slog.Logger, cfg Config) *Router {
	if cfg.Workers < 1 {
		cfg.Workers = 4
	}
	if cfg.WordQuota < 1 {
		cfg.WordQuota = DefaultWordQuota
	}
	return &Router{
		pronouncer: p,
		repo:       repo,
		log:        log,
		cfg:        cfg,
		quota:      middleware.NewWordQuota(cfg.WordQuota, time.Minute),
	}
}

// Close stops the quota sweeper. Handlers built earlier keep working but
// expired charges are no longer swept.
func (r *Router) Close() {
	r.quota.Close()
}

func (r *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	kanaHandler := handlers.NewKanaHandler(r.pronouncer, r.log, r.cfg.Workers)
	convertHandler := handlers.NewConvertHandler(r.pronouncer.Table(), kanaHandler)
	coverageHandler := handlers.NewCoverageHandler(r.pronouncer)
	missHandler := handlers.NewMissHandler(r.repo, r.log)

	mux.Handle("GET /api/v1/kana",
		middleware.Chain(
			http.HandlerFunc(kanaHandler.Get),
			middleware.Observe(r.log, "kana"),
			middleware.CacheControl("public, max-age=3600"),
		),
	)

	mux.Handle("POST /api/v1/kana",
		middleware.Chain(
			http.HandlerFunc(kanaHandler.Batch),
			middleware.Observe(r.log, "kana_batch"),
			middleware.Quota(r.quota, middleware.WordCost),
		),
	)

	mux.Handle("POST /api/v1/convert",
		middleware.Chain(
			http.HandlerFunc(convertHandler.Convert),
			middleware.Observe(r.log, "convert"),
			middleware.Quota(r.quota, middleware.WordCost),
		),
	)

	mux.Handle("GET /api/v1/coverage",
		middleware.Chain(
			http.HandlerFunc(coverageHandler.Get),
			middleware.Observe(r.log, "coverage"),
			middleware.CacheControl("public, max-age=3600"),
		),
	)

	misses := []middleware.Middleware{
		middleware.Observe(r.log, "misses"),
		middleware.CacheControl("no-store"),
	}
	if r.cfg.AdminKey != "" {
		misses = append(misses, middleware.APIKeyAuth(r.cfg.AdminKey))
	}
	mux.Handle("GET /api/v1/misses", middleware.Chain(http.HandlerFunc(missHandler.List), misses...))

	mux.Handle("GET /health", middleware.Chain(health.Handler(r.healthChecks()), middleware.CacheControl("no-store")))
	mux.Handle("GET /metrics", promhttp.Handler())

	return middleware.CORS(r.cfg.AllowedOrigins)(mux)
}

func (r *Router) healthChecks() map[string]health.Check {
	checks := map[string]health.Check{
		"dictionary": func(context.Context) error {
			if r.pronouncer.Dictionary().Len() == 0 {
				return errors.New("dictionary is empty")
			}
			return nil
		},
	}
	if r.repo != nil {
		checks["database"] = func(ctx context.Context) error {
			_, err := r.repo.CountPronunciations(ctx)
			return err
		}
	}
	return checks
}
