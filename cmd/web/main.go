package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jusunglee/kanafy/internal/db"
	"github.com/jusunglee/kanafy/internal/db/postgres"
	"github.com/jusunglee/kanafy/internal/envsetup"
	"github.com/jusunglee/kanafy/internal/lexicon"
	"github.com/jusunglee/kanafy/internal/logger"
	"github.com/jusunglee/kanafy/internal/metrics"
	"github.com/jusunglee/kanafy/internal/phoneme"
	"github.com/jusunglee/kanafy/internal/pronunciation"
	"github.com/jusunglee/kanafy/internal/store"
	"github.com/jusunglee/kanafy/internal/transliteration"
	"github.com/jusunglee/kanafy/internal/web"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

const envFile = ".env"

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
	slog.Info("exiting without error")
}

func mainE() error {
	if len(os.Args) > 1 && os.Args[1] == "setup" || envsetup.NeedsSetup(envFile) && isTerminal(os.Stdin) {
		completed, err := envsetup.Run(envFile)
		if err != nil {
			return fmt.Errorf("running setup wizard: %w", err)
		}
		if !completed {
			return errors.New("setup cancelled")
		}
	}
	_ = godotenv.Load(envFile)

	fs_ := ff.NewFlagSet("kanafy-web")

	var (
		port           = fs_.Int64Long("port", 8080, "HTTP server port")
		dictPath       = fs_.StringLong("dict", "", "Pronunciation dictionary file")
		rulesPath      = fs_.StringLong("rules", "", "YAML file with extra or replacement mapping rules")
		databaseURL    = fs_.StringLong("database-url", "", "SQLite path or PostgreSQL URL; logs fallback words and can hold the dictionary")
		workers        = fs_.Int64Long("workers", int64(runtime.NumCPU()), "Concurrent conversions per batch request")
		wordQuota      = fs_.Int64Long("word-quota", web.DefaultWordQuota, "Words each client may convert per minute through the POST endpoints")
		adminKey       = fs_.StringLong("admin-key", "", "X-API-Key required to read the miss log")
		allowedOrigins = fs_.StringLong("allowed-origins", "", "Comma-separated list of allowed CORS origins")
	)

	args := os.Args[1:]
	if len(args) > 0 && args[0] == "setup" {
		args = args[1:]
	}
	if err := ff.Parse(fs_, args, ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs_))
		return fmt.Errorf("parsing flags: %w", err)
	}

	if *dictPath == "" && *databaseURL == "" {
		return errors.New("dict or database-url is required")
	}

	log := logger.New()

	ctx, cancel := context.WithCancelCause(context.Background())

	table, err := phoneme.LoadTableFile(*rulesPath)
	if err != nil {
		return err
	}

	var repo db.Repository
	if *databaseURL != "" {
		repo, err = store.Open(ctx, *databaseURL)
		if err != nil {
			return err
		}
		defer repo.Close()
		log.InfoContext(ctx, "connected to database", "postgres", store.IsPostgres(*databaseURL))

		if pg, ok := repo.(*postgres.Repository); ok {
			go exportPoolStats(ctx, pg)
		}
	}

	var dict *lexicon.Dictionary
	if *dictPath != "" {
		dict, err = lexicon.LoadFile(*dictPath)
	} else {
		dict, err = store.LoadDictionary(ctx, repo)
	}
	if err != nil {
		return fmt.Errorf("loading dictionary: %w", err)
	}
	log.InfoContext(ctx, "dictionary loaded", "entries", dict.Len(), "rules", table.Len())

	opts := []pronunciation.Option{pronunciation.WithLogger(log)}
	if repo != nil {
		opts = append(opts, pronunciation.WithMissRecorder(repo))
	}
	p := pronunciation.New(dict, table, transliteration.Converter{}, opts...)

	var origins []string
	if *allowedOrigins != "" {
		for _, o := range strings.Split(*allowedOrigins, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	router := web.NewRouter(p, repo, log, web.Config{
		Workers:        int(*workers),
		AllowedOrigins: origins,
		AdminKey:       *adminKey,
		WordQuota:      int(*wordQuota),
	})
	defer router.Close()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.InfoContext(ctx, "received signal, shutting down gracefully", "signal", sig)
		cancel(errors.New("signal received"))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.ErrorContext(ctx, "server shutdown error", "error", err)
		}
	}()

	log.InfoContext(ctx, "starting web server", "port", *port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// exportPoolStats periodically exports pgxpool stats as Prometheus gauges.
func exportPoolStats(ctx context.Context, repo *postgres.Repository) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s := repo.PoolStats()
			metrics.DBPoolTotalConns.Set(float64(s.TotalConns()))
			metrics.DBPoolIdleConns.Set(float64(s.IdleConns()))
			metrics.DBPoolAcquiredConns.Set(float64(s.AcquiredConns()))
			metrics.DBPoolMaxConns.Set(float64(s.MaxConns()))
		case <-ctx.Done():
			return
		}
	}
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
