// importer loads one or more pronunciation dictionary files into a
// SQLite or PostgreSQL database.
//
//	importer --database-url kanafy.db cmudict.txt extra.txt
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jusunglee/kanafy/internal/lexicon"
	"github.com/jusunglee/kanafy/internal/logger"
	"github.com/jusunglee/kanafy/internal/phoneme"
	"github.com/jusunglee/kanafy/internal/pronunciation"
	"github.com/jusunglee/kanafy/internal/store"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs_ := ff.NewFlagSet("kanafy-importer")

	var (
		databaseURL = fs_.StringLong("database-url", "", "SQLite path or PostgreSQL URL")
		batchSize   = fs_.Int64Long("batch-size", store.DefaultBatchSize, "Entries written per transaction")
		rulesPath   = fs_.StringLong("rules", "", "YAML rule overlay used for the coverage check")
		strict      = fs_.BoolLong("strict", "Refuse to import if any entry cannot be converted")
	)

	if err := ff.Parse(fs_, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs_))
		return fmt.Errorf("parsing flags: %w", err)
	}

	files := fs_.GetArgs()
	if *databaseURL == "" {
		return errors.New("database-url is required")
	}
	if len(files) == 0 {
		return errors.New("at least one dictionary file is required")
	}

	log := logger.New()

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.InfoContext(ctx, "received signal, stopping", "signal", sig)
		cancel(errors.New("signal received"))
	}()

	dicts, err := loadAll(ctx, files)
	if err != nil {
		return err
	}
	// Later files override earlier ones, as later lines do within a file.
	merged := lexicon.New()
	for _, d := range dicts {
		for _, e := range d.Entries() {
			merged.Add(e.Word, e.Phonemes)
		}
	}

	table, err := phoneme.LoadTableFile(*rulesPath)
	if err != nil {
		return err
	}
	report := pronunciation.Coverage(merged, table)
	if !report.Complete() {
		log.WarnContext(ctx, "some entries cannot be converted",
			"uncovered", report.Uncovered,
			"pairs", len(report.Gaps),
		)
		if *strict {
			return fmt.Errorf("%d entries need pairs missing from the table", report.Uncovered)
		}
	}

	repo, err := store.Open(ctx, *databaseURL)
	if err != nil {
		return err
	}
	defer repo.Close()

	start := time.Now()
	n, err := store.Import(ctx, repo, merged, int(*batchSize))
	if err != nil {
		return err
	}
	total, err := repo.CountPronunciations(ctx)
	if err != nil {
		return fmt.Errorf("counting pronunciations: %w", err)
	}
	log.InfoContext(ctx, "import complete",
		"written", n,
		"stored", total,
		"duration", time.Since(start),
	)
	return nil
}

// loadAll parses every file concurrently and returns them in argument order.
func loadAll(ctx context.Context, files []string) ([]*lexicon.Dictionary, error) {
	dicts := make([]*lexicon.Dictionary, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range files {
		g.Go(func() error {
			d, err := lexicon.LoadFile(path)
			if err != nil {
				return err
			}
			slog.InfoContext(ctx, "parsed dictionary", "path", path, "entries", d.Len())
			dicts[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dicts, nil
}
