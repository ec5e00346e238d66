// kanafy converts English words to katakana from the command line.
//
//	kanafy --dict cmudict.txt hello world
//	echo "hello world" | kanafy --dict cmudict.txt
//	kanafy --phonemes --explain K AE T
//	kanafy --dict cmudict.txt --check-coverage
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jusunglee/kanafy/internal/db"
	"github.com/jusunglee/kanafy/internal/lexicon"
	"github.com/jusunglee/kanafy/internal/logger"
	"github.com/jusunglee/kanafy/internal/phoneme"
	"github.com/jusunglee/kanafy/internal/pronunciation"
	"github.com/jusunglee/kanafy/internal/store"
	"github.com/jusunglee/kanafy/internal/transliteration"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/samber/lo"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs_ := ff.NewFlagSet("kanafy")

	var (
		dictPath      = fs_.StringLong("dict", "", "Pronunciation dictionary file (WORD PH O NE MES per line)")
		rulesPath     = fs_.StringLong("rules", "", "YAML file with extra or replacement mapping rules")
		databaseURL   = fs_.StringLong("database-url", "", "Load the dictionary from SQLite/PostgreSQL instead of --dict and log fallback words")
		workers       = fs_.Int64Long("workers", int64(runtime.NumCPU()), "Concurrent conversions")
		phonemes      = fs_.BoolLong("phonemes", "Treat the arguments as one phoneme sequence instead of words")
		explain       = fs_.BoolLong("explain", "Print each table lookup or the source of each word")
		checkCoverage = fs_.BoolLong("check-coverage", "Report phoneme pairs the table cannot convert and exit non-zero if any")
		dumpRules     = fs_.BoolLong("dump-rules", "Print the mapping table as YAML")
	)

	if err := ff.Parse(fs_, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs_))
		return fmt.Errorf("parsing flags: %w", err)
	}

	opts := logger.OptionsFromEnv()
	opts.Writer = os.Stderr
	log := logger.InitWith(opts)

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.InfoContext(ctx, "received signal, stopping", "signal", sig)
		cancel(errors.New("signal received"))
	}()

	table, err := phoneme.LoadTableFile(*rulesPath)
	if err != nil {
		return err
	}

	if *dumpRules {
		return phoneme.WriteRules(os.Stdout, table)
	}
	if *phonemes {
		return convertPhonemes(os.Stdout, table, fs_.GetArgs(), *explain)
	}

	var repo db.Repository
	if *databaseURL != "" {
		repo, err = store.Open(ctx, *databaseURL)
		if err != nil {
			return err
		}
		defer repo.Close()
	}

	dict, err := loadDictionary(ctx, *dictPath, repo)
	if err != nil {
		return err
	}
	log.DebugContext(ctx, "dictionary loaded", "entries", dict.Len())

	if *checkCoverage {
		return reportCoverage(os.Stdout, pronunciation.Coverage(dict, table))
	}

	var popts []pronunciation.Option
	popts = append(popts, pronunciation.WithLogger(log))
	if repo != nil {
		popts = append(popts, pronunciation.WithMissRecorder(repo))
	}
	p := pronunciation.New(dict, table, transliteration.Converter{}, popts...)

	words := fs_.GetArgs()
	if len(words) == 0 {
		words, err = readWords(os.Stdin)
		if err != nil {
			return err
		}
	}

	results, err := p.Batch(ctx, words, int(*workers))
	if err != nil {
		if cause := context.Cause(ctx); cause != nil {
			return cause
		}
		return err
	}
	for _, r := range results {
		if *explain {
			fmt.Printf("%s\t%s\t%s\t%s\n", r.Word, r.Kana, r.Source, phoneme.Join(r.Phonemes))
			continue
		}
		fmt.Println(r.Kana)
	}
	return nil
}

// loadDictionary prefers the database when one is configured. With neither
// source every word goes to the fallback.
func loadDictionary(ctx context.Context, path string, repo db.Repository) (*lexicon.Dictionary, error) {
	if repo != nil {
		return store.LoadDictionary(ctx, repo)
	}
	if path == "" {
		slog.WarnContext(ctx, "no dictionary configured, using fallback conversion only")
		return lexicon.New(), nil
	}
	return lexicon.LoadFile(path)
}

func readWords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		words = append(words, strings.Fields(sc.Text())...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading words: %w", err)
	}
	return words, nil
}

func convertPhonemes(w io.Writer, table *phoneme.Table, args []string, explain bool) error {
	ps := phoneme.Parse(strings.ToUpper(strings.Join(args, " ")))
	steps, err := table.Steps(ps)
	if err != nil {
		return err
	}
	if explain {
		for _, s := range steps {
			fmt.Fprintf(w, "%-4s %-10s %s\n", s.Current, s.Next, s.Kana)
		}
	}
	fmt.Fprintln(w, strings.Join(lo.Map(steps, func(s phoneme.Step, _ int) string { return s.Kana }), ""))
	return nil
}

func reportCoverage(w io.Writer, report pronunciation.Report) error {
	fmt.Fprintf(w, "%d entries, %d covered, %d uncovered\n", report.Entries, report.Covered, report.Uncovered)
	if report.Complete() {
		return nil
	}
	for _, g := range report.Gaps {
		sample := g.Words
		if len(sample) > 5 {
			sample = sample[:5]
		}
		fmt.Fprintf(w, "%-4s %-10s %6d  %s\n", g.Current, g.Context(), len(g.Words), strings.Join(sample, " "))
	}
	return fmt.Errorf("%d phoneme pairs missing from the table", len(report.Gaps))
}
