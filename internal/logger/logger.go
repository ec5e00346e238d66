// Package logger sets up slog for the binaries.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"sync"
)

var (
	once   sync.Once
	logger *slog.Logger
)

const (
	reset   = "\033[0m"
	red     = "\033[31m"
	green   = "\033[32m"
	yellow  = "\033[33m"
	blue    = "\033[34m"
	magenta = "\033[35m"
	cyan    = "\033[36m"
	gray    = "\033[90m"
	white   = "\033[97m"
)

// PrettyHandler writes colored single-line records for terminals.
type PrettyHandler struct {
	w     io.Writer
	level slog.Leveler
	attrs []slog.Attr
	mu    *sync.Mutex
}

func NewPrettyHandler(w io.Writer, level slog.Level) *PrettyHandler {
	return &PrettyHandler{w: w, level: level, mu: &sync.Mutex{}}
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	timestamp := r.Time.Format("15:04:05")

	var levelColor, levelText string
	switch r.Level {
	case slog.LevelDebug:
		levelColor = gray
		levelText = "DBG"
	case slog.LevelInfo:
		levelColor = green
		levelText = "INF"
	case slog.LevelWarn:
		levelColor = yellow
		levelText = "WRN"
	case slog.LevelError:
		levelColor = red
		levelText = "ERR"
	}

	fmt.Fprintf(h.w, "%s%s%s %s%-3s%s %s",
		gray, timestamp, reset,
		levelColor, levelText, reset,
		r.Message,
	)

	for _, a := range h.attrs {
		fmt.Fprintf(h.w, " %s%s%s=%v", cyan, a.Key, reset, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(h.w, " %s%s%s=%v", cyan, a.Key, reset, a.Value)
		return true
	})

	fmt.Fprintln(h.w)
	return nil
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &PrettyHandler{
		w:     h.w,
		level: h.level,
		attrs: append(slices.Clip(h.attrs), attrs...),
		mu:    h.mu,
	}
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return h
}

// Options selects the handler and level. The zero value logs INFO and up
// with the pretty handler to stdout.
type Options struct {
	Level  slog.Level
	Format string // "json" or "pretty"
	Writer io.Writer
}

// OptionsFromEnv reads LOG_LEVEL and LOG_FORMAT.
func OptionsFromEnv() Options {
	opts := Options{Level: slog.LevelInfo, Format: os.Getenv("LOG_FORMAT")}
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	}
	return opts
}

// NewWith builds a logger without touching the process default.
func NewWith(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	if opts.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: opts.Level}))
	}
	return slog.New(NewPrettyHandler(w, opts.Level))
}

// Init configures the process-wide logger from the environment once.
func Init() *slog.Logger {
	return InitWith(OptionsFromEnv())
}

// InitWith is Init with explicit options. Only the first call has effect.
func InitWith(opts Options) *slog.Logger {
	once.Do(func() {
		logger = NewWith(opts)
		slog.SetDefault(logger)
	})
	return logger
}

// New returns the process-wide logger, initializing it if needed.
func New() *slog.Logger {
	return Get()
}

// Get returns the process-wide logger.
func Get() *slog.Logger {
	return Init()
}
