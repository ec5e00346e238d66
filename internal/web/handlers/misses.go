package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jusunglee/kanafy/internal/db"
	"github.com/jusunglee/kanafy/internal/web/respond"
)

type MissHandler struct {
	repo db.Repository
	log  *slog.Logger
}

// NewMissHandler serves the fallback-miss log. repo may be nil when the
// server runs without a database.
func NewMissHandler(repo db.Repository, log *slog.Logger) *MissHandler {
	return &MissHandler{repo: repo, log: log}
}

type missResponse struct {
	Word      string `json:"word"`
	Hits      int64  `json:"hits"`
	FirstSeen string `json:"first_seen"`
	LastSeen  string `json:"last_seen"`
}

type missListResponse struct {
	Data []missResponse `json:"data"`
}

func (h *MissHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		respond.Error(w, http.StatusServiceUnavailable, "no database configured")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 500 {
		limit = 50
	}

	misses, err := h.repo.ListMisses(r.Context(), int32(limit))
	if err != nil {
		h.log.ErrorContext(r.Context(), "listing misses", "error", err)
		respond.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	data := make([]missResponse, len(misses))
	for i, m := range misses {
		data[i] = missResponse{
			Word:      m.Word,
			Hits:      m.Hits,
			FirstSeen: m.FirstSeen.Format(time.RFC3339),
			LastSeen:  m.LastSeen.Format(time.RFC3339),
		}
	}
	respond.JSON(w, http.StatusOK, missListResponse{Data: data})
}
