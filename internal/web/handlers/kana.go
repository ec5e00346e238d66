package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jusunglee/kanafy/internal/phoneme"
	"github.com/jusunglee/kanafy/internal/pronunciation"
	"github.com/jusunglee/kanafy/internal/web/respond"
	"github.com/samber/lo"
)

// MaxBatchWords caps the number of words in one POST /api/v1/kana request.
const MaxBatchWords = 500

type KanaHandler struct {
	pronouncer *pronunciation.Pronouncer
	log        *slog.Logger
	workers    int
}

func NewKanaHandler(p *pronunciation.Pronouncer, log *slog.Logger, workers int) *KanaHandler {
	return &KanaHandler{pronouncer: p, log: log, workers: workers}
}

type batchRequest struct {
	Words []string `json:"words"`
}

type batchResponse struct {
	Data []pronunciation.Result `json:"data"`
}

// uncoverableResponse is the 422 body for a pair missing from the table.
// Next is empty when the phoneme had no follower.
type uncoverableResponse struct {
	Error   string `json:"error"`
	Current string `json:"current"`
	Next    string `json:"next"`
}

func (h *KanaHandler) Get(w http.ResponseWriter, r *http.Request) {
	word := strings.TrimSpace(r.URL.Query().Get("word"))
	if word == "" {
		respond.Error(w, http.StatusBadRequest, "word is required")
		return
	}

	res, err := h.pronouncer.Lookup(r.Context(), word)
	if err != nil {
		h.writeConversionError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}

func (h *KanaHandler) Batch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	words := lo.FilterMap(req.Words, func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
	if len(words) == 0 {
		respond.Error(w, http.StatusBadRequest, "words is required")
		return
	}
	if len(words) > MaxBatchWords {
		respond.Error(w, http.StatusBadRequest, fmt.Sprintf("at most %d words per request", MaxBatchWords))
		return
	}

	results, err := h.pronouncer.Batch(r.Context(), words, h.workers)
	if err != nil {
		h.writeConversionError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, batchResponse{Data: results})
}

func (h *KanaHandler) writeConversionError(w http.ResponseWriter, r *http.Request, err error) {
	var pairErr *phoneme.UncoverablePairError
	if errors.As(err, &pairErr) {
		next, _ := pairErr.Next.Phoneme()
		respond.JSON(w, http.StatusUnprocessableEntity, uncoverableResponse{
			Error:   err.Error(),
			Current: string(pairErr.Current),
			Next:    string(next),
		})
		return
	}
	if r.Context().Err() != nil {
		respond.Error(w, http.StatusServiceUnavailable, "request cancelled")
		return
	}
	h.log.ErrorContext(r.Context(), "converting words", "error", err)
	respond.Error(w, http.StatusInternalServerError, "internal error")
}
