package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jusunglee/kanafy/internal/phoneme"
	"github.com/jusunglee/kanafy/internal/web/respond"
	"github.com/samber/lo"
)

// MaxPhonemes caps the length of a sequence accepted by POST /api/v1/convert.
const MaxPhonemes = 256

type ConvertHandler struct {
	table *phoneme.Table
	kana  *KanaHandler
}

func NewConvertHandler(table *phoneme.Table, kana *KanaHandler) *ConvertHandler {
	return &ConvertHandler{table: table, kana: kana}
}

type convertRequest struct {
	Phonemes []string `json:"phonemes"`
	Explain  bool     `json:"explain"`
}

type stepResponse struct {
	Current string `json:"current"`
	Next    string `json:"next"`
	Kana    string `json:"kana"`
}

type convertResponse struct {
	Kana  string         `json:"kana"`
	Steps []stepResponse `json:"steps,omitempty"`
}

// Convert runs a raw phoneme sequence through the table, bypassing the
// dictionary.
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Phonemes) > MaxPhonemes {
		respond.Error(w, http.StatusBadRequest, "too many phonemes")
		return
	}

	ps := lo.Map(req.Phonemes, func(s string, _ int) phoneme.Phoneme {
		return phoneme.Phoneme(strings.ToUpper(strings.TrimSpace(s)))
	})
	steps, err := h.table.Steps(ps)
	if err != nil {
		h.kana.writeConversionError(w, r, err)
		return
	}

	resp := convertResponse{
		Kana: strings.Join(lo.Map(steps, func(s phoneme.Step, _ int) string { return s.Kana }), ""),
	}
	if req.Explain {
		resp.Steps = lo.Map(steps, func(s phoneme.Step, _ int) stepResponse {
			next, _ := s.Next.Phoneme()
			return stepResponse{Current: string(s.Current), Next: string(next), Kana: s.Kana}
		})
	}
	respond.JSON(w, http.StatusOK, resp)
}
