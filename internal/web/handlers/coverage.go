package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/jusunglee/kanafy/internal/pronunciation"
	"github.com/jusunglee/kanafy/internal/web/respond"
)

type CoverageHandler struct {
	report func() pronunciation.Report
}

// NewCoverageHandler computes the report on first request and reuses it;
// the dictionary and table never change while the server runs.
func NewCoverageHandler(p *pronunciation.Pronouncer) *CoverageHandler {
	return &CoverageHandler{
		report: sync.OnceValue(func() pronunciation.Report {
			return pronunciation.Coverage(p.Dictionary(), p.Table())
		}),
	}
}

// Get returns the coverage report. ?words=N trims each gap's word list to N.
func (h *CoverageHandler) Get(w http.ResponseWriter, r *http.Request) {
	report := h.report()

	if n, err := strconv.Atoi(r.URL.Query().Get("words")); err == nil && n >= 0 {
		gaps := make([]pronunciation.Gap, len(report.Gaps))
		for i, g := range report.Gaps {
			if len(g.Words) > n {
				g.Words = g.Words[:n]
			}
			gaps[i] = g
		}
		report.Gaps = gaps
	}
	respond.JSON(w, http.StatusOK, report)
}
