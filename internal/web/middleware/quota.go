package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jusunglee/kanafy/internal/metrics"
	"github.com/jusunglee/kanafy/internal/web/respond"
	"github.com/samber/lo"
)

// maxCostBody bounds how much of a request body is read to price it.
const maxCostBody = 1 << 20

type charge struct {
	at    time.Time
	words int
}

// WordQuota limits the words each client may convert within a sliding
// window. Expired charges are swept in the background until Close.
type WordQuota struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	clients map[string][]charge

	closeOnce sync.Once
	stop      chan struct{}
	done      chan struct{}
}

// NewWordQuota allows limit words per client in every window.
func NewWordQuota(limit int, window time.Duration) *WordQuota {
	q := &WordQuota{
		limit:   limit,
		window:  window,
		now:     time.Now,
		clients: make(map[string][]charge),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go q.sweepLoop()
	return q
}

// Take charges words to client. It reports how many words the client has
// left and whether the charge fit; a rejected charge costs nothing.
func (q *WordQuota) Take(client string, words int) (remaining int, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	live := q.live(client, now)
	used := lo.SumBy(live, func(c charge) int { return c.words })
	if used+words > q.limit {
		q.clients[client] = live
		return q.limit - used, false
	}
	q.clients[client] = append(live, charge{at: now, words: words})
	return q.limit - used - words, true
}

// live drops the client's charges older than the window. Callers hold mu.
func (q *WordQuota) live(client string, now time.Time) []charge {
	cutoff := now.Add(-q.window)
	return lo.Filter(q.clients[client], func(c charge, _ int) bool { return c.at.After(cutoff) })
}

func (q *WordQuota) sweep() {
	q.mu.Lock()
	defer q.mu.Unlock()
	now := q.now()
	for client := range q.clients {
		if live := q.live(client, now); len(live) > 0 {
			q.clients[client] = live
		} else {
			delete(q.clients, client)
		}
	}
}

func (q *WordQuota) sweepLoop() {
	defer close(q.done)
	ticker := time.NewTicker(q.window)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			q.sweep()
		case <-q.stop:
			return
		}
	}
}

// Close stops the background sweep and waits for it to exit. It is safe to
// call more than once.
func (q *WordQuota) Close() {
	q.closeOnce.Do(func() { close(q.stop) })
	<-q.done
}

func (q *WordQuota) clientCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.clients)
}

// CostFunc prices a request in words.
type CostFunc func(r *http.Request) int

// WordCost prices a JSON body by its non-blank "words" entries. Bodies
// without words, such as a single phoneme sequence, cost one word. The body
// is restored for the next handler.
func WordCost(r *http.Request) int {
	if r.Body == nil {
		return 1
	}
	head, err := io.ReadAll(io.LimitReader(r.Body, maxCostBody))
	r.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(head), r.Body), r.Body}
	if err != nil {
		return 1
	}

	var body struct {
		Words []string `json:"words"`
	}
	if json.Unmarshal(head, &body) != nil {
		return 1
	}
	return max(1, lo.CountBy(body.Words, func(w string) bool { return strings.TrimSpace(w) != "" }))
}

// Quota charges each request cost(r) words against the client's quota and
// answers 429 once the quota is spent.
func Quota(q *WordQuota, cost CostFunc) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			words := cost(r)
			remaining, ok := q.Take(ClientIP(r), words)
			w.Header().Set("X-Words-Remaining", strconv.Itoa(max(remaining, 0)))

			ex := exchangeFrom(r.Context())
			if !ok {
				route := "unknown"
				if ex != nil {
					route = ex.route
				}
				metrics.QuotaRejections.WithLabelValues(route).Inc()
				w.Header().Set("Retry-After", strconv.Itoa(int(q.window.Seconds())))
				respond.Error(w, http.StatusTooManyRequests, "word quota exceeded")
				return
			}

			metrics.QuotaWordsCharged.Add(float64(words))
			if ex != nil {
				ex.words = words
			}
			next.ServeHTTP(w, r)
		})
	}
}
