package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuota(t *testing.T, limit int) (*WordQuota, *time.Time) {
	t.Helper()
	q := NewWordQuota(limit, time.Minute)
	t.Cleanup(q.Close)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	q.now = func() time.Time { return now }
	return q, &now
}

func TestWordQuotaTake(t *testing.T) {
	q, now := newTestQuota(t, 10)

	remaining, ok := q.Take("1.2.3.4", 6)
	assert.True(t, ok)
	assert.Equal(t, 4, remaining)

	remaining, ok = q.Take("1.2.3.4", 5)
	assert.False(t, ok)
	assert.Equal(t, 4, remaining)

	remaining, ok = q.Take("1.2.3.4", 4)
	assert.True(t, ok)
	assert.Equal(t, 0, remaining)

	_, ok = q.Take("5.6.7.8", 10)
	assert.True(t, ok, "clients are charged separately")

	*now = now.Add(time.Minute + time.Second)
	remaining, ok = q.Take("1.2.3.4", 10)
	assert.True(t, ok, "charges expire after the window")
	assert.Equal(t, 0, remaining)
}

func TestWordQuotaSweep(t *testing.T) {
	q, now := newTestQuota(t, 10)
	q.Take("1.2.3.4", 1)
	q.Take("5.6.7.8", 1)
	require.Equal(t, 2, q.clientCount())

	*now = now.Add(30 * time.Second)
	q.Take("5.6.7.8", 1)
	*now = now.Add(45 * time.Second)
	q.sweep()
	assert.Equal(t, 1, q.clientCount())
}

func TestWordQuotaCloseStopsSweep(t *testing.T) {
	q := NewWordQuota(10, time.Minute)
	q.Close()

	select {
	case <-q.done:
	case <-time.After(time.Second):
		t.Fatal("sweep goroutine still running after Close")
	}
	q.Close()
}

func TestWordCost(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "batch", body: `{"words":["cat","hello"," ","tokyo"]}`, want: 3},
		{name: "phonemes", body: `{"phonemes":["K","AE","T"]}`, want: 1},
		{name: "invalid", body: `{"words":`, want: 1},
		{name: "empty", body: ``, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			assert.Equal(t, tt.want, WordCost(r))

			rest, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.body, string(rest), "body is restored")
		})
	}
}

func TestQuotaChargesWords(t *testing.T) {
	q, _ := newTestQuota(t, 5)
	var served []string
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		served = append(served, string(b))
		w.WriteHeader(http.StatusOK)
	}), Quota(q, WordCost))

	post := func(body string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		r.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		return rec
	}

	tests := []struct {
		body      string
		status    int
		remaining string
	}{
		{body: `{"words":["a","b","c","d"]}`, status: http.StatusOK, remaining: "1"},
		{body: `{"words":["a","b"]}`, status: http.StatusTooManyRequests, remaining: "1"},
		{body: `{"words":["a"]}`, status: http.StatusOK, remaining: "0"},
		{body: `{"phonemes":["K"]}`, status: http.StatusTooManyRequests, remaining: "0"},
	}
	for _, tt := range tests {
		rec := post(tt.body)
		assert.Equal(t, tt.status, rec.Code, tt.body)
		assert.Equal(t, tt.remaining, rec.Header().Get("X-Words-Remaining"), tt.body)
		if tt.status == http.StatusTooManyRequests {
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"error":"word quota exceeded"}`, rec.Body.String())
			assert.Equal(t, "60", rec.Header().Get("Retry-After"))
		}
	}
	assert.Equal(t, []string{`{"words":["a","b","c","d"]}`, `{"words":["a"]}`}, served)
}
