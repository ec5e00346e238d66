package web

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jusunglee/kanafy/internal/db"
	"github.com/jusunglee/kanafy/internal/db/sqlite"
	"github.com/jusunglee/kanafy/internal/lexicon"
	"github.com/jusunglee/kanafy/internal/phoneme"
	"github.com/jusunglee/kanafy/internal/pronunciation"
	"github.com/jusunglee/kanafy/internal/transliteration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDict = `HELLO HH AH L OW
CAT K AE T
ODD AE IY
`

func newTestServer(t *testing.T, cfg Config, withRepo bool) (*httptest.Server, db.Repository) {
	t.Helper()
	dict, err := lexicon.Load(strings.NewReader(testDict))
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	var (
		repo db.Repository
		opts []pronunciation.Option
	)
	if withRepo {
		r, err := sqlite.New(context.Background(), ":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { r.Close() })
		repo = r
		opts = append(opts, pronunciation.WithMissRecorder(r))
	}
	opts = append(opts, pronunciation.WithLogger(log))

	p := pronunciation.New(dict, phoneme.Default(), transliteration.Converter{}, opts...)
	router := NewRouter(p, repo, log, cfg)
	t.Cleanup(router.Close)
	srv := httptest.NewServer(router.Handler())
	t.Cleanup(srv.Close)
	return srv, repo
}

func getJSON(t *testing.T, url string, v any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp
}

func postJSON(t *testing.T, url, body string, v any) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp
}

func TestGetKana(t *testing.T) {
	srv, _ := newTestServer(t, Config{}, false)

	var got pronunciation.Result
	resp := getJSON(t, srv.URL+"/api/v1/kana?word=hello", &got)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ハロー", got.Kana)
	assert.Equal(t, pronunciation.SourceDictionary, got.Source)
	assert.Equal(t, []phoneme.Phoneme{"HH", "AH", "L", "OW"}, got.Phonemes)

	got = pronunciation.Result{}
	resp = getJSON(t, srv.URL+"/api/v1/kana?word=sushi", &got)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "スシ", got.Kana)
	assert.Equal(t, pronunciation.SourceFallback, got.Source)
	assert.Empty(t, got.Phonemes)
}

func TestGetKanaErrors(t *testing.T) {
	srv, _ := newTestServer(t, Config{}, false)

	var body map[string]string
	resp := getJSON(t, srv.URL+"/api/v1/kana", &body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "word is required", body["error"])

	resp = getJSON(t, srv.URL+"/api/v1/kana?word=odd", &body)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "AE", body["current"])
	assert.Equal(t, "IY", body["next"])
	assert.NotEmpty(t, body["error"])
}

func TestBatchKana(t *testing.T) {
	srv, _ := newTestServer(t, Config{}, false)

	var got struct {
		Data []pronunciation.Result `json:"data"`
	}
	resp := postJSON(t, srv.URL+"/api/v1/kana", `{"words":["cat"," ","hello","kitte"]}`, &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, got.Data, 3)
	assert.Equal(t, "カト", got.Data[0].Kana)
	assert.Equal(t, "ハロー", got.Data[1].Kana)
	assert.Equal(t, "キッテ", got.Data[2].Kana)
}

func TestBatchKanaRejects(t *testing.T) {
	srv, _ := newTestServer(t, Config{}, false)

	resp := postJSON(t, srv.URL+"/api/v1/kana", `{"words":[]}`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/api/v1/kana", `not json`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	words := make([]string, 501)
	for i := range words {
		words[i] = "cat"
	}
	body, err := json.Marshal(map[string][]string{"words": words})
	require.NoError(t, err)
	resp = postJSON(t, srv.URL+"/api/v1/kana", string(body), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestConvert(t *testing.T) {
	srv, _ := newTestServer(t, Config{}, false)

	var got struct {
		Kana  string `json:"kana"`
		Steps []struct {
			Current string `json:"current"`
			Next    string `json:"next"`
			Kana    string `json:"kana"`
		} `json:"steps"`
	}
	resp := postJSON(t, srv.URL+"/api/v1/convert", `{"phonemes":["k","AE","T"],"explain":true}`, &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "カト", got.Kana)
	require.Len(t, got.Steps, 2)
	assert.Equal(t, "K", got.Steps[0].Current)
	assert.Equal(t, "AE", got.Steps[0].Next)
	assert.Equal(t, "カ", got.Steps[0].Kana)
	assert.Equal(t, "T", got.Steps[1].Current)
	assert.Equal(t, "", got.Steps[1].Next)

	got.Steps = nil
	resp = postJSON(t, srv.URL+"/api/v1/convert", `{"phonemes":["K","AE","T"]}`, &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, got.Steps)
}

func TestConvertUncoverable(t *testing.T) {
	srv, _ := newTestServer(t, Config{}, false)

	var body map[string]string
	resp := postJSON(t, srv.URL+"/api/v1/convert", `{"phonemes":["QQ"]}`, &body)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "QQ", body["current"])
	assert.Equal(t, "", body["next"])
}

func TestCoverage(t *testing.T) {
	srv, _ := newTestServer(t, Config{}, false)

	var got pronunciation.Report
	resp := getJSON(t, srv.URL+"/api/v1/coverage", &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, got.Entries)
	assert.Equal(t, 2, got.Covered)
	require.Len(t, got.Gaps, 1)
	assert.Equal(t, []string{"ODD"}, got.Gaps[0].Words)

	resp = getJSON(t, srv.URL+"/api/v1/coverage?words=0", &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, got.Gaps, 1)
	assert.Empty(t, got.Gaps[0].Words)
}

func TestMisses(t *testing.T) {
	srv, _ := newTestServer(t, Config{}, true)

	for _, w := range []string{"sushi", "tokyo", "sushi"} {
		resp := getJSON(t, srv.URL+"/api/v1/kana?word="+w, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var got struct {
		Data []struct {
			Word string `json:"word"`
			Hits int64  `json:"hits"`
		} `json:"data"`
	}
	resp := getJSON(t, srv.URL+"/api/v1/misses?limit=10", &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, got.Data, 2)
	assert.Equal(t, "SUSHI", got.Data[0].Word)
	assert.Equal(t, int64(2), got.Data[0].Hits)
	assert.Equal(t, "TOKYO", got.Data[1].Word)
}

func TestMissesWithoutDatabase(t *testing.T) {
	srv, _ := newTestServer(t, Config{}, false)

	resp := getJSON(t, srv.URL+"/api/v1/misses", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestMissesAdminKey(t *testing.T) {
	srv, _ := newTestServer(t, Config{AdminKey: "secret"}, true)

	resp := getJSON(t, srv.URL+"/api/v1/misses", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/misses", nil)
	require.NoError(t, err)
	req.Header.Set("X-API-Key", "secret")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWordQuotaOnPost(t *testing.T) {
	srv, _ := newTestServer(t, Config{WordQuota: 2}, false)

	for range 2 {
		resp := postJSON(t, srv.URL+"/api/v1/convert", `{"phonemes":["K"]}`, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	var body map[string]string
	resp := postJSON(t, srv.URL+"/api/v1/convert", `{"phonemes":["K"]}`, &body)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, map[string]string{"error": "word quota exceeded"}, body)

	// GETs are not charged
	resp = getJSON(t, srv.URL+"/api/v1/kana?word=cat", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWordQuotaChargesBatchWords(t *testing.T) {
	srv, _ := newTestServer(t, Config{WordQuota: 4}, false)

	tests := []struct {
		name      string
		path      string
		body      string
		status    int
		remaining string
	}{
		{name: "three words", path: "/api/v1/kana", body: `{"words":["cat","hello","cat"]}`, status: http.StatusOK, remaining: "1"},
		{name: "two words over quota", path: "/api/v1/kana", body: `{"words":["cat","hello"]}`, status: http.StatusTooManyRequests, remaining: "1"},
		{name: "phoneme sequence costs one", path: "/api/v1/convert", body: `{"phonemes":["K","AE","T"]}`, status: http.StatusOK, remaining: "0"},
		{name: "spent", path: "/api/v1/kana", body: `{"words":["cat"]}`, status: http.StatusTooManyRequests, remaining: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+tt.path, tt.body, nil)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.remaining, resp.Header.Get("X-Words-Remaining"))
		})
	}
}

func TestWordQuotaSharedAcrossHandlers(t *testing.T) {
	dict, err := lexicon.Load(strings.NewReader(testDict))
	require.NoError(t, err)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := pronunciation.New(dict, phoneme.Default(), transliteration.Converter{}, pronunciation.WithLogger(log))

	router := NewRouter(p, nil, log, Config{WordQuota: 1})
	t.Cleanup(router.Close)
	first := httptest.NewServer(router.Handler())
	t.Cleanup(first.Close)
	second := httptest.NewServer(router.Handler())
	t.Cleanup(second.Close)

	resp := postJSON(t, first.URL+"/api/v1/kana", `{"words":["cat"]}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = postJSON(t, second.URL+"/api/v1/kana", `{"words":["cat"]}`, nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestHealthAndMetrics(t *testing.T) {
	srv, _ := newTestServer(t, Config{}, true)

	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	resp := getJSON(t, srv.URL+"/health", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, map[string]string{"dictionary": "ok", "database": "ok"}, body.Checks)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(b), "kanafy_dictionary_entries")
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t, Config{AllowedOrigins: []string{"https://example.com"}}, false)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/v1/kana", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://example.com")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "https://example.com", resp.Header.Get("Access-Control-Allow-Origin"))
}
