package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		checks     map[string]Check
		wantStatus int
		wantBody   response
	}{
		{
			name:       "no checks",
			wantStatus: http.StatusOK,
			wantBody:   response{Status: "ok"},
		},
		{
			name: "all pass",
			checks: map[string]Check{
				"dictionary": func(context.Context) error { return nil },
			},
			wantStatus: http.StatusOK,
			wantBody:   response{Status: "ok", Checks: map[string]string{"dictionary": "ok"}},
		},
		{
			name: "one fails",
			checks: map[string]Check{
				"dictionary": func(context.Context) error { return nil },
				"database":   func(context.Context) error { return errors.New("connection refused") },
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody: response{Status: "unavailable", Checks: map[string]string{
				"dictionary": "ok",
				"database":   "connection refused",
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Handler(tt.checks).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var got response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tt.wantBody, got)
		})
	}
}
