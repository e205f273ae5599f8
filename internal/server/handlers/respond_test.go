package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    int
		wantErr bool
	}{
		{"absent uses default", "", 50, false},
		{"explicit value", "limit=10", 10, false},
		{"capped at max", "limit=9999", 200, false},
		{"exactly max", "limit=200", 200, false},
		{"zero rejected", "limit=0", 0, true},
		{"negative rejected", "limit=-5", 0, true},
		{"non-numeric rejected", "limit=abc", 0, true},
		{"float rejected", "limit=1.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)

			limit, err := parseLimit(req, 50, 200)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, limit)
		})
	}
}

func TestOptionalCursor(t *testing.T) {
	assert.Nil(t, optionalCursor(""))

	got := optionalCursor("abc123")
	require.NotNil(t, got)
	assert.Equal(t, "abc123", *got)
}

func TestSendError_Shape(t *testing.T) {
	rec := httptest.NewRecorder()

	sendError(setupTestLogger(), rec, "something broke", http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error": "Bad Request", "message": "something broke"}`, rec.Body.String())
}
