package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminMiddleware(t *testing.T) {
	hasher := &BcryptHasher{}
	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	tests := []struct {
		name       string
		tokenHash  string
		header     string
		wantStatus int
	}{
		{name: "Valid token", tokenHash: hash, header: "Bearer s3cret", wantStatus: http.StatusOK},
		{name: "Wrong token", tokenHash: hash, header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "Missing header", tokenHash: hash, header: "", wantStatus: http.StatusUnauthorized},
		{name: "Not a bearer token", tokenHash: hash, header: "Basic s3cret", wantStatus: http.StatusUnauthorized},
		{name: "Admin disabled", tokenHash: "", header: "Bearer s3cret", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			handler := AdminMiddleware(tt.tokenHash, hasher)(next)

			req := httptest.NewRequest(http.MethodGet, "/api/admin/settlements/pending", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
