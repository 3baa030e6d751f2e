package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/deckelbot/internal/config"
	"github.com/GlebRadaev/deckelbot/internal/handlers/admin"
	"github.com/GlebRadaev/deckelbot/internal/handlers/webhook"
	"github.com/GlebRadaev/deckelbot/internal/service"
	"github.com/GlebRadaev/deckelbot/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := &service.Services{
		BotService:        webhook.NewMockService(ctrl),
		SettlementService: admin.NewMockService(ctrl),
	}

	h := New(services, &config.Config{WebhookSecret: "s3cret"})
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.WebhookHandler)
	assert.NotNil(t, h.AdminHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	hasher := &auth.BcryptHasher{}
	tokenHash, err := hasher.Hash("admin-token")
	require.NoError(t, err)

	mockWebhookHandler := NewMockWebhookHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockWebhookHandler.EXPECT().Receive(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetPending(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().Forward(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		WebhookHandler: mockWebhookHandler,
		AdminHandler:   mockAdminHandler,
		adminTokenHash: tokenHash,
		hasher:         hasher,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"GET", "/", "", http.StatusOK},
		{"POST", "/webhook/s3cret", "", http.StatusOK},
		{"GET", "/webhook/s3cret", "", http.StatusMethodNotAllowed},
		{"GET", "/api/admin/settlements/pending", "", http.StatusUnauthorized},
		{"POST", "/api/admin/settlements/forward", "", http.StatusUnauthorized},
		{"GET", "/api/admin/settlements/pending", "wrong", http.StatusUnauthorized},
		{"GET", "/api/admin/settlements/pending", "admin-token", http.StatusOK},
		{"POST", "/api/admin/settlements/forward", "admin-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" "+tt.token, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
