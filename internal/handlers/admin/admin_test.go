package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GlebRadaev/deckelbot/internal/domain"
	"github.com/GlebRadaev/deckelbot/internal/dto"
	"github.com/GlebRadaev/deckelbot/internal/service/settlementservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AdminHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestGetPending(t *testing.T) {
	settledAt := time.Date(2024, 5, 1, 20, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		query        string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody []dto.SettlementResponseDTO
	}{
		{
			name: "Pending settlements",
			prepareMock: func(service *MockService) {
				service.EXPECT().Pending(gomock.Any(), 100).Return([]domain.Settlement{
					{ID: 1, AccountID: 42, ReceiptID: "ch_1", TelegramChargeID: "tg_1", Amount: 750, Fee: 35, SettledAt: settledAt},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.SettlementResponseDTO{
				{ID: 1, AccountID: 42, ReceiptID: "ch_1", TelegramChargeID: "tg_1", Amount: 750, Fee: 35, SettledAt: settledAt},
			},
		},
		{
			name:  "Custom limit",
			query: "?limit=5",
			prepareMock: func(service *MockService) {
				service.EXPECT().Pending(gomock.Any(), 5).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "Invalid limit",
			query:        "?limit=abc",
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Limit out of range",
			query:        "?limit=5000",
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			prepareMock: func(service *MockService) {
				service.EXPECT().Pending(gomock.Any(), 100).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := httptest.NewRequest(http.MethodGet, "/api/admin/settlements/pending"+tt.query, nil)
			w := httptest.NewRecorder()
			handler.GetPending(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.SettlementResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestForward(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedQueue int
	}{
		{
			name: "Default limit without body",
			prepareMock: func(service *MockService) {
				service.EXPECT().RetryForwarding(gomock.Any(), 100).Return(3, nil)
			},
			expectedCode:  http.StatusAccepted,
			expectedQueue: 3,
		},
		{
			name: "Explicit limit",
			body: `{"limit":10}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().RetryForwarding(gomock.Any(), 10).Return(1, nil)
			},
			expectedCode:  http.StatusAccepted,
			expectedQueue: 1,
		},
		{
			name:         "Invalid body",
			body:         `{"limit":"ten"}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Negative limit",
			body:         `{"limit":-1}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Forwarding disabled",
			prepareMock: func(service *MockService) {
				service.EXPECT().RetryForwarding(gomock.Any(), 100).Return(0, settlementservice.ErrForwardingDisabled)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal server error",
			prepareMock: func(service *MockService) {
				service.EXPECT().RetryForwarding(gomock.Any(), 100).Return(0, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := httptest.NewRequest(http.MethodPost, "/api/admin/settlements/forward", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.Forward(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusAccepted {
				var body dto.ForwardResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedQueue, body.Queued)
			}
		})
	}
}
