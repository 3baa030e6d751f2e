package clients

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestHTTPClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		w.Header().Set("Request-Id", "req_1")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewHTTPClient()
	headers := http.Header{}
	headers.Set("Authorization", "Bearer sk_test")

	status, body, respHeaders, err := client.Get(context.Background(), server.URL+"/v1/balance", headers)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"ok":true}`, string(body))
	assert.Equal(t, "req_1", respHeaders.Get("Request-Id"))
}

func TestHTTPClient_PostForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "key-1", r.Header.Get("Idempotency-Key"))
		raw, _ := io.ReadAll(r.Body)
		form, err := url.ParseQuery(string(raw))
		assert.NoError(t, err)
		assert.Equal(t, "750", form.Get("amount"))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewHTTPClient()
	headers := http.Header{}
	headers.Set("Idempotency-Key", "key-1")

	status, _, _, err := client.PostForm(context.Background(), server.URL, headers, url.Values{"amount": {"750"}})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.Empty(t, headers.Get("Content-Type"))
}

func TestHTTPClient_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, _, err := NewHTTPClient().Get(ctx, server.URL, nil)
	assert.Error(t, err)
}

func TestHTTPClient_SetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockHTTPClientI(ctrl)
	mock.EXPECT().
		Get(gomock.Any(), "http://stripe.local/v1/balance", gomock.Any()).
		Return(http.StatusTooManyRequests, nil, http.Header{}, nil)

	client := NewHTTPClient()
	client.SetClient(mock)

	status, _, _, err := client.Get(context.Background(), "http://stripe.local/v1/balance", nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, status)
}
