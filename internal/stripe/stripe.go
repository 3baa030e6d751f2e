package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/GlebRadaev/deckelbot/internal/config"
	"github.com/GlebRadaev/deckelbot/internal/domain"
	"github.com/GlebRadaev/deckelbot/pkg/clients"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var ErrTransferNotConfirmed = errors.New("transfer not confirmed")

type APIError struct {
	Status  int
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("stripe: %d %s %s: %s", e.Status, e.Type, e.Code, e.Message)
}

type fund struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type balanceResponse struct {
	Available []fund `json:"available"`
	Pending   []fund `json:"pending"`
}

type chargeResponse struct {
	ID                 string `json:"id"`
	Amount             int64  `json:"amount"`
	BalanceTransaction struct {
		Net int64 `json:"net"`
		Fee int64 `json:"fee"`
	} `json:"balance_transaction"`
}

type paymentIntentResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Client talks to the Stripe REST API with form-encoded requests.
type Client struct {
	baseURL       string
	token         string
	currency      string
	paymentMethod string
	client        clients.HTTPClientI
	retryInterval time.Duration
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL:       strings.TrimSuffix(cfg.StripeAddress, "/"),
		token:         cfg.StripeToken,
		currency:      strings.ToLower(cfg.Currency),
		paymentMethod: cfg.StripePaymentMethod,
		client:        client,
		retryInterval: retryInterval,
	}
}

// IdempotencyKey derives a stable Idempotency-Key header value from parts.
func IdempotencyKey(parts ...string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("deckelbot:"+strings.Join(parts, ":"))).String()
}

// CheckBalance returns the available balance in the configured currency.
func (c *Client) CheckBalance(ctx context.Context) (int64, error) {
	var resp balanceResponse
	if err := c.do(ctx, http.MethodGet, "/v1/balance", nil, "", &resp); err != nil {
		return 0, err
	}

	var available int64
	for _, f := range resp.Available {
		if f.Currency == c.currency {
			available += f.Amount
		}
	}
	return available, nil
}

func (c *Client) GetChargeDetail(ctx context.Context, receiptID string) (*domain.ChargeDetail, error) {
	var resp chargeResponse
	path := "/v1/charges/" + url.PathEscape(receiptID) + "?expand[]=balance_transaction"
	if err := c.do(ctx, http.MethodGet, path, nil, "", &resp); err != nil {
		return nil, err
	}
	return &domain.ChargeDetail{
		Amount: resp.Amount,
		Net:    resp.BalanceTransaction.Net,
		Fee:    resp.BalanceTransaction.Fee,
	}, nil
}

// RequestTransfer creates a payment intent that routes amount to destination.
func (c *Client) RequestTransfer(ctx context.Context, amount int64, destination, idempotencyKey string) (string, error) {
	form := url.Values{}
	form.Set("payment_method_types[]", "card")
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", c.currency)
	form.Set("transfer_data[destination]", destination)

	var resp paymentIntentResponse
	if err := c.do(ctx, http.MethodPost, "/v1/payment_intents", form, idempotencyKey, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *Client) ConfirmTransfer(ctx context.Context, transferID string) error {
	form := url.Values{}
	form.Set("payment_method", c.paymentMethod)

	var resp paymentIntentResponse
	path := "/v1/payment_intents/" + url.PathEscape(transferID) + "/confirm"
	if err := c.do(ctx, http.MethodPost, path, form, IdempotencyKey("confirm", transferID), &resp); err != nil {
		return err
	}

	switch resp.Status {
	case "succeeded", "processing":
		return nil
	default:
		return fmt.Errorf("%w: %s is %s", ErrTransferNotConfirmed, transferID, resp.Status)
	}
}

func (c *Client) do(ctx context.Context, method, path string, form url.Values, idempotencyKey string, out any) error {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.token)
	if idempotencyKey != "" {
		headers.Set("Idempotency-Key", idempotencyKey)
	}
	endpoint := c.baseURL + path

	var err error
	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if method == http.MethodPost {
			statusCode, respBody, respHeaders, err = c.client.PostForm(ctx, endpoint, headers, form)
		} else {
			statusCode, respBody, respHeaders, err = c.client.Get(ctx, endpoint, headers)
		}
		if err != nil {
			if attempt < maxRetries && ctx.Err() == nil {
				if err := c.wait(ctx, c.retryInterval*time.Duration(attempt)); err != nil {
					return err
				}
				continue
			}
			return fmt.Errorf("stripe %s %s failed after %d attempts: %w", method, path, attempt, err)
		}

		switch {
		case statusCode >= 200 && statusCode < 300:
			if err := json.Unmarshal(respBody, out); err != nil {
				return fmt.Errorf("failed to parse stripe response: %w", err)
			}
			return nil
		case statusCode == http.StatusTooManyRequests || statusCode >= 500:
			if attempt == maxRetries {
				return decodeError(statusCode, respBody)
			}
			if err := c.handleRateLimit(ctx, path, respHeaders, attempt); err != nil {
				return err
			}
		default:
			return decodeError(statusCode, respBody)
		}
	}
	return decodeError(statusCode, respBody)
}

func (c *Client) handleRateLimit(ctx context.Context, path string, respHeaders http.Header, attempt int) error {
	retryAfter := c.retryInterval * time.Duration(attempt)
	if header := respHeaders.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Stripe asked to back off, retrying",
		zap.String("path", path),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	return c.wait(ctx, retryAfter)
}

func (c *Client) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func decodeError(statusCode int, body []byte) error {
	var envelope struct {
		Error APIError `json:"error"`
	}
	_ = json.Unmarshal(body, &envelope)
	apiErr := envelope.Error
	apiErr.Status = statusCode
	return &apiErr
}
