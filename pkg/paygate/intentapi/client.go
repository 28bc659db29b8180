// Package intentapi provides a paygate.Client implementation backed by a
// REST payment provider exposing a payment-intent API.
package intentapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"safescout/pkg/paygate"
	"safescout/pkg/serrors"
	"strings"

	"github.com/shopspring/decimal"
)

// Client talks to the provider's REST API and fulfills the paygate.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the provider
	baseURL    string       // baseURL is the provider API root, without trailing slash
	apiKey     string       // apiKey authenticates requests to the provider
}

// CreateIntent creates a manual-capture intent for the given amount. The
// buyer confirms it client-side with the returned client secret; funds stay
// authorized until CaptureIntent.
func (c *Client) CreateIntent(ctx context.Context, req paygate.CreateIntentReq) (paygate.Intent, error) {
	type createReq struct {
		Amount        string `json:"amount"`
		Currency      string `json:"currency"`
		CaptureMethod string `json:"capture_method"`
		Reference     string `json:"reference,omitempty"`
	}
	bodyBytes, err := json.Marshal(createReq{
		Amount:        req.Amount.StringFixed(2),
		Currency:      req.Currency,
		CaptureMethod: "manual",
		Reference:     req.Reference,
	})
	if err != nil {
		return paygate.Intent{}, fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.baseURL+"/v1/payment_intents",
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return paygate.Intent{}, fmt.Errorf("could not create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return paygate.Intent{}, serrors.With(serrors.ErrUpstream, "could not send request: %s", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return paygate.Intent{}, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return paygate.Intent{}, serrors.With(serrors.ErrUpstream,
			"create intent failed: %s", strings.TrimSpace(string(b)))
	}

	// successful
	var createResp struct {
		ID           string `json:"id"`
		ClientSecret string `json:"client_secret"`
		Amount       string `json:"amount"`
		Currency     string `json:"currency"`
	}
	if err := json.Unmarshal(b, &createResp); err != nil {
		return paygate.Intent{}, fmt.Errorf("could not decode response: %w", err)
	}
	amount, err := decimal.NewFromString(createResp.Amount)
	if err != nil {
		return paygate.Intent{}, fmt.Errorf("could not parse intent amount: %w", err)
	}

	return paygate.Intent{
		ID:           createResp.ID,
		ClientSecret: createResp.ClientSecret,
		Amount:       amount,
		Currency:     createResp.Currency,
	}, nil
}

// CaptureIntent captures the authorized funds of an intent.
func (c *Client) CaptureIntent(ctx context.Context, intentID string) error {
	return c.post(ctx, "/v1/payment_intents/"+intentID+"/capture")
}

// CancelIntent releases the authorization hold of an intent.
func (c *Client) CancelIntent(ctx context.Context, intentID string) error {
	return c.post(ctx, "/v1/payment_intents/"+intentID+"/cancel")
}

func (c *Client) post(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return serrors.With(serrors.ErrUpstream, "could not send request: %s", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return serrors.With(serrors.ErrNotFound, "intent not found")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return serrors.With(serrors.ErrUpstream, "intent update failed: %s", strings.TrimSpace(string(b)))
	}

	return nil
}

// Ensure Client conforms to the paygate.Client interface at compile time.
var _ paygate.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client, API root and
// key to interact with the payment provider.
func New(httpClient *http.Client, baseURL, apiKey string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}
