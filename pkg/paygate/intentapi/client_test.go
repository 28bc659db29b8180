package intentapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"safescout/pkg/paygate"
	"safescout/pkg/paygate/intentapi"
	"strings"
	"testing"

	"safescout/pkg/serrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *intentapi.Client {
	return intentapi.New(&http.Client{Transport: fn}, "https://pay.example.com", "test-key")
}

func TestClient_CreateIntent_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "pay.example.com", r.URL.Host)
		require.Equal(t, "/v1/payment_intents", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var sent struct {
			Amount        string `json:"amount"`
			Currency      string `json:"currency"`
			CaptureMethod string `json:"capture_method"`
			Reference     string `json:"reference"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		require.Equal(t, "39.00", sent.Amount)
		require.Equal(t, "USD", sent.Currency)
		require.Equal(t, "manual", sent.CaptureMethod)
		require.Equal(t, "job-1", sent.Reference)

		body := `{"id":"pi_123","client_secret":"cs_abc","amount":"39.00","currency":"USD"}`

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	})

	intent, err := c.CreateIntent(context.Background(), paygate.CreateIntentReq{
		Amount:    decimal.NewFromInt(39),
		Currency:  "USD",
		Reference: "job-1",
	})
	require.NoError(t, err)
	require.Equal(t, "pi_123", intent.ID)
	require.Equal(t, "cs_abc", intent.ClientSecret)
	require.True(t, intent.Amount.Equal(decimal.NewFromInt(39)))
	require.Equal(t, "USD", intent.Currency)
}

func TestClient_CreateIntent_non2xx(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("provider down")),
		}, nil
	})

	_, err := c.CreateIntent(context.Background(), paygate.CreateIntentReq{
		Amount:   decimal.NewFromInt(19),
		Currency: "USD",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUpstream)
	require.Contains(t, err.Error(), "provider down")
}

func TestClient_CaptureIntent_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/payment_intents/pi_123/capture", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader("{}"))}, nil
	})

	require.NoError(t, c.CaptureIntent(context.Background(), "pi_123"))
}

func TestClient_CaptureIntent_404(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusNotFound, Body: io.NopCloser(strings.NewReader("no such intent"))}, nil
	})

	err := c.CaptureIntent(context.Background(), "pi_missing")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestClient_CancelIntent_non2xx(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/v1/payment_intents/pi_123/cancel", r.URL.Path)

		return &http.Response{StatusCode: http.StatusConflict, Body: io.NopCloser(strings.NewReader("already captured"))}, nil
	})

	err := c.CancelIntent(context.Background(), "pi_123")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUpstream)
	require.Contains(t, err.Error(), "already captured")
}
