package api_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"safescout/internal/api"
	"safescout/pkg/controller"
	"safescout/pkg/logger"

	"github.com/stretchr/testify/require"
)

func testPublicKeyPEM(t *testing.T) string {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err, "failed to generate RSA key")
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err, "failed to marshal public key")

	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1}))
}

func TestNewServer_ServiceEndpoints(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	server, err := api.NewServer(api.Deps{}, api.Options{
		AuthOptions:    controller.AuthOptions{PublicKey: testPublicKeyPEM(t)},
		Addr:           ":0",
		RequestTimeout: 5 * time.Second,
		MetricsPath:    "/metrics",
	})
	require.NoError(t, err)

	get := func(target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		return rec
	}

	rec := get("/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = get("/specs/v1.yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "openapi:"), "expected OpenAPI document")

	rec = get("/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	// guarded v1 routes still demand a bearer token
	rec = get("/v1/me")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
