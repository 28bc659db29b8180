package controller

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"safescout/pkg/domain"
	"safescout/pkg/logger"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// identityKey is the context key under which the authenticated actor is stored.
type identityKey struct{}

// GetIdentity returns the authenticated actor attached to the context by
// WithAuth, or false when the request was not authenticated.
func GetIdentity(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(domain.Identity)

	return id, ok
}

// WithIdentity returns a new context carrying the given actor identity.
// Exposed for tests that exercise handlers without the middleware.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// AuthOptions configures the bearer-token middleware.
type AuthOptions struct {
	// PublicKey is the PEM-encoded RSA public key used to verify RS256 tokens.
	PublicKey string
}

// Auth verifies RS256 bearer tokens and resolves them to an actor identity.
type Auth struct {
	key *rsa.PublicKey
}

// NewAuth parses the configured public key and returns an Auth middleware
// factory. Token verification itself happens per request in Middleware.
func NewAuth(opts AuthOptions) (*Auth, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &Auth{key: key}, nil
}

// claims carries the registered claims plus the actor's role and the token
// use kind. Only access tokens authenticate requests.
type claims struct {
	jwt.RegisteredClaims

	Role     string `json:"role"`
	TokenUse string `json:"use"`
}

// Verify validates the given compact token and returns the actor identity
// encoded in it. Only RS256 signatures are accepted, and only access tokens:
// a refresh token carries the same signature but must never authenticate a
// request.
func (a *Auth) Verify(token string) (domain.Identity, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodRS256 {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}

		return a.key, nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("could not parse token: %w", err)
	}
	if !parsed.Valid {
		return domain.Identity{}, fmt.Errorf("invalid token")
	}
	if c.TokenUse != "access" {
		return domain.Identity{}, fmt.Errorf("token use %q is not valid for authentication", c.TokenUse)
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("could not parse token subject: %w", err)
	}

	role := domain.Role(c.Role)
	switch role {
	case domain.RoleBuyer, domain.RoleScout, domain.RoleAdmin:
	default:
		return domain.Identity{}, fmt.Errorf("unknown role %q in token", c.Role)
	}

	return domain.Identity{UserID: domain.UserID(userID), Role: role}, nil
}

// Middleware returns a middleware that rejects requests without a valid
// bearer token and attaches the verified identity to the request context.
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" || token == r.Header.Get("Authorization") {
			http.Error(w, `{"error":"missing bearer token"}`, http.StatusUnauthorized)

			return
		}

		identity, err := a.Verify(token)
		if err != nil {
			logger.Debug(ctx, "rejected bearer token: "+err.Error())
			http.Error(w, `{"error":"invalid bearer token"}`, http.StatusUnauthorized)

			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(ctx, identity)))
	})
}
