package auth

import (
	"crypto/rsa"
	"fmt"
	"safescout/pkg/domain"
	"safescout/pkg/serrors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token use kinds carried in the custom claims. A refresh token can not be
// used to authenticate a request and vice versa.
const (
	tokenUseAccess  = "access"
	tokenUseRefresh = "refresh"
)

// Claims are the JWT claims minted for SafeScout tokens. Subject carries the
// user ID; Role is duplicated into the token so the API layer does not need a
// database round trip per request.
type Claims struct {
	jwt.RegisteredClaims

	Role     string `json:"role"`
	TokenUse string `json:"use"`
}

// TokenPair bundles a freshly minted access and refresh token.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64 `json:"expiresIn"`
}

// Minter signs and verifies RS256 tokens using a PEM-encoded RSA key pair.
type Minter struct {
	privateKey      *rsa.PrivateKey
	publicKey       *rsa.PublicKey
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewMinter parses the PEM keys and returns a ready Minter.
func NewMinter(privateKeyPEM, publicKeyPEM string, accessTokenTTL, refreshTokenTTL time.Duration) (*Minter, error) {
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &Minter{
		privateKey:      privateKey,
		publicKey:       publicKey,
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
	}, nil
}

func (m *Minter) mint(userID domain.UserID, role domain.Role, use string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.UUID(userID).String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		Role:     string(role),
		TokenUse: use,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(m.privateKey)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return signed, nil
}

// MintPair issues a fresh access and refresh token for the given user.
func (m *Minter) MintPair(userID domain.UserID, role domain.Role) (TokenPair, error) {
	access, err := m.mint(userID, role, tokenUseAccess, m.accessTokenTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := m.mint(userID, role, tokenUseRefresh, m.refreshTokenTTL)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(m.accessTokenTTL.Seconds()),
	}, nil
}

func (m *Minter) verify(tokenString, expectedUse string) (domain.Identity, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}

		return m.publicKey, nil
	})
	if err != nil {
		return domain.Identity{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if claims.TokenUse != expectedUse {
		return domain.Identity{}, serrors.With(serrors.ErrUnauthorized, "wrong token use")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Identity{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return domain.Identity{
		UserID: domain.UserID(userID),
		Role:   domain.Role(claims.Role),
	}, nil
}

// VerifyAccess validates an access token and returns the caller's identity.
func (m *Minter) VerifyAccess(tokenString string) (domain.Identity, error) {
	return m.verify(tokenString, tokenUseAccess)
}

// VerifyRefresh validates a refresh token and returns the caller's identity.
func (m *Minter) VerifyRefresh(tokenString string) (domain.Identity, error) {
	return m.verify(tokenString, tokenUseRefresh)
}
