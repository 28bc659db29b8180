package auth

import (
	"context"
	"safescout/pkg/domain"
)

// RegisterReq carries the fields required to create an account.
type RegisterReq struct {
	Email    string
	Password string
	Role     domain.Role
}

//go:generate mockgen -package mockauth -source=interface.go -destination=mock/mockauth.go *
type Service interface {
	// Register creates a new buyer or scout account and returns the user with
	// a fresh token pair. Duplicate emails are reported as a conflict.
	Register(ctx context.Context, req RegisterReq) (*domain.User, TokenPair, error)
	// Login verifies credentials and returns the user with a fresh token pair.
	// Bad credentials are reported as unauthorized without detail.
	Login(ctx context.Context, email, password string) (*domain.User, TokenPair, error)
	// Refresh exchanges a valid refresh token for a fresh token pair.
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	// VerifyAccess validates an access token and returns the caller's identity.
	// Used by the API middleware.
	VerifyAccess(tokenString string) (domain.Identity, error)
	// UserByID returns the account behind an identity.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
}
