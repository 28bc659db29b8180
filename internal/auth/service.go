package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"safescout/internal/config"
	"safescout/pkg/domain"
	"safescout/pkg/serrors"
	"safescout/pkg/storage"

	"golang.org/x/crypto/bcrypt"
)

// minPasswordLength is the minimum accepted password length for new accounts.
const minPasswordLength = 8

// service is the concrete implementation of the Service interface.
type service struct {
	minter  *Minter
	storage storage.Storage
}

// New creates a new auth Service from the application config and storage.
func New(cfg *config.Config, storage storage.Storage) (Service, error) {
	minter, err := NewMinter(cfg.JWT.PrivateKey, cfg.JWT.PublicKey,
		cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("could not create token minter: %w", err)
	}

	return &service{
		minter:  minter,
		storage: storage,
	}, nil
}

func validateRegister(req RegisterReq) error {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid email address")
	}
	if len(req.Password) < minPasswordLength {
		return serrors.With(serrors.ErrBadRequest, "password must be at least %d characters", minPasswordLength)
	}
	// accounts self-register as buyer or scout; admins are provisioned out of band
	if req.Role != domain.RoleBuyer && req.Role != domain.RoleScout {
		return serrors.With(serrors.ErrBadRequest, "unknown role: %s", req.Role)
	}

	return nil
}

// Register creates a new account with a bcrypt password hash and returns the
// stored user together with a fresh token pair.
func (s *service) Register(ctx context.Context, req RegisterReq) (*domain.User, TokenPair, error) {
	if err := validateRegister(req); err != nil {
		return nil, TokenPair{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("could not hash password: %w", err)
	}

	user, err := s.storage.StoreUser(ctx, domain.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, TokenPair{}, serrors.With(serrors.ErrConflict, "email is already registered")
		}

		return nil, TokenPair{}, fmt.Errorf("could not store user: %w", err)
	}

	pair, err := s.minter.MintPair(user.ID, user.Role)
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("could not mint tokens: %w", err)
	}

	return user, pair, nil
}

// Login verifies the given credentials. A missing user and a wrong password
// produce the same unauthorized error so account existence is not leaked.
func (s *service) Login(ctx context.Context, email, password string) (*domain.User, TokenPair, error) {
	user, err := s.storage.UserByEmail(ctx, email)
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, TokenPair{}, serrors.With(serrors.ErrUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, TokenPair{}, serrors.With(serrors.ErrUnauthorized, "invalid credentials")
	}

	pair, err := s.minter.MintPair(user.ID, user.Role)
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("could not mint tokens: %w", err)
	}

	return user, pair, nil
}

// Refresh exchanges a valid refresh token for a fresh pair. The user is
// re-read so a role change takes effect on the next refresh.
func (s *service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	identity, err := s.minter.VerifyRefresh(refreshToken)
	if err != nil {
		return TokenPair{}, err
	}

	user, err := s.storage.UserByID(ctx, identity.UserID)
	if err != nil {
		return TokenPair{}, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return TokenPair{}, serrors.With(serrors.ErrUnauthorized, "account no longer exists")
	}

	pair, err := s.minter.MintPair(user.ID, user.Role)
	if err != nil {
		return TokenPair{}, fmt.Errorf("could not mint tokens: %w", err)
	}

	return pair, nil
}

// VerifyAccess validates an access token and returns the caller's identity.
func (s *service) VerifyAccess(tokenString string) (domain.Identity, error) {
	return s.minter.VerifyAccess(tokenString)
}

// UserByID returns the account behind an identity.
func (s *service) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := s.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}
