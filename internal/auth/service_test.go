package auth_test

import (
	"context"
	"errors"
	"safescout/internal/auth"
	"safescout/internal/config"
	"testing"
	"time"

	mockstorage "safescout/pkg/storage/mock"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"safescout/pkg/domain"
	"safescout/pkg/serrors"
	"safescout/pkg/storage"
)

func newTestAuth(t *testing.T) (*mockstorage.MockStorage, auth.Service) {
	t.Helper()

	priv, pub := testKeys(t)
	cfg := &config.Config{}
	cfg.JWT.PrivateKey = priv
	cfg.JWT.PublicKey = pub
	cfg.JWT.AccessTokenTTL = 15 * time.Minute
	cfg.JWT.RefreshTokenTTL = 7 * 24 * time.Hour

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s, err := auth.New(cfg, st)
	if err != nil {
		t.Fatalf("could not create auth service: %v", err)
	}

	return st, s
}

func TestAuth_Register(t *testing.T) {
	st, s := newTestAuth(t)

	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user domain.User) (*domain.User, error) {
			if user.Email != "buyer@example.com" || user.Role != domain.RoleBuyer {
				t.Fatalf("unexpected user: %+v", user)
			}
			if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("opensesame")); err != nil {
				t.Fatalf("stored hash does not match password: %v", err)
			}
			user.ID = domain.UserID(uuid.New())

			return &user, nil
		},
	)

	user, pair, err := s.Register(context.Background(), auth.RegisterReq{
		Email:    "buyer@example.com",
		Password: "opensesame",
		Role:     domain.RoleBuyer,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user == nil || pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected user and tokens")
	}

	identity, err := s.VerifyAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.UserID != user.ID || identity.Role != domain.RoleBuyer {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestAuth_Register_RejectsBadInput(t *testing.T) {
	cases := map[string]auth.RegisterReq{
		"invalid email":  {Email: "not-an-email", Password: "opensesame", Role: domain.RoleBuyer},
		"short password": {Email: "a@example.com", Password: "short", Role: domain.RoleBuyer},
		"admin role":     {Email: "a@example.com", Password: "opensesame", Role: domain.RoleAdmin},
		"unknown role":   {Email: "a@example.com", Password: "opensesame", Role: "MODERATOR"},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			st, s := newTestAuth(t)
			st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).Times(0)

			_, _, err := s.Register(context.Background(), req)
			if !errors.Is(err, serrors.ErrBadRequest) {
				t.Fatalf("expected ErrBadRequest, got %v", err)
			}
		})
	}
}

func TestAuth_Register_DuplicateEmail(t *testing.T) {
	st, s := newTestAuth(t)

	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicate)

	_, _, err := s.Register(context.Background(), auth.RegisterReq{
		Email:    "taken@example.com",
		Password: "opensesame",
		Role:     domain.RoleScout,
	})
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestAuth_Login(t *testing.T) {
	st, s := newTestAuth(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("opensesame"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("could not hash password: %v", err)
	}
	user := domain.User{
		ID:           domain.UserID(uuid.New()),
		Email:        "scout@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleScout,
	}

	t.Run("success", func(t *testing.T) {
		st.EXPECT().UserByEmail(gomock.Any(), "scout@example.com").Return(&user, nil)

		res, pair, err := s.Login(context.Background(), "scout@example.com", "opensesame")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != user.ID || pair.AccessToken == "" {
			t.Fatalf("expected user and tokens")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		st.EXPECT().UserByEmail(gomock.Any(), "scout@example.com").Return(&user, nil)

		_, _, err := s.Login(context.Background(), "scout@example.com", "wrong-password")
		if !errors.Is(err, serrors.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		st.EXPECT().UserByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

		_, _, err := s.Login(context.Background(), "nobody@example.com", "opensesame")
		if !errors.Is(err, serrors.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestAuth_Refresh(t *testing.T) {
	st, s := newTestAuth(t)

	user := domain.User{
		ID:    domain.UserID(uuid.New()),
		Email: "buyer@example.com",
		Role:  domain.RoleBuyer,
	}

	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u domain.User) (*domain.User, error) {
			u.ID = user.ID

			return &u, nil
		},
	)
	_, pair, err := s.Register(context.Background(), auth.RegisterReq{
		Email:    user.Email,
		Password: "opensesame",
		Role:     domain.RoleBuyer,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("success", func(t *testing.T) {
		st.EXPECT().UserByID(gomock.Any(), user.ID).Return(&user, nil)

		fresh, err := s.Refresh(context.Background(), pair.RefreshToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fresh.AccessToken == "" || fresh.RefreshToken == "" {
			t.Fatalf("expected fresh tokens")
		}
	})

	t.Run("access token rejected", func(t *testing.T) {
		_, err := s.Refresh(context.Background(), pair.AccessToken)
		if !errors.Is(err, serrors.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("deleted account rejected", func(t *testing.T) {
		st.EXPECT().UserByID(gomock.Any(), user.ID).Return(nil, nil)

		_, err := s.Refresh(context.Background(), pair.RefreshToken)
		if !errors.Is(err, serrors.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}
