package postgres_test

import (
	"context"
	"testing"

	"safescout/pkg/domain"
	"safescout/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreUser(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	email := uuid.NewString() + "@example.com"
	user := domain.User{
		Email:        email,
		PasswordHash: "$2a$14$abcdefghijklmnopqrstuv",
		Role:         domain.RoleBuyer,
	}

	stored, err := pgSQL.StoreUser(ctx, user)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotEqual(t, uuid.Nil, uuid.UUID(stored.ID))
	require.Equal(t, email, stored.Email)
	require.Equal(t, domain.RoleBuyer, stored.Role)
	require.False(t, stored.CreatedAt.IsZero())

	// same email again must surface ErrDuplicate
	_, err = pgSQL.StoreUser(ctx, user)
	require.ErrorIs(t, err, storage.ErrDuplicate)
}

func TestPgSQL_UserByEmail(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	email := uuid.NewString() + "@example.com"
	stored, err := pgSQL.StoreUser(ctx, domain.User{
		Email:        email,
		PasswordHash: "hash",
		Role:         domain.RoleScout,
	})
	require.NoError(t, err)

	got, err := pgSQL.UserByEmail(ctx, email)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, stored.ID, got.ID)
	require.Equal(t, domain.RoleScout, got.Role)

	missing, err := pgSQL.UserByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_UserByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreUser(ctx, domain.User{
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "hash",
		Role:         domain.RoleBuyer,
	})
	require.NoError(t, err)

	got, err := pgSQL.UserByID(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, stored.Email, got.Email)

	missing, err := pgSQL.UserByID(ctx, domain.UserID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)
}
