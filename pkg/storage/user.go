package storage

import (
	"context"
	"safescout/pkg/domain"
)

// UserStorage defines persistence operations for user accounts.
type UserStorage interface {
	// StoreUser inserts a new user and returns the stored row. Returns
	// ErrDuplicate when the email is already registered.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByEmail fetches a user by email. Returns nil when not found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UserByID fetches a user by ID. Returns nil when not found.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
}
