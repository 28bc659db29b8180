package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// Role determines which operations a user may perform. Role checks are local
// preconditions in the services; credential verification happens at the HTTP
// boundary.
type Role string

const (
	// RoleBuyer may create jobs and pay for them.
	RoleBuyer Role = "BUYER"
	// RoleScout may claim jobs from the open pool and submit reports.
	RoleScout Role = "SCOUT"
	// RoleAdmin may act on any job.
	RoleAdmin Role = "ADMIN"
)

// User is an account that can authenticate against the service.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID `json:"id"`
	// Email is the login identifier; unique across users.
	Email string `json:"email"`
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`
	// Role determines the operations available to the user.
	Role Role `json:"role"`
	// Rating is the scout's average rating; zero for non-scouts.
	Rating float64 `json:"rating,omitempty"`

	// CreatedAt is the time the account was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the account was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// Identity is the already-authenticated actor attached to a request context.
// Services receive it as validated input and only assert role preconditions.
type Identity struct {
	UserID UserID
	Role   Role
}
