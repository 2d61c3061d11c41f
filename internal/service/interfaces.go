// Package service contains the business logic of the application: credential
// handling, token lifecycle, and user-account orchestration. Services depend
// on the store layer through narrow interfaces and are safe for concurrent
// use; all state is read-only after construction.
package service

import (
	"context"

	"github.com/gduarte/cadastro-api/models"
)

// AuthService handles user registration, credential verification, and the
// JWT session-token lifecycle.
type AuthService interface {
	// RegisterUser hashes the plaintext password carried in user.Password,
	// assigns a fresh opaque identifier, and persists the account.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login verifies the email/password pair against the stored record and
	// returns the matching user on success.
	Login(ctx context.Context, email, password string) (models.User, error)

	// CreateToken issues a signed, time-limited JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService orchestrates the user-management endpoints on top of the
// repository.
type UserService interface {
	// ListUsers returns every user record with all stored fields.
	ListUsers(ctx context.Context) ([]models.User, error)

	// ListPublicUsers returns every user projected to {id, name, email}.
	ListPublicUsers(ctx context.Context) ([]models.PublicUser, error)

	// GetUserByID returns the user with the given opaque identifier.
	GetUserByID(ctx context.Context, id string) (models.User, error)

	// UpdateUser applies a sparse update to the user with the given id:
	// only fields supplied in the request are touched, and a supplied
	// password is hashed before it reaches storage.
	UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (models.User, error)
}
