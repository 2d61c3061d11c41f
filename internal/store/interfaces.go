// Package store implements the persistence layer of the application.
// All user records live in a single PostgreSQL table accessed through the
// pgx stdlib driver; well-known failure conditions are surfaced as sentinel
// errors so upper layers can match them with errors.Is.
package store

import (
	"context"

	"github.com/gduarte/cadastro-api/models"
)

// UserRepository is the data-access contract for user account records.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock
type UserRepository interface {
	// CreateUser persists a new user record and returns the canonical
	// database representation. The caller supplies the generated ID and
	// the already-hashed password.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the user whose email matches exactly.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID retrieves the user with the given opaque identifier.
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// FindAllUsers retrieves every user record with all stored fields.
	FindAllUsers(ctx context.Context) ([]models.User, error)

	// FindAllPublicUsers retrieves every user projected to the
	// credential-free {id, name, email} shape. The projection happens in
	// SQL so hashes never leave the database for this query.
	FindAllPublicUsers(ctx context.Context) ([]models.PublicUser, error)

	// UpdateUserByID applies a sparse patch to the user with the given id
	// and returns the updated record. Fields absent from the patch are
	// left untouched in storage.
	UpdateUserByID(ctx context.Context, id string, patch models.UserPatch) (models.User, error)
}
