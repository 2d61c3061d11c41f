package models

import "time"

// User represents an account record used for authentication and the
// user-management endpoints.
//
// NOTE: full-record responses (register, private listing, get/update by id)
// serialize Password — the stored bcrypt hash — to the client. This mirrors
// the observable behavior of the deployed API; consumers are trusted internal
// services. PublicUser is the projection that must be used on any
// unauthenticated surface.
type User struct {
	// ID is the opaque unique identifier of the user, generated once at
	// registration time (UUIDv7) and immutable afterwards.
	ID string `json:"id"`

	// Email is the unique login key of the account.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Password holds the bcrypt hash of the user's password, never the
	// plaintext. On inbound request bodies the same field carries the
	// plaintext candidate before it reaches the hasher.
	Password string `json:"password"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// PublicUser is the projection of a User exposed on unauthenticated
// endpoints. It never carries credential material.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public returns the credential-free projection of u.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// UserPatch describes a sparse update of a user record. Only non-nil
// fields are written to storage; nil fields are left untouched.
type UserPatch struct {
	// Name, when non-nil, replaces the display name.
	Name *string

	// Password, when non-nil, replaces the stored bcrypt hash. The value
	// must already be hashed by the service layer before it reaches the
	// repository.
	Password *string
}

// IsEmpty reports whether the patch carries no fields to update.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Password == nil
}

// UpdateUserRequest is the inbound body of the update-by-id endpoint.
// Pointer fields distinguish "absent" from "present"; a present but empty
// string is still treated as absent, matching the deployed API.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
