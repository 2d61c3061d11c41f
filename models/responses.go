package models

// UsersResponse is the envelope returned by the private full listing.
// Users intentionally carries complete records — see the exposure note on
// [User].
type UsersResponse struct {
	Message string `json:"message"`
	Users   []User `json:"users"`
}

// PublicUsersResponse is the envelope returned by the unauthenticated
// listing. Only the credential-free projection is included.
type PublicUsersResponse struct {
	Message string       `json:"message"`
	Users   []PublicUser `json:"users"`
}

// UpdateUserResponse is the envelope returned by the update-by-id endpoint.
type UpdateUserResponse struct {
	Message     string `json:"message"`
	UpdatedUser User   `json:"updatedUser"`
}

// ErrorResponse is the generic error envelope returned on any failed
// request.
type ErrorResponse struct {
	Message string `json:"message"`
}
