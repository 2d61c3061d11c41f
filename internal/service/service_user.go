package service

import (
	"context"
	"fmt"

	"github.com/gduarte/cadastro-api/internal/logger"
	"github.com/gduarte/cadastro-api/internal/store"
	"github.com/gduarte/cadastro-api/internal/utils"
	"github.com/gduarte/cadastro-api/models"
)

// userService is the concrete implementation of UserService. Every method
// is a thin orchestration over the repository; the only business logic here
// is the sparse-patch assembly on update.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListUsers returns every user record with all stored fields.
func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := u.userRepository.FindAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

// ListPublicUsers returns every user projected to {id, name, email}.
func (u *userService) ListPublicUsers(ctx context.Context) ([]models.PublicUser, error) {
	log := logger.FromContext(ctx)

	users, err := u.userRepository.FindAllPublicUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing public users failed")
		return nil, fmt.Errorf("listing public users failed: %w", err)
	}

	return users, nil
}

// GetUserByID returns the user with the given opaque identifier, or a
// wrapped store.ErrNoUserWasFound if no record matches.
func (u *userService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := u.userRepository.FindUserByID(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// UpdateUser applies a sparse update to the user with the given id.
//
// Steps:
//  1. Reject an empty id (ErrInvalidDataProvided).
//  2. Confirm the user exists (wrapped store.ErrNoUserWasFound otherwise).
//  3. Assemble the patch from whichever of {name, password} were supplied,
//     hashing the password before it reaches storage. Empty strings count
//     as absent.
//  4. Persist the patch; an empty patch short-circuits and returns the
//     current record unchanged.
//
// Concurrent updates of the same record are not coordinated — last write
// wins at the database layer.
func (u *userService) UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		log.Error().Msg("empty user id provided for update")
		return models.User{}, ErrInvalidDataProvided
	}

	existingUser, err := u.userRepository.FindUserByID(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	var patch models.UserPatch

	if req.Name != nil && *req.Name != "" {
		patch.Name = req.Name
	}

	if req.Password != nil && *req.Password != "" {
		hashedPassword, err := utils.HashPassword(*req.Password)
		if err != nil {
			log.Err(err).Str("id", id).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		patch.Password = &hashedPassword
	}

	if patch.IsEmpty() {
		return existingUser, nil
	}

	updatedUser, err := u.userRepository.UpdateUserByID(ctx, id, patch)
	if err != nil {
		log.Err(err).Str("id", id).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return updatedUser, nil
}
