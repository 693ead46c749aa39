package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	bcryptCost     int
	logger         *logger.Logger
}

// NewUserService constructs a UserService over the given repository.
func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// UpdateUser applies a partial profile update on behalf of the resource
// owner. Ownership is already verified by the transport layer; this method
// only shapes the patch:
//
//   - explicit empty username or email is rejected with
//     ErrInvalidDataProvided;
//   - email is lowercased before it reaches the store;
//   - a present non-empty password is bcrypt-hashed; an empty-string
//     password is dropped so full-form submissions don't clear credentials;
//   - a patch with no remaining fields is rejected with
//     ErrInvalidDataProvided.
func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	update := models.UserUpdate{
		Username:       req.Username,
		ProfilePicture: req.ProfilePicture,
	}

	if req.Username != nil && *req.Username == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	if req.Email != nil {
		if *req.Email == "" {
			return models.User{}, ErrInvalidDataProvided
		}
		email := normalizeEmail(*req.Email)
		update.Email = &email
	}

	if req.Password != nil && *req.Password != "" {
		hash, err := utils.HashPassword(*req.Password, s.bcryptCost)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		update.PasswordHash = &hash
	}

	if update.IsEmpty() {
		return models.User{}, ErrInvalidDataProvided
	}

	updated, err := s.userRepository.UpdateUser(ctx, id, update)
	if err != nil {
		log.Err(err).Str("id", id.String()).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteUser removes the account with the given identifier.
func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		log.Err(err).Str("id", id.String()).Msg("user delete ended with error")
		return fmt.Errorf("user delete ended with error: %w", err)
	}

	log.Info().Str("id", id.String()).Msg("user account deleted")
	return nil
}
