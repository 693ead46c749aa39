package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account persistence against the "users" table and works
// unchanged on both supported dialects.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the stored
// [models.User]. The caller supplies the ID; creation and update timestamps
// are assigned here.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists]
//   - unique violation on username → [ErrUsernameAlreadyExists]
//   - any other driver-level error → wrapped as "unexpected DB error"
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx, createUser, user.ID, user.Username, user.Email, user.PasswordHash, user.ProfilePicture, now, now)

	var created models.User
	if err := row.Scan(&created.ID, &created.Username, &created.Email, &created.PasswordHash, &created.ProfilePicture, &created.CreatedAt, &created.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: user insert failed")

		if classified := classifyUserError(err); classified != err {
			return models.User{}, classified
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByEmail retrieves the user record whose email matches the given
// value. The caller is expected to pass an already-normalised (lowercase)
// email.
//
// Returns [ErrNoUserWasFound] when no row matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Scan(&found.ID, &found.Username, &found.Email, &found.PasswordHash, &found.ProfilePicture, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if classified := classifyUserError(err); classified != err {
			return models.User{}, classified
		}

		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindUserByID retrieves the user record with the given identifier.
//
// Returns [ErrNoUserWasFound] when no row matches.
func (r *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, findUserByID, id)

	if err := row.Scan(&found.ID, &found.Username, &found.Email, &found.PasswordHash, &found.ProfilePicture, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if classified := classifyUserError(err); classified != err {
			return models.User{}, classified
		}

		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateUser applies a partial update to the record with the given ID and
// returns the updated row. The SET clause is built dynamically from the
// non-nil fields of update, so untouched columns keep their values.
//
// Error handling:
//   - no fields in the patch → [ErrEmptyUpdate]
//   - unknown id → [ErrNoUserWasFound]
//   - unique violation on the changed username/email → the matching
//     duplicate sentinel
func (r *userRepository) UpdateUser(ctx context.Context, id uuid.UUID, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return models.User{}, ErrEmptyUpdate
	}

	query, args, err := buildUpdateQuery(id, update, time.Now().UTC()).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: building update query failed")
		return models.User{}, fmt.Errorf("error building update query: %w", err)
	}

	var updated models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&updated.ID, &updated.Username, &updated.Email, &updated.PasswordHash, &updated.ProfilePicture, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if classified := classifyUserError(err); classified != err {
			return models.User{}, classified
		}

		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: user update failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteUser removes the record with the given identifier.
//
// Returns [ErrNoUserWasFound] when the id does not exist, so callers can
// distinguish idempotent re-deletion from a successful removal.
func (r *userRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: user delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
