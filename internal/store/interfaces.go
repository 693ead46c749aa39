package store

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-auth-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the persistence boundary for user account records.
// Uniqueness of username and email is enforced by the underlying database;
// concurrent writers racing on the same value lose with
// [ErrEmailAlreadyExists] or [ErrUsernameAlreadyExists].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// AvatarStorage stores avatar images in an external bucket and returns the
// public URL under which the object is served.
type AvatarStorage interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
}
