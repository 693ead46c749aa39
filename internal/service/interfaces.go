// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-auth-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService orchestrates signup, login, OAuth login, and session token
// lifecycle.
type AuthService interface {
	// SignUp registers a password-based account. The password reaches the
	// store only as a bcrypt hash.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error)

	// SignIn authenticates by email and password. Unknown email and wrong
	// password both fail with ErrInvalidCredentials.
	SignIn(ctx context.Context, req models.SignInRequest) (models.User, error)

	// GoogleAuth signs in with an identity asserted by the external
	// provider, creating an account on first contact. The second return
	// value reports whether a new record was created.
	GoogleAuth(ctx context.Context, req models.GoogleAuthRequest) (models.User, bool, error)

	// CreateToken issues a signed session token for the user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw session token string and returns the
	// decoded token. Failures are normalised to ErrTokenIsExpired or
	// ErrTokenIsInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService covers profile mutation for the authenticated resource owner.
type UserService interface {
	// UpdateUser applies a partial profile update. A present password is
	// re-hashed; an empty-string password is ignored.
	UpdateUser(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (models.User, error)

	// DeleteUser removes the account.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// AvatarService stores profile pictures in the avatar bucket.
type AvatarService interface {
	// UploadAvatar streams an image into the bucket and points the user's
	// profile at the stored object. Returns the updated user.
	UploadAvatar(ctx context.Context, userID uuid.UUID, filename, contentType string, body io.Reader) (models.User, error)

	// MirrorProviderAvatar schedules a best-effort background copy of an
	// external provider's avatar into the bucket. Never blocks.
	MirrorProviderAvatar(userID uuid.UUID, providerURL string)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
