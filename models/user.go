package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication and profile
// management. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// ID is the unique identifier of the user, assigned at creation and
	// immutable afterwards.
	ID uuid.UUID `json:"id"`

	// Username is the unique public handle of the user.
	Username string `json:"username"`

	// Email is the unique login identifier. Stored lowercase so that
	// lookups are case-insensitive.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is never serialized
	// to JSON.
	PasswordHash string `json:"-"`

	// ProfilePicture is the URL of the user's avatar. Defaults to a static
	// placeholder when the user never uploaded one.
	ProfilePicture string `json:"profilePicture"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last profile modification.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate describes a partial profile update. Only non-nil fields are
// applied, which lets the repository build a minimal UPDATE statement.
type UserUpdate struct {
	// Username replaces the user's handle. Uniqueness is re-checked.
	Username *string

	// Email replaces the login identifier. Normalised to lowercase;
	// uniqueness is re-checked.
	Email *string

	// PasswordHash replaces the stored credential. The service layer is
	// responsible for hashing before the value reaches the store.
	PasswordHash *string

	// ProfilePicture replaces the avatar URL.
	ProfilePicture *string
}

// IsEmpty reports whether the update carries no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.PasswordHash == nil && u.ProfilePicture == nil
}
