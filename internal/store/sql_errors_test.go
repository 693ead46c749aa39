package store

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestClassifyUserError(t *testing.T) {
	unknown := errors.New("disk on fire")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "nil stays nil",
			err:  nil,
			want: nil,
		},
		{
			name: "no rows becomes not found",
			err:  sql.ErrNoRows,
			want: ErrNoUserWasFound,
		},
		{
			name: "wrapped no rows becomes not found",
			err:  fmt.Errorf("scan: %w", sql.ErrNoRows),
			want: ErrNoUserWasFound,
		},
		{
			name: "postgres unique violation on email constraint",
			err:  &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"},
			want: ErrEmailAlreadyExists,
		},
		{
			name: "postgres unique violation on username constraint",
			err:  &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_username_key"},
			want: ErrUsernameAlreadyExists,
		},
		{
			name: "postgres unique violation with unknown constraint falls back to username",
			err:  &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_pkey"},
			want: ErrUsernameAlreadyExists,
		},
		{
			name: "postgres non-unique error passes through",
			err:  &pgconn.PgError{Code: pgerrcode.NotNullViolation},
			want: &pgconn.PgError{Code: pgerrcode.NotNullViolation},
		},
		{
			name: "sqlite unique violation on email column",
			err: sqlite3.Error{
				Code:         sqlite3.ErrConstraint,
				ExtendedCode: sqlite3.ErrConstraintUnique,
			},
			want: ErrUsernameAlreadyExists,
		},
		{
			name: "unknown error passes through",
			err:  unknown,
			want: unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyUserError(tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDuplicateFieldError(t *testing.T) {
	assert.ErrorIs(t, duplicateFieldError("users_email_key"), ErrEmailAlreadyExists)
	assert.ErrorIs(t, duplicateFieldError("UNIQUE constraint failed: users.email"), ErrEmailAlreadyExists)
	assert.ErrorIs(t, duplicateFieldError("users_username_key"), ErrUsernameAlreadyExists)
	assert.ErrorIs(t, duplicateFieldError("UNIQUE constraint failed: users.username"), ErrUsernameAlreadyExists)
	assert.ErrorIs(t, duplicateFieldError(""), ErrUsernameAlreadyExists)
}
