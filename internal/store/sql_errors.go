package store

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// classifyUserError maps a driver-level error from a users-table statement
// to one of the store's sentinel errors, or returns the input unchanged when
// the error carries no recognised meaning.
//
// Two drivers are supported:
//   - pgx: unique_violation (23505) is attributed to a column via the
//     constraint name that PostgreSQL auto-generates (users_email_key,
//     users_username_key).
//   - sqlite3: ErrConstraintUnique carries the offending column in its
//     message ("UNIQUE constraint failed: users.email").
func classifyUserError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoUserWasFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return duplicateFieldError(pgErr.ConstraintName)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return duplicateFieldError(sqliteErr.Error())
	}

	return err
}

// duplicateFieldError picks the sentinel matching the column named in a
// unique-violation description. An unrecognised constraint is reported as a
// username conflict, the generic branch of the two.
func duplicateFieldError(description string) error {
	if strings.Contains(description, "email") {
		return ErrEmailAlreadyExists
	}

	return ErrUsernameAlreadyExists
}
