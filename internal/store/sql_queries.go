// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-auth-service/models"
)

const (
	createUser = `INSERT INTO users (id, username, email, password_hash, profile_picture, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, username, email, password_hash, profile_picture, created_at, updated_at;`

	findUserByEmail = `SELECT id, username, email, password_hash, profile_picture, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, username, email, password_hash, profile_picture, created_at, updated_at
    FROM users
    WHERE id = $1;`

	deleteUser = `DELETE FROM users
    WHERE id = $1;`
)

// buildUpdateQuery assembles a partial UPDATE for the users table. Only the
// fields present in the patch appear in the SET clause; updated_at is always
// touched. The statement returns the full updated row.
func buildUpdateQuery(id uuid.UUID, update models.UserUpdate, updatedAt time.Time) sq.UpdateBuilder {
	builder := sq.Update("users").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", updatedAt)

	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", *update.PasswordHash)
	}
	if update.ProfilePicture != nil {
		builder = builder.Set("profile_picture", *update.ProfilePicture)
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, username, email, password_hash, profile_picture, created_at, updated_at")
}
