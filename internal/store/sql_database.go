package store

import (
	"database/sql"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/migrations"
)

// DB wraps the standard library connection pool together with the dialect
// name, which drives migrations and driver-specific error classification.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
