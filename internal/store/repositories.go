package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
)

// Repositories groups every persistence-layer dependency handed to the
// service layer.
type Repositories struct {
	UserRepository UserRepository
	AvatarStorage  AvatarStorage
}

// NewRepositories connects to the configured database, runs pending
// migrations, and wires all repositories. The avatar bucket is optional;
// when it is not configured a disabled placeholder is installed that
// rejects uploads with [ErrAvatarStorageDisabled].
func NewRepositories(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Repositories, error) {
	db, err := connect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	avatarStorage, err := newAvatarStorage(ctx, cfg.Avatar, log)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		UserRepository: NewUserRepository(db, log),
		AvatarStorage:  avatarStorage,
	}, nil
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg, log)
	case "pgx", "":
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

func newAvatarStorage(ctx context.Context, cfg config.Avatar, log *logger.Logger) (AvatarStorage, error) {
	if cfg.Bucket == "" {
		log.Info().Msg("avatar bucket is not configured, uploads disabled")
		return disabledAvatarStorage{}, nil
	}

	return NewS3AvatarStorage(ctx, cfg, log)
}
