package workers

import (
	"context"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
)

// AvatarMirrorer is the part of the avatar service the worker drives:
// a queue of pending jobs and the mirror operation itself.
type AvatarMirrorer interface {
	Jobs() <-chan service.AvatarMirrorJob
	Mirror(ctx context.Context, job service.AvatarMirrorJob) error
}

// avatarMirrorWorker drains the avatar mirror queue. Mirroring is
// best-effort: a failed job is logged and dropped, the profile keeps the
// provider URL.
type avatarMirrorWorker struct {
	mirrorer AvatarMirrorer
	logger   *logger.Logger
}

// NewAvatarMirrorWorker constructs the worker over the given mirrorer.
func NewAvatarMirrorWorker(mirrorer AvatarMirrorer, logger *logger.Logger) Worker {
	return &avatarMirrorWorker{
		mirrorer: mirrorer,
		logger:   logger,
	}
}

// Run consumes mirror jobs until ctx is cancelled.
func (w *avatarMirrorWorker) Run(ctx context.Context) {
	w.logger.Info().Msg("avatar mirror worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("avatar mirror worker stopped")
			return
		case job := <-w.mirrorer.Jobs():
			if err := w.mirrorer.Mirror(ctx, job); err != nil {
				w.logger.Err(err).
					Str("id", job.UserID.String()).
					Str("url", job.ProviderURL).
					Msg("avatar mirror job failed")
			}
		}
	}
}
