package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/models"
)

const (
	defaultMirrorQueueSize = 64
	mirrorFetchTimeout     = 15 * time.Second
)

// AvatarMirrorJob asks the background worker to copy an external provider's
// avatar into the bucket and point the user's profile at the stored copy.
type AvatarMirrorJob struct {
	UserID      uuid.UUID
	ProviderURL string
}

// avatarService is the concrete implementation of AvatarService. Direct
// uploads run synchronously within the request; provider avatars are
// mirrored through a bounded queue drained by a background worker so OAuth
// sign-in never waits on a third-party download.
type avatarService struct {
	storage        store.AvatarStorage
	userRepository store.UserRepository
	http           *resty.Client
	jobs           chan AvatarMirrorJob
	logger         *logger.Logger
}

// NewAvatarService constructs an AvatarService with a mirror queue of the
// given size (zero selects the default).
func NewAvatarService(storage store.AvatarStorage, userRepository store.UserRepository, queueSize int, logger *logger.Logger) *avatarService {
	if queueSize <= 0 {
		queueSize = defaultMirrorQueueSize
	}

	return &avatarService{
		storage:        storage,
		userRepository: userRepository,
		http:           resty.New().SetTimeout(mirrorFetchTimeout),
		jobs:           make(chan AvatarMirrorJob, queueSize),
		logger:         logger,
	}
}

// UploadAvatar streams an image into the bucket and updates the user's
// profile picture. The object key embeds the owner's ID and a fresh UUID so
// uploads never collide and old avatars stay addressable until overwritten
// by cache expiry policies on the bucket itself.
func (s *avatarService) UploadAvatar(ctx context.Context, userID uuid.UUID, filename, contentType string, body io.Reader) (models.User, error) {
	log := logger.FromContext(ctx)

	if !strings.HasPrefix(contentType, "image/") {
		return models.User{}, ErrUnsupportedAvatarType
	}

	key := userID.String() + "/" + uuid.NewString() + path.Ext(filename)

	url, err := s.storage.Upload(ctx, key, contentType, body)
	if err != nil {
		log.Err(err).Str("key", key).Msg("avatar upload ended with error")
		return models.User{}, fmt.Errorf("avatar upload ended with error: %w", err)
	}

	updated, err := s.userRepository.UpdateUser(ctx, userID, models.UserUpdate{ProfilePicture: &url})
	if err != nil {
		log.Err(err).Str("id", userID.String()).Msg("profile picture update ended with error")
		return models.User{}, fmt.Errorf("profile picture update ended with error: %w", err)
	}

	return updated, nil
}

// MirrorProviderAvatar enqueues a mirror job without blocking. When the
// queue is full the job is dropped and only logged: the profile keeps the
// provider URL, which remains a working avatar.
func (s *avatarService) MirrorProviderAvatar(userID uuid.UUID, providerURL string) {
	select {
	case s.jobs <- AvatarMirrorJob{UserID: userID, ProviderURL: providerURL}:
	default:
		s.logger.Warn().Str("id", userID.String()).Msg("avatar mirror queue is full, job dropped")
	}
}

// Jobs exposes the mirror queue to the background worker.
func (s *avatarService) Jobs() <-chan AvatarMirrorJob {
	return s.jobs
}

// Mirror downloads the provider avatar and re-uploads it into the bucket,
// then points the profile at the stored copy. Called by the background
// worker; every failure is terminal for the job (no retries).
func (s *avatarService) Mirror(ctx context.Context, job AvatarMirrorJob) error {
	resp, err := s.http.R().SetContext(ctx).Get(job.ProviderURL)
	if err != nil {
		return fmt.Errorf("error fetching provider avatar: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("error fetching provider avatar: status %d", resp.StatusCode())
	}

	contentType := resp.Header().Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return ErrUnsupportedAvatarType
	}

	key := job.UserID.String() + "/" + uuid.NewString()

	url, err := s.storage.Upload(ctx, key, contentType, bytes.NewReader(resp.Body()))
	if err != nil {
		return fmt.Errorf("error uploading mirrored avatar: %w", err)
	}

	if _, err := s.userRepository.UpdateUser(ctx, job.UserID, models.UserUpdate{ProfilePicture: &url}); err != nil {
		return fmt.Errorf("error updating mirrored profile picture: %w", err)
	}

	return nil
}
