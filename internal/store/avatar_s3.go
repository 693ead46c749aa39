package store

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
)

// S3PutClient is the subset of the S3 API the avatar storage depends on.
// Declared as an interface so tests can substitute a fake client.
type S3PutClient interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3AvatarStorage stores avatar images in an S3-compatible bucket and
// serves them from a public base URL. Safe for concurrent use.
type s3AvatarStorage struct {
	client  S3PutClient
	bucket  string
	baseURL string
	logger  *logger.Logger
}

// NewS3AvatarStorage builds an [AvatarStorage] over the configured bucket.
// Static credentials and a custom endpoint are used when present, which
// keeps the storage usable against MinIO and other S3-compatible services.
func NewS3AvatarStorage(ctx context.Context, cfg config.Avatar, log *logger.Logger) (AvatarStorage, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, fmt.Errorf("avatar bucket and region are required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3AvatarStorage").Msg("error loading AWS configuration")
		return nil, fmt.Errorf("error loading AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3AvatarStorage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		logger:  log,
	}, nil
}

// Upload stores the object under the given key and returns its public URL.
func (s *s3AvatarStorage) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Err(err).Str("func", "*s3AvatarStorage.Upload").Str("key", key).Msg("error uploading avatar to bucket")
		return "", fmt.Errorf("error uploading avatar to bucket: %w", err)
	}

	return s.baseURL + "/" + key, nil
}

// disabledAvatarStorage is installed when no bucket is configured.
type disabledAvatarStorage struct{}

func (disabledAvatarStorage) Upload(context.Context, string, string, io.Reader) (string, error) {
	return "", ErrAvatarStorageDisabled
}
