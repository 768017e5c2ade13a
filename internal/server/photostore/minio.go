package photostore

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/dmitrijs2005/lovesurprise/internal/server/config"
)

// MinIOStore presigns with minio-go. Region must be set so that signing
// never needs a bucket-location round trip.
type MinIOStore struct {
	client *minio.Client
	bucket string
	region string
	ttl    time.Duration
}

func NewMinIOStore(cfg *config.Config) (*MinIOStore, error) {
	endpoint, secure := minioEndpoint(cfg.S3BaseEndpoint, cfg.S3Secure)

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3RootUser, cfg.S3RootPassword, ""),
		Secure: secure,
		Region: cfg.S3Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio: %w", err)
	}
	return &MinIOStore{client: client, bucket: cfg.S3Bucket, region: cfg.S3Region, ttl: cfg.PresignTTL}, nil
}

// minioEndpoint accepts both "host:port" and URL forms. An https scheme
// turns TLS on.
func minioEndpoint(raw string, secure bool) (string, bool) {
	if !strings.Contains(raw, "://") {
		return strings.TrimRight(raw, "/"), secure
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return strings.TrimRight(raw, "/"), secure
	}
	return u.Host, secure || u.Scheme == "https"
}

// EnsureBucket creates the photo bucket when it does not exist yet.
func (s *MinIOStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		return fmt.Errorf("make bucket %s: %w", s.bucket, err)
	}
	return nil
}

func (s *MinIOStore) PresignPut(ctx context.Context, key string) (string, error) {
	u, err := s.client.PresignedPutObject(ctx, s.bucket, key, s.ttl)
	if err != nil {
		return "", fmt.Errorf("presign put %s: %w", key, err)
	}
	return u.String(), nil
}

func (s *MinIOStore) PresignGet(ctx context.Context, key string) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, s.ttl, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign get %s: %w", key, err)
	}
	return u.String(), nil
}
