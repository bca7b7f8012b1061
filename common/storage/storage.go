package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/wildcat/spartan/common/config"
	"github.com/wildcat/spartan/common/logger"
)

// MimeJPEG is the content type for all picture uploads.
const MimeJPEG = "image/jpeg"

// Store uploads objects to a single configured bucket.
type Store struct {
	client *minio.Client
	bucket string
	log    *logger.Logger
}

// New creates an object store client and verifies the bucket is reachable.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Store, error) {
	client, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Storage.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Storage.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Storage.Bucket, err)
		}
		log.Info("bucket created", "bucket", cfg.Storage.Bucket)
	}

	log.Info("object storage connected", "endpoint", cfg.Storage.Endpoint, "bucket", cfg.Storage.Bucket)

	return &Store{
		client: client,
		bucket: cfg.Storage.Bucket,
		log:    log,
	}, nil
}

// Bucket returns the configured bucket name.
func (s *Store) Bucket() string {
	return s.bucket
}

// Put uploads a byte buffer to the given object path.
func (s *Store) Put(ctx context.Context, path string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, path, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("put object %s: %w", path, err)
	}

	s.log.Debug("object uploaded", "path", path, "bytes", len(data))
	return nil
}
