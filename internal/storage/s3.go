package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/healthtrack-labs/healthtrack/internal/common"
)

// S3Store is the S3-backed MediaStore.
type S3Store struct {
	client        *s3.Client
	bucket        string
	region        string
	publicBaseURL string
	prefix        string
	logger        *slog.Logger
}

func NewS3Store(ctx context.Context, cfg common.StorageConfig, logger *slog.Logger) (*S3Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &S3Store{
		client:        s3.NewFromConfig(awsCfg),
		bucket:        cfg.Bucket,
		region:        cfg.Region,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		prefix:        strings.Trim(cfg.UploadPrefix, "/"),
		logger:        logger,
	}, nil
}

// Upload writes the blob under a fresh key and returns its asset record.
func (s *S3Store) Upload(ctx context.Context, filename, contentType string, data []byte) (*MediaAsset, error) {
	start := time.Now()
	key := path.Join(s.prefix, uuid.New().String()+strings.ToLower(path.Ext(filename)))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.logger.Error("storage.upload.failed", "key", key, "error", err)
		return nil, fmt.Errorf("put object: %w", err)
	}

	s.logger.Info("storage.upload.ok",
		"key", key,
		"bytes", len(data),
		"content_type", contentType,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &MediaAsset{
		Key:       key,
		MIMEType:  contentType,
		PublicURL: s.publicURL(key),
		Bytes:     data,
	}, nil
}

// Delete removes a temporary object (rasterized pages after use).
func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Warn("storage.delete.failed", "key", key, "error", err)
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

func (s *S3Store) publicURL(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
