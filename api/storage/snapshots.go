package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrNotConfigured = errors.New("snapshot storage not configured")

const defaultPrefix = "snapshots/"

// ObjectPutter is the part of *s3.Client used for backups.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// SnapshotStore writes snapshot documents to an S3 bucket.
type SnapshotStore struct {
	Client ObjectPutter
	Bucket string
	Prefix string
}

// NewFromEnv builds a store from S3_BUCKET, S3_PREFIX and AWS_REGION.
// It returns ErrNotConfigured when no bucket is set.
func NewFromEnv(ctx context.Context) (*SnapshotStore, error) {
	// Strip any accidental path suffix from the bucket name.
	bucket := strings.SplitN(strings.TrimSpace(os.Getenv("S3_BUCKET")), "/", 2)[0]
	if bucket == "" {
		return nil, ErrNotConfigured
	}

	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-2"
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	return &SnapshotStore{
		Client: client,
		Bucket: bucket,
		Prefix: normalizePrefix(os.Getenv("S3_PREFIX")),
	}, nil
}

// Key names the object a snapshot taken at t is stored under.
func (s *SnapshotStore) Key(t time.Time) string {
	return s.Prefix + "snapshot-" + t.UTC().Format("20060102T150405Z") + ".json"
}

// Backup uploads a JSON snapshot and returns its object key.
func (s *SnapshotStore) Backup(ctx context.Context, data []byte, at time.Time) (string, error) {
	if s == nil || s.Client == nil {
		return "", ErrNotConfigured
	}

	key := s.Key(at)
	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return key, nil
}

func normalizePrefix(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return defaultPrefix
	}
	return p + "/"
}
