// AngelaMos | 2026
// s3.go

package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/config"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
)

// ObjectAPI is the subset of the S3 client the store uses.
type ObjectAPI interface {
	PutObject(
		ctx context.Context,
		params *s3.PutObjectInput,
		optFns ...func(*s3.Options),
	) (*s3.PutObjectOutput, error)
	HeadBucket(
		ctx context.Context,
		params *s3.HeadBucketInput,
		optFns ...func(*s3.Options),
	) (*s3.HeadBucketOutput, error)
}

// S3Store keeps sponsor documents in an S3 compatible bucket.
type S3Store struct {
	api     ObjectAPI
	bucket  string
	baseURL string
}

func NewS3Store(ctx context.Context, cfg config.StorageConfig) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3StoreWithAPI(client, cfg), nil
}

func NewS3StoreWithAPI(api ObjectAPI, cfg config.StorageConfig) *S3Store {
	return &S3Store{
		api:     api,
		bucket:  cfg.Bucket,
		baseURL: publicBase(cfg),
	}
}

func (s *S3Store) Put(
	ctx context.Context,
	key, contentType string,
	body io.Reader,
	size int64,
) (string, error) {
	ctx, span := core.StartSpan(ctx, "storage.put",
		attribute.String("s3.bucket", s.bucket),
		attribute.String("s3.key", key),
		attribute.Int64("content.size", size),
	)
	defer span.End()

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.api.PutObject(ctx, input); err != nil {
		core.SetSpanError(ctx, err)
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return s.URL(key), nil
}

func (s *S3Store) URL(key string) string {
	return s.baseURL + "/" + strings.TrimPrefix(key, "/")
}

// Ping reports whether the bucket is reachable, for readiness checks.
func (s *S3Store) Ping(ctx context.Context) error {
	_, err := s.api.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err != nil {
		return fmt.Errorf("head bucket %s: %w", s.bucket, err)
	}
	return nil
}

func publicBase(cfg config.StorageConfig) string {
	switch {
	case cfg.PublicBaseURL != "":
		return strings.TrimSuffix(cfg.PublicBaseURL, "/")
	case cfg.Endpoint != "":
		return strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
}
