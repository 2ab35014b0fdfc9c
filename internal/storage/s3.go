package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader is the write-only bucket surface the upload handler needs. No
// delete or update path exists for uploaded evidence files.
type Uploader interface {
	Save(ctx context.Context, key, contentType string, body io.Reader) error
	PublicURL(key string) string
}

// S3Config holds bucket connection settings. Endpoint is optional and enables
// S3-compatible services (MinIO, DO Spaces, R2).
type S3Config struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	Endpoint  string
}

// S3Bucket implements Uploader against AWS S3 or any S3-compatible endpoint.
type S3Bucket struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3Bucket(ctx context.Context, cfg S3Config) (*S3Bucket, error) {
	opts := []func(*awscfg.LoadOptions) error{awscfg.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	var client *s3.Client
	if cfg.Endpoint != "" {
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			// Path-style addressing is required for MinIO and friends.
			o.UsePathStyle = true
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	return &S3Bucket{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicBaseURL(cfg.Endpoint, cfg.Bucket, cfg.Region),
	}, nil
}

func publicBaseURL(endpoint, bucket, region string) string {
	if endpoint == "" {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}
	return strings.TrimSuffix(endpoint, "/") + "/" + bucket
}

// Save uploads the object under key with the declared content type.
func (b *S3Bucket) Save(ctx context.Context, key, contentType string, body io.Reader) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	input := &s3.PutObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := b.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("upload to S3: %w", err)
	}
	return nil
}

// PublicURL returns the retrieval URL for an uploaded object.
func (b *S3Bucket) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", b.publicURL, key)
}
