package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ObjectClient is the part of the S3 API used for assets.
type ObjectClient interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3AssetStorage struct {
	client     ObjectClient
	bucket     string
	publicBase string
	now        func() time.Time
	logger     zerolog.Logger
}

// NewS3AssetStorage stores assets in bucket. publicBase is the path-style
// endpoint the bucket is readable from, e.g. https://s3.eu-west-3.amazonaws.com.
func NewS3AssetStorage(client ObjectClient, bucket, publicBase string) *S3AssetStorage {
	if bucket == "" {
		bucket = DefaultBucket
	}
	return &S3AssetStorage{
		client:     client,
		bucket:     bucket,
		publicBase: publicBase,
		now:        time.Now,
		logger:     log.With().Str("component", "s3Storage").Str("bucket", bucket).Logger(),
	}
}

func (s *S3AssetStorage) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	key, err := AssetKey(folder, filename, s.now())
	if err != nil {
		return "", err
	}
	if contentType == "" {
		contentType = DefaultContentType
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         body,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("max-age=3600"),
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}
	s.logger.Info().Str("key", key).Str("contentType", contentType).Msg("Asset uploaded")
	return publicURL(s.publicBase, s.bucket, key), nil
}

func (s *S3AssetStorage) Delete(ctx context.Context, url string) {
	key, ok := KeyFromURL(url, s.bucket)
	if !ok {
		s.logger.Warn().Str("url", url).Msg("Invalid asset URL, cannot delete")
		return
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("Failed to delete asset")
		return
	}
	s.logger.Info().Str("key", key).Msg("Asset deleted")
}
