package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rouaze/fwkey-service/internal/config"
	"github.com/rouaze/fwkey-service/models"
)

// S3API is the subset of the S3 client used by the fetcher.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type s3DocumentFetcher struct {
	client S3API
}

// NewS3DocumentFetcher builds an S3 client from cfg and the default AWS
// configuration chain (environment, shared config, instance role).
//
// Static credentials are used when both AccessKeyID and SecretAccessKey are
// set. A non-empty Endpoint redirects requests to an S3-compatible store.
func NewS3DocumentFetcher(ctx context.Context, cfg config.S3) (DocumentFetcher, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return NewS3DocumentFetcherWithClient(client), nil
}

// NewS3DocumentFetcherWithClient wraps an existing client.
func NewS3DocumentFetcherWithClient(client S3API) DocumentFetcher {
	return &s3DocumentFetcher{client: client}
}

// FetchDocument implements [DocumentFetcher] with a single GetObject call.
func (f *s3DocumentFetcher) FetchDocument(ctx context.Context, location models.DocumentLocation) ([]byte, error) {
	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(location.Bucket),
		Key:    aws.String(location.Key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		var noSuchBucket *types.NoSuchBucket
		if errors.As(err, &noSuchKey) || errors.As(err, &noSuchBucket) {
			return nil, fmt.Errorf("%w: s3://%s: %w", ErrDocumentNotFound, location, err)
		}
		return nil, fmt.Errorf("%w: s3://%s: %w", ErrFetchingDocument, location, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading s3://%s: %w", ErrFetchingDocument, location, err)
	}

	return data, nil
}
