package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/sandeepkv93/vaultos/internal/model"
)

// S3API is the subset of the S3 client the backend needs.
type S3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Backend maps the collection to a bucket and the document to an object key.
type S3Backend struct {
	client S3API
	bucket string
	key    string
}

func NewS3Backend(client S3API, collection, document string) *S3Backend {
	return &S3Backend{client: client, bucket: collection, key: document + ".json"}
}

func NewS3Client(ctx context.Context, region string) (*s3.Client, error) {
	opts := make([]func(*awsconfig.LoadOptions) error, 0, 1)
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

func (b *S3Backend) Name() string { return "remote:s3" }

func (b *S3Backend) Load(ctx context.Context) (model.AppState, error) {
	out, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.key),
	})
	if err != nil {
		var missing *types.NoSuchKey
		if errors.As(err, &missing) {
			return model.AppState{}, ErrNotFound
		}
		return model.AppState{}, fmt.Errorf("s3 get %s/%s: %w", b.bucket, b.key, err)
	}
	defer out.Body.Close()
	raw, err := io.ReadAll(out.Body)
	if err != nil {
		return model.AppState{}, fmt.Errorf("s3 read %s/%s: %w", b.bucket, b.key, err)
	}
	return decodeState(raw)
}

func (b *S3Backend) Save(ctx context.Context, state model.AppState) error {
	payload, err := encodeState(state)
	if err != nil {
		return err
	}
	_, err = b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(b.key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("s3 put %s/%s: %w", b.bucket, b.key, err)
	}
	return nil
}
