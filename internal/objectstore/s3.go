// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch

// Package objectstore adapts S3-compatible object storage to the narrow
// put/delete-by-key capability the service core needs, grounded on
// jrepp-hermes's pkg/workspace/adapters/s3/adapter.go (AWS config loading,
// bucket verification, put/delete object shape).
package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hashicorp/go-hclog"

	"github.com/doculens/doculens/internal/apperror"
)

// Store puts and removes opaque byte blobs under a key.
type Store struct {
	client *s3.Client
	bucket string
	logger hclog.Logger
}

// New loads AWS credentials from the environment (natively, via the SDK's
// default credential chain) and verifies the configured bucket exists,
// creating it if absent and not in test mode.
func New(ctx context.Context, bucket string, testMode bool, logger hclog.Logger) (*Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	store := &Store{
		client: s3.NewFromConfig(awsCfg),
		bucket: bucket,
		logger: logger.Named("objectstore"),
	}

	if !testMode {
		if err := store.ensureBucket(ctx); err != nil {
			return nil, err
		}
	}

	return store, nil
}

func (s *Store) ensureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err == nil {
		return nil
	}

	s.logger.Info("bucket not found, creating", "bucket", s.bucket)
	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(s.bucket)})
	if err != nil {
		return fmt.Errorf("create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Put uploads data under key with overwrite semantics.
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return apperror.NewUpstreamUnavailable(err, "failed to upload object to storage")
	}
	return nil
}

// Remove deletes key. A missing key is treated as success (idempotent
// remove), matching spec.md §4.2.
func (s *Store) Remove(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return nil
	}

	var notFound *types.NoSuchKey
	if errors.As(err, &notFound) {
		return nil
	}
	return apperror.NewUpstreamUnavailable(err, "failed to remove object from storage")
}
