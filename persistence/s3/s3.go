// Package s3 provides an AttributesStore backed by Amazon S3 (or a compatible
// API). Each user's State is stored as one JSON object at
// Config.PathPrefix + userID inside Config.Bucket.
package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/hupe1980/mirrorskill/core"
)

// ErrNoBucket is returned by New when Config.Bucket is empty.
var ErrNoBucket = errors.New("s3 bucket name is required")

// API is the subset of *s3.Client used by Store. It exists so tests can
// substitute a fake.
type API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Config selects where states are stored.
type Config struct {
	Bucket     string
	PathPrefix string
}

// Store implements core.AttributesStore on S3.
type Store struct {
	client API
	cfg    Config
}

// New wraps an existing client.
func New(client API, cfg Config) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, ErrNoBucket
	}
	return &Store{client: client, cfg: cfg}, nil
}

// NewFromEnvironment builds an S3 client from the default AWS credential
// chain (environment, shared config, Lambda execution role).
func NewFromEnvironment(ctx context.Context, cfg Config) (*Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return New(s3.NewFromConfig(awsCfg), cfg)
}

// Key returns the object key for a user.
func (s *Store) Key(userID string) string { return s.cfg.PathPrefix + userID }

// Get loads the user's state. A missing object or an empty body yields the
// zero State.
func (s *Store) Get(ctx context.Context, userID string) (core.State, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(s.Key(userID)),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return core.State{}, nil
		}
		return core.State{}, fmt.Errorf("failed to get object %q: %w", s.Key(userID), err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return core.State{}, fmt.Errorf("failed to read object %q: %w", s.Key(userID), err)
	}
	var state core.State
	if len(bytes.TrimSpace(data)) == 0 {
		return state, nil
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return core.State{}, fmt.Errorf("failed to decode object %q: %w", s.Key(userID), err)
	}
	return state, nil
}

// Save writes the user's state as JSON.
func (s *Store) Save(ctx context.Context, userID string, state core.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(s.Key(userID)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to put object %q: %w", s.Key(userID), err)
	}
	return nil
}

// Delete removes the user's object.
func (s *Store) Delete(ctx context.Context, userID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(s.Key(userID)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %q: %w", s.Key(userID), err)
	}
	return nil
}
