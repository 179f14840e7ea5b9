// Package mirrorskill provides a high-level façade that assembles the mirror
// voice skill from configuration. Most applications interact with this
// package by:
//  1. Loading a config.Config (config.Load)
//  2. Creating the skill via New, which selects the attributes store
//  3. Handing Skill.Handle to the Lambda runtime, or calling Invoke directly
//
// The façade delegates dispatch to skill.Skill and the handlers to package
// mirror. Without a configured bucket an in-memory store is used, which is
// safe for local development and testing only.
package mirrorskill

import (
	"context"

	"github.com/hupe1980/mirrorskill/config"
	"github.com/hupe1980/mirrorskill/core"
	"github.com/hupe1980/mirrorskill/logging"
	"github.com/hupe1980/mirrorskill/mirror"
	"github.com/hupe1980/mirrorskill/persistence"
	"github.com/hupe1980/mirrorskill/persistence/s3"
	"github.com/hupe1980/mirrorskill/skill"
)

// Options configures the façade.
type Options struct {
	// Store overrides the store selected from the configuration.
	Store core.AttributesStore

	// Logger defaults to NoOp logger if nil.
	Logger logging.Logger
}

// New builds the skill described by cfg.
func New(ctx context.Context, cfg config.Config, optFns ...func(o *Options)) (*skill.Skill, error) {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	store := opts.Store
	if store == nil {
		var err error
		if store, err = NewStore(ctx, cfg, opts.Logger); err != nil {
			return nil, err
		}
	}

	return mirror.NewSkill(persistence.WithLogging(store, opts.Logger), func(o *mirror.Options) {
		o.PersistLearned = cfg.PersistLearned
		o.Logger = opts.Logger
	}), nil
}

// NewStore returns the S3 store when a bucket is configured and an in-memory
// store otherwise.
func NewStore(ctx context.Context, cfg config.Config, logger logging.Logger) (core.AttributesStore, error) {
	if cfg.Bucket == "" {
		logger.Warn("mirrorskill.store.in_memory", "reason", config.EnvBucket+" not set; state will not survive restarts")
		return persistence.NewInMemoryStore(), nil
	}
	store, err := s3.NewFromEnvironment(ctx, s3.Config{Bucket: cfg.Bucket, PathPrefix: cfg.Prefix})
	if err != nil {
		return nil, err
	}
	logger.Info("mirrorskill.store.s3", "bucket", cfg.Bucket, "prefix", cfg.Prefix)
	return store, nil
}
