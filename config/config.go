// Package config reads the skill's runtime configuration from the process
// environment. A .env file in the working directory is loaded first when
// present so local runs behave like the deployed function.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/hupe1980/mirrorskill/logging"
)

// Environment variable names.
const (
	EnvBucket         = "S3_PERSISTENCE_BUCKET"
	EnvPrefix         = "S3_PERSISTENCE_PREFIX"
	EnvPersistLearned = "MIRROR_PERSIST_LEARNED"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
)

// Config is the resolved runtime configuration.
type Config struct {
	// Bucket names the S3 bucket holding persistent attributes. Empty means
	// an in-memory store is used instead.
	Bucket string
	// Prefix is prepended to every object key.
	Prefix string
	// PersistLearned enables storing pairs taught through SaveCharacteristicIntent.
	PersistLearned bool
	LogLevel       logging.LogLevel
	LogFormat      string
}

// Load loads an optional .env file and then reads the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from a lookup function shaped like os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(k string) string {
		v, _ := lookup(k)
		return strings.TrimSpace(v)
	}

	cfg := Config{
		Bucket:    get(EnvBucket),
		Prefix:    get(EnvPrefix),
		LogLevel:  logging.ParseLevel(get(EnvLogLevel)),
		LogFormat: strings.ToLower(get(EnvLogFormat)),
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return Config{}, fmt.Errorf("invalid %s %q: want json or text", EnvLogFormat, cfg.LogFormat)
	}

	if v := get(EnvPersistLearned); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvPersistLearned, v, err)
		}
		cfg.PersistLearned = b
	}
	return cfg, nil
}

// NewLogger builds the skill logger described by the configuration.
func (c Config) NewLogger() *logging.SkillLogger {
	return logging.NewSlogLogger(c.LogLevel, c.LogFormat).WithComponent("mirrorskill")
}
