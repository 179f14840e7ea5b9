package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/mirrorskill/logging"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Bucket)
	assert.False(t, cfg.PersistLearned)
	assert.Equal(t, logging.LogLevelInfo, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestFromLookup_Values(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		EnvBucket:         "mirror-bucket",
		EnvPrefix:         "attrs/",
		EnvPersistLearned: "1",
		EnvLogLevel:       "DEBUG",
		EnvLogFormat:      "Text",
	}))
	require.NoError(t, err)
	assert.Equal(t, "mirror-bucket", cfg.Bucket)
	assert.Equal(t, "attrs/", cfg.Prefix)
	assert.True(t, cfg.PersistLearned)
	assert.Equal(t, logging.LogLevelDebug, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.NotNil(t, cfg.NewLogger())
}

func TestFromLookup_Invalid(t *testing.T) {
	_, err := FromLookup(lookupFrom(map[string]string{EnvPersistLearned: "maybe"}))
	assert.Error(t, err)

	_, err = FromLookup(lookupFrom(map[string]string{EnvLogFormat: "xml"}))
	assert.Error(t, err)
}
