package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"PORT":             "9090",
		"LOG_LEVEL":        "debug",
		"LOG_FORMAT":       "json",
		"SEED_DATA":        "false",
		"SHUTDOWN_TIMEOUT": "2s",
		"APP_NAME":         "  ",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.Seed)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "animals-api", cfg.AppName)
}

func TestFromLookup_AddrWinsOverPort(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"PORT": "9090",
		"ADDR": "127.0.0.1:7000",
	}))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Addr)
}

func TestFromLookup_InvalidValues(t *testing.T) {
	_, err := FromLookup(lookupFrom(map[string]string{"SEED_DATA": "maybe"}))
	assert.ErrorContains(t, err, "SEED_DATA")

	_, err = FromLookup(lookupFrom(map[string]string{"READ_TIMEOUT": "soon"}))
	assert.ErrorContains(t, err, "READ_TIMEOUT")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Addr = ""
	cfg.WriteTimeout = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "addr required")
	assert.ErrorContains(t, err, "write timeout")
}
