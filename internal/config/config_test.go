package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/statblock-api/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, StoreRedis, cfg.Store)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 168*time.Hour, cfg.ResultTTL)
	assert.Equal(t, 30, cfg.FuzzyWindow)
	assert.Equal(t, 2, cfg.FuzzyThreshold)
	assert.Empty(t, cfg.SRDBaseURL)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.Equal(t, "statblock-api", cfg.ServiceName)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("STATBLOCK_GRPC_PORT", "6000")
	t.Setenv("STATBLOCK_RESULT_TTL", "1h")
	t.Setenv("STATBLOCK_LOG_LEVEL", "DEBUG")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.GRPCPort)
	assert.Equal(t, time.Hour, cfg.ResultTTL)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STATBLOCK_FUZZY_WINDOW=12\nSTATBLOCK_OTEL_ENDPOINT=http://collector:4318\n"), 0o600))
	t.Setenv("STATBLOCK_FUZZY_WINDOW", "")
	t.Setenv("STATBLOCK_OTEL_ENDPOINT", "")
	// godotenv does not override variables that are already set
	require.NoError(t, os.Unsetenv("STATBLOCK_FUZZY_WINDOW"))
	require.NoError(t, os.Unsetenv("STATBLOCK_OTEL_ENDPOINT"))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.FuzzyWindow)
	assert.Equal(t, "http://collector:4318", cfg.OTelEndpoint)
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad int", key: "STATBLOCK_GRPC_PORT", val: "not-a-port"},
		{name: "port out of range", key: "STATBLOCK_GRPC_PORT", val: "70000"},
		{name: "bad duration", key: "STATBLOCK_RESULT_TTL", val: "soon"},
		{name: "unknown log level", key: "STATBLOCK_LOG_LEVEL", val: "verbose"},
		{name: "unknown store", key: "STATBLOCK_STORE", val: "postgres"},
		{name: "fuzzy window too large", key: "STATBLOCK_FUZZY_WINDOW", val: "500"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)

			_, err := Load("")
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestValidate_MemoryStoreNeedsNoRedis(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Store = StoreMemory
	cfg.RedisAddr = ""
	assert.NoError(t, cfg.Validate())

	cfg.Store = StoreRedis
	assert.True(t, errors.IsInvalidArgument(cfg.Validate()))
}

func TestParserConfig(t *testing.T) {
	cfg := &Config{FuzzyWindow: 10, FuzzyThreshold: 1}
	pc := cfg.ParserConfig()
	assert.Equal(t, 10, pc.FuzzyWindow)
	assert.Equal(t, 1, pc.FuzzyThreshold)
}
