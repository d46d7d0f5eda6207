package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	// make sure ambient values don't leak into the default test
	for _, key := range []string{"SOLANA_RPC_URL", "SOLANA_RPC_TIMEOUT", "SENTRY_URL", "DATABASE_URL", "DATABASE_NAME"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	conf, err := New(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "https://api.mainnet-beta.solana.com", conf.RPCURL)
	assert.Equal(t, 10*time.Second, conf.RPCTimeout)
	assert.Empty(t, conf.SentryURL)
	assert.Empty(t, conf.DatabaseURL)
	assert.Empty(t, conf.DatabaseName)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("SOLANA_RPC_URL", "http://localhost:8899")
	t.Setenv("SOLANA_RPC_TIMEOUT", "5s")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/gateway")
	t.Setenv("DATABASE_NAME", "gateway")

	conf, err := New(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8899", conf.RPCURL)
	assert.Equal(t, 5*time.Second, conf.RPCTimeout)
	assert.Equal(t, "postgres://localhost:5432/gateway", conf.DatabaseURL)
	assert.Equal(t, "gateway", conf.DatabaseName)
}

func TestNewFromEnvFile(t *testing.T) {
	for _, key := range []string{"SOLANA_RPC_URL", "SENTRY_URL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	envpath := filepath.Join(t.TempDir(), ".env")
	content := "SOLANA_RPC_URL=http://localhost:8899\nSENTRY_URL=https://example@sentry.io/1\n"
	require.NoError(t, os.WriteFile(envpath, []byte(content), 0644))

	conf, err := New(context.Background(), envpath)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8899", conf.RPCURL)
	assert.Equal(t, "https://example@sentry.io/1", conf.SentryURL)
}

func TestNewMissingEnvFile(t *testing.T) {
	_, err := New(context.Background(), filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
