package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults for optional settings", func(t *testing.T) {
		t.Setenv("HIPBANK_DATABASE_URL", "postgres://localhost:5432/hipbank")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "info", cfg.Server.LogLevel)
		assert.Equal(t, "postgres://localhost:5432/hipbank", cfg.Database.URL)
		assert.Equal(t,
			"Welcome to HipBank (config server down! Information unavailable)",
			cfg.Contact.Message)
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		t.Setenv("HIPBANK_DATABASE_URL", "postgres://db:5432/hipbank")
		t.Setenv("HIPBANK_SERVER_PORT", "9090")
		t.Setenv("HIPBANK_SERVER_LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Server.LogLevel)
		assert.Equal(t, "postgres://db:5432/hipbank", cfg.Database.URL)
	})

	t.Run("fails without a database url", func(t *testing.T) {
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("rejects an unknown log level", func(t *testing.T) {
		t.Setenv("HIPBANK_DATABASE_URL", "postgres://localhost:5432/hipbank")
		t.Setenv("HIPBANK_SERVER_LOG_LEVEL", "loud")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("rejects an out-of-range port", func(t *testing.T) {
		t.Setenv("HIPBANK_DATABASE_URL", "postgres://localhost:5432/hipbank")
		t.Setenv("HIPBANK_SERVER_PORT", "70000")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})
}
