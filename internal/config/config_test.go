package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "inventory", cfg.MongoDB)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.EncodePricesOnUpdate)
	assert.Equal(t, "mongo", cfg.Store)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("REQUEST_TIMEOUT", "30s")
	t.Setenv("MAX_UPLOAD_MB", "2")
	t.Setenv("ENCODE_PRICES_ON_UPDATE", "true")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Addr())
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, int64(2<<20), cfg.MaxUploadBytes())
	assert.True(t, cfg.EncodePricesOnUpdate)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestParseInvalidDuration(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")
	_, err := Parse()
	assert.Error(t, err)
}
