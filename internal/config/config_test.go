package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skopia/astrodaily/internal/domain"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load(zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, domain.DemoAPIKey, cfg.APIKey, "missing key falls back to the demo key")
	assert.Equal(t, domain.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, domain.DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, domain.DefaultMaxFavorites, cfg.MaxFavorites)
	assert.Equal(t, ".", cfg.DataDir)
}

func TestLoadConfiguredValues(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("api_key", "real-key")
	viper.Set("request_timeout", "30s")
	viper.Set("max_favorites", 50)
	viper.Set("data_dir", "/var/lib/astrodaily")

	cfg, err := Load(zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "real-key", cfg.APIKey)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 50, cfg.MaxFavorites)
	assert.Equal(t, "/var/lib/astrodaily", cfg.DataDir)
}

func TestLoadRejectsBadValues(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("request_timeout", "100ms")
	_, err := Load(zerolog.Nop())
	assert.Error(t, err)

	viper.Reset()
	viper.Set("max_favorites", -1)
	_, err = Load(zerolog.Nop())
	assert.Error(t, err)
}
