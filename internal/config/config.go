package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/skopia/astrodaily/internal/domain"
)

// Load builds the configuration from viper's merged sources:
// 1. Config file (config.toml, optional)
// 2. Environment variables (ASTRODAILY_*)
// 3. Bound CLI flags
//
// A missing API key falls back to NASA's public demo key with a warning.
func Load(log zerolog.Logger) (*domain.Config, error) {
	cfg := &domain.Config{
		APIKey:            viper.GetString("api_key"),
		BaseURL:           viper.GetString("base_url"),
		RequestTimeout:    viper.GetDuration("request_timeout"),
		MaxFavorites:      viper.GetInt("max_favorites"),
		DiscordWebhookURL: viper.GetString("discord_webhook_url"),
		DataDir:           viper.GetString("data_dir"),
	}

	if cfg.APIKey == "" {
		log.Warn().Msg("no api_key configured, falling back to DEMO_KEY (heavily rate limited)")
		cfg.APIKey = domain.DemoAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = domain.DefaultBaseURL
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = domain.DefaultRequestTimeout
	}
	if cfg.RequestTimeout < time.Second {
		return nil, fmt.Errorf("request_timeout %s is too short (minimum 1s)", cfg.RequestTimeout)
	}
	if cfg.MaxFavorites == 0 {
		cfg.MaxFavorites = domain.DefaultMaxFavorites
	}
	if cfg.MaxFavorites < 0 {
		return nil, fmt.Errorf("max_favorites must be positive, got %d", cfg.MaxFavorites)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "."
	}

	return cfg, nil
}
