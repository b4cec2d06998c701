package domain

import "time"

// DemoAPIKey is NASA's public demo key, used when no key is configured.
// It is heavily rate limited and only suitable for trying the tool out.
const DemoAPIKey = "DEMO_KEY"

// DefaultBaseURL is the APOD endpoint.
const DefaultBaseURL = "https://api.nasa.gov/planetary/apod"

const (
	DefaultRequestTimeout = 15 * time.Second
	DefaultMaxFavorites   = 1000
)

type Config struct {
	APIKey            string        `toml:"api_key" mapstructure:"api_key"`
	BaseURL           string        `toml:"base_url" mapstructure:"base_url"`
	RequestTimeout    time.Duration `toml:"request_timeout" mapstructure:"request_timeout"`
	MaxFavorites      int           `toml:"max_favorites" mapstructure:"max_favorites"`
	DiscordWebhookURL string        `toml:"discord_webhook_url" mapstructure:"discord_webhook_url"`
	DataDir           string        `toml:"data_dir" mapstructure:"data_dir"`
}
